package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"paraphrase/internal/concept"
	"paraphrase/internal/config"
	"paraphrase/internal/lexicon"
	"paraphrase/internal/logging"
	"paraphrase/internal/segmenter"
	"paraphrase/internal/service"
	"paraphrase/internal/substitute"
	"paraphrase/internal/tagger"
	"paraphrase/internal/wsd"
)

// samplePassage is processed when run gets neither files nor --text.
const samplePassage = "During our expedition, we encountered diverse animals such as eagles, trout, and rabbits. " +
	"navigated through different terrains like mountains, forests, and rivers. " +
	"and used equipment including compasses, maps, and binoculars."

// loadLexicon is replaced in tests.
var loadLexicon = lexicon.Load

type app struct {
	cfg *config.AppConfig
	log *logrus.Logger
	lex *lexicon.Lexicon
}

func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		cfg, _, err := config.LoadDefault()
		return cfg, err
	}
	return config.Load(path)
}

func newApp(cfgPath string) (*app, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logging.New(cfg.Log)

	lex, err := loadLexicon(cfg.Lexicon.Type, cfg.Lexicon.Path)
	if err != nil {
		return nil, fmt.Errorf("load %s lexicon: %w", cfg.Lexicon.Type, err)
	}
	log.WithFields(logrus.Fields{
		"type":    cfg.Lexicon.Type,
		"path":    cfg.Lexicon.Path,
		"synsets": lex.Len(),
	}).Debug("lexicon loaded")

	return &app{cfg: cfg, log: log, lex: lex}, nil
}

// service assembles the sentence pipeline from config.
func (a *app) service() (*service.ParaphraseServiceImpl, error) {
	seg, err := segmenter.New(a.cfg.Segmenter.Type)
	if err != nil {
		return nil, err
	}
	tg, err := tagger.New(a.cfg.Tagger.Type)
	if err != nil {
		return nil, err
	}
	concepts := concept.NewAggregator(a.lex, a.cfg.Concepts.SkipStopwords, a.log)
	lesk := wsd.NewLesk(a.lex, a.cfg.WSD.UseExamples)
	chooser := substitute.NewRandChooser(a.cfg.Substituter.Seed)
	sub := substitute.New(tg, lesk, chooser, a.cfg.Substituter.MaxReplacements, a.log)

	return service.NewParaphraseService(seg, tg, concepts, sub, a.cfg.Output.ShowSenses, a.log), nil
}
