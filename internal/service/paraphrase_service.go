package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"paraphrase/internal/domain"
)

type ParaphraseServiceImpl struct {
	segmenter   domain.Segmenter
	tagger      domain.Tagger
	concepts    domain.ConceptFinder
	paraphraser domain.Paraphraser
	showSenses  bool
	log         logrus.FieldLogger
}

func NewParaphraseService(segmenter domain.Segmenter, tagger domain.Tagger, concepts domain.ConceptFinder, paraphraser domain.Paraphraser, showSenses bool, log logrus.FieldLogger) *ParaphraseServiceImpl {
	return &ParaphraseServiceImpl{
		segmenter:   segmenter,
		tagger:      tagger,
		concepts:    concepts,
		paraphraser: paraphraser,
		showSenses:  showSenses,
		log:         log,
	}
}

// Process splits text into sentences and reports on each, in order.
func (s *ParaphraseServiceImpl) Process(text string) ([]domain.Report, error) {
	sentences, err := s.segmenter.Split(text)
	if err != nil {
		return nil, fmt.Errorf("split sentences: %w", err)
	}
	reports := make([]domain.Report, 0, len(sentences))
	for _, sentence := range sentences {
		r, err := s.ProcessSentence(sentence)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	s.log.WithField("sentences", len(reports)).Debug("processed text")
	return reports, nil
}

// ProcessSentence finds the shared concept of one sentence and paraphrases it.
func (s *ParaphraseServiceImpl) ProcessSentence(sentence string) (domain.Report, error) {
	tokens, err := s.tagger.Tag(sentence)
	if err != nil {
		return domain.Report{}, fmt.Errorf("tag %q: %w", sentence, err)
	}
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}

	r := domain.Report{Original: sentence}
	r.Concept = s.concepts.LowestCommonHypernym(words)
	if s.showSenses {
		r.Senses = s.concepts.PrimarySenses(words)
	}
	r.Replaced, r.Replacements = s.paraphraser.ReplaceTokens(sentence, tokens)
	return r, nil
}

// ProcessFiles reads every file matching paths and processes their contents
// as one passage.
func (s *ParaphraseServiceImpl) ProcessFiles(paths []string) ([]domain.Report, error) {
	var text strings.Builder
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			text.Write(data)
			text.WriteString("\n")
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return nil, fmt.Errorf("no text found in %s", strings.Join(paths, ", "))
	}
	return s.Process(text.String())
}
