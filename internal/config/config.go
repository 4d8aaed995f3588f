package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownType is returned when a component type in the config is not
// recognized.
var ErrUnknownType = errors.New("unknown component type")

// ErrInvalidValue is returned when a numeric setting is out of range.
var ErrInvalidValue = errors.New("invalid value")

// MaxReplacementsLimit is the most substitutions allowed per sentence.
const MaxReplacementsLimit = 3

// Environment variables that override the file.
const (
	EnvWordNetDir = "PARAPHRASE_WORDNET_DIR"
	EnvLogLevel   = "PARAPHRASE_LOG_LEVEL"
)

// LexiconConfig selects the ontology loader and its data directory.
type LexiconConfig struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

// SegmenterConfig selects the sentence splitter.
type SegmenterConfig struct {
	Type string `yaml:"type"`
}

// TaggerConfig selects the part-of-speech tagger.
type TaggerConfig struct {
	Type string `yaml:"type"`
}

// ConceptsConfig configures the concept aggregator.
type ConceptsConfig struct {
	SkipStopwords bool `yaml:"skip_stopwords"`
}

// WSDConfig configures Lesk disambiguation.
type WSDConfig struct {
	UseExamples bool `yaml:"use_examples"`
}

// SubstituterConfig configures synonym substitution. MaxReplacements is at
// most MaxReplacementsLimit. Seed 0 seeds from the clock.
type SubstituterConfig struct {
	MaxReplacements int   `yaml:"max_replacements"`
	Seed            int64 `yaml:"seed"`
}

type OutputConfig struct {
	ShowSenses bool `yaml:"show_senses"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	Segmenter   SegmenterConfig   `yaml:"segmenter"`
	Tagger      TaggerConfig      `yaml:"tagger"`
	Concepts    ConceptsConfig    `yaml:"concepts"`
	WSD         WSDConfig         `yaml:"wsd"`
	Substituter SubstituterConfig `yaml:"substituter"`
	Output      OutputConfig      `yaml:"output"`
	Log         LogConfig         `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/paraphrase/config.yaml.
// If neither exists, it writes defaults to ~/.config/paraphrase/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects component types no constructor knows about and a
// replacement cap above MaxReplacementsLimit.
func (c *AppConfig) Validate() error {
	if n := c.Substituter.MaxReplacements; n > MaxReplacementsLimit {
		return fmt.Errorf("substituter.max_replacements %d exceeds %d: %w", n, MaxReplacementsLimit, ErrInvalidValue)
	}
	checks := []struct {
		field, value string
		allowed      []string
	}{
		{"lexicon.type", c.Lexicon.Type, []string{"wordnet", "oewn"}},
		{"segmenter.type", c.Segmenter.Type, []string{"punkt", "regex"}},
		{"tagger.type", c.Tagger.Type, []string{"prose"}},
		{"log.format", c.Log.Format, []string{"text", "json"}},
	}
	for _, ch := range checks {
		if !contains(ch.allowed, ch.value) {
			return fmt.Errorf("%s %q: %w", ch.field, ch.value, ErrUnknownType)
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "paraphrase", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Lexicon:     LexiconConfig{Type: "wordnet", Path: "/usr/share/wordnet/dict"},
		Segmenter:   SegmenterConfig{Type: "punkt"},
		Tagger:      TaggerConfig{Type: "prose"},
		Substituter: SubstituterConfig{MaxReplacements: MaxReplacementsLimit},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Lexicon.Type == "" {
		cfg.Lexicon.Type = def.Lexicon.Type
	}
	if cfg.Lexicon.Path == "" && cfg.Lexicon.Type == "wordnet" {
		cfg.Lexicon.Path = def.Lexicon.Path
	}
	if cfg.Segmenter.Type == "" {
		cfg.Segmenter.Type = def.Segmenter.Type
	}
	if cfg.Tagger.Type == "" {
		cfg.Tagger.Type = def.Tagger.Type
	}
	if cfg.Substituter.MaxReplacements <= 0 {
		cfg.Substituter.MaxReplacements = def.Substituter.MaxReplacements
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv(EnvWordNetDir); v != "" {
		cfg.Lexicon.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}
