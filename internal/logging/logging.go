// Package logging builds the application logger from config.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"paraphrase/internal/config"
)

// New returns a logger writing to stderr.
//
// Format "json" produces JSON lines; anything else produces logrus text.
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
func New(cfg config.LogConfig) *logrus.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with a chosen writer.
func NewWithOutput(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(parseLevel(cfg.Level))
	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}

func parseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
