package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paraphrase/internal/config"
	"paraphrase/internal/lexicon"
	"paraphrase/internal/lexicon/lexicontest"
)

func withFixtureLexicon(t *testing.T) {
	t.Helper()
	prev := loadLexicon
	loadLexicon = func(kind, path string) (*lexicon.Lexicon, error) { return lexicontest.New(), nil }
	t.Cleanup(func() { loadLexicon = prev })
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	t.Setenv(config.EnvWordNetDir, "")
	t.Setenv(config.EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunText(t *testing.T) {
	withFixtureLexicon(t)
	cfg := writeConfig(t, "segmenter:\n  type: regex\nlog:\n  level: error\n")

	out, err := execute(t, "run", "--config", cfg, "--seed", "3", "--text", "We saw eagles. We crossed rivers.")
	require.NoError(t, err)
	assert.Contains(t, out, "Original Sentence: We saw eagles.\n")
	assert.Contains(t, out, "Original Sentence: We crossed rivers.\n")
	assert.Equal(t, 2, strings.Count(out, "Replaced Sentence: "))
	assert.NotContains(t, out, "Sense: ")
}

func TestRunSamplePassageWithSenses(t *testing.T) {
	withFixtureLexicon(t)
	cfg := writeConfig(t, "segmenter:\n  type: regex\nlog:\n  level: error\n")

	out, err := execute(t, "run", "--config", cfg, "--seed", "1", "--senses")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Original Sentence: "))
	assert.Contains(t, out, "Original Sentence: During our expedition, we encountered diverse animals such as eagles, trout, and rabbits.")
	assert.Contains(t, out, "Sense: eagles -> eagle.n.01: ")
}

func TestRunFiles(t *testing.T) {
	withFixtureLexicon(t)
	cfg := writeConfig(t, "segmenter:\n  type: regex\nlog:\n  level: error\n")
	input := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("Xyzzy plugh."), 0o644))

	out, err := execute(t, "run", "--config", cfg, input)
	require.NoError(t, err)
	assert.Equal(t, "Original Sentence: Xyzzy plugh.\nReplaced Sentence: Xyzzy plugh.\n", out)
}

func TestRunLexiconUnavailable(t *testing.T) {
	cfg := writeConfig(t, fmt.Sprintf("lexicon:\n  type: wordnet\n  path: %s\n", filepath.Join(t.TempDir(), "missing")))

	_, err := execute(t, "run", "--config", cfg, "--text", "Anything.")
	assert.ErrorIs(t, err, lexicon.ErrNoData)
}

func TestRunUnknownComponent(t *testing.T) {
	withFixtureLexicon(t)
	cfg := writeConfig(t, "segmenter:\n  type: spacy\n")

	_, err := execute(t, "run", "--config", cfg)
	assert.ErrorIs(t, err, config.ErrUnknownType)
}

func TestSynonyms(t *testing.T) {
	withFixtureLexicon(t)
	cfg := writeConfig(t, "log:\n  level: error\n")

	out, err := execute(t, "synonyms", "--config", cfg, "eagles", "xyzzy")
	require.NoError(t, err)
	assert.Equal(t, "eagles: eagle, bird of Jove\nxyzzy: no senses found\n", out)

	_, err = execute(t, "synonyms", "--config", cfg)
	assert.Error(t, err)
}
