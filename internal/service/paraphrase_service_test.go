package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paraphrase/internal/concept"
	"paraphrase/internal/domain"
	"paraphrase/internal/lexicon/lexicontest"
	"paraphrase/internal/segmenter"
	"paraphrase/internal/substitute"
	"paraphrase/internal/wsd"
)

type fixedTagger map[string]string

func (f fixedTagger) Tag(sentence string) ([]domain.Token, error) {
	var out []domain.Token
	for _, w := range strings.FieldsFunc(sentence, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.'
	}) {
		tag, ok := f[strings.ToLower(w)]
		if !ok {
			tag = "DT"
		}
		pos := domain.None
		switch tag[0] {
		case 'N':
			pos = domain.Noun
		case 'V':
			pos = domain.Verb
		}
		out = append(out, domain.Token{Text: w, Tag: tag, POS: pos})
	}
	return out, nil
}

type failingSegmenter struct{}

func (failingSegmenter) Split(string) ([]string, error) { return nil, errors.New("bad input") }

type failingTagger struct{}

func (failingTagger) Tag(string) ([]domain.Token, error) { return nil, errors.New("no model") }

type firstChooser struct{}

func (firstChooser) Choose(int) int { return 0 }

var tags = fixedTagger{
	"eagles": "NNS", "trout": "NN", "rabbits": "NNS", "rivers": "NNS",
	"mountains": "NNS", "saw": "VBD",
}

func newService(t *testing.T, seg domain.Segmenter, tg domain.Tagger, showSenses bool) *ParaphraseServiceImpl {
	t.Helper()
	log, _ := test.NewNullLogger()
	lex := lexicontest.New()
	sub := substitute.New(tg, wsd.NewLesk(lex, false), firstChooser{}, 3, log)
	return NewParaphraseService(seg, tg, concept.NewAggregator(lex, true, log), sub, showSenses, log)
}

func TestProcessKeepsSentenceOrder(t *testing.T) {
	svc := newService(t, segmenter.NewRegexSegmenter(), tags, false)

	reports, err := svc.Process("We saw eagles, trout, rabbits and mountains. We saw rivers.")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "We saw eagles, trout, rabbits and mountains.", reports[0].Original)
	require.NotNil(t, reports[0].Concept)
	assert.Equal(t, "animal", reports[0].Concept.Label())
	assert.Nil(t, reports[0].Senses)

	assert.Equal(t, "We saw rivers.", reports[1].Original)
	assert.Equal(t, "We saw watercourse.", reports[1].Replaced)
	for _, r := range reports {
		assert.LessOrEqual(t, len(r.Replacements), 3)
		for _, rep := range r.Replacements {
			assert.Contains(t, r.Replaced, rep.Synonym)
		}
	}
}

func TestProcessWithSenses(t *testing.T) {
	svc := newService(t, segmenter.NewRegexSegmenter(), tags, true)

	reports, err := svc.Process("We saw eagles.")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.NotEmpty(t, reports[0].Senses)
	assert.Equal(t, "eagles", reports[0].Senses[0].Word)
	assert.Equal(t, "n-eagle", reports[0].Senses[0].Synset.ID)
}

func TestProcessUnknownWords(t *testing.T) {
	svc := newService(t, segmenter.NewRegexSegmenter(), tags, false)

	reports, err := svc.Process("Xyzzy plugh.")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Nil(t, reports[0].Concept)
	assert.Equal(t, "Xyzzy plugh.", reports[0].Replaced)
	assert.Empty(t, reports[0].Replacements)
}

func TestProcessErrors(t *testing.T) {
	svc := newService(t, failingSegmenter{}, tags, false)
	_, err := svc.Process("anything")
	assert.EqualError(t, err, "split sentences: bad input")

	svc = newService(t, segmenter.NewRegexSegmenter(), failingTagger{}, false)
	_, err = svc.Process("One sentence.")
	assert.EqualError(t, err, `tag "One sentence.": no model`)
}

func TestProcessEmptyText(t *testing.T) {
	svc := newService(t, segmenter.NewRegexSegmenter(), tags, false)

	reports, err := svc.Process("   ")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestProcessFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("We saw eagles."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("We saw rivers."), 0o644))

	svc := newService(t, segmenter.NewRegexSegmenter(), tags, false)

	reports, err := svc.ProcessFiles([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "We saw eagles.", reports[0].Original)
	assert.Equal(t, "We saw rivers.", reports[1].Original)

	_, err = svc.ProcessFiles([]string{filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), nil, 0o644))
	_, err = svc.ProcessFiles([]string{filepath.Join(dir, "empty.txt")})
	assert.ErrorContains(t, err, "no text found")
}

func TestProcessFilesBadPattern(t *testing.T) {
	svc := newService(t, segmenter.NewRegexSegmenter(), tags, false)

	_, err := svc.ProcessFiles([]string{filepath.Join(t.TempDir(), "[")})
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}
