// Package tagger tokenizes sentences and assigns parts of speech.
package tagger

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"paraphrase/internal/domain"
)

// ProseTagger uses prose's Treebank tokenizer and averaged perceptron tagger.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger { return &ProseTagger{} }

// Tag tokenizes sentence and tags each token with a Penn Treebank tag and
// its coarse part of speech.
func (t *ProseTagger) Tag(sentence string) ([]domain.Token, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tag sentence: %w", err)
	}
	toks := doc.Tokens()
	out := make([]domain.Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, domain.Token{Text: tok.Text, Tag: tok.Tag, POS: Coarse(tok.Tag)})
	}
	return out, nil
}

// Coarse maps a Penn Treebank tag to a coarse part of speech.
func Coarse(tag string) domain.POS {
	switch {
	case strings.HasPrefix(tag, "J"):
		return domain.Adjective
	case strings.HasPrefix(tag, "V"):
		return domain.Verb
	case strings.HasPrefix(tag, "N"):
		return domain.Noun
	case strings.HasPrefix(tag, "R"):
		return domain.Adverb
	default:
		return domain.None
	}
}

// New returns the tagger named by kind. Only "prose" is available.
func New(kind string) (domain.Tagger, error) {
	switch kind {
	case "prose", "":
		return NewProseTagger(), nil
	default:
		return nil, fmt.Errorf("unknown tagger: %s", kind)
	}
}
