// Package wsd implements word-sense disambiguation.
package wsd

import (
	"regexp"
	"strings"

	"paraphrase/internal/domain"
)

var unicodeWordRe = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Lesk is the simplified Lesk algorithm: the sense whose gloss shares the
// most words with the context wins.
type Lesk struct {
	ontology    domain.Ontology
	useExamples bool
}

func NewLesk(ontology domain.Ontology, useExamples bool) *Lesk {
	return &Lesk{ontology: ontology, useExamples: useExamples}
}

// Disambiguate returns the sense of word with part of speech pos that best
// overlaps sentence, or nil if word has no such sense. Ties keep the
// earliest sense.
func (l *Lesk) Disambiguate(sentence, word string, pos domain.POS) *domain.Synset {
	candidates := l.ontology.SynsetsPOS(word, pos)
	if len(candidates) == 0 {
		return nil
	}
	context := toTokenSet(sentence)

	best := candidates[0]
	bestScore := -1
	for _, s := range candidates {
		score := overlap(context, l.signature(s))
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

func (l *Lesk) signature(s *domain.Synset) string {
	if !l.useExamples || len(s.Examples) == 0 {
		return s.Definition
	}
	return s.Definition + " " + strings.Join(s.Examples, " ")
}

func toTokenSet(s string) map[string]struct{} {
	tokens := unicodeWordRe.FindAllString(strings.ToLower(s), -1)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

// overlap counts the distinct words of text that also occur in context.
func overlap(context map[string]struct{}, text string) int {
	score := 0
	for t := range toTokenSet(text) {
		if _, ok := context[t]; ok {
			score++
		}
	}
	return score
}
