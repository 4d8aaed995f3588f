// Package concept finds the most specific concept shared by the words of a
// sentence.
package concept

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"github.com/sirupsen/logrus"

	"paraphrase/internal/domain"
)

// Aggregator tallies hypernyms over the candidate senses of a sentence's words.
type Aggregator struct {
	ontology      domain.Ontology
	skipStopwords bool
	log           logrus.FieldLogger
}

func NewAggregator(ontology domain.Ontology, skipStopwords bool, log logrus.FieldLogger) *Aggregator {
	return &Aggregator{ontology: ontology, skipStopwords: skipStopwords, log: log}
}

// LowestCommonHypernym returns the deepest concept found on the primary
// hypernym path of the senses of at least half of the recognized words
// (floor division). It returns nil when no word is recognized or no concept
// reaches the threshold. Among equally deep concepts the first one tallied wins.
func (a *Aggregator) LowestCommonHypernym(words []string) *domain.Synset {
	candidates := a.candidates(words)
	if len(candidates) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []*domain.Synset
	for _, senses := range candidates {
		for _, s := range senses {
			paths := a.ontology.HypernymPaths(s)
			if len(paths) == 0 {
				continue
			}
			for _, h := range paths[0] {
				if _, ok := counts[h.ID]; !ok {
					order = append(order, h)
				}
				counts[h.ID]++
			}
		}
	}

	threshold := len(candidates) / 2
	var lowest *domain.Synset
	lowestDepth := -1
	for _, h := range order {
		if counts[h.ID] < threshold {
			continue
		}
		if d := a.ontology.MinDepth(h); d > lowestDepth {
			lowest, lowestDepth = h, d
		}
	}
	if lowest != nil {
		a.log.WithFields(logrus.Fields{
			"concept": lowest.Name,
			"depth":   lowestDepth,
			"count":   counts[lowest.ID],
			"words":   len(candidates),
		}).Debug("lowest common hypernym")
	}
	return lowest
}

// PrimarySenses returns the first candidate sense of every recognized word.
func (a *Aggregator) PrimarySenses(words []string) []domain.WordSense {
	var out []domain.WordSense
	for _, w := range words {
		if !a.keep(w) {
			continue
		}
		if senses := a.ontology.Synsets(w); len(senses) > 0 {
			out = append(out, domain.WordSense{Word: w, Synset: senses[0]})
		}
	}
	return out
}

func (a *Aggregator) candidates(words []string) [][]*domain.Synset {
	var out [][]*domain.Synset
	for _, w := range words {
		if !a.keep(w) {
			continue
		}
		senses := a.ontology.Synsets(w)
		if len(senses) == 0 {
			a.log.WithField("word", w).Debug("no ontology entry")
			continue
		}
		out = append(out, senses)
	}
	return out
}

func (a *Aggregator) keep(word string) bool {
	if !a.skipStopwords {
		return true
	}
	if english.IsStopWord(strings.ToLower(word)) {
		return false
	}
	for _, r := range word {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
