package lexicon

import (
	"strings"

	"github.com/gertd/go-pluralize"
	"github.com/kljensen/snowball"

	"paraphrase/internal/domain"
)

type detachment struct {
	suffix  string
	replace string
}

// WordNet's detachment rules, tried in order.
var detachments = map[domain.POS][]detachment{
	domain.Noun: {
		{"s", ""}, {"ses", "s"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	domain.Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	domain.Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// Lemmatizer reduces inflected words to base forms known to the lexicon.
type Lemmatizer struct {
	known      func(form string, pos domain.POS) bool
	exceptions map[domain.POS]map[string][]string
	plural     *pluralize.Client
}

// NewLemmatizer creates a lemmatizer accepting only forms for which known
// reports true. exceptions maps irregular forms to their bases per part of
// speech and may be nil.
func NewLemmatizer(known func(form string, pos domain.POS) bool, exceptions map[domain.POS]map[string][]string) *Lemmatizer {
	return &Lemmatizer{known: known, exceptions: exceptions, plural: pluralize.NewClient()}
}

// BaseForms returns the known base forms of word for pos: the word itself,
// then its listed irregular bases if it has any, otherwise detachment
// results, then the singular (nouns only), then the stem.
func (m *Lemmatizer) BaseForms(word string, pos domain.POS) []string {
	if word == "" {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	add := func(form string) {
		if form == "" {
			return
		}
		if _, ok := seen[form]; ok {
			return
		}
		seen[form] = struct{}{}
		if m.known(form, pos) {
			out = append(out, form)
		}
	}

	add(word)
	if bases, ok := m.exceptions[pos][word]; ok {
		for _, b := range bases {
			add(b)
		}
		return out
	}
	for _, d := range detachments[pos] {
		if strings.HasSuffix(word, d.suffix) && len(word) > len(d.suffix) {
			add(strings.TrimSuffix(word, d.suffix) + d.replace)
		}
	}
	if pos == domain.Noun && m.plural.IsPlural(word) {
		add(m.plural.Singular(word))
	}
	if len(out) == 0 && !strings.Contains(word, "_") {
		if stem, err := snowball.Stem(word, "english", false); err == nil {
			add(stem)
		}
	}
	return out
}
