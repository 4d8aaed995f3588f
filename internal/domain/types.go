package domain

import "strings"

// POS is a coarse part of speech.
type POS int

const (
	None POS = iota
	Noun
	Verb
	Adjective
	Adverb
)

func (p POS) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "none"
	}
}

// Code returns the ontology letter for p ("n", "v", "a", "r"), or "" for None.
func (p POS) Code() string {
	switch p {
	case Noun:
		return "n"
	case Verb:
		return "v"
	case Adjective:
		return "a"
	case Adverb:
		return "r"
	default:
		return ""
	}
}

// Token is a word of a sentence with its tags.
type Token struct {
	Text string
	Tag  string // Penn Treebank tag
	POS  POS
}

// Synset is one sense in the ontology.
type Synset struct {
	ID         string
	Name       string // e.g. river.n.01
	POS        string // n, v, a, s or r
	Lemmas     []string
	Hypernyms  []string // IDs of hypernyms followed by instance hypernyms
	Definition string
	Examples   []string
}

// Label returns the synset name without its part-of-speech and sense suffixes.
func (s *Synset) Label() string {
	name := s.Name
	if name == "" && len(s.Lemmas) > 0 {
		name = s.Lemmas[0]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// Replacement records one substitution made in a sentence.
type Replacement struct {
	Word    string
	Synonym string
}

// WordSense pairs a word with the sense chosen for it.
type WordSense struct {
	Word   string
	Synset *Synset
}

// Report is the outcome of processing one sentence.
type Report struct {
	Original     string
	Replaced     string
	Concept      *Synset
	Replacements []Replacement
	Senses       []WordSense
}
