package domain

// Segmenter splits a passage into sentences.
type Segmenter interface {
	Split(text string) ([]string, error)
}

// Tagger tokenizes a sentence and tags every token with its part of speech.
type Tagger interface {
	Tag(sentence string) ([]Token, error)
}

// Ontology is the read-only lexical database shared by all components.
type Ontology interface {
	Synsets(word string) []*Synset
	SynsetsPOS(word string, pos POS) []*Synset
	HypernymPaths(s *Synset) [][]*Synset
	MinDepth(s *Synset) int
}

// Disambiguator picks the sense of word intended in sentence.
// It returns nil when no sense of the given part of speech exists.
type Disambiguator interface {
	Disambiguate(sentence, word string, pos POS) *Synset
}

// ConceptFinder locates the concept shared by the words of a sentence.
type ConceptFinder interface {
	LowestCommonHypernym(words []string) *Synset
	PrimarySenses(words []string) []WordSense
}

// Paraphraser swaps words of an already tagged sentence for synonyms.
type Paraphraser interface {
	ReplaceTokens(sentence string, tokens []Token) (string, []Replacement)
}

// ParaphraseService defines the operations exposed by the application core.
type ParaphraseService interface {
	Process(text string) ([]Report, error)
}
