// Package substitute rewrites sentences by swapping words for same-sense
// synonyms.
package substitute

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"paraphrase/internal/domain"
)

// DefaultMaxReplacements caps substitutions per sentence. A smaller cap may
// be configured, never a larger one.
const DefaultMaxReplacements = 3

// Substituter replaces up to max words of a sentence with synonyms of the
// sense chosen for them in context.
type Substituter struct {
	tagger  domain.Tagger
	wsd     domain.Disambiguator
	chooser Chooser
	max     int
	log     logrus.FieldLogger
}

func New(tagger domain.Tagger, wsd domain.Disambiguator, chooser Chooser, maxReplacements int, log logrus.FieldLogger) *Substituter {
	if maxReplacements <= 0 || maxReplacements > DefaultMaxReplacements {
		maxReplacements = DefaultMaxReplacements
	}
	return &Substituter{tagger: tagger, wsd: wsd, chooser: chooser, max: maxReplacements, log: log}
}

// Replace tags sentence and substitutes synonyms into it.
func (s *Substituter) Replace(sentence string) (string, []domain.Replacement, error) {
	tokens, err := s.tagger.Tag(sentence)
	if err != nil {
		return sentence, nil, fmt.Errorf("replace: %w", err)
	}
	replaced, reps := s.ReplaceTokens(sentence, tokens)
	return replaced, reps, nil
}

// ReplaceTokens substitutes synonyms for the tagged tokens of sentence, in
// order, until the cap is reached. A word is replaced at most once; the
// synonym is never the word itself nor anything already in the sentence.
func (s *Substituter) ReplaceTokens(sentence string, tokens []domain.Token) (string, []domain.Replacement) {
	replaced := sentence
	lowerSentence := strings.ToLower(sentence)
	used := make(map[string]struct{})
	var reps []domain.Replacement

	for _, tok := range tokens {
		if len(reps) >= s.max {
			break
		}
		lowerWord := strings.ToLower(tok.Text)
		if _, ok := used[lowerWord]; ok {
			continue
		}
		if tok.POS == domain.None {
			continue
		}
		sense := s.wsd.Disambiguate(sentence, tok.Text, tok.POS)
		if sense == nil {
			continue
		}
		candidates := synonyms(sense, lowerWord, lowerSentence)
		if len(candidates) == 0 {
			s.log.WithField("word", tok.Text).Debug("no synonym candidates")
			continue
		}
		synonym := strings.ReplaceAll(candidates[s.chooser.Choose(len(candidates))], "_", " ")

		next, ok := replaceFirstWord(replaced, tok.Text, synonym)
		if !ok {
			continue
		}
		replaced = next
		used[lowerWord] = struct{}{}
		reps = append(reps, domain.Replacement{Word: tok.Text, Synonym: synonym})
		s.log.WithFields(logrus.Fields{"word": tok.Text, "synonym": synonym, "sense": sense.Name}).Debug("replaced")
	}
	return replaced, reps
}

// synonyms returns the lemmas of sense other than word that do not already
// occur in the sentence.
func synonyms(sense *domain.Synset, lowerWord, lowerSentence string) []string {
	var out []string
	for _, lemma := range sense.Lemmas {
		l := strings.ToLower(lemma)
		spaced := strings.ReplaceAll(l, "_", " ")
		if l == lowerWord || spaced == lowerWord {
			continue
		}
		if strings.Contains(lowerSentence, l) || strings.Contains(lowerSentence, spaced) {
			continue
		}
		out = append(out, lemma)
	}
	return out
}

// replaceFirstWord replaces the first whole-word, case-sensitive occurrence
// of word in text. Word boundaries follow Unicode letters, digits and '_'.
func replaceFirstWord(text, word, replacement string) (string, bool) {
	if word == "" {
		return text, false
	}
	for from := 0; from <= len(text)-len(word); {
		i := strings.Index(text[from:], word)
		if i < 0 {
			break
		}
		start, end := from+i, from+i+len(word)
		if atWordBoundary(text, start) && atWordBoundary(text, end) {
			return text[:start] + replacement + text[end:], true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return text, false
}

// atWordBoundary reports whether exactly one side of position i is a word
// character.
func atWordBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}
