// Package report renders paraphrase reports for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"paraphrase/internal/domain"
)

// Write prints each report as an Original/Replaced pair, followed by the
// shared concept when one was found and, if showSenses is set, the sense
// chosen for each recognized word.
func Write(w io.Writer, reports []domain.Report, showSenses bool) error {
	for _, r := range reports {
		if err := writeOne(w, r, showSenses); err != nil {
			return err
		}
	}
	return nil
}

func writeOne(w io.Writer, r domain.Report, showSenses bool) error {
	if _, err := fmt.Fprintf(w, "Original Sentence: %s\nReplaced Sentence: %s\n", r.Original, r.Replaced); err != nil {
		return err
	}
	if r.Concept != nil {
		if _, err := fmt.Fprintf(w, "The lowest top synset: %s\n", r.Concept.Label()); err != nil {
			return err
		}
	}
	if !showSenses {
		return nil
	}
	for _, s := range r.Senses {
		if _, err := fmt.Fprintf(w, "Sense: %s -> %s: %s\n", s.Word, s.Synset.Name, s.Synset.Definition); err != nil {
			return err
		}
	}
	return nil
}

// WriteSynonyms prints word followed by every lemma of its senses, with
// underscores shown as spaces.
func WriteSynonyms(w io.Writer, word string, lemmas []string) error {
	if len(lemmas) == 0 {
		_, err := fmt.Fprintf(w, "%s: no senses found\n", word)
		return err
	}
	shown := make([]string, len(lemmas))
	for i, l := range lemmas {
		shown[i] = strings.ReplaceAll(l, "_", " ")
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", word, strings.Join(shown, ", "))
	return err
}
