package segmenter

import (
	"regexp"
	"strings"
)

// RegexSegmenter splits text on terminal punctuation. It needs no model data
// and serves as a fallback when Punkt cannot be loaded.
type RegexSegmenter struct {
	splitter *regexp.Regexp
}

func NewRegexSegmenter() *RegexSegmenter {
	return &RegexSegmenter{
		splitter: regexp.MustCompile(`(?m)[^.!?]+[.!?]+`),
	}
}

func (s *RegexSegmenter) Split(text string) ([]string, error) {
	locs := s.splitter.FindAllStringIndex(text, -1)
	var sentences []string
	end := 0
	for _, loc := range locs {
		if sent := strings.TrimSpace(text[loc[0]:loc[1]]); sent != "" {
			sentences = append(sentences, sent)
		}
		end = loc[1]
	}
	// Trailing text without terminal punctuation
	if rest := strings.TrimSpace(text[end:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences, nil
}
