// Package segmenter splits passages into sentences.
package segmenter

import (
	"fmt"

	"paraphrase/internal/domain"
)

// New returns the segmenter named by kind: "punkt" (default) or "regex".
func New(kind string) (domain.Segmenter, error) {
	switch kind {
	case "punkt", "":
		return NewPunktSegmenter()
	case "regex":
		return NewRegexSegmenter(), nil
	default:
		return nil, fmt.Errorf("unknown segmenter: %s", kind)
	}
}
