package segmenter

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// PunktSegmenter splits English text with the pre-trained Punkt model.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewPunktSegmenter() (*PunktSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english punkt data: %w", err)
	}
	return &PunktSegmenter{tokenizer: tokenizer}, nil
}

func (s *PunktSegmenter) Split(text string) ([]string, error) {
	raw := s.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		if trimmed := strings.TrimSpace(sent.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}
