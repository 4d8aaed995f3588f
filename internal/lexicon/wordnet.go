package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fluhus/gostuff/nlp/wordnet"

	"paraphrase/internal/domain"
)

var posRank = map[string]int{"n": 0, "v": 1, "a": 2, "s": 3, "r": 4}

// LoadWordNet parses a WordNet 3.x dict directory. Senses are ranked by the
// tagged frequencies of the index files and irregular forms come from the
// exception lists.
func LoadWordNet(dir string) (*Lexicon, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	wn, err := wordnet.Parse(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrNoData, dir, err)
	}
	synsets := convertWordNet(wn)
	if len(synsets) == 0 {
		return nil, fmt.Errorf("%w: no synsets in %s", ErrNoData, dir)
	}
	return New(synsets, WithSenseOrder(wn.LemmaRanked), WithExceptions(wn.Exception)), nil
}

func convertWordNet(wn *wordnet.WordNet) []domain.Synset {
	out := make([]domain.Synset, 0, len(wn.Synset))
	for id, ss := range wn.Synset {
		s := domain.Synset{
			ID:     id,
			POS:    ss.Pos,
			Lemmas: make([]string, 0, len(ss.Word)),
		}
		for _, w := range ss.Word {
			s.Lemmas = append(s.Lemmas, cleanLemma(w))
		}
		var instances []string
		for _, p := range ss.Pointer {
			if _, ok := wn.Synset[p.Synset]; !ok {
				continue
			}
			switch p.Symbol {
			case wordnet.Hypernym:
				s.Hypernyms = append(s.Hypernyms, p.Synset)
			case wordnet.InstanceHypernym:
				instances = append(instances, p.Synset)
			}
		}
		s.Hypernyms = append(s.Hypernyms, instances...)
		s.Definition, s.Examples = splitGloss(ss.Gloss)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].POS != out[j].POS {
			return posRank[out[i].POS] < posRank[out[j].POS]
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// cleanLemma drops adjective position markers such as "(a)" or "(p)".
func cleanLemma(w string) string {
	if i := strings.IndexByte(w, '('); i > 0 && strings.HasSuffix(w, ")") {
		return w[:i]
	}
	return w
}

// splitGloss separates a WordNet gloss into its definition and quoted examples.
func splitGloss(gloss string) (string, []string) {
	parts := strings.Split(gloss, ";")
	var def []string
	var examples []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, `"`) {
			examples = append(examples, strings.Trim(p, `"`))
			continue
		}
		def = append(def, p)
	}
	return strings.Join(def, "; "), examples
}
