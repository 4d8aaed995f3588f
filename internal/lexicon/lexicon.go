// Package lexicon holds the in-memory lexical ontology: senses indexed by
// lemma, hypernym paths and depths. It is built once and read-only afterwards.
package lexicon

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"paraphrase/internal/domain"
)

// ErrNoData is returned by the loaders when the ontology files are unavailable.
var ErrNoData = errors.New("lexicon data unavailable")

// posOrder is the order in which parts of speech are searched.
var posOrder = []domain.POS{domain.Noun, domain.Verb, domain.Adjective, domain.Adverb}

// Lexicon implements domain.Ontology over a fixed set of synsets.
type Lexicon struct {
	synsets    map[string]*domain.Synset
	index      map[string][]*domain.Synset
	depth      map[string]int
	lemmatizer *Lemmatizer
}

// Option configures a Lexicon built by New.
type Option func(*options)

type options struct {
	senseOrder map[string][]string
	exceptions map[string][]string
}

// WithSenseOrder ranks the senses of each lemma. Keys are "pos.lemma" and
// values are synset IDs, most frequent first. Senses missing from the ranking
// follow the ranked ones in slice order.
func WithSenseOrder(order map[string][]string) Option {
	return func(o *options) { o.senseOrder = order }
}

// WithExceptions adds irregular inflections, keyed "pos.word" with values
// "pos.base" (for example "v.went" -> ["v.go"]).
func WithExceptions(exceptions map[string][]string) Option {
	return func(o *options) { o.exceptions = exceptions }
}

// New indexes synsets. Unless WithSenseOrder ranks them, the slice order is
// the sense order of every lemma. Synsets without a Name get one of the form
// lemma.pos.NN.
func New(synsets []domain.Synset, opts ...Option) *Lexicon {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	l := &Lexicon{
		synsets: make(map[string]*domain.Synset, len(synsets)),
		index:   make(map[string][]*domain.Synset),
		depth:   make(map[string]int, len(synsets)),
	}
	for i := range synsets {
		s := &synsets[i]
		if _, dup := l.synsets[s.ID]; dup {
			continue
		}
		l.synsets[s.ID] = s
		for _, lemma := range s.Lemmas {
			key := normalize(lemma)
			l.index[key] = append(l.index[key], s)
		}
	}
	if o.senseOrder != nil {
		l.rankSenses(o.senseOrder)
	}
	for _, s := range l.synsets {
		if s.Name == "" {
			s.Name = l.senseName(s)
		}
	}
	for id := range l.synsets {
		l.computeDepth(id, map[string]bool{})
	}
	l.lemmatizer = NewLemmatizer(l.hasLemma, exceptionsByPOS(o.exceptions))
	return l
}

// rankSenses reorders each lemma's senses by the given ranking.
func (l *Lexicon) rankSenses(order map[string][]string) {
	for lemma, senses := range l.index {
		rank := func(s *domain.Synset) int {
			for i, id := range order[rankPOS(s.POS)+"."+lemma] {
				if id == s.ID {
					return i
				}
			}
			return math.MaxInt
		}
		sort.SliceStable(senses, func(i, j int) bool {
			return rank(senses[i]) < rank(senses[j])
		})
	}
}

// rankPOS folds satellites into adjectives, as the index files do.
func rankPOS(code string) string {
	if code == "s" {
		return "a"
	}
	return code
}

func exceptionsByPOS(exceptions map[string][]string) map[domain.POS]map[string][]string {
	out := make(map[domain.POS]map[string][]string)
	for key, forms := range exceptions {
		pos, word, ok := splitPOSKey(key)
		if !ok {
			continue
		}
		var bases []string
		for _, f := range forms {
			if _, base, ok := splitPOSKey(f); ok {
				bases = append(bases, base)
			}
		}
		if out[pos] == nil {
			out[pos] = make(map[string][]string)
		}
		out[pos][normalize(word)] = bases
	}
	return out
}

// splitPOSKey splits "v.went" into Verb and "went".
func splitPOSKey(key string) (domain.POS, string, bool) {
	code, word, ok := strings.Cut(key, ".")
	if !ok || word == "" {
		return domain.None, "", false
	}
	for _, pos := range posOrder {
		if pos.Code() == rankPOS(code) {
			return pos, word, true
		}
	}
	return domain.None, "", false
}

// Len returns the number of synsets.
func (l *Lexicon) Len() int { return len(l.synsets) }

// Synset returns the synset with the given ID, or nil.
func (l *Lexicon) Synset(id string) *domain.Synset { return l.synsets[id] }

// Synsets returns every sense of word across all parts of speech.
func (l *Lexicon) Synsets(word string) []*domain.Synset {
	var out []*domain.Synset
	for _, pos := range posOrder {
		out = append(out, l.SynsetsPOS(word, pos)...)
	}
	return out
}

// SynsetsPOS returns the senses of word with the given part of speech,
// resolving inflected forms to their base forms first.
func (l *Lexicon) SynsetsPOS(word string, pos domain.POS) []*domain.Synset {
	code := pos.Code()
	if code == "" {
		return nil
	}
	var out []*domain.Synset
	seen := make(map[string]struct{})
	for _, form := range l.lemmatizer.BaseForms(normalize(word), pos) {
		for _, s := range l.index[form] {
			if !matchesPOS(s.POS, code) {
				continue
			}
			if _, ok := seen[s.ID]; ok {
				continue
			}
			seen[s.ID] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// Lemmas returns the distinct lemmas of every sense of word.
func (l *Lexicon) Lemmas(word string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, s := range l.Synsets(word) {
		for _, lemma := range s.Lemmas {
			if _, ok := seen[lemma]; ok {
				continue
			}
			seen[lemma] = struct{}{}
			out = append(out, lemma)
		}
	}
	return out
}

// HypernymPaths returns every path from a root to s, s included.
// Path 0 always follows the first hypernym.
func (l *Lexicon) HypernymPaths(s *domain.Synset) [][]*domain.Synset {
	return l.paths(s, map[string]bool{})
}

func (l *Lexicon) paths(s *domain.Synset, onPath map[string]bool) [][]*domain.Synset {
	onPath[s.ID] = true
	defer delete(onPath, s.ID)

	var out [][]*domain.Synset
	for _, id := range s.Hypernyms {
		h, ok := l.synsets[id]
		if !ok || onPath[id] {
			continue
		}
		for _, p := range l.paths(h, onPath) {
			path := make([]*domain.Synset, len(p), len(p)+1)
			copy(path, p)
			out = append(out, append(path, s))
		}
	}
	if len(out) == 0 {
		return [][]*domain.Synset{{s}}
	}
	return out
}

// MinDepth returns the length of the shortest hypernym path from a root to s.
func (l *Lexicon) MinDepth(s *domain.Synset) int {
	if d, ok := l.depth[s.ID]; ok {
		return d
	}
	return 0
}

func (l *Lexicon) computeDepth(id string, visiting map[string]bool) int {
	if d, ok := l.depth[id]; ok {
		return d
	}
	visiting[id] = true
	defer delete(visiting, id)

	best := -1
	for _, h := range l.synsets[id].Hypernyms {
		if _, ok := l.synsets[h]; !ok || visiting[h] {
			continue
		}
		if d := l.computeDepth(h, visiting) + 1; best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		best = 0
	}
	l.depth[id] = best
	return best
}

func (l *Lexicon) hasLemma(form string, pos domain.POS) bool {
	code := pos.Code()
	for _, s := range l.index[form] {
		if matchesPOS(s.POS, code) {
			return true
		}
	}
	return false
}

// senseName numbers s among the same-POS senses of its first lemma.
func (l *Lexicon) senseName(s *domain.Synset) string {
	if len(s.Lemmas) == 0 {
		return s.ID
	}
	lemma := strings.ToLower(s.Lemmas[0])
	n := 1
	for _, other := range l.index[normalize(lemma)] {
		if other == s {
			break
		}
		if other.POS == s.POS {
			n++
		}
	}
	return fmt.Sprintf("%s.%s.%02d", lemma, s.POS, n)
}

func matchesPOS(synsetPOS, code string) bool {
	if synsetPOS == code {
		return true
	}
	return code == "a" && synsetPOS == "s"
}

func normalize(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}
