package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paraphrase/internal/domain"
	"paraphrase/internal/lexicon"
	"paraphrase/internal/lexicon/lexicontest"
)

func ids(synsets []*domain.Synset) []string {
	out := make([]string, 0, len(synsets))
	for _, s := range synsets {
		out = append(out, s.ID)
	}
	return out
}

func TestSynsetsResolvesInflections(t *testing.T) {
	lex := lexicontest.New()

	tests := []struct {
		word string
		want []string
	}{
		{"river", []string{"n-river"}},
		{"rivers", []string{"n-river"}},
		{"Rivers", []string{"n-river"}},
		{"Banks", []string{"n-bank-land", "n-bank-money", "v-deposit"}},
		{"geese", []string{"n-goose"}},
		{"encountered", []string{"v-encounter"}},
		{"navigated", []string{"v-navigate"}},
		{"larger", []string{"a-large"}},
		{"body of water", []string{"n-water-body"}},
		{"xyzzy", []string{}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(lex.Synsets(tt.word)))
		})
	}
}

func TestSynsetsPOS(t *testing.T) {
	lex := lexicontest.New()

	assert.Equal(t, []string{"n-bank-land", "n-bank-money"}, ids(lex.SynsetsPOS("bank", domain.Noun)))
	assert.Equal(t, []string{"v-deposit"}, ids(lex.SynsetsPOS("bank", domain.Verb)))
	assert.Equal(t, []string{"a-diverse", "s-divers"}, ids(lex.SynsetsPOS("diverse", domain.Adjective)))
	assert.Empty(t, lex.SynsetsPOS("bank", domain.None))
	assert.Empty(t, lex.SynsetsPOS("bank", domain.Adverb))
}

func TestHypernymPathsAndDepth(t *testing.T) {
	lex := lexicontest.New()
	eagle := lex.Synset("n-eagle")
	require.NotNil(t, eagle)

	paths := lex.HypernymPaths(eagle)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{
		"n-entity", "n-physical", "n-object", "n-whole", "n-living",
		"n-organism", "n-animal", "n-bird", "n-eagle",
	}, ids(paths[0]))

	assert.Equal(t, 8, lex.MinDepth(eagle))
	assert.Equal(t, 0, lex.MinDepth(lex.Synset("n-entity")))
	assert.Equal(t, 1, lex.MinDepth(lex.Synset("v-navigate")))

	root := lex.Synset("v-travel")
	assert.Equal(t, [][]*domain.Synset{{root}}, lex.HypernymPaths(root))
}

func TestHypernymPathsMultipleParents(t *testing.T) {
	lex := lexicon.New([]domain.Synset{
		{ID: "root", POS: "n", Lemmas: []string{"root"}},
		{ID: "mid", POS: "n", Lemmas: []string{"mid"}, Hypernyms: []string{"root"}},
		{ID: "leaf", POS: "n", Lemmas: []string{"leaf"}, Hypernyms: []string{"mid", "root"}},
	})
	leaf := lex.Synset("leaf")

	paths := lex.HypernymPaths(leaf)
	require.Len(t, paths, 2)
	assert.Equal(t, []string{"root", "mid", "leaf"}, ids(paths[0]))
	assert.Equal(t, []string{"root", "leaf"}, ids(paths[1]))
	assert.Equal(t, 1, lex.MinDepth(leaf))
}

func TestHypernymCycleTerminates(t *testing.T) {
	lex := lexicon.New([]domain.Synset{
		{ID: "a", POS: "n", Lemmas: []string{"a"}, Hypernyms: []string{"b"}},
		{ID: "b", POS: "n", Lemmas: []string{"b"}, Hypernyms: []string{"a"}},
	})

	paths := lex.HypernymPaths(lex.Synset("a"))
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"b", "a"}, ids(paths[0]))
}

func TestSenseNames(t *testing.T) {
	lex := lexicontest.New()

	assert.Equal(t, "bank.n.01", lex.Synset("n-bank-land").Name)
	assert.Equal(t, "depository_financial_institution.n.01", lex.Synset("n-bank-money").Name)
	assert.Equal(t, "trout.n.02", lex.Synset("n-trout-food").Name)
	assert.Equal(t, "divers.s.01", lex.Synset("s-divers").Name)
	assert.Equal(t, "eagle", lex.Synset("n-eagle").Label())
}

func TestLemmas(t *testing.T) {
	lex := lexicontest.New()

	assert.Equal(t, []string{
		"bank", "depository_financial_institution", "banking_concern", "banking_company", "deposit",
	}, lex.Lemmas("bank"))
	assert.Empty(t, lex.Lemmas("xyzzy"))
}

func TestNewSkipsDuplicateIDs(t *testing.T) {
	lex := lexicon.New([]domain.Synset{
		{ID: "x", POS: "n", Lemmas: []string{"first"}},
		{ID: "x", POS: "n", Lemmas: []string{"second"}},
	})

	assert.Equal(t, 1, lex.Len())
	assert.Empty(t, lex.Synsets("second"))
}

func TestSynsetsPOSIrregularForms(t *testing.T) {
	synsets := []domain.Synset{
		{ID: "v-go", POS: "v", Lemmas: []string{"go", "travel"}},
		{ID: "v-run", POS: "v", Lemmas: []string{"run"}},
		{ID: "v-buy", POS: "v", Lemmas: []string{"buy", "purchase"}},
		{ID: "n-run", POS: "n", Lemmas: []string{"run"}},
	}
	exceptions := map[string][]string{
		"v.went":   {"v.go"},
		"v.ran":    {"v.run"},
		"v.bought": {"v.buy"},
	}

	lex := lexicon.New(synsets, lexicon.WithExceptions(exceptions))
	tests := []struct {
		word string
		want []string
	}{
		{"went", []string{"v-go"}},
		{"ran", []string{"v-run"}},
		{"Bought", []string{"v-buy"}},
		{"goes", []string{"v-go"}},
		{"runs", []string{"v-run"}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(lex.SynsetsPOS(tt.word, domain.Verb)))
		})
	}

	assert.Empty(t, lexicon.New(synsets).SynsetsPOS("went", domain.Verb))
	assert.Empty(t, lex.SynsetsPOS("went", domain.Noun))
}

func TestSenseOrderRanking(t *testing.T) {
	synsets := []domain.Synset{
		{ID: "n-money", POS: "n", Lemmas: []string{"bank"}},
		{ID: "n-ridge", POS: "n", Lemmas: []string{"bank"}},
		{ID: "n-land", POS: "n", Lemmas: []string{"bank"}},
		{ID: "s-steep", POS: "s", Lemmas: []string{"steep"}},
		{ID: "a-steep", POS: "a", Lemmas: []string{"steep"}},
	}
	order := map[string][]string{
		"n.bank":  {"n-land", "n-money"},
		"a.steep": {"s-steep"},
	}

	lex := lexicon.New(synsets, lexicon.WithSenseOrder(order))
	assert.Equal(t, []string{"n-land", "n-money", "n-ridge"}, ids(lex.SynsetsPOS("bank", domain.Noun)))
	assert.Equal(t, []string{"s-steep", "a-steep"}, ids(lex.SynsetsPOS("steep", domain.Adjective)))
	assert.Equal(t, "bank.n.01", lex.Synset("n-land").Name)
	assert.Equal(t, "bank.n.02", lex.Synset("n-money").Name)
}
