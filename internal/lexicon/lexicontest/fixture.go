// Package lexicontest provides a small WordNet-shaped lexicon for tests.
package lexicontest

import (
	"paraphrase/internal/domain"
	"paraphrase/internal/lexicon"
)

func syn(id, pos, def string, lemmas []string, hypernyms ...string) domain.Synset {
	return domain.Synset{ID: id, POS: pos, Definition: def, Lemmas: lemmas, Hypernyms: hypernyms}
}

// Synsets returns the fixture taxonomy. Depths of the noun chain:
//
//	entity 0, physical_entity 1, object 2, whole 3, living_thing 4,
//	organism 5, animal 6, bird/fish/mammal 7, eagle/trout/rabbit 8.
func Synsets() []domain.Synset {
	return []domain.Synset{
		syn("n-entity", "n", "that which is perceived or known or inferred to have its own distinct existence", []string{"entity"}),
		syn("n-physical", "n", "an entity that has physical existence", []string{"physical_entity"}, "n-entity"),
		syn("n-abstraction", "n", "a general concept formed by extracting common features", []string{"abstraction", "abstract_entity"}, "n-entity"),
		syn("n-object", "n", "a tangible and visible entity", []string{"object", "physical_object"}, "n-physical"),
		syn("n-whole", "n", "an assemblage of parts that is regarded as a single entity", []string{"whole", "unit"}, "n-object"),
		syn("n-living", "n", "a living entity", []string{"living_thing", "animate_thing"}, "n-whole"),
		syn("n-organism", "n", "a living thing that has the ability to act or function independently", []string{"organism", "being"}, "n-living"),
		syn("n-animal", "n", "a living organism characterized by voluntary movement", []string{"animal", "animate_being", "beast", "brute", "creature", "fauna"}, "n-organism"),
		syn("n-bird", "n", "warm-blooded egg-laying vertebrates with feathers and wings", []string{"bird"}, "n-animal"),
		syn("n-fish", "n", "any of various mostly cold-blooded aquatic vertebrates", []string{"fish"}, "n-animal"),
		syn("n-mammal", "n", "any warm-blooded vertebrate having the skin covered with hair", []string{"mammal", "mammalian"}, "n-animal"),
		syn("n-eagle", "n", "any of various large keen-sighted diurnal birds of prey", []string{"eagle", "bird_of_Jove"}, "n-bird"),
		syn("n-trout", "n", "any of various game and food fishes of cool fresh waters", []string{"trout"}, "n-fish"),
		syn("n-rabbit", "n", "any of various burrowing animals with long ears and short tails", []string{"rabbit", "coney", "cony"}, "n-mammal"),
		syn("n-food", "n", "any solid substance that is used as a source of nourishment", []string{"food", "solid_food"}, "n-physical"),
		syn("n-trout-food", "n", "flesh of any of several primarily freshwater game and food fishes", []string{"trout"}, "n-food"),

		syn("n-thing", "n", "a separate and self-contained entity", []string{"thing"}, "n-physical"),
		syn("n-water-body", "n", "the part of the earth's surface covered with water", []string{"body_of_water", "water"}, "n-thing"),
		syn("n-stream", "n", "a natural body of running water flowing on or under the earth", []string{"stream", "watercourse"}, "n-water-body"),
		syn("n-river", "n", "a large natural stream of water larger than a creek", []string{"river", "watercourse"}, "n-stream"),
		syn("n-formation", "n", "the geological features of the earth", []string{"geological_formation", "formation"}, "n-object"),
		syn("n-mountain", "n", "a land mass that projects well above its surroundings", []string{"mountain", "mount"}, "n-formation"),
		syn("n-bank-land", "n", "sloping land beside a body of water", []string{"bank"}, "n-formation"),
		syn("n-institution", "n", "an organization founded for a specific purpose", []string{"institution", "establishment"}, "n-abstraction"),
		syn("n-bank-money", "n", "a financial institution that accepts deposits and channels the money into lending", []string{"depository_financial_institution", "bank", "banking_concern", "banking_company"}, "n-institution"),
		syn("n-goose", "n", "web-footed long-necked typically gregarious migratory aquatic birds", []string{"goose"}, "n-bird"),

		syn("v-travel", "v", "change location; move, travel, or proceed", []string{"travel", "go", "move", "locomote"}),
		syn("v-navigate", "v", "travel on water propelled by wind or by other means", []string{"sail", "navigate"}, "v-travel"),
		syn("v-encounter", "v", "come together", []string{"meet", "run_into", "encounter", "run_across", "come_across", "see"}),
		syn("v-use", "v", "put into service; make work or employ for a particular purpose", []string{"use", "utilize", "utilise", "apply", "employ"}),
		syn("v-deposit", "v", "put into a bank account", []string{"deposit", "bank"}),

		syn("a-diverse", "a", "many and different", []string{"diverse", "various"}),
		syn("s-divers", "s", "distinctly dissimilar or unlike", []string{"divers", "diverse"}),
		syn("a-large", "a", "above average in size or number or quantity", []string{"large", "big"}),
		syn("r-quickly", "r", "with rapid movements", []string{"quickly", "rapidly", "speedily", "chop-chop", "apace"}),
	}
}

// New returns a lexicon over Synsets.
func New() *lexicon.Lexicon {
	return lexicon.New(Synsets())
}
