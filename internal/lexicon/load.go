package lexicon

import "fmt"

// Load reads the ontology of the given kind ("wordnet" or "oewn") from path.
func Load(kind, path string) (*Lexicon, error) {
	switch kind {
	case "wordnet", "":
		return LoadWordNet(path)
	case "oewn":
		return LoadOEWN(path)
	default:
		return nil, fmt.Errorf("unknown lexicon type: %s", kind)
	}
}
