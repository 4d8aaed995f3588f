package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"paraphrase/internal/domain"
)

// oewnSynset is one synset of an Open English WordNet {pos}.{category}.json file.
type oewnSynset struct {
	Members          []string          `json:"members"`
	PartOfSpeech     string            `json:"partOfSpeech"`
	Definition       []string          `json:"definition"`
	Example          []json.RawMessage `json:"example"`
	Hypernym         []string          `json:"hypernym"`
	InstanceHypernym []string          `json:"instance_hypernym"`
}

// LoadOEWN parses the synset files of an Open English WordNet JSON release.
func LoadOEWN(dir string) (*Lexicon, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoData, dir)
	}
	files, err := globSynsetFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("glob synset files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no synset files in %s", ErrNoData, dir)
	}

	var out []domain.Synset
	for _, path := range files {
		synsets, err := readSynsetFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		for id, ss := range synsets {
			out = append(out, convertOEWN(id, ss))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return New(out), nil
}

func convertOEWN(id string, ss oewnSynset) domain.Synset {
	s := domain.Synset{
		ID:        id,
		POS:       ss.PartOfSpeech,
		Lemmas:    ss.Members,
		Hypernyms: append(append([]string(nil), ss.Hypernym...), ss.InstanceHypernym...),
	}
	if len(ss.Definition) > 0 {
		s.Definition = ss.Definition[0]
	}
	for _, raw := range ss.Example {
		if text := exampleText(raw); text != "" {
			s.Examples = append(s.Examples, text)
		}
	}
	return s
}

// exampleText accepts both plain-string examples and {"text": ...} objects.
func exampleText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Text
	}
	return ""
}

func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

func globSynsetFiles(dir string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}
	return result, nil
}
