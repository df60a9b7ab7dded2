// Package bank generates the three question-bank files from the Tone
// Perfect syllable index. Generation is a one-shot batch job; the
// scheduler only ever consumes the resulting JSONL artifacts.
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// TrickySet is one group of confusable syllables from the curated
// tricky-sets file, with an optional confusability score.
type TrickySet struct {
	Set   []string `json:"set"`
	Score *float64 `json:"score"`
}

// LoadCommonSyllables reads the comma/whitespace separated list of the
// most common syllables, lowercased and deduplicated in file order.
func LoadCommonSyllables(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return splitSyllableList(string(contents)), nil
}

// LoadTrickySets reads the JSON list of confusable syllable sets.
func LoadTrickySets(path string) ([]TrickySet, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	var sets []TrickySet
	if err := json.Unmarshal(contents, &sets); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
	}
	return sets, nil
}

// LoadToneSyllables reads the list of syllables selected for tone
// discrimination questions.
func LoadToneSyllables(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return splitSyllableList(string(contents)), nil
}

func splitSyllableList(raw string) []string {
	normalized := strings.NewReplacer("\n", ",", "\t", ",", " ", ",").Replace(raw)

	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(normalized, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
