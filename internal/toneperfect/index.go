// Package toneperfect builds and loads the syllable index over the
// Tone Perfect recordings: every pinyin syllable mapped to the audio
// and metadata for tones 1-4 across speakers FV1/FV2/FV3/MV1/MV2/MV3.
// Building the index is a one-shot batch job; the result is a static
// JSON artifact consumed by the question bank generator.
package toneperfect

import (
	"encoding/json"
	"fmt"
	"os"
)

var (
	// Speakers in index slot order: three female, three male voices.
	Speakers = []string{"FV1", "FV2", "FV3", "MV1", "MV2", "MV3"}
	Tones    = []string{"1", "2", "3", "4"}

	// ToneSymbols are the display glyphs for the four tone contours.
	ToneSymbols = map[string]string{"1": "-", "2": "/", "3": "v", "4": `\`}
)

// Entry describes one recording: the audio file plus its two metadata
// XML files (nil when absent) and the parsed metadata.
type Entry struct {
	Audio     string  `json:"audio"`
	CustomXML *string `json:"custom_xml"`
	DCXML     *string `json:"dc_xml"`
	Meta      Meta    `json:"meta"`
}

// Index maps syllable -> tone -> speaker -> recording. Missing slots
// are nil, so coverage gaps stay visible in the serialized artifact.
type Index map[string]map[string]map[string]*Entry

// NewIndex allocates an index with every slot present and nil.
func NewIndex(syllables []string) Index {
	index := make(Index, len(syllables))
	for _, syllable := range syllables {
		tones := make(map[string]map[string]*Entry, len(Tones))
		for _, tone := range Tones {
			speakers := make(map[string]*Entry, len(Speakers))
			for _, speaker := range Speakers {
				speakers[speaker] = nil
			}
			tones[tone] = speakers
		}
		index[syllable] = tones
	}
	return index
}

// LoadIndex reads a previously built syllables.json.
func LoadIndex(path string) (Index, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	var index Index
	if err := json.Unmarshal(contents, &index); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
	}
	return index, nil
}

// WriteIndex serializes the index as indented JSON.
func WriteIndex(path string, index Index) error {
	contents, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if err := os.WriteFile(path, append(contents, '\n'), 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
