package toneperfect

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Meta is the per-recording metadata from the <id>_CUSTOM.xml sidecar,
// or a synthesized fallback when the sidecar is missing.
type Meta struct {
	Sound          string      `json:"sound" xml:"sound"`
	Tone           int         `json:"tone" xml:"tone"`
	Pinyin         string      `json:"pinyin,omitempty" xml:"pinyin"`
	Initial        string      `json:"initial" xml:"initial"`
	Final          string      `json:"final" xml:"final"`
	Speaker        string      `json:"speaker" xml:"speaker"`
	Identifier     string      `json:"identifier" xml:"identifier"`
	CharacterForms []string    `json:"character_forms,omitempty" xml:"character_forms"`
	Characters     []Character `json:"characters,omitempty" xml:"character"`
}

type Character struct {
	Simplified  string `json:"simplified" xml:"simplified"`
	Traditional string `json:"traditional" xml:"traditional"`
}

// pinyinInitials in longest-match-first order; digraphs before their
// single-letter prefixes.
var pinyinInitials = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "r", "z", "c", "s", "y", "w",
}

// SplitInitialFinal separates a syllable into its initial consonant
// (possibly empty) and final.
func SplitInitialFinal(syllable string) (string, string) {
	for _, initial := range pinyinInitials {
		if strings.HasPrefix(syllable, initial) {
			return initial, syllable[len(initial):]
		}
	}
	return "", syllable
}

// fallbackMeta synthesizes metadata for a recording without a CUSTOM
// sidecar. An empty initial is written as "Null" in the index.
func fallbackMeta(syllable string, tone int, speaker string) Meta {
	initial, final := SplitInitialFinal(syllable)
	if initial == "" {
		initial = "Null"
	}
	return Meta{
		Sound:      syllable,
		Tone:       tone,
		Initial:    initial,
		Final:      final,
		Speaker:    speaker,
		Identifier: fmt.Sprintf("%s%d_%s", syllable, tone, speaker),
	}
}

// readCustomXML parses <id>_CUSTOM.xml. A missing file is not an error;
// the second return value reports whether metadata was found.
func readCustomXML(path string) (Meta, bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Meta{}, false, nil
		}
		return Meta{}, false, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var meta Meta
	if err := xml.Unmarshal(contents, &meta); err != nil {
		return Meta{}, false, fmt.Errorf("xml.Unmarshal(%s) > %w", path, err)
	}
	return meta, true, nil
}
