package toneperfect

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	maxMissingDetails = 30
	maxUnknownDetails = 20
)

// MissingSlot records the speakers absent for one syllable/tone pair.
type MissingSlot struct {
	Syllable string   `yaml:"syllable"`
	Tone     string   `yaml:"tone"`
	Speakers []string `yaml:"speakers"`
}

// Summary is the coverage report produced after an index build.
type Summary struct {
	TotalSlots   int           `yaml:"total_slots"`
	Filled       int           `yaml:"filled"`
	Missing      int           `yaml:"missing"`
	MissingSlots []MissingSlot `yaml:"missing_slots,omitempty"`
	UnknownFiles []string      `yaml:"unknown_files,omitempty"`
}

// Summarize computes slot coverage over the index. Slots are visited in
// sorted order so the report is stable between runs.
func Summarize(index Index, unknownFiles []string) Summary {
	summary := Summary{
		TotalSlots:   len(index) * len(Tones) * len(Speakers),
		UnknownFiles: unknownFiles,
	}

	syllables := make([]string, 0, len(index))
	for syllable := range index {
		syllables = append(syllables, syllable)
	}
	sort.Strings(syllables)

	for _, syllable := range syllables {
		for _, tone := range Tones {
			var missing []string
			for _, speaker := range Speakers {
				if index[syllable][tone][speaker] != nil {
					summary.Filled++
				} else {
					missing = append(missing, speaker)
				}
			}
			if len(missing) > 0 {
				summary.MissingSlots = append(summary.MissingSlots, MissingSlot{
					Syllable: syllable,
					Tone:     tone,
					Speakers: missing,
				})
			}
		}
	}
	summary.Missing = summary.TotalSlots - summary.Filled
	return summary
}

// Print writes the human-readable coverage report, truncating the
// per-slot detail the way a terminal reader wants it.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Total slots: %d, filled: %d, missing: %d\n", s.TotalSlots, s.Filled, s.Missing)
	fmt.Fprintf(w, "Syllable/tone pairs with missing recordings: %d\n", len(s.MissingSlots))
	for i, slot := range s.MissingSlots {
		if i == maxMissingDetails {
			fmt.Fprintf(w, "  ...and %d more.\n", len(s.MissingSlots)-maxMissingDetails)
			break
		}
		fmt.Fprintf(w, "  %s tone %s: missing %s\n", slot.Syllable, slot.Tone, strings.Join(slot.Speakers, ", "))
	}

	if len(s.UnknownFiles) == 0 {
		return
	}
	fmt.Fprintf(w, "\nUnrecognized or out-of-list audio files: %d\n", len(s.UnknownFiles))
	for i, name := range s.UnknownFiles {
		if i == maxUnknownDetails {
			fmt.Fprintf(w, "  ...and %d more.\n", len(s.UnknownFiles)-maxUnknownDetails)
			break
		}
		fmt.Fprintf(w, "  %s\n", name)
	}
}
