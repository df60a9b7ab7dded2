package toneperfect

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Audio files are named <syllable><tone>_<speaker>_MP3.mp3, e.g.
// ma1_FV1_MP3.mp3.
var audioFilenamePattern = regexp.MustCompile(`^(.+?)([1-4])_([A-Za-z]{2}\d)_MP3\.mp3$`)

// ParseAudioFilename extracts (syllable, tone, speaker) from a Tone
// Perfect audio filename.
func ParseAudioFilename(name string) (syllable, tone, speaker string, err error) {
	matches := audioFilenamePattern.FindStringSubmatch(name)
	if matches == nil {
		return "", "", "", fmt.Errorf("unrecognized audio filename: %s", name)
	}
	return matches[1], matches[2], matches[3], nil
}

// Builder scans the Tone Perfect asset directories and fills the
// syllable index. Audio and XML paths are recorded relative to Root so
// the index stays portable across checkouts.
type Builder struct {
	Root     string
	AudioDir string
	XMLDir   string
}

// Build returns the filled index plus the names of audio files that
// were unrecognized or not in the syllable inventory. Unknown files are
// reported, not fatal: a stray recording should not block the index.
func (b Builder) Build() (Index, []string, error) {
	index := NewIndex(SyllableInventory())

	entries, err := os.ReadDir(b.AudioDir)
	if err != nil {
		return nil, nil, fmt.Errorf("os.ReadDir(%s) > %w", b.AudioDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mp3") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var unknownFiles []string
	for _, name := range names {
		syllable, tone, speaker, err := ParseAudioFilename(name)
		if err != nil {
			unknownFiles = append(unknownFiles, name)
			continue
		}
		if _, ok := index[syllable]; !ok {
			unknownFiles = append(unknownFiles, name)
			continue
		}

		entry, err := b.buildEntry(name, syllable, tone, speaker)
		if err != nil {
			return nil, nil, err
		}
		index[syllable][tone][speaker] = entry
	}

	return index, unknownFiles, nil
}

func (b Builder) buildEntry(audioName, syllable, tone, speaker string) (*Entry, error) {
	identifier := fmt.Sprintf("%s%s_%s", syllable, tone, speaker)

	audioPath, err := b.relative(filepath.Join(b.AudioDir, audioName))
	if err != nil {
		return nil, err
	}

	customPath := filepath.Join(b.XMLDir, identifier+"_CUSTOM.xml")
	meta, found, err := readCustomXML(customPath)
	if err != nil {
		return nil, fmt.Errorf("readCustomXML > %w", err)
	}

	entry := &Entry{Audio: audioPath}
	if found {
		relCustom, err := b.relative(customPath)
		if err != nil {
			return nil, err
		}
		entry.CustomXML = &relCustom
		entry.Meta = meta
	} else {
		toneNumber, _ := strconv.Atoi(tone)
		entry.Meta = fallbackMeta(syllable, toneNumber, speaker)
	}

	dcPath := filepath.Join(b.XMLDir, identifier+"_DC.xml")
	if _, err := os.Stat(dcPath); err == nil {
		relDC, err := b.relative(dcPath)
		if err != nil {
			return nil, err
		}
		entry.DCXML = &relDC
	}

	return entry, nil
}

func (b Builder) relative(path string) (string, error) {
	rel, err := filepath.Rel(b.Root, path)
	if err != nil {
		return "", fmt.Errorf("filepath.Rel(%s, %s) > %w", b.Root, path, err)
	}
	return rel, nil
}
