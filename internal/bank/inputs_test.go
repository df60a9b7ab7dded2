package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/jsonl"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/question"
)

func TestLoadCommonSyllables(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
	}{
		{
			name:     "comma separated",
			contents: "ma, shi, de",
			want:     []string{"ma", "shi", "de"},
		},
		{
			name:     "newlines and tabs",
			contents: "ma\nshi\tde\n",
			want:     []string{"ma", "shi", "de"},
		},
		{
			name:     "deduplicated in file order and lowercased",
			contents: "Ma, shi, ma, SHI, de",
			want:     []string{"ma", "shi", "de"},
		},
		{
			name:     "empty file",
			contents: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mostCommonSyllables.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0644))

			got, err := LoadCommonSyllables(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCommonSyllables_MissingFile(t *testing.T) {
	_, err := LoadCommonSyllables(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadTrickySets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trickySyllables.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"set": ["zhu", "chu", "shu"], "score": 0.8},
  {"set": ["an", "ang"]}
]`), 0644))

	sets, err := LoadTrickySets(path)
	require.NoError(t, err)

	require.Len(t, sets, 2)
	assert.Equal(t, []string{"zhu", "chu", "shu"}, sets[0].Set)
	require.NotNil(t, sets[0].Score)
	assert.Equal(t, 0.8, *sets[0].Score)
	assert.Equal(t, []string{"an", "ang"}, sets[1].Set)
	assert.Nil(t, sets[1].Score)
}

func TestLoadTrickySets_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trickySyllables.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0644))

	_, err := LoadTrickySets(path)
	assert.Error(t, err)
}

func TestBanksWrite(t *testing.T) {
	tmpDir := t.TempDir()
	qbankDir := filepath.Join(tmpDir, "Qbank")
	combinedPath := filepath.Join(tmpDir, "question_bank.jsonl")

	index := fixtureIndex([]string{"ma", "zhu", "chu"}, "FV1", "MV1")
	generator := newTestGenerator(index)
	banks := Banks{
		HearPick:           generator.HearPick([]string{"ma"}),
		MatchPairs:         generator.MatchPairs([]TrickySet{{Set: []string{"zhu", "chu"}}}),
		ToneDiscrimination: generator.ToneDiscrimination([]string{"ma"}),
	}

	require.NoError(t, banks.Write(qbankDir, combinedPath))

	for _, name := range []string{"type1.json", "type2.json", "type3.json"} {
		_, err := os.Stat(filepath.Join(qbankDir, name))
		assert.NoError(t, err, name)
	}

	// The combined bank is readable by the scheduler's question store
	// and carries the generated ids, types, and tags.
	questions, err := question.NewStore(combinedPath).Load()
	require.NoError(t, err)
	assert.Len(t, questions, len(banks.HearPick)+len(banks.MatchPairs)+len(banks.ToneDiscrimination))

	byID := make(map[string]question.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	assert.Equal(t, TypeHearPick, byID["hear_ma_1"].Type)
	assert.True(t, byID["hear_ma_1"].HasTag("important"))
	assert.True(t, byID["match_0"].HasTag(question.TagTricky))
	assert.Equal(t, TypeToneDiscrimination, byID["tone_ma"].Type)

	// Per-type files round-trip through the jsonl reader too.
	hearPick, err := jsonl.Read[HearPickQuestion](filepath.Join(qbankDir, "type1.json"))
	require.NoError(t, err)
	assert.Equal(t, banks.HearPick, hearPick)
}
