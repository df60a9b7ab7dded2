package question_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/jsonl"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/question"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/testutil"
)

func TestStoreLoad(t *testing.T) {
	tests := []struct {
		name            string
		lines           []string
		wantIDs         []string
		wantFormatError bool
		wantLine        int
	}{
		{
			name: "file order is preserved",
			lines: []string{
				testutil.BankLine("q3", "hear_pick"),
				testutil.BankLine("q1", "hear_pick"),
				testutil.BankLine("q2", "match_pairs"),
			},
			wantIDs: []string{"q3", "q1", "q2"},
		},
		{
			name: "duplicate ids are separate candidates",
			lines: []string{
				testutil.BankLine("q1", "hear_pick"),
				testutil.BankLine("q1", "hear_pick"),
			},
			wantIDs: []string{"q1", "q1"},
		},
		{
			name: "missing id aborts the load",
			lines: []string{
				testutil.BankLine("q1", "hear_pick"),
				`{"type":"hear_pick"}`,
			},
			wantFormatError: true,
			wantLine:        2,
		},
		{
			name: "missing type aborts the load",
			lines: []string{
				`{"id":"q1"}`,
			},
			wantFormatError: true,
			wantLine:        1,
		},
		{
			name: "invalid json aborts the load",
			lines: []string{
				testutil.BankLine("q1", "hear_pick"),
				"{broken",
			},
			wantFormatError: true,
			wantLine:        2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "question_bank.jsonl")
			testutil.WriteLines(t, path, tt.lines...)

			questions, err := question.NewStore(path).Load()

			if tt.wantFormatError {
				var formatErr *jsonl.FormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, path, formatErr.Path)
				assert.Equal(t, tt.wantLine, formatErr.Line)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(questions))
			for _, q := range questions {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStoreLoad_MissingBankIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "question_bank.jsonl")

	_, err := question.NewStore(path).Load()

	require.ErrorIs(t, err, question.ErrBankNotFound)
	// The diagnostic must name the offending file and the fix.
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "bank generate")
}

func TestStoreLoad_PayloadPreservesUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "question_bank.jsonl")
	line := `{"id":"hear_ma_1","type":"hear_pick","tags":["important"],"audio":"tone_perfect/ma1_FV1_MP3.mp3","answer":{"syllable":"ma","tone":"1"}}`
	testutil.WriteLines(t, path, line)

	questions, err := question.NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "hear_ma_1", q.ID)
	assert.Equal(t, "hear_pick", q.Type)
	assert.Equal(t, []string{"important"}, q.Tags)
	assert.JSONEq(t, line, string(q.Payload))
}

func TestQuestionHasTag(t *testing.T) {
	q := question.Question{Tags: []string{"important", "tricky"}}

	assert.True(t, q.HasTag(question.TagTricky))
	assert.False(t, question.Question{}.HasTag(question.TagTricky))
}
