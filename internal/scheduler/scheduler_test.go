package scheduler_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/history"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/question"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/scheduler"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/testutil"
)

func TestSelect(t *testing.T) {
	now := 1700000000.0
	tests := []struct {
		name      string
		questions []question.Question
		records   []history.Record
		wantID    string
	}{
		{
			name: "first unseen question wins on a fresh bank",
			questions: []question.Question{
				{ID: "q1", Type: "hear_pick"},
				{ID: "q2", Type: "hear_pick"},
				{ID: "q3", Type: "hear_pick"},
			},
			wantID: "q1",
		},
		{
			name: "tricky unseen question outranks plain unseen",
			questions: []question.Question{
				{ID: "q1", Type: "hear_pick"},
				{ID: "q2", Type: "hear_pick", Tags: []string{"tricky"}},
			},
			wantID: "q2",
		},
		{
			name: "unseen question outranks recently seen ones",
			questions: []question.Question{
				{ID: "q1", Type: "hear_pick"},
				{ID: "q2", Type: "hear_pick"},
			},
			records: []history.Record{
				{QuestionID: "q1", Attempts: 1, Correct: false, Timestamp: now - 3600},
			},
			wantID: "q2",
		},
		{
			name: "missed question outranks aced question once both decayed",
			questions: []question.Question{
				{ID: "q1", Type: "hear_pick"},
				{ID: "q2", Type: "hear_pick"},
			},
			records: []history.Record{
				{QuestionID: "q1", Attempts: 1, Correct: true, Timestamp: now - 48*3600},
				{QuestionID: "q2", Attempts: 1, Correct: false, Timestamp: now - 48*3600},
			},
			wantID: "q2",
		},
		{
			name: "exact ties resolve to bank order",
			questions: []question.Question{
				{ID: "q3", Type: "hear_pick"},
				{ID: "q1", Type: "hear_pick"},
				{ID: "q2", Type: "hear_pick"},
			},
			records: []history.Record{
				{QuestionID: "q3", Attempts: 1, Correct: true, Timestamp: now - 3600},
			},
			wantID: "q1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scheduler.Select(tt.questions, tt.records, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSelect_EmptyBank(t *testing.T) {
	_, err := scheduler.Select(nil, nil, 1700000000.0)
	assert.ErrorIs(t, err, scheduler.ErrEmptyBank)
}

func TestSelect_IsDeterministic(t *testing.T) {
	questions := []question.Question{
		{ID: "q1", Type: "hear_pick"},
		{ID: "q2", Type: "hear_pick", Tags: []string{"tricky"}},
		{ID: "q3", Type: "match_pairs"},
	}
	now := 1700000000.0

	first, err := scheduler.Select(questions, nil, now)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := scheduler.Select(questions, nil, now)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
	}
}

func TestSchedulerNext(t *testing.T) {
	tmpDir := t.TempDir()
	bankPath := filepath.Join(tmpDir, "question_bank.jsonl")
	testutil.WriteLines(t, bankPath,
		testutil.BankLine("q1", "hear_pick"),
		testutil.BankLine("q2", "hear_pick", "tricky"),
	)

	sched := scheduler.New(
		question.NewStore(bankPath),
		history.NewStore(filepath.Join(tmpDir, "progress.jsonl")),
	).WithClock(func() time.Time { return time.Unix(1700000000, 0) })

	got, err := sched.Next()
	require.NoError(t, err)
	assert.Equal(t, "q2", got.ID)
}

func TestSchedulerNext_MissingBank(t *testing.T) {
	tmpDir := t.TempDir()
	sched := scheduler.New(
		question.NewStore(filepath.Join(tmpDir, "question_bank.jsonl")),
		history.NewStore(filepath.Join(tmpDir, "progress.jsonl")),
	)

	_, err := sched.Next()
	assert.ErrorIs(t, err, question.ErrBankNotFound)
}

func TestSchedulerRecordOutcome(t *testing.T) {
	tmpDir := t.TempDir()
	historyPath := filepath.Join(tmpDir, "progress.jsonl")
	historyStore := history.NewStore(historyPath)
	sched := scheduler.New(question.NewStore(filepath.Join(tmpDir, "question_bank.jsonl")), historyStore).
		WithClock(func() time.Time { return time.Unix(1700000123, 500000000) })

	require.NoError(t, sched.RecordOutcome("q1", 2, 6.5, false))

	records, err := historyStore.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "q1", records[0].QuestionID)
	assert.Equal(t, 2, records[0].Attempts)
	assert.Equal(t, 6.5, records[0].Seconds)
	assert.False(t, records[0].Correct)
	assert.InDelta(t, 1700000123.5, records[0].Timestamp, 1e-6)
}

func TestSchedulerRecordOutcome_RejectsInvalidInput(t *testing.T) {
	tmpDir := t.TempDir()
	sched := scheduler.New(
		question.NewStore(filepath.Join(tmpDir, "question_bank.jsonl")),
		history.NewStore(filepath.Join(tmpDir, "progress.jsonl")),
	)

	assert.Error(t, sched.RecordOutcome("", 1, 0, true))
	assert.Error(t, sched.RecordOutcome("q1", 0, 0, true))
	assert.Error(t, sched.RecordOutcome("q1", 1, -0.5, true))

	// Nothing was written for the rejected calls.
	records, err := history.NewStore(filepath.Join(tmpDir, "progress.jsonl")).Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSchedulerRoundTrip_AnsweredQuestionRotatesOut(t *testing.T) {
	tmpDir := t.TempDir()
	bankPath := filepath.Join(tmpDir, "question_bank.jsonl")
	testutil.WriteLines(t, bankPath,
		testutil.BankLine("q1", "hear_pick"),
		testutil.BankLine("q2", "hear_pick"),
	)

	clock := time.Unix(1700000000, 0)
	sched := scheduler.New(
		question.NewStore(bankPath),
		history.NewStore(filepath.Join(tmpDir, "progress.jsonl")),
	).WithClock(func() time.Time { return clock })

	first, err := sched.Next()
	require.NoError(t, err)
	assert.Equal(t, "q1", first.ID)

	require.NoError(t, sched.RecordOutcome(first.ID, 1, 2.0, true))

	second, err := sched.Next()
	require.NoError(t, err)
	assert.Equal(t, "q2", second.ID)
}
