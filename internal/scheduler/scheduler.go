// Package scheduler selects the next flashcard question by scoring the
// whole candidate set against the attempt history. It is a single
// deterministic priority function evaluated on every call, not a
// per-card interval state machine.
package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/history"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/question"
)

// ErrEmptyBank is returned when there are zero candidate questions.
var ErrEmptyBank = errors.New("question bank is empty")

// Select returns the highest-scoring question, evaluated at a single
// instant so all comparisons are consistent. Ties go to the question
// that appears first in bank order; the strictly-greater comparison
// below is what makes that guarantee hold.
func Select(questions []question.Question, records []history.Record, now float64) (question.Question, error) {
	if len(questions) == 0 {
		return question.Question{}, ErrEmptyBank
	}

	best := questions[0]
	bestScore := Score(best, records, now)
	for _, q := range questions[1:] {
		if score := Score(q, records, now); score > bestScore {
			best = q
			bestScore = score
		}
	}
	return best, nil
}

// Scheduler orchestrates the two stores. Construct one per invocation;
// it holds no state beyond the store locations and a clock.
type Scheduler struct {
	questions *question.Store
	history   *history.Store
	now       func() time.Time
}

func New(questions *question.Store, historyStore *history.Store) *Scheduler {
	return &Scheduler{
		questions: questions,
		history:   historyStore,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Tests use this to pin "now".
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// Next loads both stores and returns the top-ranked question.
func (s *Scheduler) Next() (question.Question, error) {
	questions, err := s.questions.Load()
	if err != nil {
		return question.Question{}, fmt.Errorf("questions.Load() > %w", err)
	}
	records, err := s.history.Load()
	if err != nil {
		return question.Question{}, fmt.Errorf("history.Load() > %w", err)
	}

	now := float64(s.now().UnixNano()) / float64(time.Second)
	return Select(questions, records, now)
}

// RecordOutcome appends one attempt outcome stamped with the current
// time. The question id is not checked against the bank: orphan records
// for removed questions are tolerated and simply never matched again.
func (s *Scheduler) RecordOutcome(questionID string, attempts int, seconds float64, correct bool) error {
	if questionID == "" {
		return errors.New("question id must not be empty")
	}
	if attempts < 1 {
		return fmt.Errorf("attempts must be >= 1, got %d", attempts)
	}
	if seconds < 0 {
		return fmt.Errorf("seconds must be >= 0, got %g", seconds)
	}

	record := history.Record{
		QuestionID: questionID,
		Attempts:   attempts,
		Seconds:    seconds,
		Correct:    correct,
		Timestamp:  float64(s.now().UnixNano()) / float64(time.Second),
	}
	if err := s.history.Append(record); err != nil {
		return fmt.Errorf("history.Append() > %w", err)
	}
	return nil
}
