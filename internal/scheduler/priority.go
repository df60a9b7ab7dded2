package scheduler

import (
	"math"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/history"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/question"
)

const (
	// unseenScore dominates the realistic seen-case range so every
	// question surfaces once before repeats compete on decay alone.
	unseenScore = 5.0
	trickyBonus = 0.25

	incorrectWeight = 1.2
	correctWeight   = 0.2

	// 4 seconds is the comfortable baseline response time; the penalty
	// saturates so one outlier-slow answer cannot dominate.
	baselineSeconds = 4.0
	maxSlowPenalty  = 1.5

	halfLifeHours = 18.0
)

// Score computes the priority of showing q next, given the full history
// and the current time in epoch seconds. Larger means more urgent. The
// function is pure: identical inputs always produce the identical score.
//
// A just-answered question scores exactly 0 (decay is 1 at the moment of
// the last attempt) and its score rises monotonically with elapsed time
// toward (1 + trickyBonus + slowPenalty) * missFactor.
func Score(q question.Question, records []history.Record, now float64) float64 {
	bonus := 0.0
	if q.HasTag(question.TagTricky) {
		bonus = trickyBonus
	}

	last, seen := history.LastSeen(records, q.ID)
	if !seen {
		return unseenScore + bonus
	}

	attempts := 0
	incorrect := 0
	for _, r := range records {
		if r.QuestionID != q.ID {
			continue
		}
		attempts += r.Attempts
		if !r.Correct {
			incorrect++
		}
	}

	missFactor := 1.0 + float64(incorrect)*incorrectWeight + math.Max(0, float64(attempts-incorrect))*correctWeight
	slowPenalty := math.Min(maxSlowPenalty, last.Seconds/baselineSeconds)

	hoursSince := (now - last.Timestamp) / 3600.0
	decay := math.Exp(hoursSince * math.Ln2 / -halfLifeHours)

	return (1 + bonus + slowPenalty) * missFactor * (1 - decay)
}
