// Package statistics aggregates the progress log into per-question and
// overall accuracy figures for the stats command.
package statistics

import (
	"sort"
	"time"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/history"
)

// QuestionStatistics holds aggregates for a single question id.
type QuestionStatistics struct {
	QuestionID    string  `yaml:"question_id"`
	Presentations int     `yaml:"presentations"`
	TotalAttempts int     `yaml:"total_attempts"`
	Incorrect     int     `yaml:"incorrect"`
	Accuracy      float64 `yaml:"accuracy"`
	MeanSeconds   float64 `yaml:"mean_seconds"`
	LastSeen      string  `yaml:"last_seen"`
}

// Report is the full stats output, renderable as a table or YAML.
type Report struct {
	QuestionsSeen      int                  `yaml:"questions_seen"`
	TotalPresentations int                  `yaml:"total_presentations"`
	OverallAccuracy    float64              `yaml:"overall_accuracy"`
	Questions          []QuestionStatistics `yaml:"questions"`
}

// Summarize computes a report from the raw log. Questions are ordered
// by most recent presentation so current work sits at the top.
func Summarize(records []history.Record) Report {
	type aggregate struct {
		presentations int
		attempts      int
		incorrect     int
		totalSeconds  float64
		lastSeen      float64
	}

	byQuestion := make(map[string]*aggregate)
	correctTotal := 0
	for _, r := range records {
		agg, ok := byQuestion[r.QuestionID]
		if !ok {
			agg = &aggregate{}
			byQuestion[r.QuestionID] = agg
		}
		agg.presentations++
		agg.attempts += r.Attempts
		if r.Correct {
			correctTotal++
		} else {
			agg.incorrect++
		}
		agg.totalSeconds += r.Seconds
		if r.Timestamp > agg.lastSeen {
			agg.lastSeen = r.Timestamp
		}
	}

	report := Report{
		QuestionsSeen:      len(byQuestion),
		TotalPresentations: len(records),
	}
	if len(records) > 0 {
		report.OverallAccuracy = float64(correctTotal) / float64(len(records))
	}

	for id, agg := range byQuestion {
		stats := QuestionStatistics{
			QuestionID:    id,
			Presentations: agg.presentations,
			TotalAttempts: agg.attempts,
			Incorrect:     agg.incorrect,
			Accuracy:      float64(agg.presentations-agg.incorrect) / float64(agg.presentations),
			MeanSeconds:   agg.totalSeconds / float64(agg.presentations),
			LastSeen:      epochToTime(agg.lastSeen).Format(time.RFC3339),
		}
		report.Questions = append(report.Questions, stats)
	}

	sort.Slice(report.Questions, func(i, j int) bool {
		if report.Questions[i].LastSeen != report.Questions[j].LastSeen {
			return report.Questions[i].LastSeen > report.Questions[j].LastSeen
		}
		return report.Questions[i].QuestionID < report.Questions[j].QuestionID
	})
	return report
}

func epochToTime(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}
