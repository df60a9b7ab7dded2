// Package history maintains the append-only progress log. Each record
// captures one completed attempt; records are never mutated or deleted,
// and "last seen" for a question is derived by scanning timestamps.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Record is one attempt outcome. Timestamp is seconds since the Unix
// epoch, kept as a float to round-trip the log format unchanged.
type Record struct {
	QuestionID string  `json:"question_id"`
	Attempts   int     `json:"attempts"`
	Seconds    float64 `json:"seconds"`
	Correct    bool    `json:"correct"`
	Timestamp  float64 `json:"timestamp"`
}

// UnmarshalJSON applies the log's defaults: attempts 1, seconds 0,
// correct false. question_id and timestamp have no sensible default
// and are required.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields struct {
		QuestionID *string  `json:"question_id"`
		Attempts   *int     `json:"attempts"`
		Seconds    *float64 `json:"seconds"`
		Correct    *bool    `json:"correct"`
		Timestamp  *float64 `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields.QuestionID == nil || *fields.QuestionID == "" {
		return errors.New(`missing required field "question_id"`)
	}
	if fields.Timestamp == nil {
		return errors.New(`missing required field "timestamp"`)
	}

	r.QuestionID = *fields.QuestionID
	r.Attempts = 1
	if fields.Attempts != nil {
		r.Attempts = *fields.Attempts
	}
	if fields.Seconds != nil {
		r.Seconds = *fields.Seconds
	}
	if fields.Correct != nil {
		r.Correct = *fields.Correct
	}
	r.Timestamp = *fields.Timestamp

	if r.Attempts < 1 {
		return fmt.Errorf("attempts must be >= 1, got %d", r.Attempts)
	}
	if r.Seconds < 0 {
		return fmt.Errorf("seconds must be >= 0, got %g", r.Seconds)
	}
	return nil
}

// Time converts the epoch timestamp for display.
func (r Record) Time() time.Time {
	sec := int64(r.Timestamp)
	nsec := int64((r.Timestamp - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}

// LastSeen returns the matching record with the greatest timestamp, or
// false when the question has never been presented.
func LastSeen(records []Record, questionID string) (Record, bool) {
	var last Record
	found := false
	for _, r := range records {
		if r.QuestionID != questionID {
			continue
		}
		if !found || r.Timestamp > last.Timestamp {
			last = r
			found = true
		}
	}
	return last, found
}
