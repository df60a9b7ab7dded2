// Package question loads the static question bank. Questions are
// immutable for the lifetime of a scheduler invocation; only id, type,
// and tags are first-class fields, everything else rides along in the
// payload and is echoed back to the caller verbatim.
package question

import (
	"encoding/json"
	"errors"
)

// TagTricky marks questions built from known confusion-prone syllable
// sets. The scheduler gives them a small fixed score boost.
const TagTricky = "tricky"

type Question struct {
	ID   string
	Type string
	Tags []string

	// Payload is the complete original JSON line, unknown fields included.
	Payload json.RawMessage
}

// UnmarshalJSON extracts the first-class fields and keeps the raw line
// as the payload. Records without an id or type are rejected.
func (q *Question) UnmarshalJSON(data []byte) error {
	var fields struct {
		ID   string   `json:"id"`
		Type string   `json:"type"`
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields.ID == "" {
		return errors.New(`missing required field "id"`)
	}
	if fields.Type == "" {
		return errors.New(`missing required field "type"`)
	}

	q.ID = fields.ID
	q.Type = fields.Type
	q.Tags = fields.Tags
	q.Payload = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the original payload back out unchanged.
func (q Question) MarshalJSON() ([]byte, error) {
	if q.Payload != nil {
		return q.Payload, nil
	}
	return json.Marshal(struct {
		ID   string   `json:"id"`
		Type string   `json:"type"`
		Tags []string `json:"tags,omitempty"`
	}{ID: q.ID, Type: q.Type, Tags: q.Tags})
}

func (q Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
