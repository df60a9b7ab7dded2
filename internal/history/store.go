package history

import (
	"errors"
	"io/fs"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/jsonl"
)

// Store reads and appends the progress log at an explicit path. The
// log is the only mutable resource in the system and is append-only:
// Append never truncates or rewrites existing content.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns every record in file order. A missing log is not an
// error: a fresh learner simply has no history yet. Malformed lines
// abort the load; silently dropping records would lose the signal that
// a learner has seen a card.
func (s *Store) Load() ([]Record, error) {
	records, err := jsonl.Read[Record](s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}

// Append durably writes one record under an exclusive advisory lock.
func (s *Store) Append(record Record) error {
	return jsonl.Append(s.path, record)
}
