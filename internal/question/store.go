package question

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/jsonl"
)

// ErrBankNotFound is returned by Store.Load when the question bank file
// does not exist. The bank is a prerequisite build artifact, so this is
// fatal and actionable, unlike a missing progress log.
var ErrBankNotFound = errors.New("question bank not found")

// Store reads a line-delimited question bank from an explicit path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns every question in file order. File order matters: the
// scheduler breaks score ties in favor of the earliest-loaded question.
// Duplicate ids are not rejected; each line is its own candidate.
func (s *Store) Load() ([]Question, error) {
	questions, err := jsonl.Read[Question](s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s: run `flashbrain bank generate` first", ErrBankNotFound, s.path)
		}
		return nil, err
	}
	return questions, nil
}
