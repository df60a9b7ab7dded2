package bank

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/jsonl"
)

// Banks is one full generation run.
type Banks struct {
	HearPick           []HearPickQuestion
	MatchPairs         []MatchPairsQuestion
	ToneDiscrimination []ToneDiscriminationQuestion
}

// Write emits the three per-type bank files under qbankDir and the
// combined bank the scheduler consumes at combinedPath.
func (b Banks) Write(qbankDir, combinedPath string) error {
	if err := os.MkdirAll(qbankDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", qbankDir, err)
	}

	if err := jsonl.Write(filepath.Join(qbankDir, "type1.json"), b.HearPick); err != nil {
		return fmt.Errorf("jsonl.Write(type1) > %w", err)
	}
	if err := jsonl.Write(filepath.Join(qbankDir, "type2.json"), b.MatchPairs); err != nil {
		return fmt.Errorf("jsonl.Write(type2) > %w", err)
	}
	if err := jsonl.Write(filepath.Join(qbankDir, "type3.json"), b.ToneDiscrimination); err != nil {
		return fmt.Errorf("jsonl.Write(type3) > %w", err)
	}

	combined := make([]any, 0, len(b.HearPick)+len(b.MatchPairs)+len(b.ToneDiscrimination))
	for _, q := range b.HearPick {
		combined = append(combined, q)
	}
	for _, q := range b.MatchPairs {
		combined = append(combined, q)
	}
	for _, q := range b.ToneDiscrimination {
		combined = append(combined, q)
	}
	if err := jsonl.Write(combinedPath, combined); err != nil {
		return fmt.Errorf("jsonl.Write(%s) > %w", combinedPath, err)
	}
	return nil
}
