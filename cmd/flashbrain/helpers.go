package main

import (
	"fmt"
	"os"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/config"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/history"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/question"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/scheduler"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newScheduler(cfg *config.Config) *scheduler.Scheduler {
	return scheduler.New(
		question.NewStore(cfg.Bank.File),
		history.NewStore(cfg.History.File),
	)
}

func writeFile(path string, contents []byte) error {
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
