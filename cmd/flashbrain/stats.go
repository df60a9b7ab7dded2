package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/history"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var asYAML bool
	command := &cobra.Command{
		Use:   "stats",
		Short: "Summarize accuracy and recency from the progress log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			records, err := history.NewStore(cfg.History.File).Load()
			if err != nil {
				return err
			}
			report := statistics.Summarize(records)

			out := cmd.OutOrStdout()
			if asYAML {
				contents, err := yaml.Marshal(report)
				if err != nil {
					return fmt.Errorf("yaml.Marshal > %w", err)
				}
				fmt.Fprint(out, string(contents))
				return nil
			}

			bold := color.New(color.Bold)
			_, _ = bold.Fprintf(out, "Questions seen: %d, presentations: %d, accuracy: %.0f%%\n",
				report.QuestionsSeen, report.TotalPresentations, report.OverallAccuracy*100)
			for _, q := range report.Questions {
				fmt.Fprintf(out, "  %-30s seen %2d  attempts %2d  wrong %2d  %.1fs avg  last %s\n",
					q.QuestionID, q.Presentations, q.TotalAttempts, q.Incorrect, q.MeanSeconds, q.LastSeen)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&asYAML, "yaml", false, "print the report as YAML")
	return command
}
