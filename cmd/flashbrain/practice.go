package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/cli"
)

func newPracticeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "practice",
		Short: "Interactive practice session against the question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			practiceCLI := cli.NewPracticeCLI(newScheduler(cfg))
			fmt.Println("Interactive practice session started!")
			fmt.Println("Answer each card, then grade yourself. Type 'q' to exit.")
			fmt.Println()
			return practiceCLI.Run(context.Background(), practiceCLI)
		},
	}
}
