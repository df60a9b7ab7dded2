package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecordCommand() *cobra.Command {
	var (
		attempts int
		seconds  float64
		correct  bool
	)
	command := &cobra.Command{
		Use:   "record <question-id>",
		Short: "Append one attempt outcome to the progress log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if err := newScheduler(cfg).RecordOutcome(args[0], attempts, seconds, correct); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded outcome for %s\n", args[0])
			return nil
		},
	}
	command.Flags().IntVar(&attempts, "attempts", 1, "tries taken to answer correctly")
	command.Flags().Float64Var(&seconds, "seconds", 0, "elapsed response time in seconds")
	command.Flags().BoolVar(&correct, "correct", false, "whether the answer was correct")
	return command
}
