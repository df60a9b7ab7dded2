package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/toneperfect"
)

func newIndexCommand() *cobra.Command {
	indexCommand := &cobra.Command{
		Use:   "index",
		Short: "Tone Perfect asset index commands",
	}

	indexCommand.AddCommand(newIndexBuildCommand())
	return indexCommand
}

func newIndexBuildCommand() *cobra.Command {
	var reportFile string
	command := &cobra.Command{
		Use:   "build",
		Short: "Build the syllable index from the Tone Perfect assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			builder := toneperfect.Builder{
				Root:     cfg.Assets.Root,
				AudioDir: cfg.AudioDir(),
				XMLDir:   cfg.XMLDir(),
			}
			index, unknownFiles, err := builder.Build()
			if err != nil {
				return fmt.Errorf("builder.Build() > %w", err)
			}
			if err := toneperfect.WriteIndex(cfg.Assets.IndexFile, index); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", cfg.Assets.IndexFile)

			summary := toneperfect.Summarize(index, unknownFiles)
			summary.Print(out)

			if reportFile != "" {
				contents, err := yaml.Marshal(summary)
				if err != nil {
					return fmt.Errorf("yaml.Marshal > %w", err)
				}
				if err := writeFile(reportFile, contents); err != nil {
					return err
				}
				fmt.Fprintf(out, "Coverage report written to %s\n", reportFile)
			}
			return nil
		},
	}
	command.Flags().StringVar(&reportFile, "report", "", "write the coverage summary to this YAML file")
	return command
}
