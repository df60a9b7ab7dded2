package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/bank"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/toneperfect"
)

func newBankCommand() *cobra.Command {
	bankCommand := &cobra.Command{
		Use:   "bank",
		Short: "Question bank commands",
	}

	bankCommand.AddCommand(newBankGenerateCommand())
	return bankCommand
}

func newBankGenerateCommand() *cobra.Command {
	var seed int64
	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate the question-bank files from the syllable index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			index, err := toneperfect.LoadIndex(cfg.Assets.IndexFile)
			if err != nil {
				return fmt.Errorf("toneperfect.LoadIndex > %w", err)
			}
			common, err := bank.LoadCommonSyllables(cfg.Generation.CommonSyllablesFile)
			if err != nil {
				return fmt.Errorf("bank.LoadCommonSyllables > %w", err)
			}
			trickySets, err := bank.LoadTrickySets(cfg.Generation.TrickySetsFile)
			if err != nil {
				return fmt.Errorf("bank.LoadTrickySets > %w", err)
			}
			toneSyllables, err := bank.LoadToneSyllables(cfg.Generation.ToneSyllablesFile)
			if err != nil {
				return fmt.Errorf("bank.LoadToneSyllables > %w", err)
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			generator := bank.NewGenerator(index, rand.New(rand.NewSource(seed)))
			banks := bank.Banks{
				HearPick:           generator.HearPick(common),
				MatchPairs:         generator.MatchPairs(trickySets),
				ToneDiscrimination: generator.ToneDiscrimination(toneSyllables),
			}
			if err := banks.Write(cfg.Bank.QbankDirectory, cfg.Bank.File); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type1: %d questions\n", len(banks.HearPick))
			fmt.Fprintf(out, "type2: %d questions\n", len(banks.MatchPairs))
			fmt.Fprintf(out, "type3: %d questions\n", len(banks.ToneDiscrimination))
			fmt.Fprintf(out, "Wrote files to %s and %s\n", cfg.Bank.QbankDirectory, cfg.Bank.File)
			return nil
		},
	}
	command.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible banks (0 = time-based)")
	return command
}
