package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Select the most urgent question and print its payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			next, err := newScheduler(cfg).Next()
			if err != nil {
				return err
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, next.Payload, "", "  "); err != nil {
				return fmt.Errorf("json.Indent > %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return nil
		},
	}
}
