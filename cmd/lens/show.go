package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		saved, err := lensClient.GetSavedSearch(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("getting saved search: %w", err)
		}

		if jsonOutput {
			printJSON(saved)
		} else {
			printSearchTable(saved)
		}
		return nil
	},
}
