package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Execute a saved search and print the results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := lensClient.ExecuteSearch(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("executing search: %w", err)
		}

		if jsonOutput {
			printJSON(results)
		} else {
			printResultsTable(results)
		}
		return nil
	},
}
