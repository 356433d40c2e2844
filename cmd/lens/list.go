package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved searches visible to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := lensClient.ListSavedSearches(context.Background())
		if err != nil {
			return fmt.Errorf("listing saved searches: %w", err)
		}

		if jsonOutput {
			printJSON(resp.Searches)
		} else {
			printSearchListTable(resp.Searches, resp.Total)
		}
		return nil
	},
}
