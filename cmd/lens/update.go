package main

import (
	"context"
	"fmt"

	"github.com/harborview/lens/internal/client"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a saved search (creator or admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		visibility, _ := cmd.Flags().GetString("visibility")
		filtersArg, _ := cmd.Flags().GetString("filters")
		filtersFile, _ := cmd.Flags().GetString("filters-file")

		filters, err := readFilters(filtersArg, filtersFile)
		if err != nil {
			return err
		}

		saved, err := lensClient.UpdateSavedSearch(context.Background(), args[0], &client.SaveSearchRequest{
			Name:       name,
			Visibility: visibility,
			Filters:    filters,
		})
		if err != nil {
			return fmt.Errorf("updating saved search: %w", err)
		}

		if jsonOutput {
			printJSON(saved)
		} else {
			printSearchTable(saved)
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().String("name", "", "new name")
	updateCmd.Flags().String("visibility", "", "new visibility (private, team, shared, public)")
	updateCmd.Flags().String("filters", "", "replacement filter document as inline JSON")
	updateCmd.Flags().String("filters-file", "", "path to a replacement filter document JSON file")
}
