package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/harborview/lens/internal/client"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a saved search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		visibility, _ := cmd.Flags().GetString("visibility")
		filtersArg, _ := cmd.Flags().GetString("filters")
		filtersFile, _ := cmd.Flags().GetString("filters-file")

		filters, err := readFilters(filtersArg, filtersFile)
		if err != nil {
			return err
		}

		saved, err := lensClient.CreateSavedSearch(context.Background(), &client.SaveSearchRequest{
			Name:       args[0],
			Visibility: visibility,
			Filters:    filters,
		})
		if err != nil {
			return fmt.Errorf("creating saved search: %w", err)
		}

		if jsonOutput {
			printJSON(saved)
		} else {
			printSearchTable(saved)
		}
		return nil
	},
}

// readFilters loads the filter document from --filters (inline JSON) or
// --filters-file, validating that it is well-formed JSON before sending.
func readFilters(inline, file string) (json.RawMessage, error) {
	var raw []byte
	switch {
	case inline != "":
		raw = []byte(inline)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading filters file: %w", err)
		}
		raw = data
	default:
		return nil, nil
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("filters must be valid JSON")
	}
	return json.RawMessage(raw), nil
}

func init() {
	createCmd.Flags().String("visibility", "private", "visibility (private, team, shared, public)")
	createCmd.Flags().String("filters", "", "filter document as inline JSON")
	createCmd.Flags().String("filters-file", "", "path to a filter document JSON file")
}
