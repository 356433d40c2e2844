package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved search (creator or admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := lensClient.DeleteSavedSearch(context.Background(), args[0]); err != nil {
			return fmt.Errorf("deleting saved search: %w", err)
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}
