package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := lensClient.Health(context.Background())
		if err != nil {
			return fmt.Errorf("checking health: %w", err)
		}
		fmt.Println(status)
		return nil
	},
}
