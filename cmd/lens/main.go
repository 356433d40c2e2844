package main

import (
	"fmt"
	"os"

	"github.com/harborview/lens/internal/client"
	"github.com/harborview/lens/internal/ui"
	"github.com/spf13/cobra"
)

var (
	httpURL    string
	authToken  string
	actingUser string
	jsonOutput bool

	lensClient client.LensClient
)

func defaultHTTPURL(file *fileConfig) string {
	if s := os.Getenv("LENS_HTTP_URL"); s != "" {
		return s
	}
	if file.Server != "" {
		return file.Server
	}
	return "http://localhost:8080"
}

func defaultToken(file *fileConfig) string {
	if s := os.Getenv("LENS_TOKEN"); s != "" {
		return s
	}
	return file.Token
}

func defaultUser(file *fileConfig) string {
	if s := os.Getenv("LENS_USER"); s != "" {
		return s
	}
	return file.User
}

var rootCmd = &cobra.Command{
	Use:   "lens <command>",
	Short: "CLI client for the lens saved-search service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		lensClient = client.NewHTTPClient(httpURL, authToken, actingUser)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if lensClient != nil {
			lensClient.Close()
		}
	},
}

func init() {
	file := loadFileConfig()

	rootCmd.PersistentFlags().StringVar(&httpURL, "http-url", defaultHTTPURL(file), "HTTP server URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", defaultToken(file), "bearer token for the lens API")
	rootCmd.PersistentFlags().StringVar(&actingUser, "user", defaultUser(file), "acting principal id")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
