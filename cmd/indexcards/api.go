package main

import (
	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Indexcards server via HTTP.

These commands require a running server (indexcards serve).
Use --server to specify a custom server URL.

Examples:
  indexcards api health                  # Check server health
  indexcards api batches list            # List all batches
  indexcards api batches export <id> csv # Export a batch as CSV`,
}

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "Batch management commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:3000", "Server URL",
	)

	// Health endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ReadyEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ListFormatsEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerUIEndpoint{}).Command(getServerURL))

	// Batches as subcommand group
	for _, ep := range endpoints.BatchCommands() {
		batchesCmd.AddCommand(ep.Command(getServerURL))
	}

	apiCmd.AddCommand(batchesCmd)
	rootCmd.AddCommand(apiCmd)
}
