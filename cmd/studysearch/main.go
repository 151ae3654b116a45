// Package main is the entry point for the studysearch CLI.
//
// studysearch serves a natural-language search API over a microbiome study
// registry: free-text questions are translated into constrained SQL filters
// by a chat model, with a deterministic keyword fallback, and executed
// against the registry database. The serve subcommand runs the HTTP API;
// the search subcommand runs a single query from the terminal.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the studysearch CLI.
var rootCmd = &cobra.Command{
	Use:   "studysearch",
	Short: "Natural-language search over a microbiome study registry",
	Long: `studysearch answers free-text questions about a study registry. A chat
model translates each question into a constrained, parameterized SQL filter;
when the model is unavailable or replies with something unusable, a
deterministic keyword fallback takes over. Filters are validated against a
column allow-list and executed with bound parameters only.

Configuration is read from the environment: POSTGRES_* for the registry
database, LLM_* for the chat model endpoint, HTTP_ADDRESS and
METRICS_ADDRESS for the servers.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
