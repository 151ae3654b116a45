package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ezredbiom/studysearch/internal/llm"
	"github.com/ezredbiom/studysearch/internal/logger"
	"github.com/ezredbiom/studysearch/internal/postgres"
	"github.com/ezredbiom/studysearch/internal/search"
	"github.com/ezredbiom/studysearch/internal/studies"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run one natural-language query against the registry",
	Long: `Search translates a free-text question into a SQL filter, executes it
against the registry database, and prints the matching studies as JSON on
stdout. The model path and the keyword fallback behave exactly as they do
behind the serve API.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		return runSearch(strings.Join(args, " "), timeout)
	},
}

func runSearch(query string, timeout time.Duration) error {
	log := logger.NewLoggerClient(logger.NewConfig())
	defer func() { _ = log.Zap.Sync() }()

	pg, err := postgres.NewPostgres(postgres.NewConfig(), log)
	if err != nil {
		return fmt.Errorf("connecting to registry database: %w", err)
	}
	defer func() { _ = pg.GracefulShutdown() }()

	client, err := llm.NewClient(llm.NewConfig())
	if err != nil {
		return fmt.Errorf("building model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	svc := search.NewService(search.NewSynthesizer(client), studies.NewStore(pg), log, nil)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := svc.Search(ctx, query)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func init() {
	searchCmd.Flags().Duration("timeout", 60*time.Second, "overall deadline for the query")

	rootCmd.AddCommand(searchCmd)
}
