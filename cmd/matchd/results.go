package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/o-tatsuki1029/jobtv-matching/internal/db"
	"github.com/o-tatsuki1029/jobtv-matching/internal/matching"
	"github.com/o-tatsuki1029/jobtv-matching/internal/observability"
)

var resultsDatabaseURL string

var resultsCmd = &cobra.Command{
	Use:   "results <session-id>",
	Short: "Print the stored schedule for a matching session",
	Long:  `Loads a persisted matching session and prints every assignment with its freshly recomputed match score. Scores are not stored, so the output always reflects the current ratings.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&resultsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	sessionID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", args[0], err)
	}

	databaseURL := resultsDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (--db-url or DATABASE_URL)")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	results, err := matching.New(database).GetMatchingResults(ctx, sessionID)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintResults(results)
	return nil
}
