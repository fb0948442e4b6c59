package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/o-tatsuki1029/jobtv-matching/internal/config"
	"github.com/o-tatsuki1029/jobtv-matching/internal/db"
	"github.com/o-tatsuki1029/jobtv-matching/internal/matching"
	"github.com/o-tatsuki1029/jobtv-matching/internal/observability"
	"github.com/o-tatsuki1029/jobtv-matching/internal/schemas"
	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the matching engine for an event",
	Long: `Reads the event roster and ratings, computes the full session rotation, and persists the schedule.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatchingCmd,
}

var (
	runConfigPath      string
	runEventID         string
	runSessionCount    int
	runCompanyWeight   float64
	runCandidateWeight float64
	runPinsPath        string
	runVerbose         bool
	runDatabaseURL     string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runEventID, "event", "e", "", "Event id to run matching for")
	runCommand.Flags().IntVarP(&runSessionCount, "sessions", "s", 0, "Number of rotation rounds")
	runCommand.Flags().Float64Var(&runCompanyWeight, "company-weight", 0, "Weight of the recruiter grade (0.0-1.0)")
	runCommand.Flags().Float64Var(&runCandidateWeight, "candidate-weight", 0, "Weight of the candidate stars (0.0-1.0)")
	runCommand.Flags().StringVar(&runPinsPath, "pins", "", "Path to a special-interviews JSON file")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print the computed schedule")

	// Database URL for persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runMatchingCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("event") {
		cfg.EventID = runEventID
	}
	if cmd.Flags().Changed("sessions") {
		cfg.SessionCount = runSessionCount
	}
	if cmd.Flags().Changed("company-weight") {
		cfg.CompanyWeight = runCompanyWeight
	}
	if cmd.Flags().Changed("candidate-weight") {
		cfg.CandidateWeight = runCandidateWeight
	}
	if cmd.Flags().Changed("pins") {
		cfg.PinsPath = runPinsPath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 3: Validate required values after merging
	if cfg.EventID == "" {
		return fmt.Errorf("--event is required")
	}
	if cfg.SessionCount < 1 {
		return fmt.Errorf("--sessions must be at least 1")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (--db-url or DATABASE_URL)")
	}

	pins, err := loadPins(cfg.PinsPath)
	if err != nil {
		return err
	}

	companySet := cfg.CompanyWeight != 0 || cmd.Flags().Changed("company-weight")
	candidateSet := cfg.CandidateWeight != 0 || cmd.Flags().Changed("candidate-weight")
	companyWeight, candidateWeight, err := resolveWeights(companySet, candidateSet, cfg.CompanyWeight, cfg.CandidateWeight)
	if err != nil {
		return err
	}

	req := &types.ExecuteMatchingRequest{
		EventID:         cfg.EventID,
		SessionCount:    cfg.SessionCount,
		CompanyWeight:   companyWeight,
		CandidateWeight: candidateWeight,
		Pins:            pins,
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	engine := matching.New(database)
	sessionID, err := engine.ExecuteMatching(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Matching complete. Session: %s\n", sessionID)

	if cfg.Verbose {
		results, err := engine.GetMatchingResults(ctx, sessionID)
		if err != nil {
			return err
		}
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSchedule(observability.GroupAssignments(results))
		printer.PrintResults(results)
	}
	return nil
}

// resolveWeights turns the merged flag/config weight values into request
// weights. Both sides must be given together; a half-specified pair is
// rejected here with a usable message instead of failing the sum-to-one
// check downstream. Neither given means the engine default applies.
func resolveWeights(companySet, candidateSet bool, company, candidate float64) (*float64, *float64, error) {
	switch {
	case companySet && candidateSet:
		return &company, &candidate, nil
	case companySet || candidateSet:
		return nil, nil, fmt.Errorf("--company-weight and --candidate-weight must be provided together (they must sum to 1.0)")
	default:
		return nil, nil, nil
	}
}

// loadPins reads and schema-validates a special-interviews JSON file.
// An empty path means no pins.
func loadPins(path string) ([]types.SpecialInterview, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pins file %s: %w", path, err)
	}
	if err := schemas.Validate(schemas.SpecialInterviewsSchema, data); err != nil {
		return nil, err
	}
	var pins []types.SpecialInterview
	if err := json.Unmarshal(data, &pins); err != nil {
		return nil, fmt.Errorf("failed to parse pins file %s: %w", path, err)
	}
	return pins, nil
}
