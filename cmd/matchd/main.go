// Package main provides the entry point for the matching engine CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchd",
	Short: "Recruiting-event matching engine",
	Long:  "matchd computes roundtable session rotations for recruiting events, pairing candidates with companies by mutual rating scores, and serves the results over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
