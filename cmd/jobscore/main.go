// Package main provides the jobscore CLI, the pipeline step that scores and
// ranks sourced job postings against a candidate's achievements inventory.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobscore",
	Short: "Score and rank job postings against an achievements inventory",
	Long:  "jobscore parses job-posting text into structured requirements, scores them against recorded achievements, and ranks scored leads into a review queue.",
}

var (
	configPath string
	jsonLogs   bool
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to pipeline config JSON")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed reports")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
