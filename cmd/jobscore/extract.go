package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrhoades1/job-application-system/internal/extraction"
	"github.com/jrhoades1/job-application-system/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured requirements from a job posting",
	Long:  "Extract hard requirements, preferred qualifications, responsibilities, keywords, and red flags from job-posting text.",
	RunE:  runExtract,
}

var (
	extractJobFile string
	extractOutFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractJobFile, "job", "j", "", "Path to job posting text file (required)")
	extractCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "Output file (default stdout)")

	extractCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	text, err := os.ReadFile(extractJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	requirements := extraction.ExtractRequirements(string(text))
	log.Debug("extracted requirements",
		zap.Int("hard_requirements", len(requirements.HardRequirements)),
		zap.Int("preferred", len(requirements.Preferred)),
		zap.Int("responsibilities", len(requirements.Responsibilities)),
		zap.Int("keywords", len(requirements.Keywords)),
		zap.Int("red_flags", len(requirements.RedFlags)),
	)

	if verbose {
		observability.NewPrinter(os.Stderr).PrintExtractedRequirements(requirements)
	}

	return writeJSON(extractOutFile, requirements)
}
