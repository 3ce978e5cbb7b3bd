package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrhoades1/job-application-system/internal/observability"
	"github.com/jrhoades1/job-application-system/internal/ranking"
	"github.com/jrhoades1/job-application-system/internal/schemas"
	"github.com/jrhoades1/job-application-system/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a batch of scored leads into a review queue",
	Long:  "Apply auto-skip rules to a batch of scored leads, rank the remainder, and write the review queue as JSON plus a markdown summary.",
	RunE:  runRank,
}

var (
	rankLeadsFile string
	rankOutDir    string
)

func init() {
	rankCmd.Flags().StringVarP(&rankLeadsFile, "leads", "l", "", "Path to scored leads JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutDir, "out", "o", "", "Output directory for review queue files (default stdout, JSON only)")

	rankCmd.MarkFlagRequired("leads")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(rankLeadsFile)
	if err != nil {
		return fmt.Errorf("failed to read leads file: %w", err)
	}
	if err := schemas.ValidateScoredLeads(data); err != nil {
		return fmt.Errorf("invalid leads file: %w", err)
	}

	var leads []*types.ScoredLead
	if err := json.Unmarshal(data, &leads); err != nil {
		return fmt.Errorf("failed to parse leads file: %w", err)
	}

	kept, skipped := ranking.PartitionLeads(leads, cfg.AutoSkipRules)
	ranked := ranking.RankLeads(kept)
	queue := ranking.BuildReviewQueue(ranked, skipped)

	log.Info("ranked leads",
		zap.String("batch_id", queue.BatchID),
		zap.Int("ranked", len(ranked)),
		zap.Int("auto_skipped", len(skipped)),
	)

	if rankOutDir == "" {
		return writeJSON("", queue)
	}

	if err := os.MkdirAll(rankOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeJSON(filepath.Join(rankOutDir, "review_queue.json"), queue); err != nil {
		return err
	}

	mdPath := filepath.Join(rankOutDir, "review_queue.md")
	mdFile, err := os.Create(mdPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", mdPath, err)
	}
	defer func() { _ = mdFile.Close() }()

	if err := observability.WriteReviewQueueMarkdown(mdFile, queue); err != nil {
		return fmt.Errorf("failed to write review queue markdown: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Review queue written to %s\n", rankOutDir)
	return nil
}
