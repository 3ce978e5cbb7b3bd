package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrhoades1/job-application-system/internal/detection"
	"github.com/jrhoades1/job-application-system/internal/extraction"
	"github.com/jrhoades1/job-application-system/internal/inventory"
	"github.com/jrhoades1/job-application-system/internal/observability"
	"github.com/jrhoades1/job-application-system/internal/schemas"
	"github.com/jrhoades1/job-application-system/internal/scoring"
	"github.com/jrhoades1/job-application-system/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one job posting against the achievements inventory",
	Long:  "Extract requirements from a job posting, score each against the achievements inventory, and emit a scored lead record.",
	RunE:  runScore,
}

var (
	scoreJobFile          string
	scoreAchievementsFile string
	scoreFlatFile         string
	scoreCompany          string
	scoreRole             string
	scoreOutFile          string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job posting text file (required)")
	scoreCmd.Flags().StringVarP(&scoreAchievementsFile, "achievements", "a", "", "Path to achievements markdown file")
	scoreCmd.Flags().StringVar(&scoreFlatFile, "achievements-json", "", "Path to flattened achievements JSON file")
	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "Company name for the lead record")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "Role title for the lead record")
	scoreCmd.Flags().StringVarP(&scoreOutFile, "out", "o", "", "Output file (default stdout)")

	scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	achievements, err := loadAchievements(cfg.Achievements)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(scoreJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}
	description := string(text)

	requirements := extraction.ExtractRequirements(description)

	// Hard requirements and preferred qualifications are both scored. When
	// extraction found neither, requirement-like plain lines from the
	// normalized text are scored instead.
	allReqs := append([]string{}, requirements.HardRequirements...)
	allReqs = append(allReqs, requirements.Preferred...)
	if len(allReqs) == 0 {
		allReqs = extraction.FallbackRequirements(extraction.StripApplicationForm(description))
		log.Debug("no extracted requirements, scoring fallback lines",
			zap.Int("fallback_lines", len(allReqs)),
		)
	}

	matches := scoring.ScoreRequirements(allReqs, achievements)
	overall := scoring.CalculateOverallScore(matches)

	employment := detection.DetectEmploymentType(description)
	location := detection.DetectLocationMatch(description, cfg.UserPreferences)

	log.Info("scored posting",
		zap.String("company", scoreCompany),
		zap.String("overall", string(overall.Overall)),
		zap.Float64("match_percentage", overall.MatchPercentage),
		zap.Int("gaps", overall.GapCount),
		zap.String("employment_type", string(employment)),
		zap.String("remote_status", string(location.RemoteStatus)),
	)

	if verbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtractedRequirements(requirements)
		printer.PrintScoreReport(overall, matches)
	}

	lead := &types.ScoredLead{
		Company: scoreCompany,
		Role:    scoreRole,
		ScoreResult: &types.ScoreSummary{
			Overall:         overall.Overall,
			MatchPercentage: overall.MatchPercentage,
			StrongCount:     overall.StrongCount,
			PartialCount:    overall.PartialCount,
			GapCount:        overall.GapCount,
		},
		Matches:        matches,
		EmploymentType: employment,
		LocationInfo:   &location,
		RedFlags:       requirements.RedFlags,
	}
	return writeJSON(scoreOutFile, lead)
}

// loadAchievements resolves the achievements inventory from the CLI flags
// or the config file. Both input shapes are accepted: structured markdown
// or the flattened category-to-items JSON mapping.
func loadAchievements(configuredPath string) (types.AchievementSource, error) {
	if scoreAchievementsFile != "" && scoreFlatFile != "" {
		return nil, fmt.Errorf("--achievements and --achievements-json are mutually exclusive; provide only one")
	}

	if scoreFlatFile != "" {
		data, err := os.ReadFile(scoreFlatFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read achievements JSON: %w", err)
		}
		if err := schemas.ValidateFlatAchievements(data); err != nil {
			return nil, fmt.Errorf("invalid achievements JSON: %w", err)
		}
		var flat types.FlatAchievements
		if err := json.Unmarshal(data, &flat); err != nil {
			return nil, fmt.Errorf("failed to parse achievements JSON: %w", err)
		}
		return flat, nil
	}

	path := scoreAchievementsFile
	if path == "" {
		path = configuredPath
	}
	if path == "" {
		return nil, fmt.Errorf("no achievements inventory: provide --achievements, --achievements-json, or an achievements path in the config")
	}
	return inventory.LoadFile(path)
}
