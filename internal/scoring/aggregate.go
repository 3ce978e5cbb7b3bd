package scoring

import (
	"math"

	"github.com/jrhoades1/job-application-system/internal/types"
)

// Tier assignment cutoffs on the weighted match fraction. Evaluated in
// order, first match wins; a high fraction with too many gaps still falls
// through to long_shot.
const (
	strongTierFraction  = 0.80
	goodTierFraction    = 0.60
	stretchTierFraction = 0.40

	goodTierMaxGaps    = 1
	stretchTierMaxGaps = 2

	partialWeight = 0.5
)

// CalculateOverallScore reduces per-requirement matches into one overall fit
// tier and a match percentage rounded to one decimal. An empty match list
// returns long_shot with zeroed counts.
func CalculateOverallScore(matches []types.RequirementMatch) types.OverallScore {
	if len(matches) == 0 {
		return types.OverallScore{Overall: types.TierLongShot}
	}

	var strong, partial, gaps int
	for _, match := range matches {
		switch match.MatchType {
		case types.MatchStrong:
			strong++
		case types.MatchPartial:
			partial++
		case types.MatchGap:
			gaps++
		}
	}

	total := len(matches)
	fraction := (float64(strong) + partialWeight*float64(partial)) / float64(total)

	var overall types.Tier
	switch {
	case fraction >= strongTierFraction && gaps == 0:
		overall = types.TierStrong
	case fraction >= goodTierFraction && gaps <= goodTierMaxGaps:
		overall = types.TierGood
	case fraction >= stretchTierFraction && gaps <= stretchTierMaxGaps:
		overall = types.TierStretch
	default:
		overall = types.TierLongShot
	}

	return types.OverallScore{
		Overall:         overall,
		MatchPercentage: math.Round(fraction*1000) / 10,
		StrongCount:     strong,
		PartialCount:    partial,
		GapCount:        gaps,
	}
}
