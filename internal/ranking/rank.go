// Package ranking total-orders scored job leads for review, applies
// configured auto-skip rules, and builds the review queue batch.
package ranking

import (
	"sort"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/types"
)

// missingGapCount sorts leads without a score result after everything else
// on the gap-count tie-break.
const missingGapCount = 99

// RankLeads orders scored leads by tier (strong first), match percentage
// descending, gap count ascending, then company name, and stamps a 1-based
// rank on each record through its pointer. The sort is stable: ties beyond
// the four keys preserve input order. A new ordered slice is returned; the
// input slice is left as-is.
func RankLeads(leads []*types.ScoredLead) []*types.ScoredLead {
	ranked := make([]*types.ScoredLead, len(leads))
	copy(ranked, leads)

	sort.SliceStable(ranked, func(i, j int) bool {
		return leadLess(ranked[i], ranked[j])
	})

	for i, lead := range ranked {
		lead.Rank = i + 1
	}
	return ranked
}

func leadLess(a, b *types.ScoredLead) bool {
	aTier, aPct, aGaps := sortKey(a)
	bTier, bPct, bGaps := sortKey(b)

	if aTier != bTier {
		return aTier < bTier
	}
	if aPct != bPct {
		return aPct > bPct
	}
	if aGaps != bGaps {
		return aGaps < bGaps
	}
	return strings.ToLower(a.Company) < strings.ToLower(b.Company)
}

// sortKey extracts the comparable fields, with least-favorable defaults for
// leads that were never scored.
func sortKey(lead *types.ScoredLead) (tier int, pct float64, gaps int) {
	if lead.ScoreResult == nil {
		return types.Tier("").Order(), 0, missingGapCount
	}
	return lead.ScoreResult.Overall.Order(), lead.ScoreResult.MatchPercentage, lead.ScoreResult.GapCount
}
