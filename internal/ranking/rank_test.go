package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrhoades1/job-application-system/internal/types"
)

func lead(company string, tier types.Tier, pct float64, gaps int) *types.ScoredLead {
	return &types.ScoredLead{
		Company: company,
		Role:    "Engineer",
		ScoreResult: &types.ScoreSummary{
			Overall:         tier,
			MatchPercentage: pct,
			GapCount:        gaps,
		},
	}
}

func companies(leads []*types.ScoredLead) []string {
	names := make([]string, len(leads))
	for i, l := range leads {
		names[i] = l.Company
	}
	return names
}

func TestRankLeads_TierThenPercentageThenGaps(t *testing.T) {
	leads := []*types.ScoredLead{
		lead("Acme", types.TierGood, 70, 1),
		lead("Beta", types.TierStrong, 85, 0),
		lead("Cobalt", types.TierGood, 70, 0),
		lead("Delta", types.TierLongShot, 30, 5),
		lead("Echo", types.TierStretch, 50, 2),
	}

	ranked := RankLeads(leads)

	assert.Equal(t, []string{"Beta", "Cobalt", "Acme", "Echo", "Delta"}, companies(ranked))
}

func TestRankLeads_PercentageBreaksTierTie(t *testing.T) {
	leads := []*types.ScoredLead{
		lead("Low", types.TierStrong, 82, 0),
		lead("High", types.TierStrong, 95, 0),
	}

	ranked := RankLeads(leads)

	assert.Equal(t, []string{"High", "Low"}, companies(ranked))
}

func TestRankLeads_CompanyNameBreaksFullTie(t *testing.T) {
	leads := []*types.ScoredLead{
		lead("zeta", types.TierGood, 70, 1),
		lead("Alpha", types.TierGood, 70, 1),
	}

	ranked := RankLeads(leads)

	// Company comparison is case-insensitive.
	assert.Equal(t, []string{"Alpha", "zeta"}, companies(ranked))
}

func TestRankLeads_StampsOneBasedRanks(t *testing.T) {
	leads := []*types.ScoredLead{
		lead("Acme", types.TierStretch, 45, 2),
		lead("Beta", types.TierStrong, 90, 0),
	}

	ranked := RankLeads(leads)

	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	// Ranks are written through the shared pointers.
	assert.Equal(t, 2, leads[0].Rank)
	assert.Equal(t, 1, leads[1].Rank)
}

func TestRankLeads_DoesNotReorderInput(t *testing.T) {
	leads := []*types.ScoredLead{
		lead("Acme", types.TierLongShot, 10, 6),
		lead("Beta", types.TierStrong, 90, 0),
	}

	RankLeads(leads)

	assert.Equal(t, []string{"Acme", "Beta"}, companies(leads))
}

func TestRankLeads_UnscoredLeadsRankLast(t *testing.T) {
	unscored := &types.ScoredLead{Company: "Mystery", Role: "Engineer"}
	leads := []*types.ScoredLead{
		unscored,
		lead("Acme", types.TierLongShot, 5, 8),
	}

	ranked := RankLeads(leads)

	assert.Equal(t, []string{"Acme", "Mystery"}, companies(ranked))
}

func TestRankLeads_UnknownTierRanksWithLongShots(t *testing.T) {
	leads := []*types.ScoredLead{
		lead("Weird", types.Tier("mystery"), 99, 0),
		lead("Acme", types.TierStretch, 40, 2),
	}

	ranked := RankLeads(leads)

	assert.Equal(t, []string{"Acme", "Weird"}, companies(ranked))
}

func TestRankLeads_Empty(t *testing.T) {
	assert.Empty(t, RankLeads(nil))
}
