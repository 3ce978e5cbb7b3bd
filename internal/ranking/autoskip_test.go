package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrhoades1/job-application-system/internal/types"
)

func TestCheckAutoSkip_NilRules(t *testing.T) {
	reason, skip := CheckAutoSkip(lead("Acme", types.TierLongShot, 5, 9), nil)

	assert.False(t, skip)
	assert.Empty(t, reason)
}

func TestCheckAutoSkip_MinScore(t *testing.T) {
	rules := &types.AutoSkipRules{MinScore: types.TierStretch}

	tests := []struct {
		name string
		tier types.Tier
		skip bool
	}{
		{"Strong passes", types.TierStrong, false},
		{"Good passes", types.TierGood, false},
		{"Stretch passes at threshold", types.TierStretch, false},
		{"Long shot skipped", types.TierLongShot, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, skip := CheckAutoSkip(lead("Acme", tt.tier, 50, 2), rules)
			assert.Equal(t, tt.skip, skip)
			if tt.skip {
				assert.Equal(t, "Below minimum score threshold (long_shot < stretch)", reason)
			}
		})
	}
}

func TestCheckAutoSkip_MinScoreIgnoresUnscoredLeads(t *testing.T) {
	rules := &types.AutoSkipRules{MinScore: types.TierStrong}

	_, skip := CheckAutoSkip(&types.ScoredLead{Company: "Acme"}, rules)
	assert.False(t, skip)
}

func TestCheckAutoSkip_ExcludedEmploymentType(t *testing.T) {
	rules := &types.AutoSkipRules{ExcludedEmploymentTypes: []string{"contract", "temp"}}

	l := lead("Acme", types.TierStrong, 90, 0)
	l.EmploymentType = types.EmploymentContract

	reason, skip := CheckAutoSkip(l, rules)

	assert.True(t, skip)
	assert.Equal(t, "Employment type: contract (auto-skip rule)", reason)
}

func TestCheckAutoSkip_ExcludedCompanyCaseInsensitive(t *testing.T) {
	rules := &types.AutoSkipRules{ExcludedCompanies: []string{"  ACME corp "}}

	reason, skip := CheckAutoSkip(lead("Acme Corp", types.TierStrong, 90, 0), rules)

	assert.True(t, skip)
	assert.Equal(t, "Company in exclusion list", reason)
}

func TestPartitionLeads(t *testing.T) {
	rules := &types.AutoSkipRules{
		MinScore:          types.TierStretch,
		ExcludedCompanies: []string{"Blocked Inc"},
	}
	leads := []*types.ScoredLead{
		lead("Keep Me", types.TierGood, 70, 1),
		lead("Too Weak", types.TierLongShot, 10, 7),
		lead("Blocked Inc", types.TierStrong, 95, 0),
	}

	kept, skipped := PartitionLeads(leads, rules)

	assert.Equal(t, []string{"Keep Me"}, companies(kept))
	assert.Len(t, skipped, 2)
	assert.Equal(t, "Too Weak", skipped[0].Company)
	assert.Equal(t, "Blocked Inc", skipped[1].Company)
}

func TestPartitionLeads_NoRulesKeepsEverything(t *testing.T) {
	leads := []*types.ScoredLead{
		lead("Acme", types.TierLongShot, 5, 9),
	}

	kept, skipped := PartitionLeads(leads, nil)

	assert.Len(t, kept, 1)
	assert.Empty(t, skipped)
	assert.NotNil(t, skipped)
}
