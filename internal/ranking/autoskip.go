package ranking

import (
	"fmt"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/types"
)

// tierStrength orders tiers for the minimum-score rule; higher is better.
var tierStrength = map[types.Tier]int{
	types.TierStrong:   4,
	types.TierGood:     3,
	types.TierStretch:  2,
	types.TierLongShot: 1,
}

// CheckAutoSkip evaluates a scored lead against the configured auto-skip
// rules. It returns a human-readable skip reason and true when any rule
// matches; nil rules never skip.
func CheckAutoSkip(lead *types.ScoredLead, rules *types.AutoSkipRules) (string, bool) {
	if rules == nil {
		return "", false
	}

	if rules.MinScore != "" && lead.ScoreResult != nil {
		if tierStrength[lead.ScoreResult.Overall] < tierStrength[rules.MinScore] {
			return fmt.Sprintf("Below minimum score threshold (%s < %s)", lead.ScoreResult.Overall, rules.MinScore), true
		}
	}

	for _, excluded := range rules.ExcludedEmploymentTypes {
		if string(lead.EmploymentType) == excluded {
			return fmt.Sprintf("Employment type: %s (auto-skip rule)", excluded), true
		}
	}

	for _, company := range rules.ExcludedCompanies {
		if strings.EqualFold(strings.TrimSpace(company), strings.TrimSpace(lead.Company)) {
			return "Company in exclusion list", true
		}
	}

	return "", false
}

// PartitionLeads splits leads into those to rank and those removed by
// auto-skip rules.
func PartitionLeads(leads []*types.ScoredLead, rules *types.AutoSkipRules) (kept []*types.ScoredLead, skipped []types.SkippedLead) {
	kept = make([]*types.ScoredLead, 0, len(leads))
	skipped = []types.SkippedLead{}

	for _, lead := range leads {
		if reason, skip := CheckAutoSkip(lead, rules); skip {
			skipped = append(skipped, types.SkippedLead{
				Company: lead.Company,
				Role:    lead.Role,
				Reason:  reason,
			})
			continue
		}
		kept = append(kept, lead)
	}
	return kept, skipped
}
