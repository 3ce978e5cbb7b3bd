package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/types"
)

// tierSections fixes the order and headings of the markdown summary.
var tierSections = []struct {
	tier  types.Tier
	title string
}{
	{types.TierStrong, "Strong"},
	{types.TierGood, "Good"},
	{types.TierStretch, "Stretch"},
	{types.TierLongShot, "Long Shot"},
}

// WriteReviewQueueMarkdown renders a human-readable summary of the review
// queue, grouped by score tier. Leads with an unrecognized tier land in the
// Long Shot section.
func WriteReviewQueueMarkdown(w io.Writer, queue *types.ReviewQueue) error {
	var sb strings.Builder

	generated := queue.GeneratedAt
	if len(generated) > 16 {
		generated = generated[:16]
	}
	sb.WriteString("# Review Queue\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n", generated))
	sb.WriteString(fmt.Sprintf("**Batch:** %s\n", queue.BatchID))
	sb.WriteString(fmt.Sprintf("**Leads:** %d | **Auto-skipped:** %d\n\n", len(queue.Leads), len(queue.AutoSkipped)))

	byTier := make(map[types.Tier][]types.ReviewQueueEntry)
	for _, lead := range queue.Leads {
		tier := lead.Score.Overall
		if !isKnownTier(tier) {
			tier = types.TierLongShot
		}
		byTier[tier] = append(byTier[tier], lead)
	}

	for _, section := range tierSections {
		leads := byTier[section.tier]
		if len(leads) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s (%d)\n\n", section.title, len(leads)))

		for _, lead := range leads {
			var markers []string
			if len(lead.RedFlags) > 0 {
				markers = append(markers, "RED FLAGS")
			}
			if lead.EmploymentType != types.EmploymentFullTime && lead.EmploymentType != types.EmploymentUnknown {
				markers = append(markers, strings.ToUpper(string(lead.EmploymentType)))
			}
			markerStr := ""
			if len(markers) > 0 {
				markerStr = fmt.Sprintf(" [%s]", strings.Join(markers, ", "))
			}

			sb.WriteString(fmt.Sprintf("**[%d] %s — %s**\n", lead.Rank, lead.Company, lead.Role))
			sb.WriteString(fmt.Sprintf("  Score: %.1f%% match%s\n", lead.Score.MatchPercentage, markerStr))
			if len(lead.TopMatches) > 0 {
				sb.WriteString(fmt.Sprintf("  Matches: %s\n", strings.Join(lead.TopMatches, ", ")))
			}
			if len(lead.TopGaps) > 0 {
				sb.WriteString(fmt.Sprintf("  Gaps: %s\n", strings.Join(lead.TopGaps, ", ")))
			}
			sb.WriteString("\n")
		}
	}

	if len(queue.AutoSkipped) > 0 {
		sb.WriteString(fmt.Sprintf("## Auto-Skipped (%d)\n\n", len(queue.AutoSkipped)))
		for _, item := range queue.AutoSkipped {
			sb.WriteString(fmt.Sprintf("- %s — %s: %s\n", item.Company, item.Role, item.Reason))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func isKnownTier(tier types.Tier) bool {
	switch tier {
	case types.TierStrong, types.TierGood, types.TierStretch, types.TierLongShot:
		return true
	}
	return false
}
