package ranking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jrhoades1/job-application-system/internal/types"
)

const (
	maxTopMatches = 3
	maxTopGaps    = 2

	// Requirement text is truncated in queue entries to keep the review
	// summary scannable.
	maxRequirementPreview = 60
)

// BuildReviewQueue flattens ranked leads and auto-skipped records into a
// batch-stamped review queue.
func BuildReviewQueue(ranked []*types.ScoredLead, skipped []types.SkippedLead) *types.ReviewQueue {
	now := time.Now()
	if skipped == nil {
		skipped = []types.SkippedLead{}
	}

	queue := &types.ReviewQueue{
		BatchID:     fmt.Sprintf("%s_%s", now.Format("2006-01-02"), uuid.NewString()[:8]),
		GeneratedAt: now.Format(time.RFC3339),
		Leads:       make([]types.ReviewQueueEntry, 0, len(ranked)),
		AutoSkipped: skipped,
	}

	for _, lead := range ranked {
		entry := types.ReviewQueueEntry{
			Rank:           lead.Rank,
			Company:        lead.Company,
			Role:           lead.Role,
			TopMatches:     topRequirements(lead.Matches, types.MatchStrong, maxTopMatches),
			TopGaps:        topRequirements(lead.Matches, types.MatchGap, maxTopGaps),
			EmploymentType: lead.EmploymentType,
			RemoteStatus:   types.RemoteStatusUnknown,
			RedFlags:       lead.RedFlags,
			Status:         "pending_review",
		}
		if entry.EmploymentType == "" {
			entry.EmploymentType = types.EmploymentFullTime
		}
		if entry.RedFlags == nil {
			entry.RedFlags = []string{}
		}
		if lead.ScoreResult != nil {
			entry.Score = *lead.ScoreResult
		}
		if lead.LocationInfo != nil {
			entry.Location = lead.LocationInfo.Location
			entry.RemoteStatus = lead.LocationInfo.RemoteStatus
		}
		queue.Leads = append(queue.Leads, entry)
	}
	return queue
}

// topRequirements collects up to limit requirement previews of one match
// type, in match order.
func topRequirements(matches []types.RequirementMatch, matchType types.MatchType, limit int) []string {
	previews := []string{}
	for _, match := range matches {
		if match.MatchType != matchType {
			continue
		}
		text := match.Requirement
		// Truncate on runes; a byte slice could split a multibyte
		// character and emit invalid UTF-8.
		if runes := []rune(text); len(runes) > maxRequirementPreview {
			text = string(runes[:maxRequirementPreview])
		}
		previews = append(previews, text)
		if len(previews) == limit {
			break
		}
	}
	return previews
}
