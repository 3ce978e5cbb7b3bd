package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrhoades1/job-application-system/internal/types"
)

func sampleQueue() *types.ReviewQueue {
	return &types.ReviewQueue{
		BatchID:     "2026-08-31_ab12cd34",
		GeneratedAt: "2026-08-31T10:30:00Z",
		Leads: []types.ReviewQueueEntry{
			{
				Rank:           1,
				Company:        "Acme",
				Role:           "VP of Engineering",
				Score:          types.ScoreSummary{Overall: types.TierStrong, MatchPercentage: 91.7},
				TopMatches:     []string{"Team building", "HIPAA compliance"},
				EmploymentType: types.EmploymentFullTime,
			},
			{
				Rank:           2,
				Company:        "Beta",
				Role:           "Director of Engineering",
				Score:          types.ScoreSummary{Overall: types.TierStretch, MatchPercentage: 45.0},
				TopGaps:        []string{"Rust", "Embedded systems"},
				EmploymentType: types.EmploymentContract,
				RedFlags:       []string{"Expects overtime"},
			},
		},
		AutoSkipped: []types.SkippedLead{
			{Company: "Blocked Inc", Role: "Engineer", Reason: "Company in exclusion list"},
		},
	}
}

func TestWriteReviewQueueMarkdown(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteReviewQueueMarkdown(&buf, sampleQueue()))
	out := buf.String()

	assert.Contains(t, out, "# Review Queue")
	assert.Contains(t, out, "**Generated:** 2026-08-31T10:30")
	assert.Contains(t, out, "**Batch:** 2026-08-31_ab12cd34")
	assert.Contains(t, out, "**Leads:** 2 | **Auto-skipped:** 1")

	assert.Contains(t, out, "## Strong (1)")
	assert.Contains(t, out, "**[1] Acme — VP of Engineering**")
	assert.Contains(t, out, "Score: 91.7% match")
	assert.Contains(t, out, "Matches: Team building, HIPAA compliance")

	assert.Contains(t, out, "## Stretch (1)")
	assert.Contains(t, out, "[RED FLAGS, CONTRACT]")
	assert.Contains(t, out, "Gaps: Rust, Embedded systems")

	assert.Contains(t, out, "## Auto-Skipped (1)")
	assert.Contains(t, out, "- Blocked Inc — Engineer: Company in exclusion list")
}

func TestWriteReviewQueueMarkdown_SkipsEmptySections(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteReviewQueueMarkdown(&buf, sampleQueue()))
	out := buf.String()

	assert.NotContains(t, out, "## Good")
	assert.NotContains(t, out, "## Long Shot")
}

func TestWriteReviewQueueMarkdown_UnknownTierFallsToLongShot(t *testing.T) {
	queue := &types.ReviewQueue{
		BatchID:     "2026-08-31_ab12cd34",
		GeneratedAt: "2026-08-31T10:30:00Z",
		Leads: []types.ReviewQueueEntry{
			{Rank: 1, Company: "Weird", Role: "Engineer", Score: types.ScoreSummary{Overall: "mystery"}},
		},
	}

	var buf strings.Builder
	require.NoError(t, WriteReviewQueueMarkdown(&buf, queue))

	assert.Contains(t, buf.String(), "## Long Shot (1)")
}

func TestWriteReviewQueueMarkdown_EmptyQueue(t *testing.T) {
	queue := &types.ReviewQueue{BatchID: "2026-08-31_ab12cd34", GeneratedAt: "2026-08-31T10:30:00Z"}

	var buf strings.Builder
	require.NoError(t, WriteReviewQueueMarkdown(&buf, queue))
	out := buf.String()

	assert.Contains(t, out, "**Leads:** 0 | **Auto-skipped:** 0")
	assert.NotContains(t, out, "## ")
}

func TestWriteReviewQueueMarkdown_FullTimeNotMarked(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteReviewQueueMarkdown(&buf, sampleQueue()))
	out := buf.String()

	assert.NotContains(t, out, "FULL_TIME")
}
