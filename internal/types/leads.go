package types

// ScoreSummary is the slice of an OverallScore that travels with a lead.
type ScoreSummary struct {
	Overall         Tier    `json:"overall"`
	MatchPercentage float64 `json:"match_percentage"`
	StrongCount     int     `json:"strong_count,omitempty"`
	PartialCount    int     `json:"partial_count,omitempty"`
	GapCount        int     `json:"gap_count"`
}

// ScoredLead is a caller-owned record for one scored posting. The ranker
// stamps Rank in place; every other field is left untouched. ScoreResult
// may be nil for leads that were never scored; such leads rank last.
type ScoredLead struct {
	Company        string             `json:"company"`
	Role           string             `json:"role"`
	ScoreResult    *ScoreSummary      `json:"score_result"`
	Matches        []RequirementMatch `json:"matches,omitempty"`
	EmploymentType EmploymentType     `json:"employment_type,omitempty"`
	LocationInfo   *LocationResult    `json:"location_info,omitempty"`
	RedFlags       []string           `json:"red_flags,omitempty"`
	SourcePlatform string             `json:"source_platform,omitempty"`
	Rank           int                `json:"rank,omitempty"`
}

// ReviewQueueEntry is one ranked lead flattened for the review queue.
type ReviewQueueEntry struct {
	Rank           int            `json:"rank"`
	Company        string         `json:"company"`
	Role           string         `json:"role"`
	Score          ScoreSummary   `json:"score"`
	TopMatches     []string       `json:"top_matches"`
	TopGaps        []string       `json:"top_gaps"`
	EmploymentType EmploymentType `json:"employment_type"`
	Location       string         `json:"location"`
	RemoteStatus   RemoteStatus   `json:"remote_status"`
	RedFlags       []string       `json:"red_flags"`
	Status         string         `json:"status"`
}

// SkippedLead records a lead removed by an auto-skip rule.
type SkippedLead struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Reason  string `json:"reason"`
}

// ReviewQueue is the batch output handed to the review step.
type ReviewQueue struct {
	BatchID     string             `json:"batch_id"`
	GeneratedAt string             `json:"generated_at"`
	Leads       []ReviewQueueEntry `json:"leads"`
	AutoSkipped []SkippedLead      `json:"auto_skipped"`
}
