package types

// MatchType classifies how well one requirement is covered by the
// achievements inventory.
type MatchType string

// Match types, from best to worst.
const (
	MatchStrong  MatchType = "strong"
	MatchPartial MatchType = "partial"
	MatchGap     MatchType = "gap"
)

// Tier is the overall fit classification for a posting.
type Tier string

// Overall fit tiers, from best to worst.
const (
	TierStrong   Tier = "strong"
	TierGood     Tier = "good"
	TierStretch  Tier = "stretch"
	TierLongShot Tier = "long_shot"
)

// tierOrder positions tiers for ranking; lower is more favorable.
var tierOrder = map[Tier]int{
	TierStrong:   0,
	TierGood:     1,
	TierStretch:  2,
	TierLongShot: 3,
}

// Order returns the tier's rank position. Unknown tiers sort as least
// favorable, same as long_shot.
func (t Tier) Order() int {
	if order, ok := tierOrder[t]; ok {
		return order
	}
	return tierOrder[TierLongShot]
}

// RequirementMatch is the scorer's judgment for a single requirement.
// Evidence and Category are empty when the match type is gap.
type RequirementMatch struct {
	Requirement string    `json:"requirement"`
	MatchType   MatchType `json:"match_type"`
	Evidence    string    `json:"evidence"`
	Category    string    `json:"category"`
}

// OverallScore is the aggregate of all requirement matches for one posting.
type OverallScore struct {
	Overall         Tier    `json:"overall"`
	MatchPercentage float64 `json:"match_percentage"`
	StrongCount     int     `json:"strong_count"`
	PartialCount    int     `json:"partial_count"`
	GapCount        int     `json:"gap_count"`
}
