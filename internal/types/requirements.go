package types

// ExtractedRequirements is the structured result of parsing a job posting.
// Produced once per posting and treated as immutable afterward.
type ExtractedRequirements struct {
	HardRequirements []string `json:"hard_requirements"`
	Preferred        []string `json:"preferred"`
	Responsibilities []string `json:"responsibilities"`
	Keywords         []string `json:"keywords"`
	RedFlags         []string `json:"red_flags"`
}

// NewExtractedRequirements returns a result with all lists allocated empty,
// the defined output for an empty posting.
func NewExtractedRequirements() *ExtractedRequirements {
	return &ExtractedRequirements{
		HardRequirements: []string{},
		Preferred:        []string{},
		Responsibilities: []string{},
		Keywords:         []string{},
		RedFlags:         []string{},
	}
}
