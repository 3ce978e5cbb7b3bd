package types

// AutoSkipRules filter scored leads out of the review queue before ranking
// output is handed to the user. All rules are optional.
type AutoSkipRules struct {
	MinScore                Tier     `json:"min_score,omitempty" validate:"omitempty,oneof=strong good stretch long_shot"`
	ExcludedEmploymentTypes []string `json:"excluded_employment_types,omitempty" validate:"omitempty,dive,oneof=full_time part_time contract temp unknown"`
	ExcludedCompanies       []string `json:"excluded_companies,omitempty"`
}
