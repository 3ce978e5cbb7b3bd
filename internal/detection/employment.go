// Package detection classifies employment type and remote/location status
// from raw job-posting text. Both detectors are pure and never error;
// empty input yields the unknown classification.
package detection

import (
	"regexp"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/extraction"
	"github.com/jrhoades1/job-application-system/internal/types"
)

var (
	contractRe = regexp.MustCompile(`\b(?:contract|contractor|c2c|w2|1099)\b`)
	partTimeRe = regexp.MustCompile(`\b(?:part[- ]time)\b`)
	tempRe     = regexp.MustCompile(`\b(?:temporary|temp position|temp role)\b`)
	fullTimeRe = regexp.MustCompile(`\b(?:full[- ]time|permanent)\b`)
)

// complianceContextPhrases identify legal-contract language around a
// "contract" hit. EEO statements mention federal contractors; those are not
// contract roles.
var complianceContextPhrases = []string{
	"federal contract",
	"government contract",
	"contract compliance",
	"subcontractor",
	"affirmative action",
}

// Context window inspected around a contract-pattern hit.
const (
	contractContextBefore = 80
	contractContextAfter  = 40
)

// DetectEmploymentType classifies the employment arrangement stated in a
// posting. Unstated employment type is presumed full_time; unknown is
// returned only for empty input.
func DetectEmploymentType(description string) types.EmploymentType {
	if description == "" {
		return types.EmploymentUnknown
	}

	lower := strings.ToLower(extraction.StripApplicationForm(description))

	if loc := contractRe.FindStringIndex(lower); loc != nil {
		start := loc[0] - contractContextBefore
		if start < 0 {
			start = 0
		}
		end := loc[1] + contractContextAfter
		if end > len(lower) {
			end = len(lower)
		}
		context := lower[start:end]

		suppressed := false
		for _, phrase := range complianceContextPhrases {
			if strings.Contains(context, phrase) {
				suppressed = true
				break
			}
		}
		if !suppressed {
			return types.EmploymentContract
		}
	}

	switch {
	case partTimeRe.MatchString(lower):
		return types.EmploymentPartTime
	case tempRe.MatchString(lower):
		return types.EmploymentTemp
	case fullTimeRe.MatchString(lower):
		return types.EmploymentFullTime
	}

	return types.EmploymentFullTime
}
