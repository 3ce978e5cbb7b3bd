package extraction

import (
	"fmt"
	"regexp"
	"strconv"
)

// redFlag pairs a detection pattern with its human-readable flag text.
type redFlag struct {
	pattern *regexp.Regexp
	flag    string
}

// redFlagPatterns is the fixed catalogue of warning signs. All matching
// flags are reported, in catalogue order.
var redFlagPatterns = []redFlag{
	{regexp.MustCompile(`(?i)wear many hats`), "Vague role scope — 'wear many hats'"},
	{regexp.MustCompile(`(?i)fast[- ]paced`), "Fast-paced environment (potential burnout signal)"},
	{regexp.MustCompile(`(?i)must be willing to work (?:nights|weekends|overtime)`), "Expects overtime"},
	{regexp.MustCompile(`(?i)(?:ninja|rockstar|guru|wizard|unicorn)`), "Buzzword-heavy role description"},
	{regexp.MustCompile(`(?i)unlimited (?:pto|vacation)`), "Unlimited PTO (often means less PTO taken)"},
	{regexp.MustCompile(`(?i)competitive salary`), "No salary range listed — 'competitive salary'"},
}

var yearsMentionRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

// DetectRedFlags reports all red flags present in normalized posting text.
// An extra flag is appended when the largest "N+ years" mention exceeds 15.
func DetectRedFlags(text string) []string {
	flags := []string{}

	for _, rf := range redFlagPatterns {
		if rf.pattern.MatchString(text) {
			flags = append(flags, rf.flag)
		}
	}

	maxYears := 0
	for _, match := range yearsMentionRe.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue // absurdly long digit runs are not a years mention
		}
		if years > maxYears {
			maxYears = years
		}
	}
	if maxYears > 15 {
		flags = append(flags, fmt.Sprintf("Requires %d+ years — unusually high", maxYears))
	}

	return flags
}
