// Package extraction parses raw job-posting text into structured
// requirements, technology keywords, and red flags using layered
// pattern-matching heuristics. All functions are pure; empty input
// yields empty output rather than an error.
package extraction

import (
	"regexp"
	"strings"
)

// cutoffPatterns mark where a posting's embedded application form begins.
// ATS pages often append the full form (field labels, EEO disclosures,
// human checks) after the actual description; everything from the first
// matching line onward is dropped.
var cutoffPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Apply\s+(?:for this position|Now|Today)`),
	regexp.MustCompile(`(?i)^Submit\s+Application`),
	regexp.MustCompile(`(?i)^(?:Required|Optional)\s*\*`),
	regexp.MustCompile(`(?i)^\*\s*First Name`),
	regexp.MustCompile(`(?i)^First Name\s*$`),
	regexp.MustCompile(`(?i)^Human Check`),
	regexp.MustCompile(`(?i)^Voluntary Self-Identification`),
	regexp.MustCompile(`(?i)^Invitation for Job Applicants to Self-Identify`),
	regexp.MustCompile(`(?i)^PUBLIC BURDEN STATEMENT`),
	regexp.MustCompile(`(?i)^The following questions are entirely optional`),
}

// eeoPatterns remove EEO and region-disclaimer boilerplate wherever it
// appears in the remaining text.
var eeoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:is an? )?Equal (?:Employment )?Opportunity (?:Employer|and Affirmative Action).*?(?:\n\n|$)`),
	regexp.MustCompile(`(?is)Unfortunately,.*?(?:not currently hiring|Territories)\.`),
}

// StripApplicationForm removes application-form content and EEO boilerplate
// from raw posting text. The first line matching a cutoff pattern truncates
// all following lines; boilerplate spans are then deleted in place and the
// result is trimmed.
func StripApplicationForm(text string) string {
	lines := strings.Split(text, "\n")
	cutoff := len(lines)

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		for _, pattern := range cutoffPatterns {
			if pattern.MatchString(stripped) {
				cutoff = i
				break
			}
		}
		if cutoff < len(lines) {
			break
		}
	}

	cleaned := strings.Join(lines[:cutoff], "\n")
	for _, pattern := range eeoPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(cleaned)
}
