package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/types"
)

// Scoring policy constants. External consumers are driven by the same
// thresholds; the exact values are part of the compatibility contract.
const (
	strongThreshold  = 0.35
	partialThreshold = 0.20
	keywordBoost     = 0.3
	yearsBoost       = 0.2
)

// directKeywordRe is the fixed catalogue of named technologies whose literal
// presence in both requirement and achievement earns the keyword boost.
var directKeywordRe = regexp.MustCompile(`(?i)\b(?:Python|Java|AWS|Azure|GCP|Kubernetes|Docker|Terraform|React|Node|HIPAA|SOC2|FHIR|HL7|DICOM|AI|ML|NLP|microservices|agile|scrum|DevOps|CI/CD)\b`)

var yearsRe = regexp.MustCompile(`(\d+)\+?\s*years?`)

// ScoreRequirement scores one requirement against the achievements inventory
// and returns its match judgment. The inventory may be either input shape;
// iteration order (and therefore tie-breaking) follows the source's Entries
// order, first encountered wins. An empty inventory always yields a gap.
func ScoreRequirement(requirement string, achievements types.AchievementSource) types.RequirementMatch {
	reqLower := strings.ToLower(requirement)
	reqTerms := stemSet(reqLower)
	directKeywords := distinctDirectKeywords(requirement)
	reqYears, reqHasYears := firstYearsMention(reqLower)

	bestScore := 0.0
	bestEvidence := ""
	bestCategory := ""

	for _, entry := range achievements.Entries() {
		for _, item := range entry.Items {
			itemLower := strings.ToLower(item)
			score := overlapFraction(reqTerms, stemSet(itemLower))

			for _, keyword := range directKeywords {
				if strings.Contains(itemLower, keyword) {
					score += keywordBoost
				}
			}

			if reqHasYears {
				if itemYears, ok := firstYearsMention(itemLower); ok && itemYears >= reqYears {
					score += yearsBoost
				}
			}

			if score > bestScore {
				bestScore = score
				bestEvidence = item
				bestCategory = entry.Category
			}
		}
	}

	switch {
	case bestScore >= strongThreshold:
		return types.RequirementMatch{
			Requirement: requirement,
			MatchType:   types.MatchStrong,
			Evidence:    bestEvidence,
			Category:    bestCategory,
		}
	case bestScore >= partialThreshold:
		return types.RequirementMatch{
			Requirement: requirement,
			MatchType:   types.MatchPartial,
			Evidence:    bestEvidence,
			Category:    bestCategory,
		}
	default:
		return types.RequirementMatch{
			Requirement: requirement,
			MatchType:   types.MatchGap,
			Evidence:    "",
			Category:    "",
		}
	}
}

// ScoreRequirements scores a list of requirements in order.
func ScoreRequirements(requirements []string, achievements types.AchievementSource) []types.RequirementMatch {
	matches := make([]types.RequirementMatch, 0, len(requirements))
	for _, req := range requirements {
		matches = append(matches, ScoreRequirement(req, achievements))
	}
	return matches
}

// overlapFraction is the fraction of requirement stems covered by one item.
func overlapFraction(reqTerms, itemTerms map[string]bool) float64 {
	if len(reqTerms) == 0 || len(itemTerms) == 0 {
		return 0.0
	}
	intersection := 0
	for term := range reqTerms {
		if itemTerms[term] {
			intersection++
		}
	}
	return float64(intersection) / float64(len(reqTerms))
}

// distinctDirectKeywords returns the lowercased distinct catalogue keywords
// present in the requirement text.
func distinctDirectKeywords(requirement string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, match := range directKeywordRe.FindAllString(requirement, -1) {
		lower := strings.ToLower(match)
		if !seen[lower] {
			seen[lower] = true
			keywords = append(keywords, lower)
		}
	}
	return keywords
}

// firstYearsMention parses the first "N years" mention in lowercase text.
// Unparseable digit runs degrade to no match rather than an error.
func firstYearsMention(lowerText string) (int, bool) {
	m := yearsRe.FindStringSubmatch(lowerText)
	if m == nil {
		return 0, false
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return years, true
}
