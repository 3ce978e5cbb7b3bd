package extraction

import (
	"regexp"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/types"
)

// Section states for the line scanner.
const (
	sectionNone             = ""
	sectionRequirements     = "requirements"
	sectionPreferred        = "preferred"
	sectionResponsibilities = "responsibilities"
)

// sectionPattern maps a header-pattern family to its section. Order matters:
// the first family whose pattern matches a header line wins.
type sectionPattern struct {
	section string
	pattern *regexp.Regexp
}

var sectionPatterns = []sectionPattern{
	{sectionRequirements, regexp.MustCompile(`(?i)(?:requirements?|qualifications?|what you.?(?:ll)?\s*need|must have|minimum|experience|education|skills?\s+(?:and|&)\s+(?:knowledge|skills)|specialized knowledge|technical skills|what (?:we|you).+(?:look|need)|who you are)`)},
	{sectionPreferred, regexp.MustCompile(`(?i)(?:preferred|nice to have|bonus|desired|plus|ideally|good to have|additional|differenti)`)},
	{sectionResponsibilities, regexp.MustCompile(`(?i)(?:responsibilities|what you.?(?:ll)?\s*do|duties|role|about the (?:role|position)|key (?:areas|functions)|you will|your (?:impact|mission|role))`)},
}

var (
	bulletStartRe  = regexp.MustCompile(`^[-•*]\s`)
	numberStartRe  = regexp.MustCompile(`^\d+[.)]\s`)
	bulletItemRe   = regexp.MustCompile(`^[-•*]\s*(.+)$`)
	numberedItemRe = regexp.MustCompile(`^\d+[.)]\s*(.+)$`)

	// Administrative prefixes that disqualify a plain line from capture.
	adminPrefixRe = regexp.MustCompile(`^(?:Travel|Note|Image|About|Share)\b`)
)

// maxHeaderLen is the longest line still considered a section header.
const maxHeaderLen = 80

// Plain (non-bulleted) lines are captured into an active requirements or
// preferred section only within these length bounds.
const (
	minPlainLineLen = 15
	maxPlainLineLen = 200
)

// Bounds for the fallback scan over postings with no detectable sections
// or bullets.
const (
	minFallbackLineLen      = 20
	maxFallbackRequirements = 15
)

// ExtractRequirements segments a job posting into hard requirements,
// preferred qualifications, and responsibilities, and independently attaches
// technology keywords and red flags. Keywords are scanned over the original
// text; everything else works on the normalized text.
func ExtractRequirements(jobDescription string) *types.ExtractedRequirements {
	result := types.NewExtractedRequirements()
	if jobDescription == "" {
		return result
	}

	cleaned := StripApplicationForm(jobDescription)
	currentSection := sectionNone

	for _, line := range strings.Split(cleaned, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		isBullet := bulletStartRe.MatchString(stripped) || numberStartRe.MatchString(stripped)

		// Section headers are short non-bullet lines; they switch state and
		// are never emitted as content.
		if !isBullet && len(stripped) < maxHeaderLen {
			if section, ok := matchSectionHeader(stripped); ok {
				currentSection = section
				continue
			}
		}

		if item, ok := stripBulletMarker(stripped); ok {
			routeBullet(item, currentSection, result)
			continue
		}

		if currentSection == sectionRequirements || currentSection == sectionPreferred {
			if len(stripped) > minPlainLineLen && len(stripped) < maxPlainLineLen && !adminPrefixRe.MatchString(stripped) {
				if currentSection == sectionRequirements {
					result.HardRequirements = append(result.HardRequirements, stripped)
				} else {
					result.Preferred = append(result.Preferred, stripped)
				}
			}
		}
	}

	result.Keywords = ExtractKeywords(jobDescription)
	result.RedFlags = DetectRedFlags(cleaned)
	return result
}

// FallbackRequirements scans normalized posting text for requirement-like
// plain lines, capped at 15. Callers use it when section and bullet
// extraction found nothing to score, so header-less prose postings still get
// scored instead of defaulting to a zero result.
func FallbackRequirements(cleaned string) []string {
	requirements := []string{}
	for _, line := range strings.Split(cleaned, "\n") {
		stripped := strings.TrimSpace(line)
		if len(stripped) <= minFallbackLineLen || !IsRequirement(stripped) {
			continue
		}
		requirements = append(requirements, stripped)
		if len(requirements) == maxFallbackRequirements {
			break
		}
	}
	return requirements
}

// matchSectionHeader returns the section for the first header-pattern family
// matching the line.
func matchSectionHeader(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, sp := range sectionPatterns {
		if sp.pattern.MatchString(lower) {
			return sp.section, true
		}
	}
	return sectionNone, false
}

// stripBulletMarker removes a leading bullet glyph or numbered-list marker
// and returns the remaining item text.
func stripBulletMarker(line string) (string, bool) {
	if m := bulletItemRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := numberedItemRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// routeBullet places a bullet item into the active section, or classifies it
// when no section is active. Unclassified items default to responsibilities.
func routeBullet(item, currentSection string, result *types.ExtractedRequirements) {
	switch {
	case currentSection == sectionRequirements:
		result.HardRequirements = append(result.HardRequirements, item)
	case currentSection == sectionPreferred:
		result.Preferred = append(result.Preferred, item)
	case currentSection == sectionResponsibilities:
		result.Responsibilities = append(result.Responsibilities, item)
	case IsRequirement(item):
		result.HardRequirements = append(result.HardRequirements, item)
	case IsPreferred(item):
		result.Preferred = append(result.Preferred, item)
	default:
		result.Responsibilities = append(result.Responsibilities, item)
	}
}
