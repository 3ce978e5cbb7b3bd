package extraction

import "regexp"

// skipIndicators reject lines that read like boilerplate rather than
// requirements: physical demands, background checks, compensation, EEO,
// and visa-sponsorship statements.
var skipIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:no special physical demands|travel up to|office environment)`),
	regexp.MustCompile(`(?i)(?:-- No answer|background check|drug screen|e-verify)`),
	regexp.MustCompile(`(?i)(?:salary|compensation|benefits|401|pto|paid time)`),
	regexp.MustCompile(`(?i)(?:equal (?:employment )?opportunity|affirmative action)`),
	regexp.MustCompile(`(?i)(?:visa sponsorship|legally eligible)`),
}

// reqIndicators accept lines phrased like hard requirements.
var reqIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\+?\s*years?`),
	regexp.MustCompile(`(?i)(?:must|required|minimum)`),
	regexp.MustCompile(`(?i)(?:degree|bachelor|master|phd)`),
	regexp.MustCompile(`(?i)(?:experience (?:with|in|leading|building|managing|developing|driving))`),
	regexp.MustCompile(`(?i)(?:proficiency in|expertise in|deep expertise|proven)`),
	regexp.MustCompile(`(?i)(?:certification|certified)`),
	regexp.MustCompile(`(?i)(?:track record|demonstrated|strong (?:strategic|technical|communication))`),
	regexp.MustCompile(`(?i)(?:knowledge of|ability to|skilled in|familiarity with)`),
}

// prefIndicators accept lines phrased like nice-to-have qualifications.
// "familiarity with" and "knowledge of" appear in both indicator sets;
// IsRequirement is evaluated first by callers and wins the tie.
var prefIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:preferred|nice to have|plus|bonus|ideally|advantageous)`),
	regexp.MustCompile(`(?i)(?:familiarity with|exposure to|knowledge of)`),
}

// IsRequirement reports whether a bullet-stripped line reads as a hard
// requirement. Skip-indicator matches reject the line outright.
func IsRequirement(text string) bool {
	for _, pattern := range skipIndicators {
		if pattern.MatchString(text) {
			return false
		}
	}
	for _, pattern := range reqIndicators {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// IsPreferred reports whether a bullet-stripped line reads as a preferred
// qualification.
func IsPreferred(text string) bool {
	for _, pattern := range prefIndicators {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
