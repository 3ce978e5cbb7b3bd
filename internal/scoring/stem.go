// Package scoring computes similarity between extracted requirements and a
// candidate's achievements inventory, and aggregates the per-requirement
// judgments into an overall fit tier.
package scoring

import (
	"regexp"
	"strings"
)

// wordRe tokenizes lowercase text into alphabetic words of length >= 3.
var wordRe = regexp.MustCompile(`\b[a-z]{3,}\b`)

// simpleStem reduces a word to an approximate stem so that surface variants
// ("managing", "management", "managed") overlap during matching.
func simpleStem(word string) string {
	if len(word) <= 3 {
		return word
	}
	switch {
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return word[:len(word)-3]
	case strings.HasSuffix(word, "tion") && len(word) > 6:
		return word[:len(word)-4]
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ment") && len(word) > 6:
		return word[:len(word)-4]
	case strings.HasSuffix(word, "ness") && len(word) > 6:
		return word[:len(word)-4]
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 4:
		return word[:len(word)-1]
	}
	return word
}

// stemSet tokenizes and stems lowercase text into a set of stems.
func stemSet(lowerText string) map[string]bool {
	stems := make(map[string]bool)
	for _, word := range wordRe.FindAllString(lowerText, -1) {
		stems[simpleStem(word)] = true
	}
	return stems
}
