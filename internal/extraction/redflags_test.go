package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectRedFlags_Catalogue(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Wear many hats", "You will wear many hats in this role", "Vague role scope — 'wear many hats'"},
		{"Fast-paced", "Our fast-paced environment rewards hustle", "Fast-paced environment (potential burnout signal)"},
		{"Overtime", "You must be willing to work weekends during launches", "Expects overtime"},
		{"Buzzwords", "Seeking a coding ninja to join us", "Buzzword-heavy role description"},
		{"Unlimited PTO", "We offer unlimited PTO and free snacks", "Unlimited PTO (often means less PTO taken)"},
		{"Competitive salary", "Competitive salary commensurate with experience", "No salary range listed — 'competitive salary'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := DetectRedFlags(tt.text)
			assert.Contains(t, flags, tt.expected)
		})
	}
}

func TestDetectRedFlags_AllMatchesInCatalogueOrder(t *testing.T) {
	text := "Competitive salary in a fast-paced team where you wear many hats."
	flags := DetectRedFlags(text)

	assert.Equal(t, []string{
		"Vague role scope — 'wear many hats'",
		"Fast-paced environment (potential burnout signal)",
		"No salary range listed — 'competitive salary'",
	}, flags)
}

func TestDetectRedFlags_ExcessiveYears(t *testing.T) {
	flags := DetectRedFlags("We require 20+ years of JavaScript and 5 years of React.")
	assert.Contains(t, flags, "Requires 20+ years — unusually high")
}

func TestDetectRedFlags_ReasonableYearsNoFlag(t *testing.T) {
	flags := DetectRedFlags("We require 15+ years of leadership.")
	assert.Empty(t, flags)
}

func TestDetectRedFlags_Empty(t *testing.T) {
	assert.Empty(t, DetectRedFlags(""))
}
