package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleStem(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{"Short word untouched", "api", "api"},
		{"ing stripped", "building", "build"},
		{"ing kept on short word", "king", "king"},
		{"tion stripped", "integration", "integra"},
		{"ed stripped", "managed", "manag"},
		{"ment stripped", "management", "manage"},
		{"ness stripped", "robustness", "robust"},
		{"ies to y", "technologies", "technology"},
		{"plural s stripped", "teams", "team"},
		{"ness beats plural", "business", "busi"},
		{"ss preserved", "class", "class"},
		{"short plural kept", "apis", "apis"},
		{"no suffix", "scratch", "scratch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, simpleStem(tt.word))
		})
	}
}

func TestStemSet(t *testing.T) {
	stems := stemSet("building and managing engineering teams")

	assert.True(t, stems["build"])
	assert.True(t, stems["manag"])
	assert.True(t, stems["engineer"])
	assert.True(t, stems["team"])
	// "and" passes the length-3 tokenizer
	assert.True(t, stems["and"])
}

func TestStemSet_IgnoresShortAndNonAlphabetic(t *testing.T) {
	stems := stemSet("go 10 c++ ml k8s services")

	assert.True(t, stems["service"])
	assert.False(t, stems["go"])
	assert.False(t, stems["10"])
	assert.False(t, stems["ml"])
}
