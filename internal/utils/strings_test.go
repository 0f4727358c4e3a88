package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"Shorter than limit", "Office", 10, "Office"},
		{"Exactly at limit", "Office", 6, "Office"},
		{"Longer than limit", "Central Station", 10, "Central..."},
		{"Unicode", "Żoliborz Park", 8, "Żolib..."},
		{"Tiny limit", "Office", 2, "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLength))
		})
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Gym on Main", SanitizeString("  Gym\ton \x00 Main \n"))
	assert.Equal(t, "", SanitizeString(" \t "))
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "Home", NormalizeLabel("  Home "))

	long := strings.Repeat("a", MaxLabelLength+10)
	got := NormalizeLabel(long)
	assert.Len(t, []rune(got), MaxLabelLength)
	assert.True(t, strings.HasSuffix(got, "..."))
}
