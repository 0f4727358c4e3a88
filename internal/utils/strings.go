package utils

import (
	"regexp"
	"strings"
)

// MaxLabelLength bounds user supplied place labels
const MaxLabelLength = 80

var (
	controlChars = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}

// SanitizeString replaces control characters and collapses whitespace
func SanitizeString(s string) string {
	result := controlChars.ReplaceAllString(s, " ")
	result = spaceRuns.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// NormalizeLabel prepares a place label for storage and display
func NormalizeLabel(s string) string {
	return Truncate(SanitizeString(s), MaxLabelLength)
}
