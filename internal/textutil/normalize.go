package textutil

import (
	"regexp"
	"strings"
)

var (
	// specialPattern matches characters outside word chars, whitespace,
	// and basic punctuation kept for sentence structure.
	specialPattern = regexp.MustCompile(`[^\w\s.,!?]`)
	// whitespacePattern matches runs of whitespace.
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize cleans free text for feature extraction: special characters
// are replaced with spaces (basic punctuation survives), whitespace
// runs collapse to a single space, and the result is lowercased.
// Empty or whitespace-only input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := specialPattern.ReplaceAllString(text, " ")
	t = whitespacePattern.ReplaceAllString(strings.TrimSpace(t), " ")
	return strings.ToLower(t)
}
