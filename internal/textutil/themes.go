package textutil

import (
	"regexp"
	"sort"
	"strings"
)

// themeWordPattern matches alphabetic words of at least three letters.
var themeWordPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// themeStopWords is a small stop set for frequency-based theme
// extraction; short function words that pass the length filter.
var themeStopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "day": {}, "get": {}, "has": {},
	"him": {}, "how": {}, "man": {}, "new": {}, "now": {}, "old": {},
	"see": {}, "two": {}, "way": {}, "who": {}, "boy": {}, "did": {},
	"its": {}, "let": {}, "put": {}, "say": {}, "she": {}, "too": {},
	"use": {},
}

// maxThemes caps the theme list returned per text.
const maxThemes = 10

// Themes extracts the dominant content words of a text: alphabetic
// tokens longer than three letters, stop words removed, ranked by
// frequency with first-seen order breaking ties. At most ten themes
// are returned.
func Themes(text string) []string {
	words := themeWordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	order := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 3 {
			continue
		}
		if _, stop := themeStopWords[w]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxThemes {
		order = order[:maxThemes]
	}
	return order
}

// CommonThemes intersects two theme lists, preserving the order of
// the first list.
func CommonThemes(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[t] = struct{}{}
	}
	common := make([]string, 0)
	for _, t := range a {
		if _, ok := set[t]; ok {
			common = append(common, t)
		}
	}
	return common
}
