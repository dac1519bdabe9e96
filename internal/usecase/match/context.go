package match

import "strings"

// Positional band multipliers. Opening and closing slides carry more
// visual weight than body slides.
const (
	openingWeight = 1.3
	middleWeight  = 1.0
	closingWeight = 1.2
	// echoBoost applies when the slide's own text uses the vocabulary
	// expected at its position.
	echoBoost = 1.1
)

// Expected vocabulary per band, used both for the echo boost and for
// the context bonus on image descriptions.
var (
	openingKeywords = []string{"introduction", "overview", "background", "welcome", "agenda"}
	middleKeywords  = []string{"data", "results", "analysis", "findings", "methodology"}
	closingKeywords = []string{"conclusion", "summary", "future", "recommendations", "thanks"}
)

// ContextWeight assigns a positional importance multiplier to a slide.
// position is 1-based. The first 20% of the deck is the opening band,
// the last 20% the closing band; a slide whose text echoes the band's
// expected vocabulary gets a further 1.1x. Pure; never fails.
func ContextWeight(slideText string, position, total int) (float64, []string) {
	weight := middleWeight
	keywords := middleKeywords

	if total > 0 {
		p := float64(position) / float64(total)
		switch {
		case p <= 0.2:
			weight = openingWeight
			keywords = openingKeywords
		case p <= 0.8:
			weight = middleWeight
			keywords = middleKeywords
		default:
			weight = closingWeight
			keywords = closingKeywords
		}
	}

	if containsAny(strings.ToLower(slideText), keywords) {
		weight *= echoBoost
	}

	return weight, keywords
}

// containsAny reports whether text contains any of the given terms as
// a substring. text must already be lowercased.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
