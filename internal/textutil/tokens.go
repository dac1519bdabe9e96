package textutil

import "strings"

// TokenSet builds the set of lowercased whitespace-delimited tokens.
func TokenSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// Overlap counts tokens present in both texts.
func Overlap(a, b string) int {
	sa := TokenSet(a)
	sb := TokenSet(b)
	if len(sb) < len(sa) {
		sa, sb = sb, sa
	}
	var n int
	for tok := range sa {
		if _, ok := sb[tok]; ok {
			n++
		}
	}
	return n
}

// Jaccard computes |intersection| / |union| over lowercased token
// sets. Returns 0 when the union is empty.
func Jaccard(a, b string) float64 {
	sa := TokenSet(a)
	sb := TokenSet(b)

	var inter int
	for tok := range sa {
		if _, ok := sb[tok]; ok {
			inter++
		}
	}

	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
