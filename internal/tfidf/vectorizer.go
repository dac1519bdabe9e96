package tfidf

import (
	"math"
	"regexp"
)

// Vectorizer settings shared by keyword extraction and the cosine
// primitive: unigrams plus bigrams, English stop words removed,
// min document frequency 1, max document frequency 95%.
const (
	maxDocFreqRatio = 0.95
	minDocFreq      = 1
)

// tokenPattern matches word tokens of two or more word characters.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// terms extracts the unigram+bigram term sequence of a normalized
// text. Stop words are dropped first; bigrams are formed over the
// surviving token sequence.
func terms(normalized string) []string {
	tokens := tokenPattern.FindAllString(normalized, -1)

	kept := tokens[:0]
	for _, tok := range tokens {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}

	out := make([]string, 0, len(kept)*2)
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}

// docVector is a sparse TF-IDF document vector with a cached L2 norm.
type docVector struct {
	weights map[string]float64
	norm    float64
}

// fit builds L2-normalized TF-IDF vectors over a small corpus.
// Terms above the max document-frequency cutoff are pruned; the
// cutoff is rounded up so that shared terms survive in a
// two-document corpus, which is the whole point of comparing them.
func fit(docs ...[]string) []docVector {
	n := len(docs)

	counts := make([]map[string]float64, n)
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = make(map[string]float64, len(doc))
		for _, term := range doc {
			counts[i][term]++
		}
		for term := range counts[i] {
			df[term]++
		}
	}

	maxDF := int(math.Ceil(maxDocFreqRatio * float64(n)))

	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		if freq > maxDF || freq < minDocFreq {
			continue
		}
		idf[term] = math.Log(float64(1+n)/float64(1+freq)) + 1
	}

	vectors := make([]docVector, n)
	for i, tf := range counts {
		weights := make(map[string]float64, len(tf))
		var norm float64
		for term, count := range tf {
			w, ok := idf[term]
			if !ok {
				continue
			}
			weight := count * w
			weights[term] = weight
			norm += weight * weight
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for term := range weights {
				weights[term] /= norm
			}
		}
		vectors[i] = docVector{weights: weights, norm: norm}
	}
	return vectors
}

// cosine computes the dot product of two L2-normalized vectors.
// Zero vectors yield 0.
func cosine(a, b docVector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	small, large := a.weights, b.weights
	if len(large) < len(small) {
		small, large = large, small
	}
	var dot float64
	for term, w := range small {
		if other, ok := large[term]; ok {
			dot += w * other
		}
	}
	// Guard against floating-point drift above 1.
	return math.Min(dot, 1)
}
