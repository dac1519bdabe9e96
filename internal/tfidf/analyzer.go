// Package tfidf implements the lexical similarity engine: a small
// TF-IDF vector space over unigrams and bigrams with cosine similarity
// and keyword extraction. It is the canonical lexical primitive used
// wherever two texts are compared without embeddings.
package tfidf

import (
	"sort"

	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/textutil"
)

// Qualitative labels attached to cosine scores.
const (
	LabelExcellent    = "excellent match"
	LabelGood         = "good alignment"
	LabelModerate     = "moderate relevance"
	LabelLow          = "low relevance"
	LabelInsufficient = "insufficient content"
)

const (
	// minKeywordTextLen is the minimum normalized length for keyword
	// extraction; shorter texts yield an empty list.
	minKeywordTextLen = 10
	// minCosineTextLen is the minimum normalized length per side for
	// the cosine primitive.
	minCosineTextLen = 5
	// sharedWeightFloor is the per-document weight a term needs on
	// both sides to count as a shared keyword.
	sharedWeightFloor = 0.1
	// maxSharedKeywords caps the shared keyword list.
	maxSharedKeywords = 10
)

// Similarity is the result of the lexical cosine primitive.
type Similarity struct {
	Score          float64
	SharedKeywords []string
	Label          string
}

// Analyzer computes TF-IDF similarity and keyword rankings.
// The zero analyzer is not usable; construct with New.
type Analyzer struct {
	logger *zap.Logger
}

// New creates a lexical analyzer.
func New(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// ExtractKeywords ranks the terms of a single text by TF-IDF weight
// and returns the topN term strings. Texts whose normalized form is
// shorter than ten characters yield an empty list, as does a
// vocabulary that degenerates to nothing after stop-word filtering.
// It never fails.
func (a *Analyzer) ExtractKeywords(text string, topN int) []string {
	normalized := textutil.Normalize(text)
	if len(normalized) < minKeywordTextLen || topN <= 0 {
		return nil
	}

	doc := terms(normalized)
	if len(doc) == 0 {
		a.logger.Warn("keyword extraction yielded empty vocabulary",
			zap.Int("text_len", len(normalized)))
		return nil
	}

	vec := fit(doc)[0]

	type ranked struct {
		term   string
		weight float64
	}
	all := make([]ranked, 0, len(vec.weights))
	for term, w := range vec.weights {
		all = append(all, ranked{term, w})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].weight != all[j].weight {
			return all[i].weight > all[j].weight
		}
		return all[i].term < all[j].term
	})

	if len(all) > topN {
		all = all[:topN]
	}
	keywords := make([]string, len(all))
	for i, r := range all {
		keywords[i] = r.term
	}
	return keywords
}

// Cosine fits one shared TF-IDF space over the two texts and returns
// their cosine similarity, the shared keywords weighted on both
// sides, and a qualitative label. Texts below the five-character
// minimum give (0, nil, "insufficient content"); a fully degenerate
// vocabulary gives an "analysis error" label. It never fails.
func (a *Analyzer) Cosine(textA, textB string) Similarity {
	normA := textutil.Normalize(textA)
	normB := textutil.Normalize(textB)
	if len(normA) < minCosineTextLen || len(normB) < minCosineTextLen {
		return Similarity{Label: LabelInsufficient}
	}

	docA := terms(normA)
	docB := terms(normB)
	if len(docA) == 0 && len(docB) == 0 {
		a.logger.Warn("cosine similarity over empty vocabulary")
		return Similarity{Label: "analysis error: empty vocabulary"}
	}

	vecs := fit(docA, docB)
	score := cosine(vecs[0], vecs[1])

	return Similarity{
		Score:          score,
		SharedKeywords: sharedKeywords(vecs[0], vecs[1]),
		Label:          scoreLabel(score),
	}
}

// sharedKeywords returns the top terms significantly weighted in both
// documents, ranked by averaged weight.
func sharedKeywords(a, b docVector) []string {
	type shared struct {
		term string
		avg  float64
	}
	var common []shared
	for term, wa := range a.weights {
		wb, ok := b.weights[term]
		if !ok {
			continue
		}
		if wa > sharedWeightFloor && wb > sharedWeightFloor {
			common = append(common, shared{term, (wa + wb) / 2})
		}
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].avg != common[j].avg {
			return common[i].avg > common[j].avg
		}
		return common[i].term < common[j].term
	})

	if len(common) > maxSharedKeywords {
		common = common[:maxSharedKeywords]
	}
	if len(common) == 0 {
		return nil
	}
	keywords := make([]string, len(common))
	for i, s := range common {
		keywords[i] = s.term
	}
	return keywords
}

func scoreLabel(score float64) string {
	switch {
	case score > 0.7:
		return LabelExcellent
	case score > 0.5:
		return LabelGood
	case score > 0.3:
		return LabelModerate
	default:
		return LabelLow
	}
}
