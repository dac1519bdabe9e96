package match

import (
	"context"

	"github.com/slidegenie/slidematch/internal/domain"
	"github.com/slidegenie/slidematch/internal/tfidf"
)

// Describer derives image descriptions, one per image per invocation.
type Describer interface {
	DescribeAll(ctx context.Context, images []domain.ImageAsset) []domain.DescribedImage
	HasVision() bool
}

// SemanticEngine scores text pairs with embedding or lexical fallback.
type SemanticEngine interface {
	Similarity(ctx context.Context, textA, textB string) float64
}

// LexicalAnalyzer is the TF-IDF cosine primitive used in degraded mode.
type LexicalAnalyzer interface {
	Cosine(textA, textB string) tfidf.Similarity
}
