// Package semantic computes text similarity over dense sentence
// embeddings, degrading to Jaccard token-set similarity whenever the
// embedding capability is absent or failing.
package semantic

import (
	"context"
	"errors"
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/domain"
	"github.com/slidegenie/slidematch/internal/textutil"
)

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Engine scores text pairs. A nil embedder means the engine runs
// lexical-only from the start; an embedder that reports itself
// unavailable disables the embedding path for the rest of the
// process. Safe for concurrent use.
type Engine struct {
	embedder Embedder
	disabled atomic.Bool
	logger   *zap.Logger
}

// New creates a semantic similarity engine. embedder may be nil.
func New(embedder Embedder, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{embedder: embedder, logger: logger}
	if embedder == nil {
		e.disabled.Store(true)
	}
	return e
}

// HasEmbeddings reports whether the embedding path is still live.
func (e *Engine) HasEmbeddings() bool {
	return !e.disabled.Load()
}

// Similarity returns the similarity of two texts in [0,1] (embedding
// cosine when available, Jaccard otherwise). It never fails: any
// provider error falls back to the lexical score for that call.
func (e *Engine) Similarity(ctx context.Context, textA, textB string) float64 {
	if e.disabled.Load() {
		return textutil.Jaccard(textA, textB)
	}

	vecA, err := e.embedder.Embed(ctx, textA)
	if err != nil {
		return e.fallback(textA, textB, err)
	}
	vecB, err := e.embedder.Embed(ctx, textB)
	if err != nil {
		return e.fallback(textA, textB, err)
	}

	return cosine32(vecA.Embedding, vecB.Embedding)
}

// fallback degrades a single call to Jaccard, permanently disabling
// the embedding path when the provider reports it unavailable.
func (e *Engine) fallback(textA, textB string, err error) float64 {
	if errors.Is(err, domain.ErrEmbeddingUnavailable) {
		if e.disabled.CompareAndSwap(false, true) {
			e.logger.Warn("Embedding capability unavailable, lexical fallback for the rest of the process",
				zap.Error(err))
		}
	} else {
		e.logger.Warn("Embedding failed, lexical fallback for this call", zap.Error(err))
	}
	return textutil.Jaccard(textA, textB)
}

// cosine32 computes the cosine similarity of two embedding vectors.
// Mismatched dimensions or zero vectors yield 0.
func cosine32(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
