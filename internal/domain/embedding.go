package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// VisionDescriber converts an image into a textual description via a
// vision-capable model. Implementations may fail or time out; callers
// are required to degrade gracefully.
type VisionDescriber interface {
	DescribeImage(ctx context.Context, image []byte, name string) (string, error)
}

// HealthChecker verifies provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbeddingResult carries the embedding vector and token usage through
// the decorator chain.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}
