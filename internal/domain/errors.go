package domain

import "errors"

var (
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrEmbeddingUnavailable signals that no embedding capability is
	// configured for this process.
	ErrEmbeddingUnavailable = errors.New("embedding capability unavailable")
	// ErrVisionProviderError signals a vision provider failure.
	ErrVisionProviderError = errors.New("vision provider error")
	// ErrVisionUnavailable signals that no vision capability is
	// configured for this process.
	ErrVisionUnavailable = errors.New("vision capability unavailable")
)
