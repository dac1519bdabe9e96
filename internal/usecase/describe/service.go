// Package describe turns images into textual descriptions for
// similarity scoring. The vision provider is best-effort: every
// failure path lands on filename decomposition, so a description is
// always produced and no error ever reaches the caller.
package describe

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/domain"
	"github.com/slidegenie/slidematch/internal/metrics"
	"github.com/slidegenie/slidematch/internal/textutil"
)

// Vision is the consumer contract for the vision provider.
type Vision interface {
	DescribeImage(ctx context.Context, image []byte, name string) (string, error)
}

// Service derives image descriptions with graceful degradation.
type Service struct {
	vision  Vision // nil when the capability is absent
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a description service. vision may be nil; timeout bounds
// each individual vision call.
func New(vision Vision, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{vision: vision, timeout: timeout, logger: logger}
}

// HasVision reports whether the vision path is configured.
func (s *Service) HasVision() bool {
	return s.vision != nil
}

// Describe returns a description for one image: the vision analysis
// when available, otherwise the filename fallback. Never fails.
func (s *Service) Describe(ctx context.Context, img domain.ImageAsset) string {
	if s.vision == nil {
		return textutil.FilenameDescription(img.Name)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	description, err := s.vision.DescribeImage(callCtx, img.Bytes, img.Name)
	if err != nil {
		metrics.VisionFallbacksTotal.Inc()
		s.logger.Warn("Vision analysis failed, using filename fallback",
			zap.String("image", img.Name),
			zap.Error(err),
		)
		return textutil.FilenameDescription(img.Name)
	}
	return description
}

// DescribeAll describes every image exactly once, preserving pool
// order. A failed vision call degrades only that image's entry.
func (s *Service) DescribeAll(ctx context.Context, images []domain.ImageAsset) []domain.DescribedImage {
	described := make([]domain.DescribedImage, len(images))
	for i, img := range images {
		described[i] = domain.DescribedImage{
			Name:        img.Name,
			Description: s.Describe(ctx, img),
		}
	}
	return described
}
