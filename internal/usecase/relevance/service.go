// Package relevance ranks an image pool against a single goals text.
// Unlike the per-slide matcher there is no positional context; every
// image gets exactly one score and the result is a descending,
// stably-sorted list. A single image's failure degrades that entry to
// a zero score instead of dropping it.
package relevance

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/domain"
	"github.com/slidegenie/slidematch/internal/textutil"
)

// Describer derives a description for one image; it must never fail.
type Describer interface {
	Describe(ctx context.Context, img domain.ImageAsset) string
}

// SemanticEngine scores text pairs with embedding or lexical fallback.
type SemanticEngine interface {
	Similarity(ctx context.Context, textA, textB string) float64
}

// Service ranks images by relevance to presentation goals.
type Service struct {
	describer Describer
	semantic  SemanticEngine
	logger    *zap.Logger
}

// New creates a relevance ranking service.
func New(describer Describer, semantic SemanticEngine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{describer: describer, semantic: semantic, logger: logger}
}

// Rank scores every image against the goals text and returns entries
// sorted by score descending; ties keep pool order. An empty goals
// text or pool yields an empty list. Never fails.
func (s *Service) Rank(ctx context.Context, goals string, images []domain.ImageAsset) []domain.RelevanceEntry {
	if goals == "" || len(images) == 0 {
		return nil
	}

	goalThemes := textutil.Themes(goals)

	entries := make([]domain.RelevanceEntry, 0, len(images))
	for _, img := range images {
		entries = append(entries, s.scoreImage(ctx, goals, goalThemes, img))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// scoreImage builds one entry. Keywords are the description's themes,
// falling back to filename keywords when the description yields none.
func (s *Service) scoreImage(
	ctx context.Context, goals string, goalThemes []string, img domain.ImageAsset,
) domain.RelevanceEntry {
	description := s.describer.Describe(ctx, img)
	if description == "" {
		s.logger.Warn("Empty description, image scored zero", zap.String("image", img.Name))
		return domain.RelevanceEntry{
			ImageName:    img.Name,
			Keywords:     textutil.FilenameKeywords(img.Name),
			CommonThemes: []string{},
		}
	}

	score := s.semantic.Similarity(ctx, goals, description)

	keywords := textutil.Themes(description)
	if len(keywords) == 0 {
		keywords = textutil.FilenameKeywords(img.Name)
	}

	return domain.RelevanceEntry{
		ImageName:    img.Name,
		Score:        round3(score),
		Description:  description,
		Keywords:     keywords,
		CommonThemes: textutil.CommonThemes(keywords, goalThemes),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
