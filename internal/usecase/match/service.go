// Package match implements the image-to-slide scorer and selector.
// Two scoring strategies share one entry point: the vision strategy
// scores semantic similarity against AI-derived image descriptions,
// the filename strategy scores TF-IDF similarity against
// filename-derived keywords. Their bonus formulas and acceptance
// thresholds differ and are not comparable across strategies.
package match

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/domain"
	"github.com/slidegenie/slidematch/internal/textutil"
)

// Mode selects the scoring strategy.
type Mode string

const (
	// ModeAuto uses vision when available, filename otherwise.
	ModeAuto Mode = "auto"
	// ModeVision forces description-based matching (still degrades to
	// filename matching when the capability is absent).
	ModeVision Mode = "vision"
	// ModeFilename forces filename-based matching and never calls the
	// vision provider.
	ModeFilename Mode = "filename"
)

// Acceptance thresholds and bonus terms. The two strategies' scales
// were tuned together with their bonus arithmetic; boosted scores are
// additive and may exceed 1.
const (
	visionThreshold = 0.4
	// visionOverlapStep and cap: +0.1 per shared word, at most +0.3.
	visionOverlapStep = 0.1
	visionOverlapCap  = 0.3
	// contextBonus applies when the description uses the slide
	// position's expected vocabulary.
	contextBonus = 0.1

	filenameThreshold = 0.3
	// filenameOverlapStep has no cap.
	filenameOverlapStep = 0.3
)

// Service matches candidate images to slides.
type Service struct {
	describer Describer
	semantic  SemanticEngine
	lexical   LexicalAnalyzer
	logger    *zap.Logger
}

// New creates a match service.
func New(describer Describer, semantic SemanticEngine, lexical LexicalAnalyzer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{describer: describer, semantic: semantic, lexical: lexical, logger: logger}
}

// Match annotates each slide of the deck with its best-scoring image,
// if any clears the strategy's acceptance threshold. The deck keeps
// its shape and order; slides without a qualifying image are left
// untouched. Descriptions are derived once per image and reused
// across all slides. Never fails.
func (s *Service) Match(ctx context.Context, deck *domain.Deck, images []domain.ImageAsset, mode Mode) {
	if deck == nil || len(deck.Slides) == 0 || len(images) == 0 {
		return
	}

	useVision := mode != ModeFilename && s.describer.HasVision()
	if mode == ModeVision && !useVision {
		s.logger.Warn("Vision matching requested but capability absent, using filename matching")
	}

	if useVision {
		s.matchByDescription(ctx, deck, images)
		return
	}
	s.matchByFilename(deck, images)
}

// matchByDescription is the vision strategy: semantic similarity
// against AI descriptions, position-weighted, with capped word-overlap
// and context-vocabulary bonuses.
func (s *Service) matchByDescription(ctx context.Context, deck *domain.Deck, images []domain.ImageAsset) {
	described := s.describer.DescribeAll(ctx, images)
	total := len(deck.Slides)

	for i := range deck.Slides {
		slide := &deck.Slides[i]
		slideText := slide.CombinedText()

		weight, contextKeywords := ContextWeight(slideText, i+1, total)

		var best *domain.DescribedImage
		bestScore := 0.0

		for j := range described {
			img := &described[j]
			score := s.semantic.Similarity(ctx, slideText, img.Description)
			score *= weight

			if overlap := textutil.Overlap(slideText, img.Description); overlap > 0 {
				score += math.Min(visionOverlapStep*float64(overlap), visionOverlapCap)
			}
			if containsAny(strings.ToLower(img.Description), contextKeywords) {
				score += contextBonus
			}

			if score > bestScore && score > visionThreshold {
				bestScore = score
				best = img
			}
		}

		if best != nil {
			slide.Suggestion = &domain.Suggestion{
				ImageName:   best.Name,
				Score:       round3(bestScore),
				Description: best.Description,
			}
		}
	}
}

// matchByFilename is the degraded strategy: TF-IDF cosine between the
// normalized slide text and filename-derived keywords, with an
// uncapped word-overlap bonus and a lower threshold.
func (s *Service) matchByFilename(deck *domain.Deck, images []domain.ImageAsset) {
	type candidate struct {
		name    string
		context string
	}
	candidates := make([]candidate, 0, len(images))
	for _, img := range images {
		keywords := textutil.FilenameKeywords(img.Name)
		if len(keywords) == 0 {
			continue
		}
		candidates = append(candidates, candidate{
			name:    img.Name,
			context: strings.Join(keywords, " "),
		})
	}

	for i := range deck.Slides {
		slide := &deck.Slides[i]
		slideText := textutil.Normalize(slide.CombinedText())
		if slideText == "" {
			continue
		}

		var bestName string
		bestScore := 0.0

		for _, c := range candidates {
			score := s.lexical.Cosine(slideText, c.context).Score

			if overlap := textutil.Overlap(slideText, c.context); overlap > 0 {
				score += filenameOverlapStep * float64(overlap)
			}

			if score > bestScore && score > filenameThreshold {
				bestScore = score
				bestName = c.name
			}
		}

		if bestName != "" {
			slide.Suggestion = &domain.Suggestion{
				ImageName: bestName,
				Score:     round3(bestScore),
			}
		}
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
