// Package analyze scores an uploaded corpus against the user's stated
// presentation goals and assembles the context block fed to the
// generation step.
package analyze

import (
	"fmt"
	"strings"

	"github.com/slidegenie/slidematch/internal/tfidf"
)

// maxSupportingContentLen bounds the supporting material included in
// the generated context block.
const maxSupportingContentLen = 2000

// Lexical is the TF-IDF cosine primitive.
type Lexical interface {
	Cosine(textA, textB string) tfidf.Similarity
}

// Service analyzes goals-vs-content relevance.
type Service struct {
	lexical Lexical
}

// New creates an analysis service.
func New(lexical Lexical) *Service {
	return &Service{lexical: lexical}
}

// Relevance scores the extracted corpus against the goals text.
func (s *Service) Relevance(goals, content string) tfidf.Similarity {
	return s.lexical.Cosine(goals, content)
}

// ContextPrompt assembles the enhanced generation context from a
// relevance analysis: user objectives, a relevance verdict, the key
// shared themes, and the supporting material truncated to a bounded
// length.
func ContextPrompt(goals, content string, sim tfidf.Similarity) string {
	parts := []string{
		"USER OBJECTIVES: " + goals,
	}

	if sim.Score > 0.5 {
		parts = append(parts, fmt.Sprintf(
			"CONTENT RELEVANCE: High relevance detected (similarity: %.2f)", sim.Score))
		if len(sim.SharedKeywords) > 0 {
			themes := sim.SharedKeywords
			if len(themes) > 5 {
				themes = themes[:5]
			}
			parts = append(parts, "KEY THEMES: "+strings.Join(themes, ", "))
		}
	} else {
		parts = append(parts, fmt.Sprintf(
			"CONTENT RELEVANCE: Lower relevance (similarity: %.2f) - focus on user goals", sim.Score))
	}

	if content != "" {
		if len(content) > maxSupportingContentLen {
			parts = append(parts, "SUPPORTING MATERIALS (truncated): "+content[:maxSupportingContentLen]+"...")
		} else {
			parts = append(parts, "SUPPORTING MATERIALS: "+content)
		}
	}

	return strings.Join(parts, "\n\n")
}
