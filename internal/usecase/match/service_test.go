package match

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/domain"
	"github.com/slidegenie/slidematch/internal/tfidf"
)

// --- Mocks ---

type mockDescriber struct {
	vision        bool
	descriptions  map[string]string
	describeCalls int
}

func (m *mockDescriber) DescribeAll(_ context.Context, images []domain.ImageAsset) []domain.DescribedImage {
	m.describeCalls++
	out := make([]domain.DescribedImage, len(images))
	for i, img := range images {
		out[i] = domain.DescribedImage{Name: img.Name, Description: m.descriptions[img.Name]}
	}
	return out
}

func (m *mockDescriber) HasVision() bool { return m.vision }

// mockSemantic returns a canned score per description text.
type mockSemantic struct {
	scores map[string]float64
}

func (m *mockSemantic) Similarity(_ context.Context, _, description string) float64 {
	return m.scores[description]
}

type mockLexical struct {
	score float64
	calls int
}

func (m *mockLexical) Cosine(_, _ string) tfidf.Similarity {
	m.calls++
	return tfidf.Similarity{Score: m.score}
}

func deckOf(slides ...domain.Slide) *domain.Deck {
	return &domain.Deck{Slides: slides}
}

func TestMatch_VisionAttachesBestAboveThreshold(t *testing.T) {
	describer := &mockDescriber{
		vision: true,
		descriptions: map[string]string{
			"qubits.png":   "superconducting device photograph",
			"vacation.jpg": "beach sunset snapshot",
		},
	}
	semantic := &mockSemantic{scores: map[string]float64{
		"superconducting device photograph": 0.5,
		"beach sunset snapshot":             0.1,
	}}
	s := New(describer, semantic, &mockLexical{}, zap.NewNop())

	deck := deckOf(domain.Slide{
		Title:   "Quantum Hardware",
		Content: domain.TextContent("review of platforms"),
	})
	images := []domain.ImageAsset{{Name: "qubits.png"}, {Name: "vacation.jpg"}}

	s.Match(context.Background(), deck, images, ModeAuto)

	suggestion := deck.Slides[0].Suggestion
	if suggestion == nil {
		t.Fatal("expected a suggestion")
	}
	if suggestion.ImageName != "qubits.png" {
		t.Errorf("suggested image = %q, want qubits.png", suggestion.ImageName)
	}
	// Single-slide deck: closing band 1.2, no echo, no overlap, no
	// context vocabulary in the description: 0.5 * 1.2 = 0.6.
	if suggestion.Score != 0.6 {
		t.Errorf("score = %f, want 0.6", suggestion.Score)
	}
	if suggestion.Description != "superconducting device photograph" {
		t.Errorf("description = %q", suggestion.Description)
	}
}

func TestMatch_VisionNeverAttachesAtOrBelowThreshold(t *testing.T) {
	describer := &mockDescriber{
		vision:       true,
		descriptions: map[string]string{"img.png": "orthogonal depiction"},
	}
	// Middle band, no echo, no overlap, no context vocabulary:
	// boosted score is exactly the threshold and must not qualify.
	semantic := &mockSemantic{scores: map[string]float64{"orthogonal depiction": visionThreshold}}
	s := New(describer, semantic, &mockLexical{}, zap.NewNop())

	deck := deckOf(
		domain.Slide{Title: "one"},
		domain.Slide{Title: "slide body here", Content: domain.TextContent("plain content")},
		domain.Slide{Title: "three"},
		domain.Slide{Title: "four"},
		domain.Slide{Title: "five"},
	)
	s.Match(context.Background(), deck, []domain.ImageAsset{{Name: "img.png"}}, ModeVision)

	if deck.Slides[1].Suggestion != nil {
		t.Errorf("score at threshold must not attach, got %+v", deck.Slides[1].Suggestion)
	}
}

func TestMatch_VisionContextBonus(t *testing.T) {
	describer := &mockDescriber{
		vision:       true,
		descriptions: map[string]string{"intro.png": "introduction figure"},
	}
	semantic := &mockSemantic{scores: map[string]float64{"introduction figure": 0.3}}
	s := New(describer, semantic, &mockLexical{}, zap.NewNop())

	slides := make([]domain.Slide, 10)
	slides[0] = domain.Slide{Title: "Neural networks"}
	for i := 1; i < 10; i++ {
		slides[i] = domain.Slide{Title: "body"}
	}
	deck := deckOf(slides...)

	s.Match(context.Background(), deck, []domain.ImageAsset{{Name: "intro.png"}}, ModeVision)

	suggestion := deck.Slides[0].Suggestion
	if suggestion == nil {
		t.Fatal("expected a suggestion on the opening slide")
	}
	// Opening band without echo: 0.3 * 1.3 + 0.1 context bonus = 0.49.
	if suggestion.Score != 0.49 {
		t.Errorf("score = %f, want 0.49", suggestion.Score)
	}
}

func TestMatch_VisionOverlapBonusIsCapped(t *testing.T) {
	describer := &mockDescriber{
		vision:       true,
		descriptions: map[string]string{"grid.png": "alpha beta gamma delta epsilon zeta"},
	}
	semantic := &mockSemantic{scores: map[string]float64{"alpha beta gamma delta epsilon zeta": 0.2}}
	s := New(describer, semantic, &mockLexical{}, zap.NewNop())

	deck := deckOf(
		domain.Slide{Title: "pad"},
		domain.Slide{Title: "alpha beta gamma", Content: domain.TextContent("delta epsilon")},
		domain.Slide{Title: "pad"},
	)
	s.Match(context.Background(), deck, []domain.ImageAsset{{Name: "grid.png"}}, ModeVision)

	suggestion := deck.Slides[1].Suggestion
	if suggestion == nil {
		t.Fatal("expected a suggestion")
	}
	// Middle band 1.0, five shared words capped at +0.3: 0.2 + 0.3 = 0.5.
	if suggestion.Score != 0.5 {
		t.Errorf("score = %f, want 0.5 (overlap bonus capped)", suggestion.Score)
	}
}

func TestMatch_DescriptionsComputedOncePerInvocation(t *testing.T) {
	describer := &mockDescriber{
		vision:       true,
		descriptions: map[string]string{"a.png": "first", "b.png": "second"},
	}
	s := New(describer, &mockSemantic{}, &mockLexical{}, zap.NewNop())

	deck := deckOf(
		domain.Slide{Title: "one"}, domain.Slide{Title: "two"},
		domain.Slide{Title: "three"}, domain.Slide{Title: "four"},
	)
	s.Match(context.Background(), deck,
		[]domain.ImageAsset{{Name: "a.png"}, {Name: "b.png"}}, ModeVision)

	if describer.describeCalls != 1 {
		t.Errorf("DescribeAll called %d times, want 1", describer.describeCalls)
	}
}

func TestMatch_AutoDegradesToFilename(t *testing.T) {
	describer := &mockDescriber{vision: false}
	lexical := &mockLexical{score: 0}
	s := New(describer, &mockSemantic{}, lexical, zap.NewNop())

	deck := deckOf(domain.Slide{
		Title:   "Neural Network Training",
		Content: domain.TextContent("gradient descent"),
	})
	images := []domain.ImageAsset{{Name: "neural_network_architecture_2024.png"}}

	s.Match(context.Background(), deck, images, ModeAuto)

	if describer.describeCalls != 0 {
		t.Error("filename strategy must not describe images")
	}
	suggestion := deck.Slides[0].Suggestion
	if suggestion == nil {
		t.Fatal("expected a suggestion from the filename strategy")
	}
	// Two shared words (neural, network) at +0.3 each: 0.6 > 0.3.
	if suggestion.Score != 0.6 {
		t.Errorf("score = %f, want 0.6", suggestion.Score)
	}
	if suggestion.Description != "" {
		t.Errorf("filename strategy must not attach a description, got %q", suggestion.Description)
	}
}

func TestMatch_FilenameModeSkipsVisionEvenWhenAvailable(t *testing.T) {
	describer := &mockDescriber{vision: true}
	lexical := &mockLexical{}
	s := New(describer, &mockSemantic{}, lexical, zap.NewNop())

	deck := deckOf(domain.Slide{Title: "Energy Levels", Content: domain.TextContent("spectra")})
	s.Match(context.Background(), deck,
		[]domain.ImageAsset{{Name: "energy_levels.png"}}, ModeFilename)

	if describer.describeCalls != 0 {
		t.Error("ModeFilename must never call the describer")
	}
	if lexical.calls == 0 {
		t.Error("ModeFilename must use the lexical analyzer")
	}
}

func TestMatch_FilenameNeverAttachesAtOrBelowThreshold(t *testing.T) {
	lexical := &mockLexical{score: filenameThreshold} // no overlap bonus below
	s := New(&mockDescriber{}, &mockSemantic{}, lexical, zap.NewNop())

	deck := deckOf(domain.Slide{Title: "completely unrelated topic"})
	s.Match(context.Background(), deck,
		[]domain.ImageAsset{{Name: "zzz_qqq.png"}}, ModeFilename)

	if deck.Slides[0].Suggestion != nil {
		t.Errorf("score at threshold must not attach, got %+v", deck.Slides[0].Suggestion)
	}
}

func TestMatch_EmptyInputsAreNoops(t *testing.T) {
	s := New(&mockDescriber{vision: true}, &mockSemantic{}, &mockLexical{}, zap.NewNop())

	s.Match(context.Background(), nil, []domain.ImageAsset{{Name: "a.png"}}, ModeAuto)

	deck := deckOf(domain.Slide{Title: "one"})
	s.Match(context.Background(), deck, nil, ModeAuto)
	if deck.Slides[0].Suggestion != nil {
		t.Error("empty image pool must leave slides untouched")
	}
}

func TestMatch_DeckShapePreserved(t *testing.T) {
	describer := &mockDescriber{
		vision:       true,
		descriptions: map[string]string{"x.png": "relevant content here"},
	}
	semantic := &mockSemantic{scores: map[string]float64{"relevant content here": 0.9}}
	s := New(describer, semantic, &mockLexical{}, zap.NewNop())

	deck := deckOf(
		domain.Slide{Title: "first"},
		domain.Slide{Title: "second"},
		domain.Slide{Title: "third"},
	)
	s.Match(context.Background(), deck, []domain.ImageAsset{{Name: "x.png"}}, ModeVision)

	if len(deck.Slides) != 3 {
		t.Fatalf("deck shape changed: %d slides", len(deck.Slides))
	}
	titles := []string{"first", "second", "third"}
	for i, want := range titles {
		if deck.Slides[i].Title != want {
			t.Errorf("slide %d title = %q, want %q", i, deck.Slides[i].Title, want)
		}
	}
}
