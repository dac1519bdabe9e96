package relevance

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/domain"
	"github.com/slidegenie/slidematch/internal/usecase/describe"
	"github.com/slidegenie/slidematch/internal/usecase/semantic"
)

type mockDescriber struct {
	descriptions map[string]string
}

func (m *mockDescriber) Describe(_ context.Context, img domain.ImageAsset) string {
	return m.descriptions[img.Name]
}

type mockSemantic struct {
	scores map[string]float64
}

func (m *mockSemantic) Similarity(_ context.Context, _, description string) float64 {
	return m.scores[description]
}

func TestRank_DescendingOrder(t *testing.T) {
	describer := &mockDescriber{descriptions: map[string]string{
		"low.png":  "low description",
		"high.png": "high description",
		"mid.png":  "mid description",
	}}
	sem := &mockSemantic{scores: map[string]float64{
		"low description":  0.1,
		"high description": 0.9,
		"mid description":  0.5,
	}}
	s := New(describer, sem, zap.NewNop())

	got := s.Rank(context.Background(), "presentation goals text",
		[]domain.ImageAsset{{Name: "low.png"}, {Name: "high.png"}, {Name: "mid.png"}})

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []string{"high.png", "mid.png", "low.png"}
	for i, want := range wantOrder {
		if got[i].ImageName != want {
			t.Errorf("rank %d = %q, want %q", i, got[i].ImageName, want)
		}
	}
}

func TestRank_TiesPreserveInputOrder(t *testing.T) {
	describer := &mockDescriber{descriptions: map[string]string{
		"first.png":  "same score one",
		"second.png": "same score two",
		"third.png":  "same score three",
	}}
	sem := &mockSemantic{scores: map[string]float64{
		"same score one":   0.5,
		"same score two":   0.5,
		"same score three": 0.5,
	}}
	s := New(describer, sem, zap.NewNop())

	got := s.Rank(context.Background(), "goals",
		[]domain.ImageAsset{{Name: "first.png"}, {Name: "second.png"}, {Name: "third.png"}})

	wantOrder := []string{"first.png", "second.png", "third.png"}
	for i, want := range wantOrder {
		if got[i].ImageName != want {
			t.Errorf("rank %d = %q, want %q (stable sort)", i, got[i].ImageName, want)
		}
	}
}

func TestRank_EmptyDescriptionStaysInRanking(t *testing.T) {
	describer := &mockDescriber{descriptions: map[string]string{
		"good.png":   "a perfectly good description",
		"broken.png": "",
	}}
	sem := &mockSemantic{scores: map[string]float64{
		"a perfectly good description": 0.7,
	}}
	s := New(describer, sem, zap.NewNop())

	got := s.Rank(context.Background(), "goals text",
		[]domain.ImageAsset{{Name: "broken_pipeline_graph.png", Bytes: nil}, {Name: "good.png"}})

	if len(got) != 2 {
		t.Fatalf("a failing image must not be dropped: len = %d", len(got))
	}
	// The broken image ranks last with a zero score and best-effort
	// filename keywords.
	last := got[1]
	if last.ImageName != "broken_pipeline_graph.png" {
		t.Fatalf("last entry = %q", last.ImageName)
	}
	if last.Score != 0 {
		t.Errorf("broken image score = %f, want 0", last.Score)
	}
	if len(last.Keywords) == 0 {
		t.Error("broken image must keep best-effort keywords")
	}
	if len(last.CommonThemes) != 0 {
		t.Errorf("broken image common themes = %v, want empty", last.CommonThemes)
	}
}

func TestRank_EmptyInputs(t *testing.T) {
	s := New(&mockDescriber{}, &mockSemantic{}, zap.NewNop())
	if got := s.Rank(context.Background(), "", []domain.ImageAsset{{Name: "a.png"}}); got != nil {
		t.Errorf("empty goals = %v, want nil", got)
	}
	if got := s.Rank(context.Background(), "goals", nil); got != nil {
		t.Errorf("empty pool = %v, want nil", got)
	}
}

// End-to-end over the real describe and semantic services in their
// degraded modes: filename descriptions and Jaccard similarity.
func TestRank_EndToEndFilenameFallback(t *testing.T) {
	describer := describe.New(nil, time.Second, zap.NewNop())
	engine := semantic.New(nil, zap.NewNop())
	s := New(describer, engine, zap.NewNop())

	goals := "quantum error correction techniques"
	images := []domain.ImageAsset{
		{Name: "vacation_photo.jpg"},
		{Name: "quantum_circuit_diagram.png"},
	}

	got := s.Rank(context.Background(), goals, images)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	first := got[0]
	if first.ImageName != "quantum_circuit_diagram.png" {
		t.Fatalf("top image = %q, want the quantum circuit", first.ImageName)
	}
	if first.Score <= got[1].Score {
		t.Errorf("quantum image score %f must exceed vacation score %f", first.Score, got[1].Score)
	}

	foundQuantum := false
	for _, theme := range first.CommonThemes {
		if theme == "quantum" {
			foundQuantum = true
		}
	}
	if !foundQuantum {
		t.Errorf("common themes %v must contain \"quantum\"", first.CommonThemes)
	}
}
