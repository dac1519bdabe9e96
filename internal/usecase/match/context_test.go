package match

import (
	"reflect"
	"testing"
)

func TestContextWeight_Bands(t *testing.T) {
	tests := []struct {
		name         string
		position     int
		total        int
		wantWeight   float64
		wantKeywords []string
	}{
		{"first of ten is opening", 1, 10, 1.3, openingKeywords},
		{"opening boundary", 2, 10, 1.3, openingKeywords},
		{"middle of ten", 5, 10, 1.0, middleKeywords},
		{"middle boundary", 8, 10, 1.0, middleKeywords},
		{"ninth of ten is closing", 9, 10, 1.2, closingKeywords},
		{"last of ten is closing", 10, 10, 1.2, closingKeywords},
		{"single slide deck is closing", 1, 1, 1.2, closingKeywords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weight, keywords := ContextWeight("orthogonal slide text", tt.position, tt.total)
			if weight != tt.wantWeight {
				t.Errorf("weight = %f, want %f", weight, tt.wantWeight)
			}
			if !reflect.DeepEqual(keywords, tt.wantKeywords) {
				t.Errorf("keywords = %v, want %v", keywords, tt.wantKeywords)
			}
		})
	}
}

func TestContextWeight_Monotonicity(t *testing.T) {
	// For fixed slide text, opening > middle and closing >= middle.
	text := "slide body with no positional vocabulary"
	opening, _ := ContextWeight(text, 1, 10)
	middle, _ := ContextWeight(text, 5, 10)
	closing, _ := ContextWeight(text, 10, 10)

	if opening <= middle {
		t.Errorf("opening %f must exceed middle %f", opening, middle)
	}
	if closing < middle {
		t.Errorf("closing %f must be at least middle %f", closing, middle)
	}
}

func TestContextWeight_EchoBoost(t *testing.T) {
	weight, _ := ContextWeight("agenda for today", 1, 10)
	if weight != 1.3*1.1 {
		t.Errorf("opening with echo = %f, want %f", weight, 1.3*1.1)
	}

	// Vocabulary of a different band does not boost.
	weight, _ = ContextWeight("conclusion slide", 1, 10)
	if weight != 1.3 {
		t.Errorf("opening without matching echo = %f, want 1.3", weight)
	}

	// Echo check is case-insensitive on the slide text.
	weight, _ = ContextWeight("RESULTS AND ANALYSIS", 5, 10)
	if weight != 1.0*1.1 {
		t.Errorf("middle with echo = %f, want %f", weight, 1.0*1.1)
	}
}

func TestContextWeight_ZeroTotal(t *testing.T) {
	weight, keywords := ContextWeight("anything", 1, 0)
	if weight != 1.0 {
		t.Errorf("weight = %f, want 1.0", weight)
	}
	if !reflect.DeepEqual(keywords, middleKeywords) {
		t.Errorf("keywords = %v, want middle set", keywords)
	}
}
