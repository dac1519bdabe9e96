package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"collapses whitespace", "Quantum   error\n\tcorrection", "quantum error correction"},
		{"keeps basic punctuation", "Results: 95% done. Really!?", "results 95 done. really!?"},
		{"strips special characters", "a#b$c&d", "a b c d"},
		{"lowercases", "Neural NETWORKS", "neural networks"},
		{"trims edges", "  hello world  ", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
