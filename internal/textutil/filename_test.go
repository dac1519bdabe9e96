package textutil

import (
	"reflect"
	"testing"
)

func TestFilenameKeywords(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     []string
	}{
		{
			name:     "separators year and extension removed",
			filename: "neural_network_architecture_2024.png",
			want:     []string{"neural", "network", "architecture"},
		},
		{
			name:     "mixed separators",
			filename: "quantum-circuit.diagram.jpg",
			want:     []string{"quantum", "circuit", "diagram"},
		},
		{
			name:     "generic media tokens dropped",
			filename: "screenshot_of_results_chart.png",
			want:     []string{"results"},
		},
		{
			name:     "short tokens dropped",
			filename: "a_b_my_plot.png",
			want:     []string{},
		},
		{
			name:     "case preserved but stop check is case-insensitive",
			filename: "Figure_Energy_Levels.png",
			want:     []string{"Energy", "Levels"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilenameKeywords(tt.filename)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilenameKeywords(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestFilenameDescription(t *testing.T) {
	got := FilenameDescription("gene_expression-heatmap.png")
	want := "Image related to: gene expression heatmap"
	if got != want {
		t.Errorf("FilenameDescription() = %q, want %q", got, want)
	}
}

func TestCleanFilename_NoExtension(t *testing.T) {
	if got := CleanFilename("results_overview"); got != "results overview" {
		t.Errorf("CleanFilename() = %q", got)
	}
}
