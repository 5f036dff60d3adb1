package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/yogabind/pkg/document"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		vizType string
		want    string
		wantErr bool
	}{
		{"svg boxes", "out.svg", vizBoxes, "svg", false},
		{"upper case extension", "OUT.SVG", vizBoxes, "svg", false},
		{"png tree", "out.png", vizTree, "png", false},
		{"dot tree", "out.dot", vizTree, "dot", false},
		{"json", "out.json", vizBoxes, "json", false},
		{"dot boxes", "out.dot", vizBoxes, "", true},
		{"unknown extension", "out.gif", vizBoxes, "", true},
		{"no extension", "out", vizBoxes, "", true},
		{"unknown type", "out.svg", "tower", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputFormat(tt.path, tt.vizType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("outputFormat(%q, %q) error = %v, wantErr %v", tt.path, tt.vizType, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("outputFormat(%q, %q) = %q, want %q", tt.path, tt.vizType, got, tt.want)
			}
		})
	}
}

func sampleResult() *document.Result {
	return &document.Result{
		Name:    "root",
		Width:   60,
		Height:  20,
		Padding: document.Edges{Left: 2, Top: 2, Right: 2, Bottom: 2},
		Children: []*document.Result{
			{Name: "left", Left: 2, Top: 2, Width: 28, Height: 16},
			{Name: "right", Left: 30, Top: 2, Width: 28, Height: 16},
		},
	}
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name   string
		format string
		opts   renderOpts
		want   string
	}{
		{"boxes svg", "svg", renderOpts{vizType: vizBoxes, labels: true}, ">left</text>"},
		{"tree dot", "dot", renderOpts{vizType: vizTree}, `"root" -> "right";`},
		{"json", "json", renderOpts{vizType: vizBoxes}, `"name": "right"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := renderResult(sampleResult(), tt.format, &tt.opts)
			if err != nil {
				t.Fatalf("renderResult() error: %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, data)
			}
		})
	}
}

func TestResultTable(t *testing.T) {
	out := resultTable(sampleResult())

	for _, want := range []string{"Node", "root", "  left", "  right", "2 2 2 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestEdges(t *testing.T) {
	if got := edges(document.Edges{}); got != "-" {
		t.Errorf("edges(zero) = %q, want -", got)
	}
	if got := edges(document.Edges{Left: 1, Top: 2, Right: 3, Bottom: 4}); got != "2 3 4 1" {
		t.Errorf("edges() = %q, want %q", got, "2 3 4 1")
	}
}
