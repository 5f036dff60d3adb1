package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/yogabind/pkg/document"
)

func sample() *document.Result {
	return &document.Result{
		Name:    "root",
		Width:   100,
		Height:  50,
		Padding: document.Edges{Left: 5, Top: 5, Right: 5, Bottom: 5},
		Children: []*document.Result{
			{Name: "a&b", Left: 5, Top: 5, Width: 40, Height: 40},
			{Name: "c", Left: 45, Top: 5, Width: 80, Height: 40},
		},
	}
}

func TestRenderSVGBoxes(t *testing.T) {
	svg := string(RenderSVG(sample()))

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("output does not start with <svg: %q", svg[:20])
	}
	if got := strings.Count(svg, `class="node"`); got != 3 {
		t.Errorf("node rects = %d, want 3", got)
	}
	// c overflows the root, so the canvas grows to its right edge.
	if !strings.Contains(svg, `viewBox="0 0 125.0 50.0"`) {
		t.Errorf("unexpected viewBox in %s", svg)
	}
	if strings.Contains(svg, "<text") {
		t.Error("labels rendered without WithLabels")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(sample(), WithLabels(), WithInsets(), WithMargin(10)))

	if !strings.Contains(svg, "a&amp;b") {
		t.Error("label not escaped")
	}
	if got := strings.Count(svg, `class="content"`); got != 1 {
		t.Errorf("content rects = %d, want 1", got)
	}
	if !strings.Contains(svg, `x="5.0" y="5.0" width="90.0" height="40.0" fill="none"`) {
		t.Errorf("content box missing in %s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 145.0 70.0"`) {
		t.Errorf("margin not applied in %s", svg)
	}
}
