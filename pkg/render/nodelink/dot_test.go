package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/yogabind/pkg/document"
)

func tree() *document.Result {
	return &document.Result{
		Name:    "root",
		Width:   100,
		Height:  40,
		Padding: document.Edges{Left: 4, Top: 4, Right: 4, Bottom: 4},
		Children: []*document.Result{
			{Name: "label", Left: 4, Top: 4, Width: 50, Height: 32},
			{Name: "spacer", Left: 54, Top: 4},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(tree(), Options{})

	for _, want := range []string{
		"digraph G {",
		`"root" [label="root"];`,
		`"root" -> "label";`,
		`"root" -> "spacer";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if !strings.Contains(dot, `"spacer" [label="spacer", style="rounded,filled,dashed"`) {
		t.Errorf("zero-sized node not dashed:\n%s", dot)
	}
	if strings.Index(dot, `-> "label"`) > strings.Index(dot, `-> "spacer"`) {
		t.Error("edges out of child order")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(tree(), Options{Detailed: true})

	if !strings.Contains(dot, `size: 100x40\npadding: 4 4 4 4`) {
		t.Errorf("detailed root label missing geometry:\n%s", dot)
	}
	if strings.Contains(dot, "margin:") {
		t.Errorf("zero insets should be omitted:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox = %s, want %s", got, want)
	}
}
