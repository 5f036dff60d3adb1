package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/yogabind/pkg/yoga"
)

// Edges holds a computed value per physical edge.
type Edges struct {
	Left   float32 `json:"left"`
	Top    float32 `json:"top"`
	Right  float32 `json:"right"`
	Bottom float32 `json:"bottom"`
}

// Result is the computed layout of one node and its subtree. Left and Top are
// relative to the parent.
type Result struct {
	Name     string    `json:"name"`
	Left     float32   `json:"left"`
	Top      float32   `json:"top"`
	Width    float32   `json:"width"`
	Height   float32   `json:"height"`
	Margin   Edges     `json:"margin"`
	Border   Edges     `json:"border"`
	Padding  Edges     `json:"padding"`
	Children []*Result `json:"children,omitempty"`
}

// Result exports the computed layout. Call it after Layout.
func (t *Tree) Result() (*Result, error) {
	return t.result(t.Root)
}

func (t *Tree) result(n *yoga.Node) (*Result, error) {
	l, err := n.ComputedLayout()
	if err != nil {
		return nil, err
	}
	r := &Result{
		Name:   t.names[n],
		Left:   l.Left,
		Top:    l.Top,
		Width:  l.Width,
		Height: l.Height,
	}
	if r.Margin, err = edges(n.ComputedMargin); err != nil {
		return nil, err
	}
	if r.Border, err = edges(n.ComputedBorder); err != nil {
		return nil, err
	}
	if r.Padding, err = edges(n.ComputedPadding); err != nil {
		return nil, err
	}

	count, err := n.ChildCount()
	if err != nil {
		return nil, err
	}
	for i := range count {
		child, err := n.Child(i)
		if err != nil {
			return nil, err
		}
		cr, err := t.result(child)
		if err != nil {
			return nil, err
		}
		r.Children = append(r.Children, cr)
	}
	return r, nil
}

func edges(get func(yoga.Edge) (float32, error)) (Edges, error) {
	var out Edges
	dst := []*float32{&out.Left, &out.Top, &out.Right, &out.Bottom}
	for i, e := range yoga.PhysicalEdges {
		v, err := get(e)
		if err != nil {
			return Edges{}, err
		}
		*dst[i] = v
	}
	return out, nil
}

// Walk visits r and its descendants depth-first, passing each node's depth
// and absolute offset.
func (r *Result) Walk(fn func(r *Result, depth int, x, y float32)) {
	r.walk(fn, 0, 0, 0)
}

func (r *Result) walk(fn func(*Result, int, float32, float32), depth int, px, py float32) {
	x, y := px+r.Left, py+r.Top
	fn(r, depth, x, y)
	for _, c := range r.Children {
		c.walk(fn, depth+1, x, y)
	}
}

// Find returns the node called name, or nil.
func (r *Result) Find(name string) *Result {
	if r.Name == name {
		return r
	}
	for _, c := range r.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(r *Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes r to a JSON file at path.
func ExportJSON(r *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(r, f)
}
