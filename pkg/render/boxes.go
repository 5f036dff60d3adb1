package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/yogabind/pkg/document"
)

// palette fills boxes by depth so nesting stays visible.
var palette = []string{"#f4f1de", "#e0ecf7", "#e3f2e1", "#fbe3d6", "#ece2f4", "#fdf3c4"}

// SVGOption configures box rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels bool
	insets bool
	margin float32
}

// WithLabels writes each node name in the top-left corner of its box.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithInsets outlines the content box inside border and padding.
func WithInsets() SVGOption { return func(r *svgRenderer) { r.insets = true } }

// WithMargin adds empty space around the drawing.
func WithMargin(m float32) SVGOption { return func(r *svgRenderer) { r.margin = m } }

// RenderSVG draws res as nested rectangles.
func RenderSVG(res *document.Result, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := extent(res)
	w += 2 * r.margin
	h += 2 * r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f)" font-family="monospace" font-size="10">`+"\n", r.margin, r.margin)
	res.Walk(func(n *document.Result, depth int, x, y float32) {
		r.box(&buf, n, depth, x, y)
	})
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) box(buf *bytes.Buffer, n *document.Result, depth int, x, y float32) {
	fill := palette[depth%len(palette)]
	fmt.Fprintf(buf, `    <rect class="node" id="node-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#333" stroke-width="1"/>`+"\n",
		escape(n.Name), x, y, n.Width, n.Height, fill)

	if r.insets {
		cx := x + n.Border.Left + n.Padding.Left
		cy := y + n.Border.Top + n.Padding.Top
		cw := n.Width - n.Border.Left - n.Border.Right - n.Padding.Left - n.Padding.Right
		ch := n.Height - n.Border.Top - n.Border.Bottom - n.Padding.Top - n.Padding.Bottom
		if cw > 0 && ch > 0 && (cx != x || cy != y || cw != n.Width || ch != n.Height) {
			fmt.Fprintf(buf, `    <rect class="content" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#999" stroke-dasharray="3 2"/>`+"\n",
				cx, cy, cw, ch)
		}
	}

	if r.labels {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f">%s</text>`+"\n", x+2, y+11, escape(n.Name))
	}
}

// extent returns the size of the bounding box of every node.
func extent(res *document.Result) (w, h float32) {
	res.Walk(func(n *document.Result, _ int, x, y float32) {
		w = max(w, x+n.Width)
		h = max(h, y+n.Height)
	})
	return w, h
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
