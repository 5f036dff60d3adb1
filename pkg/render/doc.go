// Package render draws computed layouts.
//
// # Overview
//
// [RenderSVG] paints a [document.Result] as nested boxes at their absolute
// positions, one rectangle per node, so the output reads like a browser's
// layout overlay:
//
//	res, err := document.Layout(nil, doc)
//	svg := render.RenderSVG(res, render.WithLabels(), render.WithInsets())
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG with the external rsvg-convert tool
// (from librsvg):
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the node hierarchy as a Graphviz tree,
// which is easier to read than boxes for deep documents.
//
// [nodelink]: github.com/matzehuels/yogabind/pkg/render/nodelink
package render
