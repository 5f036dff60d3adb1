// Package nodelink renders layout results as node-link trees.
//
// # Overview
//
// Each node of a [document.Result] becomes a Graphviz box connected to its
// parent, top to bottom in child order. This view is handy when boxes overlap
// or nest too deeply to read.
//
// # Usage
//
//	dot := nodelink.ToDOT(res, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use [RenderPDF] and [RenderPNG].
//
// # Options
//
//   - Detailed: labels include position, size and non-zero insets.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
