// Package document describes flexbox trees declaratively and lays them out
// with the yoga binding.
//
// # Format
//
// A document is a root node plus the available size. The same structure can
// be written as TOML, YAML or JSON:
//
//	width = 400
//	height = "auto"
//	direction = "ltr"
//
//	[config]
//	web_defaults = false
//	point_scale_factor = 2
//	errata = ["stretch-flex-basis"]
//
//	[root]
//	name = "page"
//	flex_direction = "row"
//	padding = { all = 8 }
//	gap = { column = 4 }
//
//	[[root.children]]
//	name = "sidebar"
//	width = "25%"
//
//	[[root.children]]
//	name = "label"
//	flex_grow = 1
//	measure = { width = 120, height = 18 }
//	baseline = 14
//
// # Values
//
// Dimension, margin, position, padding and gap entries accept numbers
// (points), "N%" strings, "auto" where the property allows it, and nothing at
// all for the default. Edge maps are keyed by edge name (left, top, right,
// bottom, start, end, horizontal, vertical, all); gap maps by gutter (column,
// row, all). Border entries take points only.
//
// Enumerations use their kebab-case names ("flex-start", "row-reverse",
// "space-between"); camelCase and SCREAMING_CASE spellings also parse.
//
// # Leaves
//
// A node with measure = { width, height } is a leaf with a fixed intrinsic
// size. Its measure function honours the engine's measure modes, so the
// size is clamped under AtMost and replaced under Exactly. baseline sets a
// fixed baseline offset for baseline alignment. Measured nodes cannot have
// children.
//
// # Names
//
// Names identify nodes in results and must be unique. Unnamed nodes are
// called node-<path>, where path lists child indexes from the root ("node-0"
// is the root, "node-0.2" its third child).
//
// # Usage
//
//	doc, err := document.Load("page.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := document.Layout(nil, doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	document.WriteJSON(res, os.Stdout)
package document
