// Package pkg provides the libraries behind yogabind, a managed binding over
// the Yoga flexbox layout engine.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [yoga] - The binding: nodes, configs, style values, callbacks
//  2. [native] - The engine boundary: the entry-point table, the in-process
//     engine ([native/inproc]) and the shared-library shim ([native/shim])
//  3. [engine] - Engine selection from defaults, config file, env and flags
//  4. Tooling: [document] (declarative layout files), [render] (SVG and
//     Graphviz output) and [api] (HTTP layout service)
//
// Support packages: [errors] (coded errors), [observability] (hooks) and
// [buildinfo] (version stamping).
//
// # Architecture
//
// A layout request flows through:
//
//	TOML/YAML/JSON document
//	         ↓
//	    [document] package (decode, build nodes)
//	         ↓
//	    [yoga] package (style, callbacks, lifecycle)
//	         ↓
//	    [native] Table (inproc or shim engine)
//	         ↓
//	    [document.Result] → JSON, SVG, DOT
//
// # Quick Start
//
// Build a tree directly with the binding:
//
//	root, _ := yoga.NewNode()
//	defer root.FreeRecursive()
//	_ = root.SetFlexDirection(yoga.FlexDirectionRow)
//
//	for range 2 {
//	    child, _ := yoga.NewNode()
//	    _ = child.SetFlexGrow(1)
//	    n, _ := root.ChildCount()
//	    _ = root.InsertChild(child, n)
//	}
//
//	_ = root.CalculateLayout(100, 40, yoga.DirectionLTR)
//	first, _ := root.Child(0)
//	w, _ := first.ComputedWidth() // 50
//
// Or lay out a document file:
//
//	doc, _ := document.Load("card.toml")
//	res, _ := document.Layout(nil, doc)
//	_ = document.WriteJSON(res, os.Stdout)
//
// # Engines
//
// [yoga.Default] binds to the in-process engine unless [yoga.Init] ran first
// with another table. To use a native Yoga build through the companion shim:
//
//	tab, err := engine.Resolve(engine.Options{Kind: engine.KindNative})
//	if err != nil {
//	    return err // UNSUPPORTED_PLATFORM when the library cannot be loaded
//	}
//	_ = yoga.Init(tab)
//
// [yoga]: github.com/matzehuels/yogabind/pkg/yoga
// [native]: github.com/matzehuels/yogabind/pkg/native
// [native/inproc]: github.com/matzehuels/yogabind/pkg/native/inproc
// [native/shim]: github.com/matzehuels/yogabind/pkg/native/shim
// [engine]: github.com/matzehuels/yogabind/pkg/engine
// [document]: github.com/matzehuels/yogabind/pkg/document
// [document.Result]: github.com/matzehuels/yogabind/pkg/document#Result
// [render]: github.com/matzehuels/yogabind/pkg/render
// [api]: github.com/matzehuels/yogabind/pkg/api
// [errors]: github.com/matzehuels/yogabind/pkg/errors
// [observability]: github.com/matzehuels/yogabind/pkg/observability
// [buildinfo]: github.com/matzehuels/yogabind/pkg/buildinfo
// [yoga.Default]: github.com/matzehuels/yogabind/pkg/yoga#Default
// [yoga.Init]: github.com/matzehuels/yogabind/pkg/yoga#Init
package pkg
