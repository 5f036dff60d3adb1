// Package yoga is a managed API over a flexbox layout engine.
//
// Nodes and configs wrap opaque engine handles. Style values go through a
// small encoder that turns numbers, "N%" strings and "auto" into the
// per-unit entry points the engine exposes, and computed layout is read back
// through accessors once CalculateLayout returns.
//
// # Usage
//
//	root, _ := yoga.NewNode()
//	defer root.FreeRecursive()
//
//	root.SetFlexDirection(yoga.FlexDirectionRow)
//	root.SetWidth(yoga.Points(100))
//	root.SetHeight(yoga.Points(100))
//
//	for i := 0; i < 2; i++ {
//	    child, _ := yoga.NewNode()
//	    child.SetFlexGrow(1)
//	    root.InsertChild(child, i)
//	}
//
//	if err := root.CalculateLayout(yoga.Unconstrained, yoga.Unconstrained, yoga.DirectionLTR); err != nil {
//	    return err
//	}
//	first, _ := root.Child(0)
//	box, _ := first.ComputedLayout() // {Left:0 Top:0 Width:50 Height:100}
//
// # Ownership
//
// Handles are released explicitly with Free or FreeRecursive, never by the
// garbage collector. A freed node fails every further call with a
// USE_AFTER_FREE error; freeing it again is a no-op.
//
// # Callbacks
//
// Measure, baseline and dirtied functions are routed through one engine
// thunk per kind and a dispatch table keyed by handle. A panic inside a
// callback is recovered before it reaches the engine and returned from the
// call that triggered it as a CALLBACK_PANIC error.
//
// # Concurrency
//
// Nodes and configs are not safe for concurrent use. Callbacks run on the
// goroutine that called CalculateLayout and must not start another pass.
package yoga
