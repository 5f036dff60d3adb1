// Package inproc implements the native entry-point contract in pure Go on top
// of github.com/kjk/flex, a port of the Yoga layout algorithm.
//
// The engine hands out opaque handles exactly like a shared library would, so
// the managed binding cannot tell it apart from the real thing. It supports
// both callback conventions, which lets the side-channel return path be
// exercised on every platform:
//
//	eng := inproc.New(inproc.WithConvention(native.SideChannel))
//	tab := eng.Table()
//
// # Fidelity
//
// kjk/flex predates several newer Yoga properties. The engine stores them so
// they read back unchanged, and lays out with the closest supported behavior:
//
//   - gap, box-sizing and errata are recorded but do not affect layout
//   - space-evenly lays out as space-around
//   - static positioning lays out as relative
//   - display: contents lays out as flex
//   - position "auto" lays out as an unset inset
//
// An Engine is not safe for concurrent use. kjk/flex keeps package-level
// layout state, so all engines in a process must be driven from one goroutine
// at a time.
package inproc
