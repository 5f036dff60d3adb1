// Package native defines the entry-point contract between the managed layout
// API and a flexbox layout engine.
//
// The contract is deliberately narrow: nodes and configs cross it as opaque
// pointer-sized handles, style values cross as float32 magnitudes with a
// separate entry point per unit, enumerations cross as int32 codes, and
// callbacks cross as fixed-arity thunks. A [Table] holds one function per
// entry point; engines fill it in and the binding in package yoga is the only
// caller.
//
// Two engines ship with the module:
//
//   - inproc: a pure Go engine backed by github.com/kjk/flex, always available.
//   - shim: a loader for the Yoga shared library via github.com/ebitengine/purego.
//
// # Callback Conventions
//
// Some targets cannot return composite values (a measured size) from a
// callback by value. A Table therefore declares a [Convention]:
//
//   - [DirectReturn]: measure thunks return [Size] and baseline thunks return
//     float32 directly.
//   - [SideChannel]: thunks return nothing and write their result through
//     StoreMeasureResult or StoreBaselineResult before returning; the engine
//     reads the slot once the thunk is back.
//
// The convention is a property of the target and is fixed when the Table is
// built.
package native
