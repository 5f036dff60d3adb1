package native

import "math"

// NodeRef is an opaque handle to an engine node. Zero is the null handle.
type NodeRef uintptr

// ConfigRef is an opaque handle to an engine config. Zero is the null handle.
type ConfigRef uintptr

// Thunk is an engine-callable function pointer. Zero clears a registration.
type Thunk uintptr

// Value mirrors the engine's {magnitude, unit} pair.
type Value struct {
	Value float32
	Unit  int32
}

// Size is a measured width and height.
type Size struct {
	Width  float32
	Height float32
}

// Undefined is the engine's "no value" magnitude.
var Undefined = float32(math.NaN())

// IsUndefined reports whether f is the undefined magnitude.
func IsUndefined(f float32) bool {
	return f != f
}

// Convention selects how callback results travel back to the engine.
type Convention int

const (
	// DirectReturn thunks return their result by value.
	DirectReturn Convention = iota
	// SideChannel thunks store their result through the Table before returning.
	SideChannel
)

func (c Convention) String() string {
	switch c {
	case DirectReturn:
		return "direct"
	case SideChannel:
		return "side-channel"
	}
	return "unknown"
}

// Managed callback shapes as seen from the engine.
type (
	MeasureThunk      func(node NodeRef, width float32, widthMode int32, height float32, heightMode int32) Size
	BaselineThunk     func(node NodeRef, width, height float32) float32
	MeasureSlotThunk  func(node NodeRef, width float32, widthMode int32, height float32, heightMode int32)
	BaselineSlotThunk func(node NodeRef, width, height float32)
	DirtiedThunk      func(node NodeRef)
)
