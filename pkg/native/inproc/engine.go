package inproc

import (
	"sync"

	"github.com/kjk/flex"

	"github.com/matzehuels/yogabind/pkg/native"
)

// Option configures an Engine.
type Option func(*Engine)

// WithConvention selects the callback convention the engine's Table declares.
// The default is native.DirectReturn.
func WithConvention(c native.Convention) Option {
	return func(e *Engine) {
		e.convention = c
	}
}

// Engine is an in-process layout engine addressed through opaque handles.
type Engine struct {
	convention native.Convention

	nextRef   uintptr
	nodes     map[native.NodeRef]*entry
	configs   map[native.ConfigRef]*configEntry
	fallback  *configEntry
	thunks    map[native.Thunk]any
	nextThunk uintptr

	gate         sync.Mutex
	measureSlot  native.Size
	baselineSlot float32
}

// entry is the engine-side state for one node handle.
type entry struct {
	ref    native.NodeRef
	node   *flex.Node
	config *configEntry
	ext    extStyle

	measure  native.Thunk
	baseline native.Thunk
	dirtied  native.Thunk

	hasNewLayout bool
}

// extStyle holds the style the flex port cannot represent, and the managed
// enum codes for properties it represents lossily.
type extStyle struct {
	justify      int32
	alignContent int32
	alignItems   int32
	alignSelf    int32
	positionType int32
	display      int32
	boxSizing    int32

	gap          [gutterCount]native.Value
	positionAuto [flex.EdgeCount]bool

	referenceBaseline          bool
	alwaysFormsContainingBlock bool
}

func (x *extStyle) equal(y *extStyle) bool {
	for i := range x.gap {
		if !sameValue(x.gap[i], y.gap[i]) {
			return false
		}
	}
	return x.justify == y.justify &&
		x.alignContent == y.alignContent &&
		x.alignItems == y.alignItems &&
		x.alignSelf == y.alignSelf &&
		x.positionType == y.positionType &&
		x.display == y.display &&
		x.boxSizing == y.boxSizing &&
		x.positionAuto == y.positionAuto &&
		x.referenceBaseline == y.referenceBaseline &&
		x.alwaysFormsContainingBlock == y.alwaysFormsContainingBlock
}

type configEntry struct {
	ref          native.ConfigRef
	cfg          *flex.Config
	errata       int32
	experimental map[int32]bool
}

// New creates an engine with no live handles.
func New(opts ...Option) *Engine {
	e := &Engine{
		convention: native.DirectReturn,
		nodes:      make(map[native.NodeRef]*entry),
		configs:    make(map[native.ConfigRef]*configEntry),
		thunks:     make(map[native.Thunk]any),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Convention returns the callback convention this engine declares.
func (e *Engine) Convention() native.Convention {
	return e.convention
}

// LiveNodes returns the number of node handles not yet freed.
func (e *Engine) LiveNodes() int {
	return len(e.nodes)
}

// LiveConfigs returns the number of config handles not yet freed.
func (e *Engine) LiveConfigs() int {
	return len(e.configs)
}

func (e *Engine) allocRef() uintptr {
	// Handles are spaced like pointers so a zero or small integer never
	// aliases a live handle.
	e.nextRef += 0x10
	return 0x1000 + e.nextRef
}

func (e *Engine) lookup(ref native.NodeRef) *entry {
	return e.nodes[ref]
}

func (e *Engine) config(ref native.ConfigRef) *configEntry {
	return e.configs[ref]
}

func entryOf(n *flex.Node) *entry {
	if n == nil {
		return nil
	}
	ent, _ := n.Context.(*entry)
	return ent
}

func refOf(n *flex.Node) native.NodeRef {
	if ent := entryOf(n); ent != nil {
		return ent.ref
	}
	return 0
}

func defaultExt(s *flex.Style) extStyle {
	ext := extStyle{
		justify:      justifyFlexStart,
		alignContent: fromFlexAlign(s.AlignContent),
		alignItems:   fromFlexAlign(s.AlignItems),
		alignSelf:    alignAuto,
		positionType: positionRelative,
		display:      displayFlex,
	}
	for i := range ext.gap {
		ext.gap[i] = native.Value{Value: native.Undefined, Unit: unitUndefined}
	}
	return ext
}

// track runs mutate and fires the dirtied thunk of every node on the path to
// the root that went from clean to dirty.
func (e *Engine) track(ent *entry, mutate func()) {
	var clean []*entry
	for n := ent.node; n != nil; n = n.Parent {
		if !n.IsDirty {
			if a := entryOf(n); a != nil {
				clean = append(clean, a)
			}
		}
	}
	mutate()
	for _, a := range clean {
		if !a.node.IsDirty || a.dirtied == 0 {
			continue
		}
		if fn, ok := e.thunks[a.dirtied].(native.DirtiedThunk); ok {
			fn(a.ref)
		}
	}
}

// forceDirty marks n and its ancestors dirty through a style round trip, for
// changes kjk/flex does not compare.
func forceDirty(n *flex.Node) {
	orig := n.Style
	bumped := flex.Node{Style: orig}
	if native.IsUndefined(orig.FlexGrow) {
		bumped.Style.FlexGrow = 0
	} else {
		bumped.Style.FlexGrow = flex.Undefined
	}
	flex.NodeCopyStyle(n, &bumped)
	restore := flex.Node{Style: orig}
	flex.NodeCopyStyle(n, &restore)
}

// setStyle applies mutate to a copy of the node style and installs it, which
// marks the node dirty only when something changed.
func (e *Engine) setStyle(ref native.NodeRef, mutate func(s *flex.Style, ext *extStyle)) {
	ent := e.lookup(ref)
	if ent == nil {
		return
	}
	next := ent.node.Style
	ext := ent.ext
	mutate(&next, &ext)
	e.track(ent, func() {
		aspectChanged := !sameFloat(next.AspectRatio, ent.node.Style.AspectRatio)
		extChanged := !ext.equal(&ent.ext)
		ent.ext = ext
		src := flex.Node{Style: next}
		flex.NodeCopyStyle(ent.node, &src)
		if aspectChanged || extChanged {
			ent.node.Style.AspectRatio = next.AspectRatio
			forceDirty(ent.node)
		}
	})
}
