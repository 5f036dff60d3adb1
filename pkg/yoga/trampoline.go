package yoga

import (
	"fmt"
	"time"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
	"github.com/matzehuels/yogabind/pkg/observability"
)

// Size is the result of a measure callback.
type Size struct {
	Width  float32
	Height float32
}

// MeasureFunc reports the intrinsic size of a leaf node for the available
// width and height under the given modes.
type MeasureFunc func(width float32, widthMode MeasureMode, height float32, heightMode MeasureMode) Size

// BaselineFunc reports the distance from the top of a node to its baseline.
type BaselineFunc func(width, height float32) float32

// DirtiedFunc is called when a node goes from clean to dirty.
type DirtiedFunc func(n *Node)

// slot is the dispatch table entry for one live handle.
type slot struct {
	node     *Node
	measure  MeasureFunc
	baseline BaselineFunc
	dirtied  DirtiedFunc
}

func (b *Binding) lookup(ref native.NodeRef) *slot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.slots[ref]
}

func (b *Binding) register(n *Node) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[n.ref] = &slot{node: n}
}

func (b *Binding) update(ref native.NodeRef, fn func(s *slot)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s := b.slots[ref]; s != nil {
		fn(s)
	}
}

// release clears every native callback registration of ref and drops its
// dispatch entry. It runs before the handle is freed.
func (b *Binding) release(ref native.NodeRef) {
	b.mu.Lock()
	s := b.slots[ref]
	delete(b.slots, ref)
	b.mu.Unlock()
	if s == nil {
		return
	}
	if s.measure != nil {
		b.tab.NodeSetMeasureFunc(ref, 0)
	}
	if s.baseline != nil {
		b.tab.NodeSetBaselineFunc(ref, 0)
	}
	if s.dirtied != nil {
		b.tab.NodeSetDirtiedFunc(ref, 0)
	}
	logger().Debug("released callbacks", "node", fmt.Sprintf("%#x", uintptr(ref)))
}

// recordPanic stores a recovered callback panic for the current engine call.
func (b *Binding) recordPanic(kind string, v any) error {
	err := &errors.PanicError{Callback: kind, Value: v}
	logger().Error("callback panicked", "callback", kind, "panic", v)
	b.panicMu.Lock()
	b.panics = append(b.panics, err)
	b.panicMu.Unlock()
	return err
}

// poison remembers a node whose measure result the engine cached after its
// measure function panicked.
func (b *Binding) poison(ref native.NodeRef) {
	b.panicMu.Lock()
	b.poisoned = append(b.poisoned, ref)
	b.panicMu.Unlock()
}

// redirty marks every poisoned node dirty again so the next pass measures it
// instead of reusing the zero size handed back on panic.
func (b *Binding) redirty() {
	b.panicMu.Lock()
	refs := b.poisoned
	b.poisoned = nil
	b.panicMu.Unlock()
	for _, ref := range refs {
		if s := b.lookup(ref); s != nil && s.measure != nil {
			b.tab.NodeMarkDirty(ref)
		}
	}
}

// drain returns a CALLBACK_PANIC error for the first panic recorded since the
// last drain, if any.
func (b *Binding) drain() error {
	b.panicMu.Lock()
	defer b.panicMu.Unlock()
	if len(b.panics) == 0 {
		return nil
	}
	first := b.panics[0]
	n := len(b.panics)
	b.panics = nil
	return errors.Wrap(errors.ErrCodeCallbackPanic, first, "%d callback(s) panicked", n)
}

func (b *Binding) dispatchMeasure(ref native.NodeRef, width float32, widthMode int32, height float32, heightMode int32) (size native.Size) {
	s := b.lookup(ref)
	if s == nil || s.measure == nil {
		return native.Size{}
	}
	start := time.Now()
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = b.recordPanic("measure", r)
			b.poison(ref)
			size = native.Size{}
		}
		observability.Layout().OnCallback("measure", uintptr(ref), time.Since(start), err)
	}()
	out := s.measure(width, MeasureMode(widthMode), height, MeasureMode(heightMode))
	return native.Size{Width: out.Width, Height: out.Height}
}

func (b *Binding) dispatchBaseline(ref native.NodeRef, width, height float32) (baseline float32) {
	s := b.lookup(ref)
	if s == nil || s.baseline == nil {
		return height
	}
	start := time.Now()
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = b.recordPanic("baseline", r)
			baseline = 0
		}
		observability.Layout().OnCallback("baseline", uintptr(ref), time.Since(start), err)
	}()
	return s.baseline(width, height)
}

func (b *Binding) dispatchDirtied(ref native.NodeRef) {
	s := b.lookup(ref)
	if s == nil || s.dirtied == nil {
		return
	}
	start := time.Now()
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = b.recordPanic("dirtied", r)
		}
		observability.Layout().OnCallback("dirtied", uintptr(ref), time.Since(start), err)
	}()
	s.dirtied(s.node)
}
