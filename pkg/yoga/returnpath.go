package yoga

import (
	"sync"

	"github.com/matzehuels/yogabind/pkg/native"
)

type measureDispatch func(ref native.NodeRef, width float32, widthMode int32, height float32, heightMode int32) native.Size

type baselineDispatch func(ref native.NodeRef, width, height float32) float32

// returnPath is how callback results travel back to the engine.
type returnPath interface {
	measureThunk(tab *native.Table, dispatch measureDispatch) native.Thunk
	baselineThunk(tab *native.Table, dispatch baselineDispatch) native.Thunk
	// enter serializes layout passes when results share engine state. The
	// returned func releases the gate.
	enter() func()
}

// sharedGate guards side-channel tables that do not carry their own Gate.
var sharedGate sync.Mutex

func newReturnPath(tab *native.Table) returnPath {
	if tab.Convention != native.SideChannel {
		return directReturn{}
	}
	gate := tab.Gate
	if gate == nil {
		gate = &sharedGate
	}
	return &sideChannelReturn{gate: gate}
}

// directReturn hands results back as thunk return values.
type directReturn struct{}

func (directReturn) measureThunk(tab *native.Table, dispatch measureDispatch) native.Thunk {
	return tab.NewMeasureThunk(func(ref native.NodeRef, w float32, wm int32, h float32, hm int32) native.Size {
		return dispatch(ref, w, wm, h, hm)
	})
}

func (directReturn) baselineThunk(tab *native.Table, dispatch baselineDispatch) native.Thunk {
	return tab.NewBaselineThunk(func(ref native.NodeRef, w, h float32) float32 {
		return dispatch(ref, w, h)
	})
}

func (directReturn) enter() func() { return func() {} }

// sideChannelReturn writes results into the engine's result slot before the
// thunk returns. The slot belongs to the engine, so every binding over it
// holds the same gate and layout passes run one at a time.
type sideChannelReturn struct {
	gate *sync.Mutex
}

func (s *sideChannelReturn) measureThunk(tab *native.Table, dispatch measureDispatch) native.Thunk {
	return tab.NewMeasureSlotThunk(func(ref native.NodeRef, w float32, wm int32, h float32, hm int32) {
		size := dispatch(ref, w, wm, h, hm)
		tab.StoreMeasureResult(size.Width, size.Height)
	})
}

func (s *sideChannelReturn) baselineThunk(tab *native.Table, dispatch baselineDispatch) native.Thunk {
	return tab.NewBaselineSlotThunk(func(ref native.NodeRef, w, h float32) {
		tab.StoreBaselineResult(dispatch(ref, w, h))
	})
}

func (s *sideChannelReturn) enter() func() {
	s.gate.Lock()
	return s.gate.Unlock
}
