package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Layout hooks
	l := NoopLayoutHooks{}
	l.OnLayoutStart(1, 100, 100)
	l.OnLayoutComplete(1, time.Millisecond, nil)
	l.OnCallback("measure", 2, time.Microsecond, nil)

	// Lifecycle hooks
	lc := NoopLifecycleHooks{}
	lc.OnNodeCreate(1)
	lc.OnNodeFree(1)
	lc.OnConfigCreate(3)
	lc.OnConfigFree(3)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/layout")
	h.OnResponse(ctx, "POST", "/v1/layout", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Lifecycle().(NoopLifecycleHooks); !ok {
		t.Error("Lifecycle() should return NoopLifecycleHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customLifecycle := &testLifecycleHooks{}
	SetLifecycleHooks(customLifecycle)
	if Lifecycle() != customLifecycle {
		t.Error("SetLifecycleHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
	if _, ok := Lifecycle().(NoopLifecycleHooks); !ok {
		t.Error("Reset() should restore NoopLifecycleHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)

	// Setting nil should be ignored
	SetLayoutHooks(nil)

	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLayoutHooks struct{ NoopLayoutHooks }
type testLifecycleHooks struct{ NoopLifecycleHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
