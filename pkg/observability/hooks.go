// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about layout passes, callback invocations, native handle
// lifecycle, and the HTTP layout service.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Handles are reported as raw uintptr values so this package does not import
// the binding packages it instruments.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetLifecycleHooks(&myLeakTracker{})
//	    // ... run application
//	}
//
// The binding calls hooks to emit events:
//
//	observability.Layout().OnLayoutStart(ref, width, height)
//	// ... engine pass ...
//	observability.Layout().OnLayoutComplete(ref, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout passes and the callbacks they run.
type LayoutHooks interface {
	// Pass events
	OnLayoutStart(root uintptr, width, height float32)
	OnLayoutComplete(root uintptr, duration time.Duration, err error)

	// OnCallback records one managed callback invocation made by the engine.
	// kind is "measure", "baseline" or "dirtied"; err is non-nil when the
	// callback panicked.
	OnCallback(kind string, node uintptr, duration time.Duration, err error)
}

// =============================================================================
// Lifecycle Hooks
// =============================================================================

// LifecycleHooks receives events when native handles are acquired or released.
type LifecycleHooks interface {
	OnNodeCreate(node uintptr)
	OnNodeFree(node uintptr)
	OnConfigCreate(config uintptr)
	OnConfigFree(config uintptr)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP layout service.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(uintptr, float32, float32)          {}
func (NoopLayoutHooks) OnLayoutComplete(uintptr, time.Duration, error)   {}
func (NoopLayoutHooks) OnCallback(string, uintptr, time.Duration, error) {}

// NoopLifecycleHooks is a no-op implementation of LifecycleHooks.
type NoopLifecycleHooks struct{}

func (NoopLifecycleHooks) OnNodeCreate(uintptr)   {}
func (NoopLifecycleHooks) OnNodeFree(uintptr)     {}
func (NoopLifecycleHooks) OnConfigCreate(uintptr) {}
func (NoopLifecycleHooks) OnConfigFree(uintptr)   {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks    LayoutHooks    = NoopLayoutHooks{}
	lifecycleHooks LifecycleHooks = NoopLifecycleHooks{}
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	hooksMu        sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout pass.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetLifecycleHooks registers custom lifecycle hooks.
// This should be called once at application startup before any node is created.
func SetLifecycleHooks(h LifecycleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		lifecycleHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Lifecycle returns the registered lifecycle hooks.
func Lifecycle() LifecycleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return lifecycleHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	lifecycleHooks = NoopLifecycleHooks{}
	httpHooks = NoopHTTPHooks{}
}
