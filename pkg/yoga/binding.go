package yoga

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
	"github.com/matzehuels/yogabind/pkg/native/inproc"
)

// Binding connects managed nodes and configs to one engine Table. It owns the
// per-kind callback thunks and the dispatch table that routes engine
// callbacks back to managed functions.
//
// Most programs use the process binding through the package-level NewNode and
// NewConfig functions. Independent bindings are useful for tests and for
// running more than one engine in a process.
type Binding struct {
	tab *native.Table
	ret returnPath

	mu    sync.RWMutex
	slots map[native.NodeRef]*slot

	measureThunk  native.Thunk
	baselineThunk native.Thunk
	dirtiedThunk  native.Thunk

	panicMu  sync.Mutex
	panics   []error
	poisoned []native.NodeRef
}

// NewBinding validates tab and creates one thunk per callback kind, chosen by
// the table's calling convention.
func NewBinding(tab *native.Table) (*Binding, error) {
	if err := tab.Validate(); err != nil {
		return nil, err
	}
	b := &Binding{
		tab:   tab,
		ret:   newReturnPath(tab),
		slots: make(map[native.NodeRef]*slot),
	}
	b.measureThunk = b.ret.measureThunk(tab, b.dispatchMeasure)
	b.baselineThunk = b.ret.baselineThunk(tab, b.dispatchBaseline)
	b.dirtiedThunk = tab.NewDirtiedThunk(b.dispatchDirtied)
	logger().Debug("yoga binding ready", "engine", tab.Name, "convention", tab.Convention)
	return b, nil
}

// Engine returns the engine name of the bound table.
func (b *Binding) Engine() string {
	return b.tab.Name
}

// Convention returns the callback convention in use.
func (b *Binding) Convention() native.Convention {
	return b.tab.Convention
}

// LiveNodes returns the number of nodes created through b and not yet freed.
func (b *Binding) LiveNodes() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.slots)
}

var (
	processMu      sync.Mutex
	processBinding *Binding
)

// Init binds the process to tab. It must run before the first node or config
// is created and may succeed only once; the binding is never torn down.
func Init(tab *native.Table) error {
	processMu.Lock()
	defer processMu.Unlock()
	if processBinding != nil {
		return errors.New(errors.ErrCodeInternal, "yoga binding already initialised with engine %q", processBinding.tab.Name)
	}
	b, err := NewBinding(tab)
	if err != nil {
		return err
	}
	processBinding = b
	return nil
}

// Default returns the process binding, binding to the in-process engine if
// Init was never called.
func Default() *Binding {
	processMu.Lock()
	defer processMu.Unlock()
	if processBinding == nil {
		b, err := NewBinding(inproc.New().Table())
		if err != nil {
			// The in-process table is complete by construction.
			panic(err)
		}
		processBinding = b
	}
	return processBinding
}

// NewNode creates a node on the process binding with the engine's default
// config.
func NewNode() (*Node, error) {
	return Default().NewNode()
}

// NewNodeWithConfig creates a node on the process binding.
func NewNodeWithConfig(cfg *Config) (*Node, error) {
	return Default().NewNodeWithConfig(cfg)
}

// NewConfig creates a config on the process binding.
func NewConfig() (*Config, error) {
	return Default().NewConfig()
}

// Logging

var (
	loggerMu   sync.RWMutex
	coreLogger = log.Default().WithPrefix("yoga")
)

// SetLogger replaces the logger used for binding diagnostics.
func SetLogger(l *log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l != nil {
		coreLogger = l
	}
}

// SetLogLevel adjusts the binding logger's threshold. The default binding
// logger is separate from log.Default, so this leaves application logging
// untouched.
func SetLogLevel(level LogLevel) {
	logger().SetLevel(level.charm())
}

func logger() *log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return coreLogger
}

func (l LogLevel) charm() log.Level {
	switch l {
	case LogLevelError:
		return log.ErrorLevel
	case LogLevelWarn:
		return log.WarnLevel
	case LogLevelInfo:
		return log.InfoLevel
	case LogLevelFatal:
		return log.FatalLevel
	}
	return log.DebugLevel
}
