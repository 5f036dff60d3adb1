//go:build darwin || freebsd || (linux && (amd64 || arm64))

package shim

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/purego"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
)

type loaded struct {
	once sync.Once
	tab  *native.Table
	err  error
}

var (
	libsMu sync.Mutex
	libs   = map[string]*loaded{}
)

// Open loads the shim library and returns its entry point table. The result,
// including a failure, is cached per resolved path.
func Open(opts ...Option) (*native.Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	path := libraryPath(o)

	libsMu.Lock()
	l := libs[path]
	if l == nil {
		l = &loaded{}
		libs[path] = l
	}
	libsMu.Unlock()

	l.once.Do(func() {
		l.tab, l.err = load(path)
		if l.err != nil {
			log.Error("native engine unavailable", "library", path, "err", l.err)
		}
	})
	return l.tab, l.err
}

func load(path string) (*native.Table, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupportedPlatform, err, "load engine library %s", path)
	}
	log.Debug("loaded native engine", "library", path)

	tab := &native.Table{Name: "shim", Convention: native.SideChannel, Gate: new(sync.Mutex)}
	bind(tab, handle)
	if err := tab.Validate(); err != nil {
		return nil, err
	}
	return tab, nil
}

// register binds fptr to sym when the library exports it. A missing symbol
// leaves fptr nil so Validate can report every gap at once.
func register(fptr any, handle uintptr, sym string) {
	if _, err := purego.Dlsym(handle, sym); err != nil {
		return
	}
	purego.RegisterLibFunc(fptr, handle, sym)
}

func newCallback(fn any) native.Thunk {
	return native.Thunk(purego.NewCallback(fn))
}
