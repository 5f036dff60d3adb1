package shim

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvLibrary overrides the library path when no option sets it.
const EnvLibrary = "YOGABIND_LIBRARY"

type options struct {
	library string
}

// Option configures Open.
type Option func(*options)

// WithLibrary loads the library at path instead of searching for it.
func WithLibrary(path string) Option {
	return func(o *options) { o.library = path }
}

// LibraryName is the platform file name of the shim library.
func LibraryName() string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "libyogabind.dylib"
	case "windows":
		return "yogabind.dll"
	}
	return "libyogabind.so"
}

// libraryPath resolves where to load the library from.
func libraryPath(o options) string {
	if o.library != "" {
		return o.library
	}
	if path := os.Getenv(EnvLibrary); path != "" {
		return path
	}

	name := LibraryName()
	candidates := []string{name, filepath.Join("lib", name)}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, name),
			filepath.Join(dir, "..", "lib", name),
		)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}
	return name
}
