//go:build !(darwin || freebsd || (linux && (amd64 || arm64)))

package shim

import (
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
)

// Open reports UNSUPPORTED_PLATFORM: purego cannot call into shared
// libraries here.
func Open(opts ...Option) (*native.Table, error) {
	reportOnce.Do(func() {
		log.Error("native engine unavailable", "os", runtime.GOOS, "arch", runtime.GOARCH)
	})
	return nil, errors.New(errors.ErrCodeUnsupportedPlatform, "native engine is not available on %s/%s", runtime.GOOS, runtime.GOARCH)
}

var reportOnce sync.Once
