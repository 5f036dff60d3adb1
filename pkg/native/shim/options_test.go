package shim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLibraryPathPrefersOption(t *testing.T) {
	t.Setenv(EnvLibrary, "/from/env.so")

	got := libraryPath(options{library: "/from/option.so"})
	if got != "/from/option.so" {
		t.Errorf("libraryPath() = %q, want option path", got)
	}
}

func TestLibraryPathUsesEnv(t *testing.T) {
	t.Setenv(EnvLibrary, "/from/env.so")

	if got := libraryPath(options{}); got != "/from/env.so" {
		t.Errorf("libraryPath() = %q, want env path", got)
	}
}

func TestLibraryPathSearchesWorkingDirectory(t *testing.T) {
	t.Setenv(EnvLibrary, "")
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "lib"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lib", LibraryName()), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	got := libraryPath(options{})
	if !filepath.IsAbs(got) || !strings.HasSuffix(got, filepath.Join("lib", LibraryName())) {
		t.Errorf("libraryPath() = %q, want absolute path under lib/", got)
	}
}

func TestLibraryPathFallsBackToName(t *testing.T) {
	t.Setenv(EnvLibrary, "")
	t.Chdir(t.TempDir())

	if got := libraryPath(options{}); got != LibraryName() {
		t.Errorf("libraryPath() = %q, want %q", got, LibraryName())
	}
}
