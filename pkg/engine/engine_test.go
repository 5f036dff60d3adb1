package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvEngine, EnvLibrary, EnvConvention} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yogabind.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	opts, err := Load("", Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.Kind != KindInproc {
		t.Errorf("Kind = %q, want %q", opts.Kind, KindInproc)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[engine]
kind = "native"
library = "/from/file.so"
convention = "side-channel"
`)

	opts, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.Kind != KindNative || opts.Library != "/from/file.so" {
		t.Errorf("file options = %+v", opts)
	}

	t.Setenv(EnvLibrary, "/from/env.so")
	opts, err = Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.Library != "/from/env.so" {
		t.Errorf("Library = %q, want env value", opts.Library)
	}

	opts, err = Load(path, Options{Kind: KindInproc, Convention: "direct"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.Kind != KindInproc || opts.Convention != "direct" {
		t.Errorf("flag options = %+v", opts)
	}
	if opts.Library != "/from/env.so" {
		t.Errorf("Library = %q, want env value to survive", opts.Library)
	}
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		path string
		want errors.Code
	}{
		{"missing", filepath.Join(t.TempDir(), "nope.toml"), errors.ErrCodeFileNotFound},
		{"malformed", writeConfig(t, "[engine\nkind="), errors.ErrCodeInvalidFormat},
		{"unknown key", writeConfig(t, "[engine]\nflavour = \"x\"\n"), errors.ErrCodeInvalidFormat},
		{"bad kind", writeConfig(t, "[engine]\nkind = \"gpu\"\n"), errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, Options{})
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("Load() code = %q, want %q (err: %v)", got, tt.want, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"inproc", Options{Kind: KindInproc}, false},
		{"inproc side channel", Options{Kind: KindInproc, Convention: "side-channel"}, false},
		{"native", Options{Kind: KindNative, Library: "/opt/libyogabind.so"}, false},
		{"native side channel", Options{Kind: KindNative, Convention: "sidechannel"}, false},
		{"native direct", Options{Kind: KindNative, Convention: "direct"}, true},
		{"unknown kind", Options{Kind: "wasm"}, true},
		{"unknown convention", Options{Kind: KindInproc, Convention: "carrier-pigeon"}, true},
		{"bad library", Options{Kind: KindNative, Library: "lib\x00.so"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveInproc(t *testing.T) {
	for _, conv := range []string{"", "direct", "side-channel"} {
		t.Run(conv, func(t *testing.T) {
			tab, err := Resolve(Options{Kind: KindInproc, Convention: conv})
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			want, _ := ParseConvention(conv)
			if tab.Convention != want {
				t.Errorf("Convention = %v, want %v", tab.Convention, want)
			}
			if err := tab.Validate(); err != nil {
				t.Errorf("table incomplete: %v", err)
			}
		})
	}
}

func TestResolveNativeWithoutLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libyogabind-missing.so")

	_, err := Resolve(Options{Kind: KindNative, Library: path})
	if !errors.Is(err, errors.ErrCodeUnsupportedPlatform) {
		t.Errorf("Resolve() error = %v, want UNSUPPORTED_PLATFORM", err)
	}
}

func TestParseConvention(t *testing.T) {
	tests := map[string]native.Convention{
		"":             native.DirectReturn,
		"Direct":       native.DirectReturn,
		"side-channel": native.SideChannel,
		"SIDE_CHANNEL": native.SideChannel,
	}
	for in, want := range tests {
		got, err := ParseConvention(in)
		if err != nil || got != want {
			t.Errorf("ParseConvention(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
