// Package engine selects and opens the layout engine behind the yoga binding.
//
// Options come from, in increasing precedence: defaults, a TOML file, the
// environment and explicit flags:
//
//	[engine]
//	kind = "native"                 # "inproc" (default) or "native"
//	library = "/opt/lib/libyogabind.so"
//	convention = "side-channel"     # inproc only: "direct" (default) or "side-channel"
package engine

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
	"github.com/matzehuels/yogabind/pkg/native/inproc"
	"github.com/matzehuels/yogabind/pkg/native/shim"
)

// Engine kinds.
const (
	KindInproc = "inproc"
	KindNative = "native"
)

// Environment variables read by FromEnv.
const (
	EnvEngine     = "YOGABIND_ENGINE"
	EnvLibrary    = shim.EnvLibrary
	EnvConvention = "YOGABIND_CONVENTION"
)

// Options selects an engine. Empty fields defer to lower-precedence sources.
type Options struct {
	Kind       string `toml:"kind"`
	Library    string `toml:"library"`
	Convention string `toml:"convention"`
}

type fileConfig struct {
	Engine Options `toml:"engine"`
}

// Defaults returns the built-in options.
func Defaults() Options {
	return Options{Kind: KindInproc}
}

// Merge returns o with every non-empty field of over applied.
func (o Options) Merge(over Options) Options {
	if over.Kind != "" {
		o.Kind = over.Kind
	}
	if over.Library != "" {
		o.Library = over.Library
	}
	if over.Convention != "" {
		o.Convention = over.Convention
	}
	return o
}

// LoadFile reads the [engine] table of a TOML file.
func LoadFile(path string) (Options, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg.Engine, nil
}

// FromEnv reads options from the environment.
func FromEnv() Options {
	return Options{
		Kind:       os.Getenv(EnvEngine),
		Library:    os.Getenv(EnvLibrary),
		Convention: os.Getenv(EnvConvention),
	}
}

// Load layers defaults, the config file (when path is set), the environment
// and flags, then validates the result.
func Load(path string, flags Options) (Options, error) {
	opts := Defaults()
	if path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return Options{}, err
		}
		opts = opts.Merge(file)
	}
	opts = opts.Merge(FromEnv()).Merge(flags)
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks field values without opening anything.
func (o Options) Validate() error {
	switch strings.ToLower(o.Kind) {
	case KindInproc, KindNative:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown engine %q (want %s or %s)", o.Kind, KindInproc, KindNative)
	}
	c, err := o.convention()
	if err != nil {
		return err
	}
	if strings.EqualFold(o.Kind, KindNative) {
		if o.Convention != "" && c != native.SideChannel {
			return errors.New(errors.ErrCodeInvalidInput, "native engine only supports %s callbacks", native.SideChannel)
		}
		if o.Library != "" {
			return errors.ValidateLibraryPath(o.Library)
		}
	}
	return nil
}

// ParseConvention parses "direct" or "side-channel".
func ParseConvention(s string) (native.Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct", "direct-return":
		return native.DirectReturn, nil
	case "side-channel", "sidechannel", "side_channel":
		return native.SideChannel, nil
	}
	return native.DirectReturn, errors.New(errors.ErrCodeInvalidInput, "unknown callback convention %q", s)
}

func (o Options) convention() (native.Convention, error) {
	return ParseConvention(o.Convention)
}

// Resolve opens the engine o selects.
func Resolve(o Options) (*native.Table, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if strings.EqualFold(o.Kind, KindNative) {
		var opts []shim.Option
		if o.Library != "" {
			opts = append(opts, shim.WithLibrary(o.Library))
		}
		return shim.Open(opts...)
	}
	c, _ := o.convention()
	return inproc.New(inproc.WithConvention(c)).Table(), nil
}
