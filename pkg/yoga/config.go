package yoga

import (
	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
	"github.com/matzehuels/yogabind/pkg/observability"
)

// Config holds engine settings shared by the nodes created with it. It must
// outlive those nodes.
type Config struct {
	b     *Binding
	ref   native.ConfigRef
	state lifecycle
	users int
}

// NewConfig creates a config on b.
func (b *Binding) NewConfig() (*Config, error) {
	ref := b.tab.ConfigNew()
	if ref == 0 {
		return nil, errors.New(errors.ErrCodeAllocationFailure, "engine %q could not allocate a config", b.tab.Name)
	}
	observability.Lifecycle().OnConfigCreate(uintptr(ref))
	return &Config{b: b, ref: ref}, nil
}

// Free releases the config. Freeing twice is a no-op. Freeing while nodes
// created with the config are still live fails with CONFIG_IN_USE.
func (c *Config) Free() error {
	if c.state.freed {
		return nil
	}
	if c.users > 0 {
		return errors.New(errors.ErrCodeConfigInUse, "config still referenced by %d live node(s)", c.users)
	}
	c.b.tab.ConfigFree(c.ref)
	c.state.markFreed()
	observability.Lifecycle().OnConfigFree(uintptr(c.ref))
	return nil
}

// IsFreed reports whether Free has released the config.
func (c *Config) IsFreed() bool {
	return c.state.freed
}

func (c *Config) live() error {
	return c.state.check("config")
}

// SetUseWebDefaults makes new nodes default to row direction, stretched
// content and a flex-shrink of 1, as browsers do.
func (c *Config) SetUseWebDefaults(enabled bool) error {
	if err := c.live(); err != nil {
		return err
	}
	c.b.tab.ConfigSetUseWebDefaults(c.ref, enabled)
	return nil
}

// UseWebDefaults reports whether web defaults are enabled.
func (c *Config) UseWebDefaults() (bool, error) {
	if err := c.live(); err != nil {
		return false, err
	}
	return c.b.tab.ConfigGetUseWebDefaults(c.ref), nil
}

// SetPointScaleFactor sets the pixel density layout results are rounded to.
// Zero disables rounding; negative factors are rejected.
func (c *Config) SetPointScaleFactor(factor float32) error {
	if err := c.live(); err != nil {
		return err
	}
	if factor < 0 || native.IsUndefined(factor) {
		return errors.New(errors.ErrCodeInvalidInput, "point scale factor must be >= 0, got %v", factor)
	}
	c.b.tab.ConfigSetPointScaleFactor(c.ref, factor)
	return nil
}

// PointScaleFactor returns the configured pixel density.
func (c *Config) PointScaleFactor() (float32, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	return c.b.tab.ConfigGetPointScaleFactor(c.ref), nil
}

// SetErrata selects the legacy behaviors to keep.
func (c *Config) SetErrata(errata Errata) error {
	if err := c.live(); err != nil {
		return err
	}
	c.b.tab.ConfigSetErrata(c.ref, int32(errata))
	return nil
}

// Errata returns the legacy behaviors in effect.
func (c *Config) Errata() (Errata, error) {
	if err := c.live(); err != nil {
		return ErrataNone, err
	}
	return Errata(c.b.tab.ConfigGetErrata(c.ref)), nil
}

// SetExperimentalFeatureEnabled toggles an experimental engine feature.
func (c *Config) SetExperimentalFeatureEnabled(feature ExperimentalFeature, enabled bool) error {
	if err := c.live(); err != nil {
		return err
	}
	c.b.tab.ConfigSetExperimentalFeatureEnabled(c.ref, int32(feature), enabled)
	return nil
}

// IsExperimentalFeatureEnabled reports whether feature is on.
func (c *Config) IsExperimentalFeatureEnabled(feature ExperimentalFeature) (bool, error) {
	if err := c.live(); err != nil {
		return false, err
	}
	return c.b.tab.ConfigIsExperimentalFeatureEnabled(c.ref, int32(feature)), nil
}
