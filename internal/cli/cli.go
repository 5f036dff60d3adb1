// Package cli implements the flexlayout command-line interface.
package cli

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/yogabind/pkg/buildinfo"
	"github.com/matzehuels/yogabind/pkg/engine"
	"github.com/matzehuels/yogabind/pkg/yoga"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "flexlayout"

	// defaultAddr is where serve listens unless --addr is given.
	defaultAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	flags      engine.Options

	once    sync.Once
	binding *yoga.Binding
	bindErr error
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flexlayout computes flexbox layouts with the Yoga engine",
		Long:         `Flexlayout reads a layout document (TOML, YAML or JSON), lays it out with the Yoga flexbox engine and prints, renders or serves the computed boxes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "engine config file (TOML)")
	pf.StringVar(&c.flags.Kind, "engine", "", "layout engine: inproc (default), native")
	pf.StringVar(&c.flags.Library, "library", "", "path to the native engine library")
	pf.StringVar(&c.flags.Convention, "convention", "", "callback convention: direct, side-channel")
	_ = root.RegisterFlagCompletionFunc("engine", cobra.FixedCompletions([]string{"inproc", "native"}, cobra.ShellCompDirectiveNoFileComp))
	_ = root.RegisterFlagCompletionFunc("convention", cobra.FixedCompletions([]string{"direct", "side-channel"}, cobra.ShellCompDirectiveNoFileComp))
	_ = root.MarkPersistentFlagFilename("config", "toml")
	_ = root.MarkPersistentFlagFilename("library", "so", "dylib", "dll")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.engineCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Engine Binding
// =============================================================================

// options layers defaults, the config file, the environment and the flags.
func (c *CLI) options() (engine.Options, error) {
	return engine.Load(c.configPath, c.flags)
}

// bind resolves the configured engine once and returns its binding.
func (c *CLI) bind() (*yoga.Binding, error) {
	c.once.Do(func() {
		opts, err := c.options()
		if err != nil {
			c.bindErr = err
			return
		}
		tab, err := engine.Resolve(opts)
		if err != nil {
			c.bindErr = err
			return
		}
		yoga.SetLogger(c.Logger)
		c.binding, c.bindErr = yoga.NewBinding(tab)
		if c.bindErr == nil {
			c.Logger.Debug("engine ready", "engine", c.binding.Engine(), "convention", c.binding.Convention())
		}
	})
	return c.binding, c.bindErr
}
