package cli

import (
	"github.com/spf13/cobra"
)

// engineCommand prints the resolved engine settings and probes the engine.
func (c *CLI) engineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "engine",
		Short: "Show the layout engine in use",
		Long: `Show the layout engine in use.

Settings are layered: built-in defaults, then the --config file, then the
YOGABIND_ENGINE, YOGABIND_LIBRARY and YOGABIND_CONVENTION environment
variables, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}

			printKeyValue("engine", opts.Kind)
			if opts.Library != "" {
				printKeyValue("library", opts.Library)
			}
			if opts.Convention != "" {
				printKeyValue("convention", opts.Convention)
			}

			b, err := c.bind()
			if err != nil {
				return err
			}
			printSuccess("Engine %s loaded (%s callbacks)", b.Engine(), b.Convention())
			return nil
		},
	}
}
