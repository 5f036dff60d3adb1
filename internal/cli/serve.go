package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/yogabind/pkg/api"
)

// serveCommand creates the serve command for the HTTP layout service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layout passes over HTTP",
		Long: `Serve layout passes over HTTP.

POST a layout document to /v1/layout and receive the computed boxes as JSON.
GET /healthz reports the engine in use. The server stops on Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.bind()
			if err != nil {
				return err
			}
			srv := api.New(b, api.WithLogger(c.Logger), api.WithMaxBodyBytes(maxBody))

			printInfo("Listening on %s (engine %s)", addr, b.Engine())
			return api.ListenAndServe(cmd.Context(), addr, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", api.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}
