package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/yogabind/pkg/document"
)

// layoutCommand creates the layout command for computing a document's boxes.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [document]",
		Short: "Compute the layout of a document",
		Long: `Compute the layout of a document.

The document is a TOML, YAML or JSON file describing a node tree (see the
document package). The computed boxes are printed as a table, or as JSON with
--json. With -o the JSON result is written to a file instead.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocument,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.layoutFile(args[0])
			if err != nil {
				return err
			}

			switch {
			case output != "":
				if err := document.ExportJSON(res, output); err != nil {
					return fmt.Errorf("write output %s: %w", output, err)
				}
				printSuccess("Layout complete")
				printFile(output)
				printStats(res)
			case asJSON:
				return document.WriteJSON(res, cmd.OutOrStdout())
			default:
				fmt.Fprintln(cmd.OutOrStdout(), resultTable(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the JSON result to a file")

	return cmd
}

// layoutFile loads a document and lays it out on the configured engine.
func (c *CLI) layoutFile(path string) (*document.Result, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	b, err := c.bind()
	if err != nil {
		return nil, err
	}

	prog := newProgress(c.Logger)
	res, err := document.Layout(b, doc)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Laid out %d nodes", countNodes(res)))
	return res, nil
}

func countNodes(res *document.Result) int {
	n := 0
	res.Walk(func(*document.Result, int, float32, float32) { n++ })
	return n
}
