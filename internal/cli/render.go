package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/yogabind/pkg/document"
	"github.com/matzehuels/yogabind/pkg/render"
	"github.com/matzehuels/yogabind/pkg/render/nodelink"
)

const (
	vizBoxes = "boxes" // nested rectangles at their computed positions
	vizTree  = "tree"  // node-link diagram via Graphviz
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file; the extension selects the format
	vizType  string  // "boxes" or "tree"
	labels   bool    // write node names into boxes
	insets   bool    // outline content boxes inside border and padding
	margin   float32 // blank space around the boxes drawing
	detailed bool    // geometry in tree labels
	scale    float64 // PNG scale factor
}

// validFormats is the set of supported output extensions.
var validFormats = map[string]bool{"svg": true, "dot": true, "pdf": true, "png": true, "json": true}

// renderCommand creates the render command for drawing a document's layout.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{vizType: vizBoxes, labels: true, scale: 2.0}

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a document's layout to SVG, DOT, PDF or PNG",
		Long: `Render a document's layout.

The boxes view (-t boxes) draws every node as a rectangle at its computed
position. The tree view (-t tree) draws the node hierarchy with Graphviz.
The output extension selects the format: .svg, .pdf, .png, .json, or .dot
(tree view only). Without -o the output is <document>.svg.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocument,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			format, err := outputFormat(opts.output, opts.vizType)
			if err != nil {
				return err
			}

			res, err := c.layoutFile(args[0])
			if err != nil {
				return err
			}
			data, err := renderResult(res, format, &opts)
			if err != nil {
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", opts.output, err)
			}

			printSuccess("Rendered %s view", opts.vizType)
			printFile(opts.output)
			printStats(res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <document>.svg)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", opts.vizType, "view: boxes (default), tree")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "label boxes with node names (boxes)")
	cmd.Flags().BoolVar(&opts.insets, "insets", false, "outline content boxes (boxes)")
	cmd.Flags().Float32Var(&opts.margin, "margin", 0, "blank space around the drawing (boxes)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show geometry in node labels (tree)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

// outputFormat validates the output extension against the view.
func outputFormat(path, vizType string) (string, error) {
	if vizType != vizBoxes && vizType != vizTree {
		return "", fmt.Errorf("invalid type: %s (must be 'boxes' or 'tree')", vizType)
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !validFormats[format] {
		return "", fmt.Errorf("invalid format: %q (must be .svg, .dot, .pdf, .png or .json)", format)
	}
	if format == "dot" && vizType != vizTree {
		return "", fmt.Errorf("dot output needs the tree view (-t tree)")
	}
	return format, nil
}

// renderResult produces the bytes of one output file.
func renderResult(res *document.Result, format string, opts *renderOpts) ([]byte, error) {
	if format == "json" {
		var buf strings.Builder
		if err := document.WriteJSON(res, &buf); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	}

	if opts.vizType == vizTree {
		dot := nodelink.ToDOT(res, nodelink.Options{Detailed: opts.detailed})
		switch format {
		case "dot":
			return []byte(dot), nil
		case "pdf":
			return nodelink.RenderPDF(dot)
		case "png":
			return nodelink.RenderPNG(dot, opts.scale)
		}
		return nodelink.RenderSVG(dot)
	}

	var svgOpts []render.SVGOption
	if opts.labels {
		svgOpts = append(svgOpts, render.WithLabels())
	}
	if opts.insets {
		svgOpts = append(svgOpts, render.WithInsets())
	}
	if opts.margin > 0 {
		svgOpts = append(svgOpts, render.WithMargin(opts.margin))
	}
	svg := render.RenderSVG(res, svgOpts...)
	switch format {
	case "pdf":
		return render.ToPDF(svg)
	case "png":
		return render.ToPNG(svg, opts.scale)
	}
	return svg, nil
}
