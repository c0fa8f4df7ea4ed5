package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgsmith/itkplan/pkg/component"
	"github.com/pkgsmith/itkplan/pkg/render"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// exportCommand creates the export command: draw the planned graph as
// a Graphviz diagram.
func (c *CLI) exportCommand() *cobra.Command {
	var opts flagOpts
	var (
		format    string
		output    string
		externals bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the component graph as a DOT or SVG diagram",
		Long: `Export plans the graph for the given flags and writes it as a
Graphviz node-link diagram.

Examples:
  itkplan export -o graph.dot
  itkplan export --format svg --externals -o graph.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			g, err := component.Build(f)
			if err != nil {
				return err
			}

			dot := render.ToDOT(g, render.Options{Externals: externals})

			var data []byte
			switch format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				data, err = render.RenderSVG(cmd.Context(), dot)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if _, err := out.Write(data); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Exported %d components to %s", g.Len(), output)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatDOT, "output format (dot or svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&externals, "externals", false, "include external package references")

	return cmd
}
