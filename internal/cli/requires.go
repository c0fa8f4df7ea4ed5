package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgsmith/itkplan/pkg/component"
)

// requiresCommand creates the requires command: print the transitive
// requirements of one component under a flag set.
func (c *CLI) requiresCommand() *cobra.Command {
	var opts flagOpts

	cmd := &cobra.Command{
		Use:   "requires <component>",
		Short: "Print a component's transitive requirements",
		Long: `Requires plans the graph for the given flags and prints every
requirement reachable from the named component, internal components
first in dependency order, external packages marked as such.

Examples:
  itkplan requires ITKIOGDCM
  itkplan requires itkRTK --with-rtk --with-cuda`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			g, err := component.Build(f)
			if err != nil {
				return err
			}

			refs, err := g.ResolveRequires(args[0])
			if err != nil {
				return err
			}

			for _, r := range refs {
				if r.IsExternal() {
					fmt.Println(styleExternal.Render(r.String()))
				} else {
					fmt.Println(styleValue.Render(r.String()))
				}
			}
			c.Logger.Debug("resolved requirements", "component", args[0], "count", len(refs))
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
