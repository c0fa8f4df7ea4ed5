package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pkgsmith/itkplan/pkg/pipeline"
)

// planCommand creates the plan command: resolve flags into a validated
// component graph and print a summary.
func (c *CLI) planCommand() *cobra.Command {
	var opts flagOpts
	var listAll bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Resolve build flags into a validated component graph",
		Long: `Plan resolves the given build flags into the component graph they
produce, validates it, and prints a summary table.

Examples:
  itkplan plan                            # defaults
  itkplan plan --with-rtk --with-cuda     # enable optional modules
  itkplan plan --profile minimal.toml     # start from a profile file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			result, err := c.newRunner().Plan(cmd.Context(), f)
			if err != nil {
				printError("%v", err)
				return err
			}
			p.done(fmt.Sprintf("Planned %d components", result.Stats.ComponentCount))

			printPlanSummary(result, listAll)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&listAll, "all", false, "list every component instead of the summary")

	return cmd
}

// printPlanSummary prints the run header and either aggregate counts
// or the full component table.
func printPlanSummary(result *pipeline.Result, listAll bool) {
	f := result.Flags
	fmt.Println(styleTitle.Render("ITK "+f.Version) + styleDim.Render("  ("+f.TargetOS+", run "+result.RunID[:8]+")"))
	fmt.Printf("%s components, %s external packages\n",
		styleValue.Render(strconv.Itoa(result.Stats.ComponentCount)),
		styleExternal.Render(strconv.Itoa(result.Stats.ExternalCount)))

	if !listAll {
		return
	}

	rows := make([][]string, 0, len(result.Manifest.Targets))
	for _, t := range result.Manifest.Targets {
		rows = append(rows, []string{
			t.Name,
			strconv.Itoa(len(t.Requires)),
			strings.Join(t.External, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Component", "Requires", "External").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 2 {
				return styleExternal
			}
			return styleValue
		})

	fmt.Println(t)
}
