package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pkgsmith/itkplan/pkg/component"
	"github.com/pkgsmith/itkplan/pkg/flagset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listOnStyle       = lipgloss.NewStyle().Foreground(colorGreen)
	listOffStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command: toggle feature flags
// interactively and watch the graph revalidate live.
func (c *CLI) tuiCommand() *cobra.Command {
	var opts flagOpts

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Toggle feature flags interactively",
		Long: `Tui opens an interactive flag editor. Every toggle re-plans the
graph immediately, so conflicts and component counts show up as you
type. Confirm with enter to print the resulting plan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			model := NewFlagModel(f)
			out, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			final, ok := out.(FlagModel)
			if !ok || !final.Accepted {
				return nil
			}

			result, err := c.newRunner().Plan(cmd.Context(), final.Flags)
			if err != nil {
				return err
			}
			printPlanSummary(result, true)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

// =============================================================================
// FlagModel - Interactive flag editing
// =============================================================================

// flagRow is one toggleable entry in the editor.
type flagRow struct {
	label string
	get   func(flagset.Set) bool
	set   func(*flagset.Set, bool)
}

// flagRows lists the editable feature flags in display order.
var flagRows = []flagRow{
	{"shared artifacts", func(f flagset.Set) bool { return f.Shared }, func(f *flagset.Set, v bool) { f.Shared = v }},
	{"hdf5 shared", func(f flagset.Set) bool { return f.HDF5Shared }, func(f *flagset.Set, v bool) { f.HDF5Shared = v }},
	{"with dcmtk", func(f flagset.Set) bool { return f.WithDCMTK }, func(f *flagset.Set, v bool) { f.WithDCMTK = v }},
	{"with gdcm", func(f flagset.Set) bool { return f.WithGDCM }, func(f *flagset.Set, v bool) { f.WithGDCM = v }},
	{"with rtk", func(f flagset.Set) bool { return f.WithRTK }, func(f *flagset.Set, v bool) { f.WithRTK = v }},
	{"with scanco", func(f flagset.Set) bool { return f.WithScanco }, func(f *flagset.Set, v bool) { f.WithScanco = v }},
	{"with elastix", func(f flagset.Set) bool { return f.WithElastix }, func(f *flagset.Set, v bool) { f.WithElastix = v }},
	{"with cuda", func(f flagset.Set) bool { return f.WithCUDA }, func(f *flagset.Set, v bool) { f.WithCUDA = v }},
	{"with gpu", func(f flagset.Set) bool { return f.WithGPU }, func(f *flagset.Set, v bool) { f.WithGPU = v }},
}

// FlagModel is the bubbletea model for the flag editor.
type FlagModel struct {
	Flags    flagset.Set
	Cursor   int
	Accepted bool

	componentCount int
	validationErr  string
}

// NewFlagModel creates a flag editor starting from f.
func NewFlagModel(f flagset.Set) FlagModel {
	m := FlagModel{Flags: f}
	m.revalidate()
	return m
}

func (m FlagModel) Init() tea.Cmd {
	return nil
}

func (m FlagModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(flagRows)-1 {
			m.Cursor++
		}
	case " ", "x":
		row := flagRows[m.Cursor]
		row.set(&m.Flags, !row.get(m.Flags))
		m.revalidate()
	case "enter":
		if m.validationErr != "" {
			return m, nil
		}
		m.Accepted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m FlagModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("itkplan · ITK "+m.Flags.Version) + "\n\n")

	for i, row := range flagRows {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = styleTitle.Render("> ")
			style = listSelectedStyle
		}

		state := listOffStyle.Render("off")
		if row.get(m.Flags) {
			state = listOnStyle.Render("on ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, state, style.Render(row.label))
	}

	b.WriteString("\n")
	if m.validationErr != "" {
		b.WriteString(styleIconError.Render(iconError) + " " + m.validationErr + "\n")
	} else {
		fmt.Fprintf(&b, "%s %d components\n", styleIconOK.Render(iconSuccess), m.componentCount)
	}
	b.WriteString(styleDim.Render("space toggle · enter confirm · q quit") + "\n")

	return b.String()
}

// revalidate re-plans the graph for the current flags and records the
// outcome for display.
func (m *FlagModel) revalidate() {
	g, err := component.Build(m.Flags)
	if err != nil {
		m.componentCount = 0
		m.validationErr = err.Error()
		return
	}
	m.componentCount = g.Len()
	m.validationErr = ""
}
