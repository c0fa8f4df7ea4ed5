package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkgsmith/itkplan/pkg/manifest"
)

// emitCommand creates the emit command: plan a graph and write its
// package metadata as JSON.
func (c *CLI) emitCommand() *cobra.Command {
	var opts flagOpts
	var output string

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Emit package metadata for a flag set as JSON",
		Long: `Emit plans the component graph for the given flags and writes the
resulting package metadata - one target per component plus the build
toggles - as JSON.

Examples:
  itkplan emit                      # metadata for the defaults, to stdout
  itkplan emit -o itk.json          # write to a file
  itkplan emit --with-rtk --shared --hdf5-shared`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			result, err := c.newRunner().Plan(cmd.Context(), f)
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := manifest.Write(result.Manifest, out); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Wrote metadata for %d targets to %s", len(result.Manifest.Targets), output)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
