package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arc-language/hdrloc"
)

var probeMinVersion string

var probeCmd = &cobra.Command{
	Use:   "probe [package]",
	Short: "Show the include directories of a package",
	Long:  `Ask the configured prober for a package and print its version and include directories.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&probeMinVersion, "min-version", "", "minimum package version")
}

func runProbe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	r, err := newResolver()
	if err != nil {
		return err
	}

	lib, err := r.Probe(ctx, hdrloc.Package{Name: args[0], MinVersion: probeMinVersion})
	if err != nil {
		return &hdrloc.Error{Op: "probe", Err: err}
	}

	fmt.Fprintf(out, "Package: %s\n", lib.Name)
	fmt.Fprintf(out, "Version: %s\n", lib.Version)
	fmt.Fprintf(out, "Prober:  %s\n", r.Prober().Name())
	fmt.Fprintf(out, "Include directories:\n")
	for _, dir := range lib.IncludePaths {
		fmt.Fprintf(out, "  %s\n", dir)
	}
	if len(lib.IncludePaths) == 0 {
		color.New(color.FgYellow).Fprintln(out, "  (none reported)")
	}
	return nil
}
