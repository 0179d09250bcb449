package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arc-language/hdrloc"
)

var (
	locatePackage    string
	locateMinVersion string
	locatePath       string
	locateAll        bool
)

var locateCmd = &cobra.Command{
	Use:   "locate [header]",
	Short: "Find a header by file name",
	Long: `Find a header by exact file name.

Without --package the directories of the search path ($PATH unless
--path is given) are scanned in order. With --package the include
directories reported by pkg-config are scanned first.

Examples:
  hdrloc locate zlib.h
  hdrloc locate ssl.h --package openssl --min-version 1.1
  hdrloc locate png.h --path /usr/include:/opt/include --all`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVarP(&locatePackage, "package", "p", "", "pkg-config package whose include dirs are searched first")
	locateCmd.Flags().StringVar(&locateMinVersion, "min-version", "", "minimum package version")
	locateCmd.Flags().StringVar(&locatePath, "path", "", "search path to scan instead of the ambient one")
	locateCmd.Flags().BoolVar(&locateAll, "all", false, "print every match instead of the first")
	locateCmd.Flags().Bool("skip-unreadable", false, "skip directories that cannot be read instead of failing")
	locateCmd.Flags().Int("max-depth", 0, "maximum directory depth below each search root (0 = unlimited)")
}

func runLocate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	header := args[0]
	out := cmd.OutOrStdout()

	r, err := newResolver()
	if err != nil {
		return err
	}

	var opts []hdrloc.LocateOption
	if locatePackage != "" {
		opts = append(opts, hdrloc.WithPackage(locatePackage, locateMinVersion))
	}

	if locateAll {
		searchPath := locatePath
		if !cmd.Flags().Changed("path") {
			path, ok := ambientPath(r)
			if !ok {
				return fmt.Errorf("%w: $%s", hdrloc.ErrSearchPathUnset, r.SearchPathEnv())
			}
			searchPath = path
		}

		all, err := r.LocateAll(ctx, searchPath, header, opts...)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			return notFound(cmd, header)
		}
		for _, h := range all {
			fmt.Fprintf(out, "%s\t%s\n", h.Path, h.Source)
		}
		return nil
	}

	var h *hdrloc.Header
	if cmd.Flags().Changed("path") {
		h, err = r.LocateWithPath(ctx, locatePath, header, opts...)
	} else {
		h, err = r.Locate(ctx, header, opts...)
	}
	if err != nil {
		return err
	}
	if h == nil {
		return notFound(cmd, header)
	}

	fmt.Fprintln(out, h.Path)
	if config.Debug {
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✓ found %s via %s (%s)\n", header, h.Source, h.Root)
	}
	return nil
}

func notFound(cmd *cobra.Command, header string) error {
	color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "✗ %s not found\n", header)
	return fmt.Errorf("header %s not found", header)
}
