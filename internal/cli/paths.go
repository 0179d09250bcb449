package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arc-language/hdrloc"
	"github.com/arc-language/hdrloc/pkg/env"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the search path directories",
	Long:  `List the directories of the ambient search path in scan order, marking those that do not exist.`,
	RunE:  runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	r, err := newResolver()
	if err != nil {
		return err
	}

	path, ok := ambientPath(r)
	if !ok {
		return fmt.Errorf("%w: $%s", hdrloc.ErrSearchPathUnset, r.SearchPathEnv())
	}

	fmt.Fprintf(out, "Search path ($%s):\n", r.SearchPathEnv())
	missing := color.New(color.FgRed)
	for _, dir := range env.SplitList(path) {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			missing.Fprintf(out, "  ✗ %s\n", dir)
			continue
		}
		fmt.Fprintf(out, "  %s\n", dir)
	}
	return nil
}

func ambientPath(r *hdrloc.Resolver) (string, bool) {
	return env.SearchPath(r.SearchPathEnv())
}
