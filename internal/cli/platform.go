package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/hdrloc/pkg/core"
	"github.com/arc-language/hdrloc/pkg/pkgconfig"
	"github.com/arc-language/hdrloc/pkg/platform"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the detected platform and pkg-config probers",
	RunE:  runPlatform,
}

func runPlatform(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	plat := platform.Detect()

	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "pkg-config binaries:\n")
	for _, bin := range plat.Available {
		marker := " "
		if bin == plat.Preferred {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, bin)
	}
	if len(plat.Available) == 0 {
		fmt.Fprintf(out, "  (none, .pc files are read directly)\n")
	}

	r, err := newResolver()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nProber: %s\n", r.Prober().Name())
	fmt.Fprintf(out, ".pc dirs:\n")
	dirs := pcDirs(r.Prober())
	if dirs == nil {
		dirs = platform.PkgConfigDirs(config, false)
	}
	for _, dir := range dirs {
		fmt.Fprintf(out, "  %s\n", dir)
	}

	if root := r.Registry().Root(); root != "" {
		fmt.Fprintf(out, "\nRegistry: %s\n", root)
	} else {
		fmt.Fprintf(out, "\nRegistry: (none)\n")
	}

	return nil
}

// pcDirs returns the directories a file-reading prober searches, nil when
// the prober only runs a binary
func pcDirs(p core.Prober) []string {
	switch p := p.(type) {
	case *pkgconfig.Files:
		return p.Dirs()
	case pkgconfig.Chain:
		for _, sub := range p {
			if dirs := pcDirs(sub); dirs != nil {
				return dirs
			}
		}
	}
	return nil
}
