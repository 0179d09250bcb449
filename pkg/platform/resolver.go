package platform

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/arc-language/hdrloc/pkg/core"
	"github.com/arc-language/hdrloc/pkg/env"
	"github.com/arc-language/hdrloc/pkg/pkgconfig"
)

// ResolveProber builds the package-metadata prober selected by config.
//
// Priority for the exec binary:
// 1. pkg_config_binary from config
// 2. Platform preferred binary
//
// In auto mode the exec prober, when a binary is available, is chained in
// front of the .pc file reader.
func ResolveProber(platform *Platform, config *core.Config, logger *log.Logger) (core.Prober, error) {
	binary := config.PkgConfigBinary
	if binary == "" {
		binary = platform.Preferred
	}

	switch config.Prober {
	case core.ProberExec:
		if binary == "" {
			return nil, fmt.Errorf("prober 'exec' requested but no pkg-config binary is available")
		}
		return pkgconfig.NewExec(binary, PkgConfigDirs(config, false), logger), nil

	case core.ProberFiles:
		return pkgconfig.NewFiles(PkgConfigDirs(config, true), logger), nil

	case core.ProberAuto, "":
		files := pkgconfig.NewFiles(PkgConfigDirs(config, true), logger)
		if binary == "" {
			return files, nil
		}
		return pkgconfig.Chain{
			pkgconfig.NewExec(binary, PkgConfigDirs(config, false), logger),
			files,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported prober: %s", config.Prober)
	}
}

// PkgConfigDirs lists .pc directories in pkg-config's priority order:
// configured dirs, then the install environment's layout dirs, then
// PKG_CONFIG_PATH. withSystem appends the built-in dirs, which a
// pkg-config binary already knows on its own.
func PkgConfigDirs(config *core.Config, withSystem bool) []string {
	var dirs []string
	dirs = append(dirs, config.PkgConfigPath...)
	if config.InstallPath != "" {
		dirs = append(dirs, env.New(config.InstallPath, config.Backend).PkgConfigPaths()...)
	}
	if withSystem {
		dirs = append(dirs, env.PkgConfigPath()...)
		dirs = append(dirs, env.PkgConfigLibDir()...)
	}
	return dedupe(dirs)
}
