package env

import (
	"os"
	"path/filepath"
)

// New returns an Environment for an install root and backend
func New(installPath, backend string) *Environment {
	return &Environment{
		InstallPath: installPath,
		BackendType: backend,
	}
}

// IncludePaths returns the layout's include directories that exist under
// the install root, in layout order
func (e *Environment) IncludePaths() []string {
	if e == nil {
		return nil
	}
	return e.existing(GetPackageLayout(e.BackendType).Includes)
}

// PkgConfigPaths returns the layout's pkg-config directories that exist
// under the install root, in layout order
func (e *Environment) PkgConfigPaths() []string {
	if e == nil {
		return nil
	}
	return e.existing(GetPackageLayout(e.BackendType).PkgConfig)
}

func (e *Environment) existing(rel []string) []string {
	if e.InstallPath == "" {
		return nil
	}

	var dirs []string
	for _, r := range rel {
		dir := filepath.Join(e.InstallPath, r)
		if dirExists(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
