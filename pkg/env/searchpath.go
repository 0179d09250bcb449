package env

import (
	"os"
	"path/filepath"
	"strings"
)

// SearchPath reads the named variable from the process environment. The
// boolean is false only when the variable is not set at all; a set but
// empty value is returned as "", true.
func SearchPath(name string) (string, bool) {
	return os.LookupEnv(name)
}

// SplitList splits a search path on the platform list separator (':' on
// Unix, ';' on Windows). Order is preserved and empty entries are dropped.
func SplitList(path string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(path) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// JoinList is the inverse of SplitList
func JoinList(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

// PkgConfigPath returns the directories listed in PKG_CONFIG_PATH
func PkgConfigPath() []string {
	return SplitList(os.Getenv("PKG_CONFIG_PATH"))
}

// PkgConfigLibDir returns the directories pkg-config uses instead of its
// built-in ones: PKG_CONFIG_LIBDIR when set, otherwise the system
// defaults for this platform
func PkgConfigLibDir() []string {
	if libdir, ok := os.LookupEnv("PKG_CONFIG_LIBDIR"); ok {
		return SplitList(libdir)
	}
	return SystemPkgConfigDirs()
}
