/*
Package env isolates everything hdrloc reads from its surroundings.

It handles:
  - Reading the ambient search path (PATH by default) from the process
    environment, and splitting it on the platform list separator
  - Discovering include and pkg-config directories inside an install root
    populated by a package backend

Basic Usage:

	path, ok := env.SearchPath("PATH")
	if !ok {
		// no search path configured at all
	}
	for _, dir := range env.SplitList(path) {
		fmt.Println(dir)
	}

	e := env.New("/opt/deps", "apt")
	includes := e.IncludePaths() // /opt/deps/usr/include, ...
	pcDirs := e.PkgConfigPaths() // /opt/deps/usr/lib/x86_64-linux-gnu/pkgconfig, ...

Backend Layouts:

Each backend (apt, brew, nix, etc.) has a different directory structure
when packages are extracted. APT packages keep headers in usr/include and
.pc files in usr/lib/x86_64-linux-gnu/pkgconfig while Homebrew bottles use
include/ and lib/pkgconfig directly.
*/
package env
