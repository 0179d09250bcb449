package env

// PackageLayout lists where headers and .pc files live inside an install
// root for one backend. Paths are relative to the root.
type PackageLayout struct {
	Includes  []string
	PkgConfig []string
}

// Environment is an install root populated by a package backend
// (apt, brew, nix, ...).
type Environment struct {
	InstallPath string // Root installation path (e.g., /opt/deps)
	BackendType string // Backend type; selects the layout
}
