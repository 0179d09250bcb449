package core

// Package names a package-metadata entry and the oldest acceptable version.
type Package struct {
	Name       string // Package name as known to pkg-config (e.g., "openssl")
	MinVersion string // Minimum version; empty accepts any version
}

// Library is the result of a successful probe
type Library struct {
	Name         string   // Module that satisfied the probe
	Version      string   // Version reported by the prober
	IncludePaths []string // Include directories, in the order the prober reported them
}
