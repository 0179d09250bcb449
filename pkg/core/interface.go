package core

import "context"

// Prober is the package-metadata collaborator. Given a package name and a
// minimum version it reports the package's include directories, or fails.
// Version ordering is owned by the implementation.
type Prober interface {
	// Name returns the prober name (e.g., "pkg-config", "pc-files")
	Name() string

	// Probe looks up pkg and returns its metadata if it is installed at
	// or above pkg.MinVersion
	Probe(ctx context.Context, pkg Package) (*Library, error)
}

// ProberFunc adapts a plain function to the Prober interface
type ProberFunc func(ctx context.Context, pkg Package) (*Library, error)

// Name implements Prober
func (f ProberFunc) Name() string { return "func" }

// Probe implements Prober
func (f ProberFunc) Probe(ctx context.Context, pkg Package) (*Library, error) {
	return f(ctx, pkg)
}
