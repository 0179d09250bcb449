package pkgconfig

import "errors"

var (
	// ErrPackageNotFound indicates no .pc file or pkg-config entry for the package
	ErrPackageNotFound = errors.New("package not found")

	// ErrVersionNotSatisfied indicates the package is older than the requested minimum
	ErrVersionNotSatisfied = errors.New("version not satisfied")
)
