// errors.go
package hdrloc

import (
	"errors"
	"fmt"

	"github.com/arc-language/hdrloc/pkg/pkgconfig"
	"github.com/arc-language/hdrloc/pkg/scan"
)

var (
	// ErrSearchPathUnset indicates the ambient search-path variable is not set at all
	ErrSearchPathUnset = errors.New("search path not set")

	// ErrUnreadableDir indicates a directory could not be enumerated during a scan
	ErrUnreadableDir = scan.ErrUnreadableDir

	// ErrPackageNotFound indicates the prober does not know the package.
	// Locate absorbs it; it only reaches callers of Probe.
	ErrPackageNotFound = pkgconfig.ErrPackageNotFound

	// ErrVersionNotSatisfied indicates the installed package is older than requested
	ErrVersionNotSatisfied = pkgconfig.ErrVersionNotSatisfied
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Header string // Header being located, if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Header, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
