package pkgconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arc-language/hdrloc/pkg/core"
)

// Chain tries each prober in order and returns the first success
type Chain []core.Prober

// Name implements core.Prober
func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.Name())
	}
	return strings.Join(names, "+")
}

// Probe implements core.Prober. When every prober fails the errors are
// joined, so errors.Is still matches ErrPackageNotFound or
// ErrVersionNotSatisfied.
func (c Chain) Probe(ctx context.Context, pkg core.Package) (*core.Library, error) {
	if len(c) == 0 {
		return nil, fmt.Errorf("%w: no probers configured", ErrPackageNotFound)
	}

	var errs []error
	for _, p := range c {
		lib, err := p.Probe(ctx, pkg)
		if err == nil {
			return lib, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return nil, errors.Join(errs...)
}
