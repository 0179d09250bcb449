package hdrloc

import (
	"context"
	"errors"
	"fmt"

	"github.com/arc-language/hdrloc/pkg/core"
	"github.com/arc-language/hdrloc/pkg/env"
	"github.com/arc-language/hdrloc/pkg/registry"
	"github.com/arc-language/hdrloc/pkg/scan"
)

// LocateOption configures a single Locate call
type LocateOption func(*locateParams)

type locateParams struct {
	pkg *core.Package // nil selects path-only mode
}

// WithPackage switches Locate to package mode: the package's include dirs
// are searched before the search path
func WithPackage(name, minVersion string) LocateOption {
	return func(p *locateParams) {
		p.pkg = &core.Package{Name: name, MinVersion: minVersion}
	}
}

func collect(opts []LocateOption) locateParams {
	var p locateParams
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Locate finds header using the search path read from the process
// environment. It fails with ErrSearchPathUnset when the variable is not
// set at all.
func (r *Resolver) Locate(ctx context.Context, header string, opts ...LocateOption) (*Header, error) {
	path, err := r.ambientSearchPath()
	if err != nil {
		return nil, &Error{Op: "locate", Header: header, Err: err}
	}
	r.logger.Debug("locating header using ambient search path", "var", r.searchPathEnv, "path", path)
	return r.LocateWithPath(ctx, path, header, opts...)
}

// LocateWithPath finds header. In path-only mode each directory of
// searchPath is scanned in order. In package mode the package's include
// dirs are scanned first, and the search path is the fallback when the
// probe fails or the header is not in those dirs.
//
// A header that cannot be found is (nil, nil). Errors are reserved for
// scans that cannot proceed, such as an unreadable directory.
func (r *Resolver) LocateWithPath(ctx context.Context, searchPath, header string, opts ...LocateOption) (*Header, error) {
	found, err := r.resolve(ctx, searchPath, header, collect(opts), false)
	if err != nil {
		return nil, &Error{Op: "locate", Header: header, Err: err}
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// LocateAll returns every match in the order LocateWithPath would consider
// them. The first element, if any, is what LocateWithPath returns.
func (r *Resolver) LocateAll(ctx context.Context, searchPath, header string, opts ...LocateOption) ([]*Header, error) {
	found, err := r.resolve(ctx, searchPath, header, collect(opts), true)
	if err != nil {
		return nil, &Error{Op: "locate", Header: header, Err: err}
	}
	return found, nil
}

// tier is one candidate directory together with how it was obtained
type tier struct {
	dir     string
	source  Source
	pkgName string
	version string
}

func (t tier) header(path string) *Header {
	return &Header{
		Path:    path,
		Root:    t.dir,
		Source:  t.source,
		Package: t.pkgName,
		Version: t.version,
	}
}

// resolve scans every tier in order. Unless all is set it stops at the
// first match.
func (r *Resolver) resolve(ctx context.Context, searchPath, header string, p locateParams, all bool) ([]*Header, error) {
	var tiers []tier
	if p.pkg != nil {
		tiers = append(tiers, r.packageTiers(ctx, *p.pkg, header)...)
	}
	pathStart := len(tiers)
	for _, dir := range env.SplitList(searchPath) {
		tiers = append(tiers, tier{dir: dir, source: SourcePath})
	}

	scanner := scan.New(r.scanOpts)

	var found []*Header
	for i, t := range tiers {
		if i == pathStart && p.pkg != nil {
			r.logger.Debug("header not in package dirs, checking path", "header", header)
		}

		if all {
			matches, err := scanner.FindAll(header, t.dir)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				found = append(found, t.header(m))
			}
			continue
		}

		match, ok, err := scanner.Find(header, t.dir)
		if err != nil {
			return nil, err
		}
		if ok {
			return []*Header{t.header(match)}, nil
		}
	}
	return found, nil
}

// packageTiers probes the package and returns its include dirs followed
// by the install environment's include dirs. A failed probe is logged and
// yields no package dirs.
func (r *Resolver) packageTiers(ctx context.Context, pkg core.Package, header string) []tier {
	r.logger.Debug("checking package", "package", pkg.Name, "min_version", pkg.MinVersion, "header", header)

	var tiers []tier
	lib, entry, err := r.probe(ctx, pkg)
	if err != nil {
		r.logger.Debug("could not find package", "package", pkg.Name, "prober", r.prober.Name(), "err", err)
	} else {
		if !entry.Ships(header) {
			r.logger.Debug("header not listed for package in registry", "package", pkg.Name, "header", header)
		}
		for _, dir := range lib.IncludePaths {
			tiers = append(tiers, tier{dir: dir, source: SourcePackage, pkgName: lib.Name, version: lib.Version})
		}
	}

	for _, dir := range r.environment.IncludePaths() {
		tiers = append(tiers, tier{dir: dir, source: SourceEnvironment, pkgName: pkg.Name})
	}
	return tiers
}

// Probe asks the prober for pkg. When the registry has an entry for the
// name its modules are tried in order and the first successful probe wins;
// the entry's min_version applies when pkg has none.
func (r *Resolver) Probe(ctx context.Context, pkg core.Package) (*Library, error) {
	lib, _, err := r.probe(ctx, pkg)
	return lib, err
}

func (r *Resolver) probe(ctx context.Context, pkg core.Package) (*core.Library, *registry.Entry, error) {
	modules, entry, err := r.registry.Modules(pkg.Name)
	if err != nil {
		r.logger.Debug("ignoring registry entry", "package", pkg.Name, "registry", r.registry.Root(), "err", err)
	}

	minVersion := pkg.MinVersion
	if minVersion == "" && entry != nil {
		minVersion = entry.MinVersion
	}

	var errs []error
	for _, module := range modules {
		lib, err := r.prober.Probe(ctx, core.Package{Name: module, MinVersion: minVersion})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return lib, entry, nil
	}
	return nil, entry, errors.Join(errs...)
}

func (r *Resolver) ambientSearchPath() (string, error) {
	path, ok := env.SearchPath(r.searchPathEnv)
	if !ok {
		return "", fmt.Errorf("%w: $%s", ErrSearchPathUnset, r.searchPathEnv)
	}
	return path, nil
}

// Locate finds header with a Resolver built from the default
// configuration, reading the search path from $PATH
func Locate(ctx context.Context, header string, opts ...LocateOption) (*Header, error) {
	return NewResolver().Locate(ctx, header, opts...)
}

// LocateWithPath finds header on an explicit search path with a Resolver
// built from the default configuration
func LocateWithPath(ctx context.Context, searchPath, header string, opts ...LocateOption) (*Header, error) {
	return NewResolver().LocateWithPath(ctx, searchPath, header, opts...)
}
