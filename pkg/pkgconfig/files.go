package pkgconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/arc-language/hdrloc/pkg/core"
	"github.com/arc-language/hdrloc/pkg/version"
)

// Files probes packages by reading .pc files directly, without a
// pkg-config binary. Like pkg-config, the first <name>.pc found on the
// search dirs is authoritative.
type Files struct {
	dirs   []string
	logger *log.Logger
}

// NewFiles creates a Files prober over the given pkg-config directories
func NewFiles(dirs []string, logger *log.Logger) *Files {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Files{dirs: dirs, logger: logger}
}

// Name implements core.Prober
func (f *Files) Name() string {
	return "pc-files"
}

// Dirs returns the directories searched for .pc files
func (f *Files) Dirs() []string {
	return f.dirs
}

// Probe implements core.Prober
func (f *Files) Probe(ctx context.Context, pkg core.Package) (*core.Library, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("%w: empty package name", ErrPackageNotFound)
	}

	pc, err := f.Lookup(pkg.Name)
	if err != nil {
		return nil, err
	}

	if !version.AtLeast(pc.Version, pkg.MinVersion) {
		return nil, fmt.Errorf("%w: %s is %s, want >= %s", ErrVersionNotSatisfied, pkg.Name, pc.Version, pkg.MinVersion)
	}

	dirs, err := f.includeDirs(pc, map[string]bool{pkg.Name: true})
	if err != nil {
		return nil, err
	}

	f.logger.Debug("pc file probe", "package", pkg.Name, "file", pc.Path, "version", pc.Version, "includes", dirs)

	return &core.Library{
		Name:         pkg.Name,
		Version:      pc.Version,
		IncludePaths: dirs,
	}, nil
}

// includeDirs returns the -I dirs of pc followed by those of every package
// it requires, depth first in declaration order and without duplicates.
// visited holds the packages already expanded, so dependency cycles end.
func (f *Files) includeDirs(pc *PCFile, visited map[string]bool) ([]string, error) {
	dirs, err := pc.IncludeDirs()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pc.Path, err)
	}

	reqs, err := pc.Requirements()
	if err != nil {
		return nil, err
	}

	for _, req := range reqs {
		if visited[req.Name] {
			continue
		}
		visited[req.Name] = true

		dep, err := f.Lookup(req.Name)
		if err != nil {
			return nil, fmt.Errorf("%s required by %s: %w", req.Name, pc.Path, err)
		}
		if !req.Satisfied(dep.Version) {
			return nil, fmt.Errorf("%w: %s requires %s, found %s", ErrVersionNotSatisfied, pc.Path, req, dep.Version)
		}

		depDirs, err := f.includeDirs(dep, visited)
		if err != nil {
			return nil, err
		}
		for _, d := range depDirs {
			if !slices.Contains(dirs, d) {
				dirs = append(dirs, d)
			}
		}
	}
	return dirs, nil
}

// Lookup finds and parses <name>.pc on the search dirs
func (f *Files) Lookup(name string) (*PCFile, error) {
	for _, dir := range f.dirs {
		path := filepath.Join(dir, name+".pc")

		file, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}

		pc, err := ParsePC(file, path)
		file.Close()
		if err != nil {
			return nil, err
		}
		return pc, nil
	}

	return nil, fmt.Errorf("%w: no %s.pc in %d pkg-config dirs", ErrPackageNotFound, name, len(f.dirs))
}
