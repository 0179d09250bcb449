package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// ErrNotFound indicates the registry has no entry for a package
var ErrNotFound = errors.New("registry: package not found")

// Entry represents a single <root>/<name>/index.toml file
type Entry struct {
	Name       string   `toml:"name"`
	Modules    []string `toml:"modules"`     // pkg-config module names, tried in order
	MinVersion string   `toml:"min_version"` // used when the caller gives no minimum
	Headers    []string `toml:"headers"`     // headers the package is known to ship
}

// Registry maps canonical package names to pkg-config modules
type Registry struct {
	root string
}

// New creates a Registry rooted at dir
func New(dir string) *Registry {
	return &Registry{root: dir}
}

// Root returns the registry directory, empty for a nil Registry
func (r *Registry) Root() string {
	if r == nil {
		return ""
	}
	return r.root
}

// Modules returns the pkg-config modules to probe for name together with
// the entry they came from. Without an entry, or with an entry that lists
// none, the name itself is the only module. A missing entry is not an
// error; a broken one is returned alongside the fallback.
func (r *Registry) Modules(name string) ([]string, *Entry, error) {
	entry, err := r.Load(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			err = nil
		}
		return []string{name}, nil, err
	}
	if len(entry.Modules) == 0 {
		return []string{name}, entry, nil
	}
	return entry.Modules, entry, nil
}

// Ships reports whether the entry lists header. An entry without a
// headers list makes no claim and ships everything.
func (e *Entry) Ships(header string) bool {
	if e == nil || len(e.Headers) == 0 {
		return true
	}
	return slices.Contains(e.Headers, header)
}

// Load reads and parses <root>/<name>/index.toml
func (r *Registry) Load(name string) (*Entry, error) {
	if r == nil || r.root == "" {
		return nil, fmt.Errorf("%w: no registry configured", ErrNotFound)
	}
	if _, err := os.Stat(r.root); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: registry directory %s does not exist", ErrNotFound, r.root)
	}

	path := filepath.Join(r.root, name, "index.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		// Check if the directory exists, to give a better error message.
		dirPath := filepath.Dir(path)
		if _, statErr := os.Stat(dirPath); statErr == nil {
			return nil, fmt.Errorf("%w: found package '%s' directory, but missing index.toml", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if entry.Name == "" {
		entry.Name = name
	}

	return &entry, nil
}
