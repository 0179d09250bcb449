// Package scan finds a file by exact name inside a directory tree.
//
// The walk is depth-first and pre-order. Entries of a directory are visited
// in os.ReadDir order (sorted by name), so for an unchanged tree repeated
// searches return the same match. Symlinks are followed; a directory that
// resolves to one already visited is skipped, so link cycles terminate.
package scan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ErrUnreadableDir is returned when a directory in the tree cannot be
// enumerated and SkipUnreadable is off
var ErrUnreadableDir = errors.New("cannot read directory")

// Options configures a Scanner
type Options struct {
	// SkipUnreadable logs directories that cannot be enumerated and treats
	// them as holding no match. When false such a directory aborts the
	// search with ErrUnreadableDir.
	SkipUnreadable bool

	// MaxDepth bounds descent below the root (0 = unlimited, 1 = root
	// entries only)
	MaxDepth int

	// Logger receives debug output; nil discards it
	Logger *log.Logger

	// ReadDir lists a directory; nil uses os.ReadDir
	ReadDir func(name string) ([]os.DirEntry, error)
}

// Scanner searches directory trees. It keeps no state between calls.
type Scanner struct {
	opts    Options
	logger  *log.Logger
	readDir func(name string) ([]os.DirEntry, error)
}

// New creates a Scanner
func New(opts Options) *Scanner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	readDir := opts.ReadDir
	if readDir == nil {
		readDir = os.ReadDir
	}
	return &Scanner{opts: opts, logger: logger, readDir: readDir}
}

type node struct {
	path  string
	depth int
}

// Find searches root for a regular file whose base name equals target and
// returns the first one in traversal order. root may itself be a file.
// A missing root, broken symlink or special file is simply not a match.
func (s *Scanner) Find(target, root string) (string, bool, error) {
	var found string
	err := s.walk(target, root, func(path string) bool {
		found = path
		return false
	})
	if err != nil {
		return "", false, err
	}
	return found, found != "", nil
}

// FindAll returns every match under root in traversal order
func (s *Scanner) FindAll(target, root string) ([]string, error) {
	var matches []string
	err := s.walk(target, root, func(path string) bool {
		matches = append(matches, path)
		return true
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// walk calls match for each hit until it returns false
func (s *Scanner) walk(target, root string, match func(string) bool) error {
	s.logger.Debug("searching", "dir", root, "header", target)

	visited := make(map[string]bool)
	stack := []node{{path: root}}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := os.Stat(n.path)
		if err != nil {
			continue
		}

		if info.Mode().IsRegular() {
			if filepath.Base(n.path) == target {
				if !match(n.path) {
					return nil
				}
			}
			continue
		}

		if !info.IsDir() {
			continue
		}
		if s.opts.MaxDepth > 0 && n.depth >= s.opts.MaxDepth {
			continue
		}

		canonical, err := filepath.EvalSymlinks(n.path)
		if err != nil {
			canonical = n.path
		}
		if visited[canonical] {
			s.logger.Debug("skipping visited directory", "dir", n.path, "target", canonical)
			continue
		}
		visited[canonical] = true

		entries, err := s.readDir(n.path)
		if err != nil {
			if s.opts.SkipUnreadable {
				s.logger.Warn("skipping unreadable directory", "dir", n.path, "err", err)
				continue
			}
			return fmt.Errorf("%w %s: %w", ErrUnreadableDir, n.path, err)
		}

		// push in reverse so the first entry is popped first
		for i := len(entries) - 1; i >= 0; i-- {
			stack = append(stack, node{
				path:  filepath.Join(n.path, entries[i].Name()),
				depth: n.depth + 1,
			})
		}
	}

	return nil
}
