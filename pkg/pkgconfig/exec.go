package pkgconfig

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/hdrloc/pkg/core"
)

// DefaultBinary is the pkg-config executable looked up on PATH
const DefaultBinary = "pkg-config"

// Exec probes packages by running the pkg-config binary
type Exec struct {
	binary    string
	extraPath []string
	logger    *log.Logger
}

// NewExec creates an Exec prober. extraPath is prepended to PKG_CONFIG_PATH
// for every invocation.
func NewExec(binary string, extraPath []string, logger *log.Logger) *Exec {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Exec{
		binary:    binary,
		extraPath: extraPath,
		logger:    logger,
	}
}

// Name implements core.Prober
func (e *Exec) Name() string {
	return "pkg-config"
}

// Probe implements core.Prober
func (e *Exec) Probe(ctx context.Context, pkg core.Package) (*core.Library, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("%w: empty package name", ErrPackageNotFound)
	}

	if _, err := e.run(ctx, "--exists", pkg.Name); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPackageNotFound, pkg.Name, err)
	}

	if pkg.MinVersion != "" {
		if _, err := e.run(ctx, "--atleast-version="+pkg.MinVersion, pkg.Name); err != nil {
			return nil, fmt.Errorf("%w: %s >= %s", ErrVersionNotSatisfied, pkg.Name, pkg.MinVersion)
		}
	}

	modVersion, err := e.run(ctx, "--modversion", pkg.Name)
	if err != nil {
		return nil, fmt.Errorf("reading version of %s: %w", pkg.Name, err)
	}

	cflags, err := e.run(ctx, "--cflags-only-I", pkg.Name)
	if err != nil {
		return nil, fmt.Errorf("reading cflags of %s: %w", pkg.Name, err)
	}

	dirs, err := IncludeDirs(cflags)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("pkg-config probe", "package", pkg.Name, "version", modVersion, "includes", dirs)

	return &core.Library{
		Name:         pkg.Name,
		Version:      modVersion,
		IncludePaths: dirs,
	}, nil
}

func (e *Exec) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Env = e.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", e.binary, strings.Join(args, " "), err, msg)
		}
		return "", fmt.Errorf("%s %s: %w", e.binary, strings.Join(args, " "), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// environ keeps system include dirs such as /usr/include in --cflags output
// and prepends the configured search dirs to PKG_CONFIG_PATH
func (e *Exec) environ() []string {
	environ := append(os.Environ(), "PKG_CONFIG_ALLOW_SYSTEM_CFLAGS=1")
	if len(e.extraPath) == 0 {
		return environ
	}

	path := strings.Join(e.extraPath, string(os.PathListSeparator))
	if existing := os.Getenv("PKG_CONFIG_PATH"); existing != "" {
		path += string(os.PathListSeparator) + existing
	}
	return append(environ, "PKG_CONFIG_PATH="+path)
}
