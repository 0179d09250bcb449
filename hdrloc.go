// hdrloc.go
package hdrloc

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/arc-language/hdrloc/pkg/core"
	"github.com/arc-language/hdrloc/pkg/env"
	"github.com/arc-language/hdrloc/pkg/pkgconfig"
	"github.com/arc-language/hdrloc/pkg/platform"
	"github.com/arc-language/hdrloc/pkg/registry"
	"github.com/arc-language/hdrloc/pkg/scan"
)

// Re-export core types for convenience
type (
	Package = core.Package
	Library = core.Library
	Config  = core.Config
	Prober  = core.Prober
	// RegistryEntry is the metadata for a package from a registry directory
	RegistryEntry = registry.Entry
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Source tells which tier of the search produced a header
type Source string

const (
	SourcePackage     Source = "package"     // include dir reported by the prober
	SourceEnvironment Source = "environment" // include dir of the install environment
	SourcePath        Source = "path"        // search path fallback
)

// Header is a located header file
type Header struct {
	Path    string // Location of the file
	Root    string // Directory whose scan found it
	Source  Source
	Package string // Module that satisfied the probe (package tiers only)
	Version string // Its version (package tiers only)
}

// Resolver finds headers. It holds only immutable collaborators, so one
// Resolver may serve any number of independent calls.
type Resolver struct {
	prober        core.Prober
	registry      *registry.Registry
	environment   *env.Environment
	scanOpts      scan.Options
	searchPathEnv string
	logger        *log.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithProber sets the package-metadata prober
func WithProber(p core.Prober) Option {
	return func(r *Resolver) { r.prober = p }
}

// WithRegistry maps package names to pkg-config modules before probing
func WithRegistry(reg *registry.Registry) Option {
	return func(r *Resolver) { r.registry = reg }
}

// WithEnvironment adds an install environment's include dirs to the
// package tier
func WithEnvironment(e *env.Environment) Option {
	return func(r *Resolver) { r.environment = e }
}

// WithScanOptions sets the directory scanner options
func WithScanOptions(opts scan.Options) Option {
	return func(r *Resolver) { r.scanOpts = opts }
}

// WithSearchPathEnv sets the variable Locate reads (default PATH)
func WithSearchPathEnv(name string) Option {
	return func(r *Resolver) { r.searchPathEnv = name }
}

// WithLogger sets the debug logger
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a Resolver. Without WithProber the prober is chosen
// from the detected platform as in auto mode.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		searchPathEnv: core.DefaultSearchPathEnv,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = core.NewLogger(false)
	}
	if r.scanOpts.Logger == nil {
		r.scanOpts.Logger = r.logger
	}
	if r.prober == nil {
		r.prober = defaultProber(r.logger)
	}

	return r
}

// defaultProber resolves the auto-mode prober. If that fails the Resolver
// still works in package mode, every probe just reports the package as
// missing and the search path is used.
func defaultProber(logger *log.Logger) core.Prober {
	p, err := platform.ResolveProber(platform.Detect(), core.DefaultConfig(), logger)
	if err != nil || p == nil {
		logger.Debug("no package prober available", "err", err)
		return pkgconfig.Chain{}
	}
	return p
}

// NewResolverFromConfig creates a Resolver wired from configuration
func NewResolverFromConfig(cfg *Config, opts ...Option) (*Resolver, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := core.NewLogger(cfg.Debug)

	prober, err := platform.ResolveProber(platform.Detect(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing prober: %w", err)
	}

	base := []Option{
		WithLogger(logger),
		WithProber(prober),
		WithSearchPathEnv(cfg.SearchPathEnv),
		WithScanOptions(scan.Options{
			SkipUnreadable: cfg.SkipUnreadable,
			MaxDepth:       cfg.MaxDepth,
			Logger:         logger,
		}),
	}
	if cfg.RegistryPath != "" {
		base = append(base, WithRegistry(registry.New(cfg.RegistryPath)))
	}
	if cfg.InstallPath != "" {
		base = append(base, WithEnvironment(env.New(cfg.InstallPath, cfg.Backend)))
	}

	return NewResolver(append(base, opts...)...), nil
}

// Prober returns the package-metadata prober in use
func (r *Resolver) Prober() core.Prober {
	return r.prober
}

// Registry returns the package registry, nil when none is configured
func (r *Resolver) Registry() *registry.Registry {
	return r.registry
}

// SearchPathEnv returns the variable Locate reads
func (r *Resolver) SearchPathEnv() string {
	return r.searchPathEnv
}
