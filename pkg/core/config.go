package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prober modes accepted by Config.Prober
const (
	ProberAuto  = "auto"
	ProberExec  = "exec"
	ProberFiles = "files"
)

// DefaultSearchPathEnv is the variable read when no search path is given
const DefaultSearchPathEnv = "PATH"

// Config holds hdrloc configuration
type Config struct {
	SearchPathEnv   string   `yaml:"search_path_env" mapstructure:"search_path_env"`
	Prober          string   `yaml:"prober" mapstructure:"prober"`
	PkgConfigBinary string   `yaml:"pkg_config_binary" mapstructure:"pkg_config_binary"`
	PkgConfigPath   []string `yaml:"pkg_config_path" mapstructure:"pkg_config_path"`
	InstallPath     string   `yaml:"install_path" mapstructure:"install_path"`
	Backend         string   `yaml:"backend" mapstructure:"backend"`
	RegistryPath    string   `yaml:"registry_path" mapstructure:"registry_path"`
	SkipUnreadable  bool     `yaml:"skip_unreadable" mapstructure:"skip_unreadable"`
	MaxDepth        int      `yaml:"max_depth" mapstructure:"max_depth"`
	Debug           bool     `yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		SearchPathEnv: DefaultSearchPathEnv,
		Prober:        ProberAuto,
		InstallPath:   os.Getenv("HDRLOC_INSTALL_PATH"),
	}
}

// DefaultConfigPath returns $HOME/.config/hdrloc/config.yaml, or "" when
// the home directory cannot be determined
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hdrloc", "config.yaml")
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return fmt.Errorf("no config path and no home directory")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks enumerated fields and fills empty ones with defaults
func (c *Config) Validate() error {
	if c.SearchPathEnv == "" {
		c.SearchPathEnv = DefaultSearchPathEnv
	}
	switch c.Prober {
	case "":
		c.Prober = ProberAuto
	case ProberAuto, ProberExec, ProberFiles:
	default:
		return fmt.Errorf("invalid prober %q (want auto, exec or files)", c.Prober)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth %d", c.MaxDepth)
	}
	return nil
}
