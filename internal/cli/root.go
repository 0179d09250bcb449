package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arc-language/hdrloc"
	"github.com/arc-language/hdrloc/pkg/core"
)

var (
	cfgFile string
	prober  string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hdrloc",
	Short: "Locate C/C++ headers for build scripts",
	Long: `hdrloc - header locator

Finds a header file by name, first in the include directories pkg-config
reports for a package, then by scanning the directories of a search path.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/hdrloc/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&prober, "prober", "", "package prober to use (auto, exec, files)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(platformCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	v := viper.New()
	v.SetEnvPrefix("HDRLOC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("prober", rootCmd.PersistentFlags().Lookup("prober"))
	_ = v.BindPFlag("skip_unreadable", locateCmd.Flags().Lookup("skip-unreadable"))
	_ = v.BindPFlag("max_depth", locateCmd.Flags().Lookup("max-depth"))

	applyOverrides(config, v)
}

// applyOverrides copies HDRLOC_* environment variables and changed flags
// over the file configuration
func applyOverrides(cfg *core.Config, v *viper.Viper) {
	if v.IsSet("search_path_env") {
		cfg.SearchPathEnv = v.GetString("search_path_env")
	}
	if v.IsSet("prober") {
		cfg.Prober = v.GetString("prober")
	}
	if v.IsSet("pkg_config_binary") {
		cfg.PkgConfigBinary = v.GetString("pkg_config_binary")
	}
	if v.IsSet("registry_path") {
		cfg.RegistryPath = v.GetString("registry_path")
	}
	if v.IsSet("install_path") {
		cfg.InstallPath = v.GetString("install_path")
	}
	if v.IsSet("backend") {
		cfg.Backend = v.GetString("backend")
	}
	if v.IsSet("skip_unreadable") {
		cfg.SkipUnreadable = v.GetBool("skip_unreadable")
	}
	if v.IsSet("max_depth") {
		cfg.MaxDepth = v.GetInt("max_depth")
	}
	if v.IsSet("debug") {
		cfg.Debug = v.GetBool("debug")
	}
}

func newResolver() (*hdrloc.Resolver, error) {
	r, err := hdrloc.NewResolverFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("initializing resolver: %w", err)
	}
	return r, nil
}
