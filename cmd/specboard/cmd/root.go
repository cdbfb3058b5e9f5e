package cmd

import (
	"os"

	"github.com/nfrund/specboard/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "specboard",
	Short: "Serve module specifications from JSON files",
	Long: `Specboard serves the JSON documents in a modules directory over HTTP,
together with a landing page that browses them.

Configuration is read from the environment (and a .env file if present):
  APP_DEBUG     development mode (default false)
  APP_ADDR      listen address (default :8080)
  MODULES_DIR   directory holding <name>.json files (default modules)
  LOG_FORMAT    text or json (default text)

Flags override the environment.`,
	SilenceUsage: true,
}

var (
	debugFlag      bool
	modulesDirFlag string
)

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable development mode")
	rootCmd.PersistentFlags().StringVar(&modulesDirFlag, "modules-dir", config.DefaultModulesDir, "directory containing module JSON files")
}

// loadConfig reads the environment and applies any flags the user set explicitly.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.New()
	applyFlags(cmd, cfg)
	return cfg
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if flags.Changed("modules-dir") {
		cfg.ModulesDir = modulesDirFlag
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Addr = addrFlag
	}
}
