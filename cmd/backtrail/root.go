// Root command for the backtrail CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ledgerline/backtrail/internal/paths"
	"github.com/ledgerline/backtrail/pkg/backtrail"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagSession   string
	flagJSON      bool
)

// Config values loaded from config.yaml. Set by PersistentPreRunE so all
// subcommands can use them.
var (
	configBackend string
	configDataDir string
	configSession string
)

var rootCmd = &cobra.Command{
	Use:     "backtrail",
	Short:   "Backtrail manages per-session navigation history",
	Long: `Backtrail stores the navigation stack of each user session, resolves
back destinations from the stack and navigation-context query parameters,
and builds context-preserving links.`,
	Version: backtrail.Version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configSession = cfg.GetString(cfgKeySession)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.backtrail-db)")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "", "session ID (default: config session or \"default\")")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(popCmd)
	rootCmd.AddCommand(peekCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(backCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(sessionCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > BACKTRAIL_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > BACKTRAIL_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveSession returns the session ID from flag, config, or default.
func resolveSession() string {
	if flagSession != "" {
		return flagSession
	}
	if configSession != "" {
		return configSession
	}
	return defaultSession
}
