package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/slate/internal/config"
	"github.com/abhisek/slate/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "slate",
	Short: "Tutoring policy engine for the Slate handwriting tutor",
	Long: "Slate — the policy core that decides when the tutor may speak up " +
		"and which difficulty tier a student should see next.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SLATE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/slate/config.yaml)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration from the --config flag or the
// default path, plus environment overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file / SLATE_DB env var, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
