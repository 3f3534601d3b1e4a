package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sakif/octofit-tracker/internal/config"
)

// Shared state loaded once by PersistentPreRunE, before any subcommand runs.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "octofit",
	Short: "OctoFit is a fitness-tracking backend",
	Long: `OctoFit is the data-management backend for a fitness-tracking app:
users, teams, activities, leaderboard entries, and workouts behind a REST API.

Configuration comes from the environment (or a .env file):
  PORT       HTTP port for serve (default 8080)
  DB_PATH    SQLite database file (default data/octofit.db)
  LOG_LEVEL  debug | info | warn | error (default info)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// ensureDBDir creates the database file's parent directory if needed
// (like `mkdir -p`), so a fresh checkout runs without manual setup.
func ensureDBDir(dbPath string) error {
	return os.MkdirAll(filepath.Dir(dbPath), 0755)
}
