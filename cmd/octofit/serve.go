package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakif/octofit-tracker/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureDBDir(cfg.DBPath); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}

		srv, err := server.New(server.Config{
			Port:   cfg.Port,
			DBPath: cfg.DBPath,
		}, logger)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Start() blocks until shutdown (Ctrl+C or SIGTERM) and closes the
		// database on the way out.
		return srv.Start()
	},
}
