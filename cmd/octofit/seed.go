package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sqliteRepo "github.com/sakif/octofit-tracker/internal/repository/sqlite"
	"github.com/sakif/octofit-tracker/internal/seed"
	"github.com/sakif/octofit-tracker/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Wipe the database and repopulate it with fixture data",
	Long: `Seed deletes every record of every entity type (dependents first) and
inserts a fixed fictional dataset: 10 superhero users on 2 teams, 20 logged
activities, 2 leaderboard entries, and 10 suggested workouts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureDBDir(cfg.DBPath); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}

		db, err := sqliteRepo.New(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		loader := &seed.Loader{
			Users:       service.NewUserService(db, logger),
			Teams:       service.NewTeamService(db, db, logger),
			Activities:  service.NewActivityService(db, db, logger),
			Leaderboard: service.NewLeaderboardService(db, db, logger),
			Workouts:    service.NewWorkoutService(db, logger),
			Wiper:       db,
			Logger:      logger,
		}

		return loader.Load(cmd.Context())
	},
}
