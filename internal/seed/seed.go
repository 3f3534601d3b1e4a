// Package seed wipes and repopulates the store with a fixed fictional
// dataset — superheroes logging workouts. It goes through the service layer
// (ordinary Create calls), so every fixture passes the exact same validation
// as an API request; only the wipe uses the repositories' bulk deletes.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/octofit-tracker/internal/service"
)

// Wiper is the bulk-delete capability the loader needs from the store.
// *sqlite.DB satisfies it.
type Wiper interface {
	DeleteAllLeaderboardEntries(ctx context.Context) error
	DeleteAllActivities(ctx context.Context) error
	DeleteAllTeams(ctx context.Context) error
	DeleteAllUsers(ctx context.Context) error
	DeleteAllWorkouts(ctx context.Context) error
}

// Loader bundles everything needed to reset the database to the fixture set.
type Loader struct {
	Users       *service.UserService
	Teams       *service.TeamService
	Activities  *service.ActivityService
	Leaderboard *service.LeaderboardService
	Workouts    *service.WorkoutService
	Wiper       Wiper
	Logger      *slog.Logger
}

type fixtureUser struct {
	username string
	email    string
	password string
}

type fixtureActivity struct {
	username     string // resolved to a user ID after the users are created
	activityType string
	duration     float64
	date         string
}

type fixtureWorkout struct {
	name        string
	description string
	duration    float64
}

var fixtureUsers = []fixtureUser{
	// Team Marvel
	{"ironman", "tony@avengers.com", "pbkdf2$repulsor$tech"},
	{"captain_america", "steve@avengers.com", "pbkdf2$shield$throw"},
	{"thor_odinson", "thor@avengers.com", "pbkdf2$mjolnir$strike"},
	{"black_widow", "natasha@avengers.com", "pbkdf2$widow$sting"},
	{"hulk", "bruce@avengers.com", "pbkdf2$gamma$smash"},
	// Team DC
	{"superman", "clark@justice.com", "pbkdf2$krypton$fly"},
	{"batman", "bruce@justice.com", "pbkdf2$dark$knight"},
	{"wonder_woman", "diana@justice.com", "pbkdf2$lasso$truth"},
	{"the_flash", "barry@justice.com", "pbkdf2$speed$force"},
	{"green_lantern", "hal@justice.com", "pbkdf2$power$ring"},
}

var fixtureTeams = map[string][]string{
	"Team Marvel": {"ironman", "captain_america", "thor_odinson", "black_widow", "hulk"},
	"Team DC":     {"superman", "batman", "wonder_woman", "the_flash", "green_lantern"},
}

var fixtureActivities = []fixtureActivity{
	{"ironman", "running", 30, "2026-02-01"},
	{"ironman", "weightlifting", 45, "2026-02-03"},
	{"captain_america", "running", 60, "2026-02-01"},
	{"captain_america", "cycling", 90, "2026-02-04"},
	{"thor_odinson", "weightlifting", 75, "2026-02-02"},
	{"thor_odinson", "running", 45, "2026-02-05"},
	{"black_widow", "yoga", 60, "2026-02-02"},
	{"black_widow", "swimming", 40, "2026-02-06"},
	{"hulk", "cycling", 50, "2026-02-03"},
	{"hulk", "weightlifting", 80, "2026-02-07"},
	{"superman", "running", 20, "2026-02-01"},
	{"superman", "hiking", 120, "2026-02-04"},
	{"batman", "weightlifting", 90, "2026-02-02"},
	{"batman", "running", 45, "2026-02-05"},
	{"wonder_woman", "yoga", 50, "2026-02-03"},
	{"wonder_woman", "swimming", 60, "2026-02-06"},
	{"the_flash", "running", 15, "2026-02-01"},
	{"the_flash", "cycling", 30, "2026-02-03"},
	{"green_lantern", "yoga", 45, "2026-02-04"},
	{"green_lantern", "weightlifting", 60, "2026-02-07"},
}

var fixtureScores = map[string]float64{
	"Team Marvel": 4850,
	"Team DC":     4400,
}

var fixtureWorkouts = []fixtureWorkout{
	{"Avengers Endurance Run", "Long-distance running inspired by Captain America's morning jogs through New York City.", 60},
	{"Iron Man HIIT", "High-intensity interval training modeled after Tony Stark's arc reactor-powered workouts.", 45},
	{"Thor's Hammer Strength", "Heavy weightlifting routine based on Thor's legendary strength training with Mjolnir.", 75},
	{"Black Widow Flexibility", "Yoga and stretching routine inspired by Natasha Romanoff's acrobatic combat style.", 50},
	{"Hulk Power Circuit", "Full-body strength circuit designed to build explosive power like Bruce Banner's alter ego.", 80},
	{"Superman Speed Drill", "Sprint intervals to push your speed to superhuman levels like Clark Kent.", 30},
	{"Batman Combat Training", "Mixed martial arts and weightlifting routine based on Bruce Wayne's training regimen.", 90},
	{"Wonder Woman Warriors Yoga", "Strength and flexibility yoga routine inspired by Diana Prince's Amazonian training.", 55},
	{"Flash Cardio Blast", "Ultra-fast cycling and sprint session inspired by Barry Allen's speed force.", 25},
	{"Green Lantern Core Power", "Core-focused workout to channel willpower like Hal Jordan wielding the power ring.", 40},
}

// Load wipes all existing records and inserts the fixture dataset.
//
// The wipe runs in dependency order — dependents before owners — so no
// delete ever strands a dangling owner reference:
// leaderboard and activities first, then teams and users, workouts last.
func (l *Loader) Load(ctx context.Context) error {
	l.Logger.Info("wiping existing data")

	if err := l.Wiper.DeleteAllLeaderboardEntries(ctx); err != nil {
		return fmt.Errorf("seed: wiping leaderboard: %w", err)
	}
	if err := l.Wiper.DeleteAllActivities(ctx); err != nil {
		return fmt.Errorf("seed: wiping activities: %w", err)
	}
	if err := l.Wiper.DeleteAllTeams(ctx); err != nil {
		return fmt.Errorf("seed: wiping teams: %w", err)
	}
	if err := l.Wiper.DeleteAllUsers(ctx); err != nil {
		return fmt.Errorf("seed: wiping users: %w", err)
	}
	if err := l.Wiper.DeleteAllWorkouts(ctx); err != nil {
		return fmt.Errorf("seed: wiping workouts: %w", err)
	}

	l.Logger.Info("creating users")
	userIDs := make(map[string]string, len(fixtureUsers))
	for _, fu := range fixtureUsers {
		user, err := l.Users.Create(ctx, fu.username, fu.email, fu.password)
		if err != nil {
			return fmt.Errorf("seed: creating user %s: %w", fu.username, err)
		}
		userIDs[fu.username] = user.ID
	}

	l.Logger.Info("creating teams")
	teamIDs := make(map[string]string, len(fixtureTeams))
	for _, name := range []string{"Team Marvel", "Team DC"} {
		members := make([]string, 0, len(fixtureTeams[name]))
		for _, username := range fixtureTeams[name] {
			members = append(members, userIDs[username])
		}
		team, err := l.Teams.Create(ctx, name, members)
		if err != nil {
			return fmt.Errorf("seed: creating team %s: %w", name, err)
		}
		teamIDs[name] = team.ID
	}

	l.Logger.Info("creating activities")
	for _, fa := range fixtureActivities {
		if _, err := l.Activities.Create(ctx, userIDs[fa.username], fa.activityType, fa.duration, fa.date); err != nil {
			return fmt.Errorf("seed: creating activity for %s: %w", fa.username, err)
		}
	}

	l.Logger.Info("creating leaderboard entries")
	for _, name := range []string{"Team Marvel", "Team DC"} {
		if _, err := l.Leaderboard.Create(ctx, teamIDs[name], fixtureScores[name]); err != nil {
			return fmt.Errorf("seed: creating leaderboard entry for %s: %w", name, err)
		}
	}

	l.Logger.Info("creating workouts")
	for _, fw := range fixtureWorkouts {
		if _, err := l.Workouts.Create(ctx, fw.name, fw.description, fw.duration); err != nil {
			return fmt.Errorf("seed: creating workout %s: %w", fw.name, err)
		}
	}

	l.Logger.Info("seed complete",
		slog.Int("users", len(fixtureUsers)),
		slog.Int("teams", len(fixtureTeams)),
		slog.Int("activities", len(fixtureActivities)),
		slog.Int("leaderboard_entries", len(fixtureScores)),
		slog.Int("workouts", len(fixtureWorkouts)),
	)

	return nil
}
