package repository

import (
	"context"

	"github.com/sakif/octofit-tracker/internal/model"
)

// UserFilter narrows List results for the admin views.
// Empty fields mean "no filter". Username and Email are substring matches.
type UserFilter struct {
	Username string
	Email    string
}

// TeamFilter narrows team List results. Name is a substring match.
type TeamFilter struct {
	Name string
}

// ActivityFilter narrows activity List results. All matches are exact.
type ActivityFilter struct {
	UserID       string
	ActivityType string
	Date         string // YYYY-MM-DD
}

// LeaderboardFilter narrows leaderboard List results.
// OrderByScore switches from creation order to score descending.
type LeaderboardFilter struct {
	TeamID       string
	OrderByScore bool
}

// WorkoutFilter narrows workout List results. Name is a substring match.
type WorkoutFilter struct {
	Name string
}

// UserRepository persists users. Delete removes the user's activities and
// team memberships in the same transaction as the user row — callers never
// observe a user gone but their activities still present.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id string) error
	DeleteAllUsers(ctx context.Context) error
}

// TeamRepository persists teams and their membership sets. Delete removes the
// team's leaderboard entries and membership links in the same transaction.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *model.Team) error
	GetTeamByID(ctx context.Context, id string) (*model.Team, error)
	ListTeams(ctx context.Context, filter TeamFilter) ([]model.Team, error)
	UpdateTeam(ctx context.Context, team *model.Team) error
	DeleteTeam(ctx context.Context, id string) error
	DeleteAllTeams(ctx context.Context) error
}

type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity *model.Activity) error
	GetActivityByID(ctx context.Context, id string) (*model.Activity, error)
	ListActivities(ctx context.Context, filter ActivityFilter) ([]model.Activity, error)
	UpdateActivity(ctx context.Context, activity *model.Activity) error
	DeleteActivity(ctx context.Context, id string) error
	DeleteAllActivities(ctx context.Context) error
}

type LeaderboardRepository interface {
	CreateLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error
	GetLeaderboardEntryByID(ctx context.Context, id string) (*model.LeaderboardEntry, error)
	ListLeaderboardEntries(ctx context.Context, filter LeaderboardFilter) ([]model.LeaderboardEntry, error)
	UpdateLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error
	DeleteLeaderboardEntry(ctx context.Context, id string) error
	DeleteAllLeaderboardEntries(ctx context.Context) error
}

type WorkoutRepository interface {
	CreateWorkout(ctx context.Context, workout *model.Workout) error
	GetWorkoutByID(ctx context.Context, id string) (*model.Workout, error)
	ListWorkouts(ctx context.Context, filter WorkoutFilter) ([]model.Workout, error)
	UpdateWorkout(ctx context.Context, workout *model.Workout) error
	DeleteWorkout(ctx context.Context, id string) error
	DeleteAllWorkouts(ctx context.Context) error
}
