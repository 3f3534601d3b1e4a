package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/model"
	"github.com/sakif/octofit-tracker/internal/repository"
)

// HAND-WRITTEN MOCKS:
// Instead of a mocking framework, each repository interface gets a small
// in-memory implementation backed by a map. The mocks store and return
// COPIES so a test can't accidentally mutate the "database" through a
// pointer it still holds.

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type mockUserRepo struct {
	users  map[string]model.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]model.User)}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperror.ValidationFailed("email",
				fmt.Sprintf("email %s is already in use", user.Email))
		}
	}
	m.nextID++
	user.ID = fmt.Sprintf("mock-user-%d", m.nextID)
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	return &u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

func (m *mockUserRepo) ListUsers(_ context.Context, filter repository.UserFilter) ([]model.User, error) {
	var out []model.User
	for _, u := range m.users {
		if filter.Username != "" && !strings.Contains(u.Username, filter.Username) {
			continue
		}
		if filter.Email != "" && !strings.Contains(u.Email, filter.Email) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperror.NotFound("user", user.ID)
	}
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) DeleteUser(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return apperror.NotFound("user", id)
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) DeleteAllUsers(_ context.Context) error {
	m.users = make(map[string]model.User)
	return nil
}

type mockTeamRepo struct {
	teams  map[string]model.Team
	nextID int
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[string]model.Team)}
}

func (m *mockTeamRepo) CreateTeam(_ context.Context, team *model.Team) error {
	m.nextID++
	team.ID = fmt.Sprintf("mock-team-%d", m.nextID)
	m.teams[team.ID] = *team
	return nil
}

func (m *mockTeamRepo) GetTeamByID(_ context.Context, id string) (*model.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return nil, apperror.NotFound("team", id)
	}
	return &t, nil
}

func (m *mockTeamRepo) ListTeams(_ context.Context, filter repository.TeamFilter) ([]model.Team, error) {
	var out []model.Team
	for _, t := range m.teams {
		if filter.Name != "" && !strings.Contains(t.Name, filter.Name) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTeamRepo) UpdateTeam(_ context.Context, team *model.Team) error {
	if _, ok := m.teams[team.ID]; !ok {
		return apperror.NotFound("team", team.ID)
	}
	m.teams[team.ID] = *team
	return nil
}

func (m *mockTeamRepo) DeleteTeam(_ context.Context, id string) error {
	if _, ok := m.teams[id]; !ok {
		return apperror.NotFound("team", id)
	}
	delete(m.teams, id)
	return nil
}

func (m *mockTeamRepo) DeleteAllTeams(_ context.Context) error {
	m.teams = make(map[string]model.Team)
	return nil
}

type mockActivityRepo struct {
	activities map[string]model.Activity
	nextID     int
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{activities: make(map[string]model.Activity)}
}

func (m *mockActivityRepo) CreateActivity(_ context.Context, activity *model.Activity) error {
	m.nextID++
	activity.ID = fmt.Sprintf("mock-activity-%d", m.nextID)
	m.activities[activity.ID] = *activity
	return nil
}

func (m *mockActivityRepo) GetActivityByID(_ context.Context, id string) (*model.Activity, error) {
	a, ok := m.activities[id]
	if !ok {
		return nil, apperror.NotFound("activity", id)
	}
	return &a, nil
}

func (m *mockActivityRepo) ListActivities(_ context.Context, filter repository.ActivityFilter) ([]model.Activity, error) {
	var out []model.Activity
	for _, a := range m.activities {
		if filter.UserID != "" && a.UserID != filter.UserID {
			continue
		}
		if filter.ActivityType != "" && a.ActivityType != filter.ActivityType {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockActivityRepo) UpdateActivity(_ context.Context, activity *model.Activity) error {
	if _, ok := m.activities[activity.ID]; !ok {
		return apperror.NotFound("activity", activity.ID)
	}
	m.activities[activity.ID] = *activity
	return nil
}

func (m *mockActivityRepo) DeleteActivity(_ context.Context, id string) error {
	if _, ok := m.activities[id]; !ok {
		return apperror.NotFound("activity", id)
	}
	delete(m.activities, id)
	return nil
}

func (m *mockActivityRepo) DeleteAllActivities(_ context.Context) error {
	m.activities = make(map[string]model.Activity)
	return nil
}

type mockLeaderboardRepo struct {
	entries map[string]model.LeaderboardEntry
	nextID  int
}

func newMockLeaderboardRepo() *mockLeaderboardRepo {
	return &mockLeaderboardRepo{entries: make(map[string]model.LeaderboardEntry)}
}

func (m *mockLeaderboardRepo) CreateLeaderboardEntry(_ context.Context, entry *model.LeaderboardEntry) error {
	m.nextID++
	entry.ID = fmt.Sprintf("mock-entry-%d", m.nextID)
	m.entries[entry.ID] = *entry
	return nil
}

func (m *mockLeaderboardRepo) GetLeaderboardEntryByID(_ context.Context, id string) (*model.LeaderboardEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, apperror.NotFound("leaderboard entry", id)
	}
	return &e, nil
}

func (m *mockLeaderboardRepo) ListLeaderboardEntries(_ context.Context, filter repository.LeaderboardFilter) ([]model.LeaderboardEntry, error) {
	var out []model.LeaderboardEntry
	for _, e := range m.entries {
		if filter.TeamID != "" && e.TeamID != filter.TeamID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockLeaderboardRepo) UpdateLeaderboardEntry(_ context.Context, entry *model.LeaderboardEntry) error {
	if _, ok := m.entries[entry.ID]; !ok {
		return apperror.NotFound("leaderboard entry", entry.ID)
	}
	m.entries[entry.ID] = *entry
	return nil
}

func (m *mockLeaderboardRepo) DeleteLeaderboardEntry(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return apperror.NotFound("leaderboard entry", id)
	}
	delete(m.entries, id)
	return nil
}

func (m *mockLeaderboardRepo) DeleteAllLeaderboardEntries(_ context.Context) error {
	m.entries = make(map[string]model.LeaderboardEntry)
	return nil
}

type mockWorkoutRepo struct {
	workouts map[string]model.Workout
	nextID   int
}

func newMockWorkoutRepo() *mockWorkoutRepo {
	return &mockWorkoutRepo{workouts: make(map[string]model.Workout)}
}

func (m *mockWorkoutRepo) CreateWorkout(_ context.Context, workout *model.Workout) error {
	m.nextID++
	workout.ID = fmt.Sprintf("mock-workout-%d", m.nextID)
	m.workouts[workout.ID] = *workout
	return nil
}

func (m *mockWorkoutRepo) GetWorkoutByID(_ context.Context, id string) (*model.Workout, error) {
	w, ok := m.workouts[id]
	if !ok {
		return nil, apperror.NotFound("workout", id)
	}
	return &w, nil
}

func (m *mockWorkoutRepo) ListWorkouts(_ context.Context, filter repository.WorkoutFilter) ([]model.Workout, error) {
	var out []model.Workout
	for _, w := range m.workouts {
		if filter.Name != "" && !strings.Contains(w.Name, filter.Name) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (m *mockWorkoutRepo) UpdateWorkout(_ context.Context, workout *model.Workout) error {
	if _, ok := m.workouts[workout.ID]; !ok {
		return apperror.NotFound("workout", workout.ID)
	}
	m.workouts[workout.ID] = *workout
	return nil
}

func (m *mockWorkoutRepo) DeleteWorkout(_ context.Context, id string) error {
	if _, ok := m.workouts[id]; !ok {
		return apperror.NotFound("workout", id)
	}
	delete(m.workouts, id)
	return nil
}

func (m *mockWorkoutRepo) DeleteAllWorkouts(_ context.Context) error {
	m.workouts = make(map[string]model.Workout)
	return nil
}

// ptr is a test shorthand for building the optional-field arguments that
// Update methods take.
func ptr[T any](v T) *T { return &v }
