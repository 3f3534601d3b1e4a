package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/model"
	"github.com/sakif/octofit-tracker/internal/repository"
)

// TeamService handles business logic for teams and their membership sets.
//
// It needs TWO repositories: teams for its own records, and users to verify
// that every member ID in a membership set refers to an existing user.
type TeamService struct {
	teams  repository.TeamRepository
	users  repository.UserRepository
	logger *slog.Logger
}

func NewTeamService(teams repository.TeamRepository, users repository.UserRepository, logger *slog.Logger) *TeamService {
	return &TeamService{
		teams:  teams,
		users:  users,
		logger: logger,
	}
}

// Create validates and stores a new team with an optional initial membership
// set. Duplicate member IDs collapse — membership is a set, not a list.
func (s *TeamService) Create(ctx context.Context, name string, members []string) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "team name is required")
	}

	members, err := s.resolveMembers(ctx, members)
	if err != nil {
		return nil, err
	}

	team := &model.Team{
		Name:    name,
		Members: members,
	}

	if err := s.teams.CreateTeam(ctx, team); err != nil {
		s.logger.Error("failed to create team",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating team: %w", err)
	}

	s.logger.Info("team created",
		slog.String("id", team.ID),
		slog.String("name", team.Name),
		slog.Int("members", len(team.Members)),
	)

	return team, nil
}

func (s *TeamService) GetByID(ctx context.Context, id string) (*model.Team, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "team ID is required")
	}
	return s.teams.GetTeamByID(ctx, id)
}

func (s *TeamService) List(ctx context.Context, filter repository.TeamFilter) ([]model.Team, error) {
	teams, err := s.teams.ListTeams(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list teams", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	return teams, nil
}

// Update applies a full or partial field set. A non-nil members slice
// REPLACES the whole membership set (an empty slice clears it); nil leaves
// the set untouched.
func (s *TeamService) Update(ctx context.Context, id string, name *string, members *[]string) (*model.Team, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "team ID is required")
	}

	team, err := s.teams.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		v := strings.TrimSpace(*name)
		if v == "" {
			return nil, apperror.ValidationFailed("name", "team name cannot be empty")
		}
		team.Name = v
	}
	if members != nil {
		resolved, err := s.resolveMembers(ctx, *members)
		if err != nil {
			return nil, err
		}
		team.Members = resolved
	}

	if err := s.teams.UpdateTeam(ctx, team); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update team",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating team: %w", err)
	}

	s.logger.Info("team updated", slog.String("id", team.ID))
	return team, nil
}

// Delete removes a team and, atomically with it, its leaderboard entries and
// membership links. The member users themselves are untouched.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "team ID is required")
	}

	if err := s.teams.DeleteTeam(ctx, id); err != nil {
		return err
	}

	s.logger.Info("team deleted", slog.String("id", id))
	return nil
}

// resolveMembers deduplicates the member IDs (preserving first-seen order)
// and verifies each one refers to an existing user.
func (s *TeamService) resolveMembers(ctx context.Context, members []string) ([]string, error) {
	seen := make(map[string]bool, len(members))
	resolved := make([]string, 0, len(members))

	for _, userID := range members {
		userID = strings.TrimSpace(userID)
		if userID == "" || seen[userID] {
			continue
		}
		seen[userID] = true

		if _, err := s.users.GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return nil, apperror.ValidationFailed("members",
					fmt.Sprintf("member user %s does not exist", userID))
			}
			return nil, fmt.Errorf("resolving member %s: %w", userID, err)
		}
		resolved = append(resolved, userID)
	}

	return resolved, nil
}
