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

// LeaderboardService handles business logic for leaderboard entries.
// Scores are stored values set by the caller — nothing here aggregates
// activities into points.
type LeaderboardService struct {
	entries repository.LeaderboardRepository
	teams   repository.TeamRepository
	logger  *slog.Logger
}

func NewLeaderboardService(entries repository.LeaderboardRepository, teams repository.TeamRepository, logger *slog.Logger) *LeaderboardService {
	return &LeaderboardService{
		entries: entries,
		teams:   teams,
		logger:  logger,
	}
}

// Create validates and stores a new entry. Score defaults to 0 when the
// caller leaves it unspecified (the zero value does the right thing).
func (s *LeaderboardService) Create(ctx context.Context, teamID string, score float64) (*model.LeaderboardEntry, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, apperror.ValidationFailed("team", "team is required")
	}
	if score < 0 {
		return nil, apperror.ValidationFailed("score", "score cannot be negative")
	}

	if _, err := s.teams.GetTeamByID(ctx, teamID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ValidationFailed("team",
				fmt.Sprintf("team %s does not exist", teamID))
		}
		return nil, fmt.Errorf("resolving entry owner: %w", err)
	}

	entry := &model.LeaderboardEntry{
		TeamID: teamID,
		Score:  score,
	}

	if err := s.entries.CreateLeaderboardEntry(ctx, entry); err != nil {
		s.logger.Error("failed to create leaderboard entry",
			slog.String("team", teamID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating leaderboard entry: %w", err)
	}

	s.logger.Info("leaderboard entry created",
		slog.String("id", entry.ID),
		slog.String("team", entry.TeamID),
	)

	return entry, nil
}

func (s *LeaderboardService) GetByID(ctx context.Context, id string) (*model.LeaderboardEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "leaderboard entry ID is required")
	}
	return s.entries.GetLeaderboardEntryByID(ctx, id)
}

func (s *LeaderboardService) List(ctx context.Context, filter repository.LeaderboardFilter) ([]model.LeaderboardEntry, error) {
	entries, err := s.entries.ListLeaderboardEntries(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list leaderboard entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing leaderboard entries: %w", err)
	}
	return entries, nil
}

// Update applies a full or partial field set, re-checking the owning team
// when it changes.
func (s *LeaderboardService) Update(ctx context.Context, id string, teamID *string, score *float64) (*model.LeaderboardEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "leaderboard entry ID is required")
	}

	entry, err := s.entries.GetLeaderboardEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if teamID != nil {
		v := strings.TrimSpace(*teamID)
		if v == "" {
			return nil, apperror.ValidationFailed("team", "team cannot be empty")
		}
		if _, err := s.teams.GetTeamByID(ctx, v); err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return nil, apperror.ValidationFailed("team",
					fmt.Sprintf("team %s does not exist", v))
			}
			return nil, fmt.Errorf("resolving entry owner: %w", err)
		}
		entry.TeamID = v
	}
	if score != nil {
		if *score < 0 {
			return nil, apperror.ValidationFailed("score", "score cannot be negative")
		}
		entry.Score = *score
	}

	if err := s.entries.UpdateLeaderboardEntry(ctx, entry); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update leaderboard entry",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating leaderboard entry: %w", err)
	}

	s.logger.Info("leaderboard entry updated", slog.String("id", entry.ID))
	return entry, nil
}

func (s *LeaderboardService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "leaderboard entry ID is required")
	}

	if err := s.entries.DeleteLeaderboardEntry(ctx, id); err != nil {
		return err
	}

	s.logger.Info("leaderboard entry deleted", slog.String("id", id))
	return nil
}
