package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/model"
	"github.com/sakif/octofit-tracker/internal/repository"
)

// DateLayout is the wire format for activity dates — a bare calendar date.
const DateLayout = "2006-01-02"

// ActivityService handles business logic for logged activities. It holds the
// user repository as well, because every activity must reference an existing
// owner at create/update time.
type ActivityService struct {
	activities repository.ActivityRepository
	users      repository.UserRepository
	logger     *slog.Logger
}

func NewActivityService(activities repository.ActivityRepository, users repository.UserRepository, logger *slog.Logger) *ActivityService {
	return &ActivityService{
		activities: activities,
		users:      users,
		logger:     logger,
	}
}

// Create validates and stores a new activity.
//
// activity_type is checked against the closed enumerated set explicitly —
// it's a validation rule, not a database constraint, so it lives here where
// every caller (HTTP, seed loader, future CLI) passes through it.
func (s *ActivityService) Create(ctx context.Context, userID, activityType string, duration float64, date string) (*model.Activity, error) {
	userID = strings.TrimSpace(userID)
	activityType = strings.TrimSpace(activityType)
	date = strings.TrimSpace(date)

	if userID == "" {
		return nil, apperror.ValidationFailed("user", "user is required")
	}
	if err := validateActivityType(activityType); err != nil {
		return nil, err
	}
	if duration < 0 {
		return nil, apperror.ValidationFailed("duration", "duration cannot be negative")
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	// The owner must exist BEFORE we write — a missing user is the caller's
	// mistake (400), not an integrity failure (500).
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ValidationFailed("user",
				fmt.Sprintf("user %s does not exist", userID))
		}
		return nil, fmt.Errorf("resolving activity owner: %w", err)
	}

	activity := &model.Activity{
		UserID:       userID,
		ActivityType: activityType,
		Duration:     duration,
		Date:         date,
	}

	if err := s.activities.CreateActivity(ctx, activity); err != nil {
		s.logger.Error("failed to create activity",
			slog.String("user", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	s.logger.Info("activity created",
		slog.String("id", activity.ID),
		slog.String("type", activity.ActivityType),
	)

	return activity, nil
}

func (s *ActivityService) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "activity ID is required")
	}
	return s.activities.GetActivityByID(ctx, id)
}

func (s *ActivityService) List(ctx context.Context, filter repository.ActivityFilter) ([]model.Activity, error) {
	activities, err := s.activities.ListActivities(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list activities", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return activities, nil
}

// Update applies a full or partial field set with the same validation as
// Create, including re-checking the owner when it changes.
func (s *ActivityService) Update(ctx context.Context, id string, userID, activityType *string, duration *float64, date *string) (*model.Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "activity ID is required")
	}

	activity, err := s.activities.GetActivityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if userID != nil {
		v := strings.TrimSpace(*userID)
		if v == "" {
			return nil, apperror.ValidationFailed("user", "user cannot be empty")
		}
		if _, err := s.users.GetUserByID(ctx, v); err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return nil, apperror.ValidationFailed("user",
					fmt.Sprintf("user %s does not exist", v))
			}
			return nil, fmt.Errorf("resolving activity owner: %w", err)
		}
		activity.UserID = v
	}
	if activityType != nil {
		v := strings.TrimSpace(*activityType)
		if err := validateActivityType(v); err != nil {
			return nil, err
		}
		activity.ActivityType = v
	}
	if duration != nil {
		if *duration < 0 {
			return nil, apperror.ValidationFailed("duration", "duration cannot be negative")
		}
		activity.Duration = *duration
	}
	if date != nil {
		v := strings.TrimSpace(*date)
		if err := validateDate(v); err != nil {
			return nil, err
		}
		activity.Date = v
	}

	if err := s.activities.UpdateActivity(ctx, activity); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update activity",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating activity: %w", err)
	}

	s.logger.Info("activity updated", slog.String("id", activity.ID))
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "activity ID is required")
	}

	if err := s.activities.DeleteActivity(ctx, id); err != nil {
		return err
	}

	s.logger.Info("activity deleted", slog.String("id", id))
	return nil
}

// validateActivityType rejects anything outside the enumerated set.
func validateActivityType(activityType string) error {
	if activityType == "" {
		return apperror.ValidationFailed("activity_type", "activity_type is required")
	}
	for _, t := range strings.Fields(model.ActivityTypes) {
		if activityType == t {
			return nil
		}
	}
	return apperror.ValidationFailed("activity_type",
		fmt.Sprintf("activity_type must be one of: %s", strings.Join(strings.Fields(model.ActivityTypes), ", ")))
}

// validateDate enforces the bare-calendar-date wire format.
func validateDate(date string) error {
	if date == "" {
		return apperror.ValidationFailed("date", "date is required")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return apperror.ValidationFailed("date",
			fmt.Sprintf("date must be in %s format", DateLayout))
	}
	return nil
}
