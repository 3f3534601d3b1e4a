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

// WorkoutService handles business logic for suggested workouts — the one
// entity with no relations to anything else.
type WorkoutService struct {
	repo   repository.WorkoutRepository
	logger *slog.Logger
}

func NewWorkoutService(repo repository.WorkoutRepository, logger *slog.Logger) *WorkoutService {
	return &WorkoutService{
		repo:   repo,
		logger: logger,
	}
}

func (s *WorkoutService) Create(ctx context.Context, name, description string, duration float64) (*model.Workout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "workout name is required")
	}
	if duration < 0 {
		return nil, apperror.ValidationFailed("duration", "duration cannot be negative")
	}

	workout := &model.Workout{
		Name:        name,
		Description: strings.TrimSpace(description),
		Duration:    duration,
	}

	if err := s.repo.CreateWorkout(ctx, workout); err != nil {
		s.logger.Error("failed to create workout",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating workout: %w", err)
	}

	s.logger.Info("workout created",
		slog.String("id", workout.ID),
		slog.String("name", workout.Name),
	)

	return workout, nil
}

func (s *WorkoutService) GetByID(ctx context.Context, id string) (*model.Workout, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "workout ID is required")
	}
	return s.repo.GetWorkoutByID(ctx, id)
}

func (s *WorkoutService) List(ctx context.Context, filter repository.WorkoutFilter) ([]model.Workout, error) {
	workouts, err := s.repo.ListWorkouts(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list workouts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	return workouts, nil
}

func (s *WorkoutService) Update(ctx context.Context, id string, name, description *string, duration *float64) (*model.Workout, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "workout ID is required")
	}

	workout, err := s.repo.GetWorkoutByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		v := strings.TrimSpace(*name)
		if v == "" {
			return nil, apperror.ValidationFailed("name", "workout name cannot be empty")
		}
		workout.Name = v
	}
	if description != nil {
		workout.Description = strings.TrimSpace(*description)
	}
	if duration != nil {
		if *duration < 0 {
			return nil, apperror.ValidationFailed("duration", "duration cannot be negative")
		}
		workout.Duration = *duration
	}

	if err := s.repo.UpdateWorkout(ctx, workout); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update workout",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating workout: %w", err)
	}

	s.logger.Info("workout updated", slog.String("id", workout.ID))
	return workout, nil
}

func (s *WorkoutService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "workout ID is required")
	}

	if err := s.repo.DeleteWorkout(ctx, id); err != nil {
		return err
	}

	s.logger.Info("workout deleted", slog.String("id", id))
	return nil
}
