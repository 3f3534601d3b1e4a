package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/model"
	"github.com/sakif/octofit-tracker/internal/repository"
)

func TestCreateWorkout_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	workout := &model.Workout{
		Name:        "Super Strength Training",
		Description: "Training for superhuman strength",
		Duration:    60,
	}
	if err := db.CreateWorkout(ctx, workout); err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}
	if workout.ID == "" {
		t.Error("CreateWorkout() did not set workout.ID")
	}

	found, err := db.GetWorkoutByID(ctx, workout.ID)
	if err != nil {
		t.Fatalf("GetWorkoutByID() error = %v", err)
	}
	if found.Name != workout.Name {
		t.Errorf("Name = %q, want %q", found.Name, workout.Name)
	}
	if found.Description != workout.Description {
		t.Errorf("Description = %q, want %q", found.Description, workout.Description)
	}
	if found.Duration != 60 {
		t.Errorf("Duration = %v, want 60", found.Duration)
	}
}

func TestListWorkouts_NameFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Super Strength Training", "Speed Training", "Flight Practice"} {
		w := &model.Workout{Name: name, Description: "d", Duration: 45}
		if err := db.CreateWorkout(ctx, w); err != nil {
			t.Fatalf("CreateWorkout() error = %v", err)
		}
	}

	all, err := db.ListWorkouts(ctx, repository.WorkoutFilter{})
	if err != nil {
		t.Fatalf("ListWorkouts() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("workout count = %d, want 3", len(all))
	}

	filtered, err := db.ListWorkouts(ctx, repository.WorkoutFilter{Name: "Training"})
	if err != nil {
		t.Fatalf("ListWorkouts(filter) error = %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered count = %d, want 2", len(filtered))
	}
}

func TestUpdateWorkout(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	workout := &model.Workout{Name: "Speed Training", Description: "d", Duration: 45}
	if err := db.CreateWorkout(ctx, workout); err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}

	workout.Duration = 50
	if err := db.UpdateWorkout(ctx, workout); err != nil {
		t.Fatalf("UpdateWorkout() error = %v", err)
	}

	found, err := db.GetWorkoutByID(ctx, workout.ID)
	if err != nil {
		t.Fatalf("GetWorkoutByID() error = %v", err)
	}
	if found.Duration != 50 {
		t.Errorf("Duration = %v, want 50", found.Duration)
	}
}

func TestDeleteWorkout(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	workout := &model.Workout{Name: "Speed Training", Description: "d", Duration: 45}
	if err := db.CreateWorkout(ctx, workout); err != nil {
		t.Fatalf("CreateWorkout() error = %v", err)
	}

	if err := db.DeleteWorkout(ctx, workout.ID); err != nil {
		t.Fatalf("DeleteWorkout() error = %v", err)
	}
	if _, err := db.GetWorkoutByID(ctx, workout.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteWorkout_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.DeleteWorkout(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
