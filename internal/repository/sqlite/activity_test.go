package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/repository"
)

func TestCreateActivity_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tony := createTestUser(t, db, "ironman", "tony@avengers.com")
	activity := createTestActivity(t, db, tony.ID, "running")

	found, err := db.GetActivityByID(ctx, activity.ID)
	if err != nil {
		t.Fatalf("GetActivityByID() error = %v", err)
	}
	if found.UserID != tony.ID {
		t.Errorf("UserID = %q, want %q", found.UserID, tony.ID)
	}
	if found.ActivityType != "running" {
		t.Errorf("ActivityType = %q, want %q", found.ActivityType, "running")
	}
	if found.Duration != 30 {
		t.Errorf("Duration = %v, want 30", found.Duration)
	}
	if found.Date != "2026-02-01" {
		t.Errorf("Date = %q, want %q", found.Date, "2026-02-01")
	}
}

func TestListActivities_Filters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tony := createTestUser(t, db, "ironman", "tony@avengers.com")
	steve := createTestUser(t, db, "captain_america", "steve@avengers.com")

	createTestActivity(t, db, tony.ID, "running")
	createTestActivity(t, db, tony.ID, "cycling")
	createTestActivity(t, db, steve.ID, "running")

	all, err := db.ListActivities(ctx, repository.ActivityFilter{})
	if err != nil {
		t.Fatalf("ListActivities() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("activity count = %d, want 3", len(all))
	}

	byUser, err := db.ListActivities(ctx, repository.ActivityFilter{UserID: tony.ID})
	if err != nil {
		t.Fatalf("ListActivities(user) error = %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("activities for tony = %d, want 2", len(byUser))
	}

	byType, err := db.ListActivities(ctx, repository.ActivityFilter{ActivityType: "running"})
	if err != nil {
		t.Fatalf("ListActivities(type) error = %v", err)
	}
	if len(byType) != 2 {
		t.Errorf("running activities = %d, want 2", len(byType))
	}

	// Filters combine with AND.
	both, err := db.ListActivities(ctx, repository.ActivityFilter{
		UserID:       tony.ID,
		ActivityType: "running",
	})
	if err != nil {
		t.Fatalf("ListActivities(both) error = %v", err)
	}
	if len(both) != 1 {
		t.Errorf("tony's running activities = %d, want 1", len(both))
	}
}

func TestUpdateActivity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tony := createTestUser(t, db, "ironman", "tony@avengers.com")
	activity := createTestActivity(t, db, tony.ID, "running")

	activity.ActivityType = "yoga"
	activity.Duration = 90
	if err := db.UpdateActivity(ctx, activity); err != nil {
		t.Fatalf("UpdateActivity() error = %v", err)
	}

	found, err := db.GetActivityByID(ctx, activity.ID)
	if err != nil {
		t.Fatalf("GetActivityByID() error = %v", err)
	}
	if found.ActivityType != "yoga" || found.Duration != 90 {
		t.Errorf("got (%s, %v), want (yoga, 90)", found.ActivityType, found.Duration)
	}
}

func TestDeleteActivity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tony := createTestUser(t, db, "ironman", "tony@avengers.com")
	activity := createTestActivity(t, db, tony.ID, "running")

	if err := db.DeleteActivity(ctx, activity.ID); err != nil {
		t.Fatalf("DeleteActivity() error = %v", err)
	}
	if _, err := db.GetActivityByID(ctx, activity.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	// Deleting an activity never touches its owner.
	if _, err := db.GetUserByID(ctx, tony.ID); err != nil {
		t.Errorf("owner should survive, got error = %v", err)
	}
}

func TestDeleteActivity_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.DeleteActivity(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
