package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/model"
)

func newLeaderboardFixtures(t *testing.T) (*LeaderboardService, *model.Team) {
	t.Helper()
	teams := newMockTeamRepo()
	teamSvc := NewTeamService(teams, newMockUserRepo(), discardLogger())

	team, err := teamSvc.Create(context.Background(), "Team Marvel", nil)
	if err != nil {
		t.Fatalf("creating fixture team: %v", err)
	}

	return NewLeaderboardService(newMockLeaderboardRepo(), teams, discardLogger()), team
}

func TestLeaderboardService_Create(t *testing.T) {
	svc, team := newLeaderboardFixtures(t)

	entry, err := svc.Create(context.Background(), team.ID, 4850)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if entry.ID == "" {
		t.Error("Create() returned entry without ID")
	}
	if entry.Score != 4850 {
		t.Errorf("Score = %v, want 4850", entry.Score)
	}
}

func TestLeaderboardService_Create_Validation(t *testing.T) {
	svc, team := newLeaderboardFixtures(t)

	tests := []struct {
		name   string
		teamID string
		score  float64
	}{
		{"missing team", "", 100},
		{"unknown team", "nonexistent", 100},
		{"negative score", team.ID, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.teamID, tt.score)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestLeaderboardService_Create_ZeroScoreDefault(t *testing.T) {
	svc, team := newLeaderboardFixtures(t)

	entry, err := svc.Create(context.Background(), team.ID, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if entry.Score != 0 {
		t.Errorf("Score = %v, want 0", entry.Score)
	}
}

func TestLeaderboardService_Update_Partial(t *testing.T) {
	svc, team := newLeaderboardFixtures(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, team.ID, 4850)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, entry.ID, nil, ptr(5000.0))
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Score != 5000 {
		t.Errorf("Score = %v, want 5000", updated.Score)
	}
	if updated.TeamID != team.ID {
		t.Error("Update() changed the team when the field was nil")
	}
}

func TestLeaderboardService_Update_RejectsUnknownTeam(t *testing.T) {
	svc, team := newLeaderboardFixtures(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, team.ID, 4850)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = svc.Update(ctx, entry.ID, ptr("nonexistent"), nil)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestLeaderboardService_Delete_NotFound(t *testing.T) {
	svc, _ := newLeaderboardFixtures(t)

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
