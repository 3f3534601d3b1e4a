package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/model"
	"github.com/sakif/octofit-tracker/internal/repository"
)

func createTestTeam(t *testing.T, db *DB, name string) *model.Team {
	t.Helper()
	team := &model.Team{Name: name}
	if err := db.CreateTeam(context.Background(), team); err != nil {
		t.Fatalf("failed to create test team: %v", err)
	}
	return team
}

func TestCreateLeaderboardEntry_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	team := createTestTeam(t, db, "Team Marvel")
	entry := &model.LeaderboardEntry{TeamID: team.ID, Score: 4850}
	if err := db.CreateLeaderboardEntry(ctx, entry); err != nil {
		t.Fatalf("CreateLeaderboardEntry() error = %v", err)
	}

	found, err := db.GetLeaderboardEntryByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetLeaderboardEntryByID() error = %v", err)
	}
	if found.TeamID != team.ID {
		t.Errorf("TeamID = %q, want %q", found.TeamID, team.ID)
	}
	if found.Score != 4850 {
		t.Errorf("Score = %v, want 4850", found.Score)
	}
}

func TestListLeaderboardEntries_OrderByScore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	marvel := createTestTeam(t, db, "Team Marvel")
	dc := createTestTeam(t, db, "Team DC")

	// Insert the losing team first so creation order and score order differ.
	low := &model.LeaderboardEntry{TeamID: dc.ID, Score: 4400}
	if err := db.CreateLeaderboardEntry(ctx, low); err != nil {
		t.Fatalf("CreateLeaderboardEntry() error = %v", err)
	}
	high := &model.LeaderboardEntry{TeamID: marvel.ID, Score: 4850}
	if err := db.CreateLeaderboardEntry(ctx, high); err != nil {
		t.Fatalf("CreateLeaderboardEntry() error = %v", err)
	}

	byCreation, err := db.ListLeaderboardEntries(ctx, repository.LeaderboardFilter{})
	if err != nil {
		t.Fatalf("ListLeaderboardEntries() error = %v", err)
	}
	if len(byCreation) != 2 || byCreation[0].Score != 4400 {
		t.Errorf("default order starts with score %v, want 4400 (creation order)", byCreation[0].Score)
	}

	byScore, err := db.ListLeaderboardEntries(ctx, repository.LeaderboardFilter{OrderByScore: true})
	if err != nil {
		t.Fatalf("ListLeaderboardEntries(ranked) error = %v", err)
	}
	if byScore[0].Score != 4850 || byScore[1].Score != 4400 {
		t.Errorf("ranked order = [%v, %v], want [4850, 4400]", byScore[0].Score, byScore[1].Score)
	}
}

func TestListLeaderboardEntries_FilterByTeam(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	marvel := createTestTeam(t, db, "Team Marvel")
	dc := createTestTeam(t, db, "Team DC")

	for _, e := range []*model.LeaderboardEntry{
		{TeamID: marvel.ID, Score: 4850},
		{TeamID: dc.ID, Score: 4400},
	} {
		if err := db.CreateLeaderboardEntry(ctx, e); err != nil {
			t.Fatalf("CreateLeaderboardEntry() error = %v", err)
		}
	}

	entries, err := db.ListLeaderboardEntries(ctx, repository.LeaderboardFilter{TeamID: dc.ID})
	if err != nil {
		t.Fatalf("ListLeaderboardEntries(team) error = %v", err)
	}
	if len(entries) != 1 || entries[0].TeamID != dc.ID {
		t.Errorf("entries = %v, want just Team DC's", entries)
	}
}

func TestUpdateLeaderboardEntry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	team := createTestTeam(t, db, "Team Marvel")
	entry := &model.LeaderboardEntry{TeamID: team.ID, Score: 4850}
	if err := db.CreateLeaderboardEntry(ctx, entry); err != nil {
		t.Fatalf("CreateLeaderboardEntry() error = %v", err)
	}

	entry.Score = 5000
	if err := db.UpdateLeaderboardEntry(ctx, entry); err != nil {
		t.Fatalf("UpdateLeaderboardEntry() error = %v", err)
	}

	found, err := db.GetLeaderboardEntryByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetLeaderboardEntryByID() error = %v", err)
	}
	if found.Score != 5000 {
		t.Errorf("Score = %v, want 5000", found.Score)
	}
}

func TestDeleteLeaderboardEntry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	team := createTestTeam(t, db, "Team Marvel")
	entry := &model.LeaderboardEntry{TeamID: team.ID, Score: 4850}
	if err := db.CreateLeaderboardEntry(ctx, entry); err != nil {
		t.Fatalf("CreateLeaderboardEntry() error = %v", err)
	}

	if err := db.DeleteLeaderboardEntry(ctx, entry.ID); err != nil {
		t.Fatalf("DeleteLeaderboardEntry() error = %v", err)
	}
	if _, err := db.GetLeaderboardEntryByID(ctx, entry.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	// The team itself is unaffected.
	if _, err := db.GetTeamByID(ctx, team.ID); err != nil {
		t.Errorf("team should survive, got error = %v", err)
	}
}

func TestDeleteLeaderboardEntry_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.DeleteLeaderboardEntry(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
