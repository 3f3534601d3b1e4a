package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/model"
	"github.com/sakif/octofit-tracker/internal/repository"
)

var _ repository.LeaderboardRepository = (*DB)(nil)

func (db *DB) CreateLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	entry.ID = xid.New().String()
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO leaderboard (id, team_id, score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.ID,
		entry.TeamID,
		entry.Score,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating leaderboard entry: %w", err)
	}

	return nil
}

func (db *DB) GetLeaderboardEntryByID(ctx context.Context, id string) (*model.LeaderboardEntry, error) {
	var e model.LeaderboardEntry

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, team_id, score, created_at, updated_at
		 FROM leaderboard WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.TeamID, &e.Score, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("leaderboard entry", id)
		}
		return nil, fmt.Errorf("sqlite: getting leaderboard entry %s: %w", id, err)
	}

	return &e, nil
}

// ListLeaderboardEntries returns entries in creation order, or by score
// descending when the admin view asks for a ranking.
func (db *DB) ListLeaderboardEntries(ctx context.Context, filter repository.LeaderboardFilter) ([]model.LeaderboardEntry, error) {
	query := `SELECT id, team_id, score, created_at, updated_at FROM leaderboard`
	var conds []string
	var args []any

	if filter.TeamID != "" {
		conds = append(conds, "team_id = ?")
		args = append(args, filter.TeamID)
	}
	query += whereClause(conds)
	if filter.OrderByScore {
		query += " ORDER BY score DESC, id"
	} else {
		query += " ORDER BY created_at, id"
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing leaderboard entries: %w", err)
	}
	defer rows.Close()

	entries := []model.LeaderboardEntry{}
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.ID, &e.TeamID, &e.Score, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating leaderboard entries: %w", err)
	}

	return entries, nil
}

func (db *DB) UpdateLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	entry.UpdatedAt = time.Now()

	result, err := db.conn.ExecContext(ctx,
		`UPDATE leaderboard SET team_id = ?, score = ?, updated_at = ? WHERE id = ?`,
		entry.TeamID,
		entry.Score,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating leaderboard entry %s: %w", entry.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("leaderboard entry", entry.ID)
	}

	return nil
}

func (db *DB) DeleteLeaderboardEntry(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM leaderboard WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting leaderboard entry %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("leaderboard entry", id)
	}

	return nil
}

func (db *DB) DeleteAllLeaderboardEntries(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM leaderboard`); err != nil {
		return fmt.Errorf("sqlite: deleting all leaderboard entries: %w", err)
	}
	return nil
}
