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

var _ repository.TeamRepository = (*DB)(nil)

// CreateTeam inserts a team and its initial membership set in one transaction.
//
// INSERT OR IGNORE makes membership idempotent at the storage level: the
// (team_id, user_id) primary key means re-adding an existing member is a
// silent no-op, never a duplicate row.
func (db *DB) CreateTeam(ctx context.Context, team *model.Team) error {
	team.ID = xid.New().String()
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	return db.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO teams (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			team.ID, team.Name, team.CreatedAt, team.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("sqlite: creating team: %w", err)
		}

		for _, userID := range team.Members {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO team_members (team_id, user_id) VALUES (?, ?)`,
				team.ID, userID,
			); err != nil {
				return fmt.Errorf("sqlite: adding member %s to team %s: %w", userID, team.ID, err)
			}
		}
		return nil
	})
}

// GetTeamByID retrieves a team along with its member IDs.
func (db *DB) GetTeamByID(ctx context.Context, id string) (*model.Team, error) {
	var t model.Team

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM teams WHERE id = ?`,
		id,
	).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("team", id)
		}
		return nil, fmt.Errorf("sqlite: getting team %s: %w", id, err)
	}

	members, err := db.teamMembers(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Members = members

	return &t, nil
}

// ListTeams returns all teams with their membership sets, in creation order.
// Memberships are loaded with a single query and grouped in memory — one
// round-trip instead of one per team.
func (db *DB) ListTeams(ctx context.Context, filter repository.TeamFilter) ([]model.Team, error) {
	query := `SELECT id, name, created_at, updated_at FROM teams`
	var conds []string
	var args []any

	if filter.Name != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}
	query += whereClause(conds) + " ORDER BY created_at, id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing teams: %w", err)
	}
	defer rows.Close()

	teams := []model.Team{}
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning team row: %w", err)
		}
		t.Members = []string{}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating teams: %w", err)
	}

	memberRows, err := db.conn.QueryContext(ctx,
		`SELECT team_id, user_id FROM team_members ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing team members: %w", err)
	}
	defer memberRows.Close()

	byTeam := make(map[string][]string)
	for memberRows.Next() {
		var teamID, userID string
		if err := memberRows.Scan(&teamID, &userID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning team member row: %w", err)
		}
		byTeam[teamID] = append(byTeam[teamID], userID)
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating team members: %w", err)
	}

	for i := range teams {
		if members, ok := byTeam[teams[i].ID]; ok {
			teams[i].Members = members
		}
	}

	return teams, nil
}

// UpdateTeam rewrites the team row and REPLACES the membership set with
// team.Members, all in one transaction. Replacing (delete + reinsert) keeps
// the semantics simple: the stored set always equals the given set, and
// duplicate IDs in the input collapse via INSERT OR IGNORE.
func (db *DB) UpdateTeam(ctx context.Context, team *model.Team) error {
	team.UpdatedAt = time.Now()

	return db.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE teams SET name = ?, updated_at = ? WHERE id = ?`,
			team.Name, team.UpdatedAt, team.ID,
		)
		if err != nil {
			return fmt.Errorf("sqlite: updating team %s: %w", team.ID, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("sqlite: checking rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return apperror.NotFound("team", team.ID)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM team_members WHERE team_id = ?`, team.ID); err != nil {
			return fmt.Errorf("sqlite: clearing team %s members: %w", team.ID, err)
		}
		for _, userID := range team.Members {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO team_members (team_id, user_id) VALUES (?, ?)`,
				team.ID, userID,
			); err != nil {
				return fmt.Errorf("sqlite: adding member %s to team %s: %w", userID, team.ID, err)
			}
		}
		return nil
	})
}

// DeleteTeam removes a team, its leaderboard entries (cascade), and its
// membership links (cleanup). Member users survive as standalone users.
func (db *DB) DeleteTeam(ctx context.Context, id string) error {
	return db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard WHERE team_id = ?`, id); err != nil {
			return fmt.Errorf("sqlite: deleting team %s leaderboard entries: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = ?`, id); err != nil {
			return fmt.Errorf("sqlite: deleting team %s memberships: %w", id, err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("sqlite: deleting team %s: %w", id, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("sqlite: checking rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return apperror.NotFound("team", id)
		}
		return nil
	})
}

// DeleteAllTeams wipes teams and their membership links.
func (db *DB) DeleteAllTeams(ctx context.Context) error {
	return db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM team_members`); err != nil {
			return fmt.Errorf("sqlite: deleting all memberships: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM teams`); err != nil {
			return fmt.Errorf("sqlite: deleting all teams: %w", err)
		}
		return nil
	})
}

// teamMembers returns the member user IDs for one team, in insertion order.
func (db *DB) teamMembers(ctx context.Context, teamID string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT user_id FROM team_members WHERE team_id = ? ORDER BY rowid`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting team %s members: %w", teamID, err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning member row: %w", err)
		}
		members = append(members, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating members: %w", err)
	}

	return members, nil
}
