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

var _ repository.ActivityRepository = (*DB)(nil)

// CreateActivity inserts a new activity. The service layer has already
// verified the owner exists; the foreign key on user_id is the backstop.
func (db *DB) CreateActivity(ctx context.Context, activity *model.Activity) error {
	activity.ID = xid.New().String()
	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO activities (id, user_id, activity_type, duration, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		activity.ID,
		activity.UserID,
		activity.ActivityType,
		activity.Duration,
		activity.Date,
		activity.CreatedAt,
		activity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating activity: %w", err)
	}

	return nil
}

func (db *DB) GetActivityByID(ctx context.Context, id string) (*model.Activity, error) {
	var a model.Activity

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, activity_type, duration, date, created_at, updated_at
		 FROM activities WHERE id = ?`,
		id,
	).Scan(&a.ID, &a.UserID, &a.ActivityType, &a.Duration, &a.Date, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("activity", id)
		}
		return nil, fmt.Errorf("sqlite: getting activity %s: %w", id, err)
	}

	return &a, nil
}

// ListActivities returns activities in creation order. The admin views filter
// by owner, type, and date — all exact matches.
func (db *DB) ListActivities(ctx context.Context, filter repository.ActivityFilter) ([]model.Activity, error) {
	query := `SELECT id, user_id, activity_type, duration, date, created_at, updated_at FROM activities`
	var conds []string
	var args []any

	if filter.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.ActivityType != "" {
		conds = append(conds, "activity_type = ?")
		args = append(args, filter.ActivityType)
	}
	if filter.Date != "" {
		conds = append(conds, "date = ?")
		args = append(args, filter.Date)
	}
	query += whereClause(conds) + " ORDER BY created_at, id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing activities: %w", err)
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.ActivityType, &a.Duration, &a.Date, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating activities: %w", err)
	}

	return activities, nil
}

func (db *DB) UpdateActivity(ctx context.Context, activity *model.Activity) error {
	activity.UpdatedAt = time.Now()

	result, err := db.conn.ExecContext(ctx,
		`UPDATE activities
		 SET user_id = ?, activity_type = ?, duration = ?, date = ?, updated_at = ?
		 WHERE id = ?`,
		activity.UserID,
		activity.ActivityType,
		activity.Duration,
		activity.Date,
		activity.UpdatedAt,
		activity.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating activity %s: %w", activity.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("activity", activity.ID)
	}

	return nil
}

func (db *DB) DeleteActivity(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting activity %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("activity", id)
	}

	return nil
}

func (db *DB) DeleteAllActivities(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM activities`); err != nil {
		return fmt.Errorf("sqlite: deleting all activities: %w", err)
	}
	return nil
}
