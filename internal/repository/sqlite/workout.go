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

var _ repository.WorkoutRepository = (*DB)(nil)

func (db *DB) CreateWorkout(ctx context.Context, workout *model.Workout) error {
	workout.ID = xid.New().String()
	now := time.Now()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO workouts (id, name, description, duration, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		workout.ID,
		workout.Name,
		workout.Description,
		workout.Duration,
		workout.CreatedAt,
		workout.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating workout: %w", err)
	}

	return nil
}

func (db *DB) GetWorkoutByID(ctx context.Context, id string) (*model.Workout, error) {
	var w model.Workout

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name, description, duration, created_at, updated_at
		 FROM workouts WHERE id = ?`,
		id,
	).Scan(&w.ID, &w.Name, &w.Description, &w.Duration, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("workout", id)
		}
		return nil, fmt.Errorf("sqlite: getting workout %s: %w", id, err)
	}

	return &w, nil
}

func (db *DB) ListWorkouts(ctx context.Context, filter repository.WorkoutFilter) ([]model.Workout, error) {
	query := `SELECT id, name, description, duration, created_at, updated_at FROM workouts`
	var conds []string
	var args []any

	if filter.Name != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}
	query += whereClause(conds) + " ORDER BY created_at, id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing workouts: %w", err)
	}
	defer rows.Close()

	workouts := []model.Workout{}
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.Duration, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning workout row: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating workouts: %w", err)
	}

	return workouts, nil
}

func (db *DB) UpdateWorkout(ctx context.Context, workout *model.Workout) error {
	workout.UpdatedAt = time.Now()

	result, err := db.conn.ExecContext(ctx,
		`UPDATE workouts SET name = ?, description = ?, duration = ?, updated_at = ?
		 WHERE id = ?`,
		workout.Name,
		workout.Description,
		workout.Duration,
		workout.UpdatedAt,
		workout.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating workout %s: %w", workout.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("workout", workout.ID)
	}

	return nil
}

func (db *DB) DeleteWorkout(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting workout %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("workout", id)
	}

	return nil
}

func (db *DB) DeleteAllWorkouts(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM workouts`); err != nil {
		return fmt.Errorf("sqlite: deleting all workouts: %w", err)
	}
	return nil
}
