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

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` verifies at compile time that *DB implements the
// interface. Without it, a missing method would only surface at the first
// call site that passes *DB where the interface is expected.
var _ repository.UserRepository = (*DB)(nil)

// CreateUser inserts a new user.
//
// ID GENERATION: xid produces 20-char URL-safe IDs that sort by creation
// time, so "ORDER BY id" doubles as creation order.
//
// EMAIL UNIQUENESS: the service layer pre-checks for a friendlier error, but
// the UNIQUE constraint on users.email is the authoritative check — two
// concurrent creates with the same email can both pass the pre-check, and the
// constraint makes exactly one of them fail. We translate that failure into
// the same field-level validation error the pre-check would have produced.
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.Email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueEmailErr(err) {
			return apperror.ValidationFailed("email", fmt.Sprintf("email %s is already in use", user.Email))
		}
		return fmt.Errorf("sqlite: creating user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID.
// Returns apperror.ErrNotFound if no user exists with that ID.
func (db *DB) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password, created_at, updated_at
		 FROM users WHERE id = ?`,
		id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", id, err)
	}

	return &u, nil
}

// GetUserByEmail retrieves a user by their (unique) email address.
// Used by the service layer's uniqueness pre-check.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password, created_at, updated_at
		 FROM users WHERE email = ?`,
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", email)
		}
		return nil, fmt.Errorf("sqlite: getting user by email %s: %w", email, err)
	}

	return &u, nil
}

// ListUsers returns all users in creation order, optionally narrowed by the
// admin filter (substring match on username/email).
func (db *DB) ListUsers(ctx context.Context, filter repository.UserFilter) ([]model.User, error) {
	query := `SELECT id, username, email, password, created_at, updated_at FROM users`
	var conds []string
	var args []any

	if filter.Username != "" {
		conds = append(conds, "username LIKE ?")
		args = append(args, "%"+filter.Username+"%")
	}
	if filter.Email != "" {
		conds = append(conds, "email LIKE ?")
		args = append(args, "%"+filter.Email+"%")
	}
	query += whereClause(conds) + " ORDER BY created_at, id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating users: %w", err)
	}

	return users, nil
}

// UpdateUser rewrites a user's mutable fields.
//
// RowsAffected tells us whether the WHERE clause matched anything — zero rows
// touched means the ID was never there, so the caller gets NotFound without a
// second query. Every Update method in this package uses the same trick.
func (db *DB) UpdateUser(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()

	result, err := db.conn.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ?, password = ?, updated_at = ?
		 WHERE id = ?`,
		user.Username,
		user.Email,
		user.Password,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isUniqueEmailErr(err) {
			return apperror.ValidationFailed("email", fmt.Sprintf("email %s is already in use", user.Email))
		}
		return fmt.Errorf("sqlite: updating user %s: %w", user.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("user", user.ID)
	}

	return nil
}

// DeleteUser removes a user and everything that depends on them:
// their activities (cascade) and their team memberships (cleanup).
// Teams themselves are never deleted here.
//
// All three deletes run in ONE transaction — a concurrent reader either sees
// the user with all their activities, or neither.
func (db *DB) DeleteUser(ctx context.Context, id string) error {
	return db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM activities WHERE user_id = ?`, id); err != nil {
			return fmt.Errorf("sqlite: deleting user %s activities: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE user_id = ?`, id); err != nil {
			return fmt.Errorf("sqlite: deleting user %s memberships: %w", id, err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("sqlite: deleting user %s: %w", id, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("sqlite: checking rows affected: %w", err)
		}
		if rowsAffected == 0 {
			// Rolls back the (no-op) dependent deletes too.
			return apperror.NotFound("user", id)
		}
		return nil
	})
}

// DeleteAllUsers wipes the users table. The seed loader calls the DeleteAll
// operations in dependency order (activities and memberships first), so by
// the time this runs nothing references a user.
func (db *DB) DeleteAllUsers(ctx context.Context) error {
	return db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM team_members`); err != nil {
			return fmt.Errorf("sqlite: deleting all memberships: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("sqlite: deleting all users: %w", err)
		}
		return nil
	})
}

// whereClause joins conditions into a WHERE clause, or returns "" when there
// are none. Shared by the List methods.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	clause := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		clause += " AND " + c
	}
	return clause
}
