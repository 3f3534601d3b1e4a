// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — it lives inside your Go binary as a single file.
// No separate database server to install, configure, or manage. Perfect for:
// - Single-server deployments (which is most apps, honestly)
// - Development and testing (use ":memory:" for in-memory DB)
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo (calls C code from Go), which means you need a C compiler
// installed and cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — no C compiler needed, works everywhere Go works.
//
// SCHEMA OVERVIEW:
// users ←─ activities         (owner FK, cascade on user delete)
// users ←─ team_members ─→ teams  (many-to-many join table)
// teams ←─ leaderboard        (owner FK, cascade on team delete)
// workouts                    (standalone)
//
// Cascades are performed EXPLICITLY inside a transaction (dependents first,
// then the owner) rather than via ON DELETE CASCADE, so the delete path is
// visible in code and identical across storage backends. The foreign keys are
// still declared — with PRAGMA foreign_keys=ON they stop any write that would
// leave a dangling owner reference.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// BLANK IMPORT:
	// The underscore import `_ "modernc.org/sqlite"` is a "side-effect only" import.
	// The sqlite package's init() function registers itself with database/sql as a
	// driver named "sqlite". After this import, sql.Open("sqlite", ...) works.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides repository methods.
// It implements every repository interface (User, Team, Activity,
// Leaderboard, Workout) — one storage object injected into each service.
type DB struct {
	conn *sql.DB
}

// New creates a new SQLite database connection and runs migrations.
//
// dbPath examples:
//   - "data/octofit.db"  → file-based database (persistent)
//   - ":memory:"         → in-memory database (great for tests, lost on close)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Ping verifies the connection actually works.
	// Without this, a bad path or permissions issue would only surface
	// on the first query — which is much harder to debug.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// PRAGMAs apply per connection, and a ":memory:" path is a separate
	// database per connection — a single pooled connection keeps both
	// attached to every query. SQLite serializes writes anyway.
	conn.SetMaxOpenConns(1)

	// WAL mode allows concurrent reads while a write is happening —
	// important for a web server where multiple requests hit the DB.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite (for backwards compatibility).
	// We need them ON so activities/leaderboard/memberships can never point at
	// a missing owner.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
// Wherever you call New(), immediately defer Close() — this flushes the WAL
// and releases the file lock even if a panic occurs.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates all tables. CREATE TABLE IF NOT EXISTS is idempotent, so
// this is safe to run on every startup. In production you'd use a migration
// tool that tracks applied versions; for a single-file schema this is enough.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			username   TEXT NOT NULL,
			email      TEXT NOT NULL UNIQUE,
			password   TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS teams (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS team_members (
			team_id TEXT NOT NULL REFERENCES teams(id),
			user_id TEXT NOT NULL REFERENCES users(id),
			PRIMARY KEY (team_id, user_id)
		);

		CREATE TABLE IF NOT EXISTS activities (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL REFERENCES users(id),
			activity_type TEXT NOT NULL,
			duration      REAL NOT NULL,
			date          TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_activities_user_id ON activities(user_id);

		CREATE TABLE IF NOT EXISTS leaderboard (
			id         TEXT PRIMARY KEY,
			team_id    TEXT NOT NULL REFERENCES teams(id),
			score      REAL NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_team_id ON leaderboard(team_id);

		CREATE TABLE IF NOT EXISTS workouts (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			duration    REAL NOT NULL,
			created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}

// inTx runs fn inside a transaction, committing on success and rolling back
// on error. Every multi-statement write (cascade deletes, membership set
// replacement) goes through here so concurrent readers never see a
// half-applied mutation.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		// Rollback error is secondary — the fn error is what the caller needs.
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// isUniqueEmailErr reports whether err is the UNIQUE constraint violation on
// users.email. The driver exposes constraint failures only through the error
// text, so we match on SQLite's stable message format.
func isUniqueEmailErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}
