// Package db owns the SQLite handle and schema migrations.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Init opens (and creates if needed) the SQLite database at path and brings
// the schema up to date. The parent directory is created with restricted
// permissions.
func Init(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	// Best-effort: keep the file private.
	_ = os.Chmod(path, 0600)

	return sqlDB, nil
}

// migrate applies schema migrations based on user_version.
func migrate(sqlDB *sql.DB) error {
	version, err := userVersion(sqlDB)
	if err != nil {
		return err
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS users (
		  id            TEXT PRIMARY KEY,
		  name          TEXT NOT NULL UNIQUE,
		  email         TEXT NOT NULL,
		  region_id     TEXT,
		  region_name   TEXT,
		  work_hours    REAL NOT NULL DEFAULT 0,
		  commute_hours REAL NOT NULL DEFAULT 0,
		  sleep_hours   REAL NOT NULL DEFAULT 0,
		  created_at    INTEGER NOT NULL,
		  updated_at    INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS user_settings (
		  user_id            TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		  weekday_wake_time  TEXT NOT NULL,
		  weekday_sleep_time TEXT NOT NULL,
		  weekend_wake_time  TEXT,
		  weekend_sleep_time TEXT,
		  weekday_work_start TEXT,
		  weekday_work_end   TEXT,
		  updated_at         INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tasks (
		  id                TEXT PRIMARY KEY,
		  user_id           TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		  title             TEXT NOT NULL,
		  category          TEXT,
		  content           TEXT,
		  deadline          TEXT NOT NULL,
		  priority          INTEGER NOT NULL DEFAULT 3,
		  estimated_time    INTEGER NOT NULL DEFAULT 0,
		  progress_time     INTEGER NOT NULL DEFAULT 0,
		  progress_sessions INTEGER NOT NULL DEFAULT 0,
		  completed         INTEGER NOT NULL DEFAULT 0,
		  created_at        INTEGER NOT NULL,
		  updated_at        INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_user_completed
		ON tasks(user_id, completed);

		CREATE INDEX IF NOT EXISTS idx_tasks_user_deadline
		ON tasks(user_id, deadline);

		CREATE TABLE IF NOT EXISTS diary (
		  id         TEXT PRIMARY KEY,
		  user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		  entry_date TEXT NOT NULL,
		  content    TEXT NOT NULL,
		  created_at INTEGER NOT NULL,
		  updated_at INTEGER NOT NULL,
		  UNIQUE(user_id, entry_date)
		);

		CREATE TABLE IF NOT EXISTS schedules (
		  id         TEXT PRIMARY KEY,
		  user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		  date       TEXT NOT NULL,
		  start_time TEXT NOT NULL,
		  event_name TEXT NOT NULL,
		  location   TEXT NOT NULL,
		  outdoor    INTEGER NOT NULL DEFAULT 0,
		  importance INTEGER NOT NULL DEFAULT 3,
		  changeable INTEGER NOT NULL DEFAULT 1,
		  created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_schedules_user_date
		ON schedules(user_id, date, start_time);
		`
		if _, err := sqlDB.Exec(schema); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
		if err := setUserVersion(sqlDB, 1); err != nil {
			return err
		}
	}

	return nil
}

// userVersion reads PRAGMA user_version.
func userVersion(sqlDB *sql.DB) (int, error) {
	var version int
	if err := sqlDB.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read user_version: %w", err)
	}
	return version, nil
}

// setUserVersion writes PRAGMA user_version.
func setUserVersion(sqlDB *sql.DB, version int) error {
	if _, err := sqlDB.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
