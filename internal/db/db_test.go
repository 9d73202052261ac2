package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KN-gho/timebudget/internal/db"
)

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timebudget.db")

	sqlDB, err := db.Init(path)
	require.NoError(t, err)
	defer sqlDB.Close()

	var version int
	require.NoError(t, sqlDB.QueryRow("PRAGMA user_version").Scan(&version))
	require.Equal(t, db.CurrentSchemaVersion, version)

	for _, table := range []string{"users", "user_settings", "tasks", "diary", "schedules"} {
		var name string
		err := sqlDB.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}

func TestInitIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timebudget.db")

	first, err := db.Init(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.Init(path)
	require.NoError(t, err)
	defer second.Close()

	var version int
	require.NoError(t, second.QueryRow("PRAGMA user_version").Scan(&version))
	require.Equal(t, db.CurrentSchemaVersion, version)
}
