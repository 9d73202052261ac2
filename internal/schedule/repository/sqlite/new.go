package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/KN-gho/timebudget/internal/schedule/repository"
	"github.com/KN-gho/timebudget/pkg/log"
)

// dateFormat is how schedule dates are stored in the schedules table.
const dateFormat = "2006-01-02"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the schedule domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("schedule/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schedule/repository/sqlite.%s", method)
}
