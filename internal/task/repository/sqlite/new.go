package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/KN-gho/timebudget/internal/task/repository"
	"github.com/KN-gho/timebudget/pkg/log"
)

// dateFormat is how deadline dates are stored in the tasks table.
const dateFormat = "2006-01-02"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
