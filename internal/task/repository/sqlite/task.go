package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KN-gho/timebudget/internal/model"
	repo "github.com/KN-gho/timebudget/internal/task/repository"
)

const taskColumns = `id, user_id, title, category, content, deadline, priority, estimated_time, progress_time, progress_sessions, completed, created_at, updated_at`

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := time.Now()
	t := model.Task{
		ID:               uuid.NewString(),
		UserID:           opt.UserID,
		Title:            opt.Title,
		Category:         opt.Category,
		Content:          opt.Content,
		Deadline:         opt.Deadline,
		Priority:         opt.Priority,
		EstimatedMinutes: opt.EstimatedMinutes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	const query = `
		INSERT INTO tasks (id, user_id, title, category, content, deadline, priority, estimated_time, progress_time, progress_sessions, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 0, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Category, t.Content,
		t.Deadline.Format(dateFormat), t.Priority, t.EstimatedMinutes,
		now.Unix(), now.Unix(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var conds []string
	var args []any
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if len(conds) == 0 {
		return model.Task{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, strings.Join(conds, " AND "))

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of a user's tasks ordered by deadline, plus
// the total count for the filter.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY deadline ASC, created_at ASC", taskColumns, where)
	if opt.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, rows.Err()
}

// UpdateTask writes the full post-merge row by ID and returns the
// updated entity. Returns zero-value Task when the ID does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, category = ?, content = ?, deadline = ?, priority = ?, estimated_time = ?, progress_time = ?, progress_sessions = ?, completed = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Category, opt.Content,
		opt.Deadline.Format(dateFormat), opt.Priority, opt.EstimatedMinutes,
		opt.ProgressMinutes, opt.ProgressSessions, boolToInt(opt.Completed),
		time.Now().Unix(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask removes a task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(row rowScanner) (model.Task, error) {
	var (
		t                    model.Task
		category, content    sql.NullString
		deadline             string
		completed            int
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &category, &content,
		&deadline, &t.Priority, &t.EstimatedMinutes,
		&t.ProgressMinutes, &t.ProgressSessions, &completed,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Category = category.String
	t.Content = content.String
	if t.Deadline, err = time.Parse(dateFormat, deadline); err != nil {
		return model.Task{}, err
	}
	t.Completed = completed != 0
	t.CreatedAt = time.Unix(createdAt, 0)
	t.UpdatedAt = time.Unix(updatedAt, 0)
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
