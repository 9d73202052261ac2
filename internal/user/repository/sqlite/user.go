package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KN-gho/timebudget/internal/model"
	repo "github.com/KN-gho/timebudget/internal/user/repository"
)

const userColumns = `id, name, email, region_id, region_name, work_hours, commute_hours, sleep_hours, created_at, updated_at`

// CreateUser inserts a new user row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	now := time.Now()
	u := model.User{
		ID:           uuid.NewString(),
		Name:         opt.Name,
		Email:        opt.Email,
		RegionID:     opt.RegionID,
		RegionName:   opt.RegionName,
		WorkHours:    opt.WorkHours,
		CommuteHours: opt.CommuteHours,
		SleepHours:   opt.SleepHours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	const query = `
		INSERT INTO users (id, name, email, region_id, region_name, work_hours, commute_hours, sleep_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.RegionID, u.RegionName,
		u.WorkHours, u.CommuteHours, u.SleepHours,
		now.Unix(), now.Unix(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single user by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conds []string
	var args []any
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conds = append(conds, "name = ?")
		args = append(args, opt.Name)
	}
	if len(conds) == 0 {
		return model.User{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, strings.Join(conds, " AND "))

	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns all users, newest first.
func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at DESC", userColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListUsers"), err)
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUser updates a user by ID and returns the updated entity.
// Returns zero-value User when the ID does not exist.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	const query = `
		UPDATE users
		SET email = ?, region_id = ?, region_name = ?, work_hours = ?, commute_hours = ?, sleep_hours = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Email, opt.RegionID, opt.RegionName,
		opt.WorkHours, opt.CommuteHours, opt.SleepHours,
		time.Now().Unix(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.User{}, nil
	}

	return r.GetOneUser(ctx, repo.GetOneUserOptions{ID: opt.ID})
}

// DeleteUser removes a user by ID.
func (r *implRepository) DeleteUser(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanUser(row rowScanner) (model.User, error) {
	var (
		u                    model.User
		regionID, regionName sql.NullString
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &regionID, &regionName,
		&u.WorkHours, &u.CommuteHours, &u.SleepHours,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	u.RegionID = regionID.String
	u.RegionName = regionName.String
	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)
	return u, nil
}
