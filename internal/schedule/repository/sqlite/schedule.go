package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KN-gho/timebudget/internal/model"
	repo "github.com/KN-gho/timebudget/internal/schedule/repository"
	"github.com/KN-gho/timebudget/pkg/pressure"
)

const scheduleColumns = `id, user_id, date, start_time, event_name, location, outdoor, importance, changeable, created_at`

// CreateSchedule inserts a new schedule row and returns the created entity.
func (r *implRepository) CreateSchedule(ctx context.Context, opt repo.CreateScheduleOptions) (model.Schedule, error) {
	now := time.Now()
	s := model.Schedule{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		Date:       opt.Date,
		StartTime:  opt.StartTime,
		EventName:  opt.EventName,
		Location:   opt.Location,
		Outdoor:    opt.Outdoor,
		Importance: opt.Importance,
		Changeable: opt.Changeable,
		CreatedAt:  now,
	}

	const query = `
		INSERT INTO schedules (id, user_id, date, start_time, event_name, location, outdoor, importance, changeable, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.Date.Format(dateFormat), s.StartTime.String(),
		s.EventName, s.Location, boolToInt(s.Outdoor), s.Importance,
		boolToInt(s.Changeable), now.Unix(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSchedule"), err)
		return model.Schedule{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// GetOneSchedule retrieves a single schedule by the provided filters
// (AND condition). Returns zero-value Schedule (ID == "") when not found.
func (r *implRepository) GetOneSchedule(ctx context.Context, opt repo.GetOneScheduleOptions) (model.Schedule, error) {
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
		return model.Schedule{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM schedules WHERE %s LIMIT 1", scheduleColumns, strings.Join(conds, " AND "))

	s, err := r.scanSchedule(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Schedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSchedule"), err)
		return model.Schedule{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSchedules returns the user's schedules ordered by date and start
// time. Date filters apply when set.
func (r *implRepository) ListSchedules(ctx context.Context, opt repo.ListSchedulesOptions) ([]model.Schedule, error) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}
	switch {
	case !opt.Date.IsZero() && !opt.To.IsZero():
		conds = append(conds, "date >= ?", "date <= ?")
		args = append(args, opt.Date.Format(dateFormat), opt.To.Format(dateFormat))
	case !opt.Date.IsZero():
		conds = append(conds, "date = ?")
		args = append(args, opt.Date.Format(dateFormat))
	}

	query := fmt.Sprintf("SELECT %s FROM schedules WHERE %s ORDER BY date ASC, start_time ASC",
		scheduleColumns, strings.Join(conds, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSchedules"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		s, err := r.scanSchedule(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSchedules"), err)
			return nil, repo.ErrFailedToList
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// DeleteSchedule removes a schedule by ID.
func (r *implRepository) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSchedule"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanSchedule(row rowScanner) (model.Schedule, error) {
	var (
		s                   model.Schedule
		date, startTime     string
		outdoor, changeable int
		createdAt           int64
	)
	err := row.Scan(
		&s.ID, &s.UserID, &date, &startTime, &s.EventName,
		&s.Location, &outdoor, &s.Importance, &changeable, &createdAt,
	)
	if err != nil {
		return model.Schedule{}, err
	}
	if s.Date, err = time.Parse(dateFormat, date); err != nil {
		return model.Schedule{}, err
	}
	if s.StartTime, err = pressure.ParseClock(startTime); err != nil {
		return model.Schedule{}, err
	}
	s.Outdoor = outdoor != 0
	s.Changeable = changeable != 0
	s.CreatedAt = time.Unix(createdAt, 0)
	return s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
