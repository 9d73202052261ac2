package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/KN-gho/timebudget/internal/model"
	repo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/pressure"
)

// UpsertSettings writes the user's daily rhythm, replacing any prior row.
func (r *implRepository) UpsertSettings(ctx context.Context, opt repo.UpsertSettingsOptions) (model.UserSettings, error) {
	now := time.Now()

	const query = `
		INSERT INTO user_settings (user_id, weekday_wake_time, weekday_sleep_time, weekend_wake_time, weekend_sleep_time, weekday_work_start, weekday_work_end, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
		  weekday_wake_time  = excluded.weekday_wake_time,
		  weekday_sleep_time = excluded.weekday_sleep_time,
		  weekend_wake_time  = excluded.weekend_wake_time,
		  weekend_sleep_time = excluded.weekend_sleep_time,
		  weekday_work_start = excluded.weekday_work_start,
		  weekday_work_end   = excluded.weekday_work_end,
		  updated_at         = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		opt.UserID,
		opt.WeekdayWake.String(), opt.WeekdaySleep.String(),
		opt.WeekendWake.String(), opt.WeekendSleep.String(),
		opt.WorkStart.String(), opt.WorkEnd.String(),
		now.Unix(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSettings"), err)
		return model.UserSettings{}, repo.ErrFailedToInsert
	}

	return model.UserSettings{
		UserID:       opt.UserID,
		WeekdayWake:  opt.WeekdayWake,
		WeekdaySleep: opt.WeekdaySleep,
		WeekendWake:  opt.WeekendWake,
		WeekendSleep: opt.WeekendSleep,
		WorkStart:    opt.WorkStart,
		WorkEnd:      opt.WorkEnd,
		UpdatedAt:    now,
	}, nil
}

// GetSettings reads the user's daily rhythm. Returns a zero-value record
// (UserID == "") when the user has none yet.
func (r *implRepository) GetSettings(ctx context.Context, userID string) (model.UserSettings, error) {
	const query = `
		SELECT user_id, weekday_wake_time, weekday_sleep_time, weekend_wake_time, weekend_sleep_time, weekday_work_start, weekday_work_end, updated_at
		FROM user_settings WHERE user_id = ?`

	var (
		s                                   model.UserSettings
		wdWake, wdSleep                     string
		weWake, weSleep, workStart, workEnd sql.NullString
		updatedAt                           int64
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &wdWake, &wdSleep, &weWake, &weSleep, &workStart, &workEnd, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.UserSettings{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSettings"), err)
		return model.UserSettings{}, repo.ErrFailedToGet
	}

	if s.WeekdayWake, err = pressure.ParseClock(wdWake); err != nil {
		r.l.Errorf(ctx, "%s wake: %v", r.dsn("GetSettings"), err)
		return model.UserSettings{}, repo.ErrFailedToGet
	}
	if s.WeekdaySleep, err = pressure.ParseClock(wdSleep); err != nil {
		r.l.Errorf(ctx, "%s sleep: %v", r.dsn("GetSettings"), err)
		return model.UserSettings{}, repo.ErrFailedToGet
	}
	s.WeekendWake = parseOptionalClock(weWake)
	s.WeekendSleep = parseOptionalClock(weSleep)
	s.WorkStart = parseOptionalClock(workStart)
	s.WorkEnd = parseOptionalClock(workEnd)
	s.UpdatedAt = time.Unix(updatedAt, 0)
	return s, nil
}

func parseOptionalClock(ns sql.NullString) pressure.Clock {
	if !ns.Valid {
		return 0
	}
	c, err := pressure.ParseClock(ns.String)
	if err != nil {
		return 0
	}
	return c
}
