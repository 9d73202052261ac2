package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "github.com/KN-gho/timebudget/internal/diary/repository"
	"github.com/KN-gho/timebudget/internal/model"
)

const entryColumns = `id, user_id, entry_date, content, created_at, updated_at`

// CreateEntry inserts an entry for the date. The (user_id, entry_date)
// unique constraint surfaces as ErrFailedToInsert; the use case checks
// for an existing entry first to report the conflict precisely.
func (r *implRepository) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (model.DiaryEntry, error) {
	now := time.Now()
	e := model.DiaryEntry{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Date:      opt.Date,
		Content:   opt.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const query = `
		INSERT INTO diary (id, user_id, entry_date, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Date.Format(dateFormat), e.Content,
		now.Unix(), now.Unix(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return model.DiaryEntry{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetEntry retrieves the entry for the date. Returns zero-value
// DiaryEntry (ID == "") when the date has none.
func (r *implRepository) GetEntry(ctx context.Context, userID string, date time.Time) (model.DiaryEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM diary WHERE user_id = ? AND entry_date = ?", entryColumns)

	e, err := r.scanEntry(r.db.QueryRowContext(ctx, query, userID, date.Format(dateFormat)))
	if err == sql.ErrNoRows {
		return model.DiaryEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEntry"), err)
		return model.DiaryEntry{}, repo.ErrFailedToGet
	}
	return e, nil
}

// UpdateEntry overwrites the entry's content for the date. Returns
// zero-value DiaryEntry when the date has no entry.
func (r *implRepository) UpdateEntry(ctx context.Context, opt repo.UpdateEntryOptions) (model.DiaryEntry, error) {
	const query = `
		UPDATE diary SET content = ?, updated_at = ?
		WHERE user_id = ? AND entry_date = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Content, time.Now().Unix(),
		opt.UserID, opt.Date.Format(dateFormat),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEntry"), err)
		return model.DiaryEntry{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.DiaryEntry{}, nil
	}

	return r.GetEntry(ctx, opt.UserID, opt.Date)
}

// DeleteEntry removes the entry for the date.
func (r *implRepository) DeleteEntry(ctx context.Context, userID string, date time.Time) error {
	const query = `DELETE FROM diary WHERE user_id = ? AND entry_date = ?`
	if _, err := r.db.ExecContext(ctx, query, userID, date.Format(dateFormat)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEntry"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListRecent returns the latest entries, newest date first.
func (r *implRepository) ListRecent(ctx context.Context, userID string, limit int) ([]model.DiaryEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM diary WHERE user_id = ? ORDER BY entry_date DESC LIMIT ?", entryColumns)
	return r.list(ctx, "ListRecent", query, userID, limit)
}

// ListRange returns entries with from <= date <= to, date ascending.
func (r *implRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]model.DiaryEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM diary WHERE user_id = ? AND entry_date >= ? AND entry_date <= ? ORDER BY entry_date ASC", entryColumns)
	return r.list(ctx, "ListRange", query, userID, from.Format(dateFormat), to.Format(dateFormat))
}

func (r *implRepository) list(ctx context.Context, method, query string, args ...any) ([]model.DiaryEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.DiaryEntry
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanEntry(row rowScanner) (model.DiaryEntry, error) {
	var (
		e                    model.DiaryEntry
		entryDate            string
		createdAt, updatedAt int64
	)
	err := row.Scan(&e.ID, &e.UserID, &entryDate, &e.Content, &createdAt, &updatedAt)
	if err != nil {
		return model.DiaryEntry{}, err
	}
	if e.Date, err = time.Parse(dateFormat, entryDate); err != nil {
		return model.DiaryEntry{}, err
	}
	e.CreatedAt = time.Unix(createdAt, 0)
	e.UpdatedAt = time.Unix(updatedAt, 0)
	return e, nil
}
