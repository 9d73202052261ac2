package repository

import (
	"context"
	"time"

	"github.com/KN-gho/timebudget/internal/model"
)

// Repository defines all data access methods for the DiaryEntry entity.
type Repository interface {
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (model.DiaryEntry, error)
	// GetEntry returns a zero-value entry (ID == "") when the date has none.
	GetEntry(ctx context.Context, userID string, date time.Time) (model.DiaryEntry, error)
	UpdateEntry(ctx context.Context, opt UpdateEntryOptions) (model.DiaryEntry, error)
	DeleteEntry(ctx context.Context, userID string, date time.Time) error
	ListRecent(ctx context.Context, userID string, limit int) ([]model.DiaryEntry, error)
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]model.DiaryEntry, error)
}
