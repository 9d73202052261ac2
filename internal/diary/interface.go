package diary

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Save creates the entry for the date; conflicts if one exists.
	Save(ctx context.Context, input SaveInput) (EntryOutput, error)
	Get(ctx context.Context, userID string, date time.Time) (EntryOutput, error)
	// Update overwrites the entry's content for the date.
	Update(ctx context.Context, input UpdateInput) (EntryOutput, error)
	Delete(ctx context.Context, userID string, date time.Time) error
	// Recent returns the latest n entries, newest date first.
	Recent(ctx context.Context, userID string, n int) (ListOutput, error)
	// Month returns all entries within a calendar month, date ascending.
	Month(ctx context.Context, input MonthInput) (ListOutput, error)
}
