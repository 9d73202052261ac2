package schedule

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Add(ctx context.Context, input AddInput) (AddOutput, error)
	ListByDate(ctx context.Context, userID string, date time.Time) (ListOutput, error)
	ListAll(ctx context.Context, userID string) (ListOutput, error)
	Delete(ctx context.Context, id, userID string) error

	// Forecast returns tomorrow's and the day after's forecast for the
	// user's registered region. Today is skipped.
	Forecast(ctx context.Context, userID string) (ForecastOutput, error)

	// Advice generates schedule advice over the upcoming forecasts,
	// flagging outdoor events on rainy days.
	Advice(ctx context.Context, userID string) (AdviceOutput, error)
}
