package http

import (
	"github.com/KN-gho/timebudget/internal/schedule"
	pkgErrors "github.com/KN-gho/timebudget/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case schedule.ErrScheduleNotFound:
		return pkgErrors.NewHTTPError(404, "schedule not found")
	case schedule.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case schedule.ErrNoRegion:
		return pkgErrors.NewHTTPError(400, "user has no region configured")
	case schedule.ErrInvalidTime:
		return pkgErrors.NewHTTPError(400, "invalid start time, expected HH:MM")
	case schedule.ErrForecast:
		return pkgErrors.NewHTTPError(502, "failed to fetch weather forecast")
	case schedule.ErrAdvice:
		return pkgErrors.NewHTTPError(502, "failed to generate advice")
	case schedule.ErrAIUnavailable:
		return pkgErrors.NewHTTPError(503, "advice is not configured")
	case errInvalidDate:
		return pkgErrors.NewHTTPError(400, "invalid date, expected YYYY-MM-DD")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
