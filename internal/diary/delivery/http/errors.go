package http

import (
	"github.com/KN-gho/timebudget/internal/diary"
	pkgErrors "github.com/KN-gho/timebudget/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case diary.ErrEntryNotFound:
		return pkgErrors.NewHTTPError(404, "diary entry not found")
	case diary.ErrEntryExists:
		return pkgErrors.NewHTTPError(409, "diary entry already exists for this date")
	case diary.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case diary.ErrEmptyContent:
		return pkgErrors.NewHTTPError(400, "diary content is empty")
	case errInvalidDate:
		return pkgErrors.NewHTTPError(400, "invalid date, expected YYYY-MM-DD")
	case errInvalidMonth:
		return pkgErrors.NewHTTPError(400, "invalid month, expected YYYY-MM")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
