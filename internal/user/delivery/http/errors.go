package http

import (
	"github.com/KN-gho/timebudget/internal/user"
	pkgErrors "github.com/KN-gho/timebudget/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case user.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "user name already exists")
	case user.ErrSettingsNotFound:
		return pkgErrors.NewHTTPError(404, "user settings not found")
	case user.ErrInvalidClock:
		return pkgErrors.NewHTTPError(400, "invalid wake/sleep time")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
