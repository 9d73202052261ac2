package http

import (
	"github.com/KN-gho/timebudget/internal/auth"
	pkgErrors "github.com/KN-gho/timebudget/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidState:
		return pkgErrors.NewHTTPError(400, "oauth state mismatch")
	case auth.ErrExchangeFailed, auth.ErrUserinfoFailed:
		return pkgErrors.NewHTTPError(502, "google login failed")
	case auth.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(401, "session not found or expired")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
