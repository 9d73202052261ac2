package http

import (
	"github.com/KN-gho/timebudget/internal/task"
	pkgErrors "github.com/KN-gho/timebudget/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case task.ErrEmptyAudio:
		return pkgErrors.NewHTTPError(400, "audio recording is empty")
	case task.ErrInvalidDeadline:
		return pkgErrors.NewHTTPError(400, "invalid deadline")
	case task.ErrTranscription, task.ErrExtraction:
		return pkgErrors.NewHTTPError(502, "speech analysis failed")
	case task.ErrAIUnavailable:
		return pkgErrors.NewHTTPError(503, "voice intake is not configured")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
