package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmptyAudio      = errors.New("audio recording is empty")
	ErrAIUnavailable   = errors.New("ai client not configured")
	ErrTranscription   = errors.New("failed to transcribe audio")
	ErrExtraction      = errors.New("failed to extract task fields")
	ErrInvalidDeadline = errors.New("invalid deadline")
)
