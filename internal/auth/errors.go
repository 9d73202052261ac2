package auth

import "errors"

var (
	ErrInvalidState    = errors.New("oauth state mismatch")
	ErrExchangeFailed  = errors.New("failed to exchange authorization code")
	ErrUserinfoFailed  = errors.New("failed to fetch google userinfo")
	ErrSessionNotFound = errors.New("session not found or expired")
)
