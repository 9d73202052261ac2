package auth

import "github.com/KN-gho/timebudget/internal/model"

// --- UseCase Outputs ---

// LoginURLOutput carries the Google consent page URL and the CSRF state
// the callback must echo back.
type LoginURLOutput struct {
	URL   string
	State string
}

type CallbackInput struct {
	Code  string
	State string
}

type SessionOutput struct {
	Session model.Session
}
