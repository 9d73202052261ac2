package model

import "time"

// Session is an authenticated login session held in memory. The token is
// an opaque random string handed to the client after the OAuth callback.
type Session struct {
	Token     string
	UserID    string
	Email     string
	Name      string
	Picture   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
