package http

import (
	"time"

	"github.com/KN-gho/timebudget/internal/auth"
)

// --- Response DTOs ---

type loginResp struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

func (h *handler) newLoginResp(out auth.LoginURLOutput) loginResp {
	return loginResp{URL: out.URL, State: out.State}
}

type sessionResp struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *handler) newSessionResp(out auth.SessionOutput) sessionResp {
	s := out.Session
	return sessionResp{
		Token:     s.Token,
		UserID:    s.UserID,
		Email:     s.Email,
		Name:      s.Name,
		Picture:   s.Picture,
		ExpiresAt: s.ExpiresAt,
	}
}
