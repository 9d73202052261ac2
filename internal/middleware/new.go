package middleware

import (
	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/pkg/log"
)

// SessionValidator resolves a bearer token to a live session.
type SessionValidator interface {
	Validate(token string) (model.Session, bool)
}

type Middleware struct {
	l        log.Logger
	sessions SessionValidator
}

func New(l log.Logger, sessions SessionValidator) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
	}
}
