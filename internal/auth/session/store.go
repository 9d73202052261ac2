package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KN-gho/timebudget/internal/model"
)

const (
	// DefaultTTL is how long a login session stays valid.
	DefaultTTL = 24 * time.Hour
	// defaultCapacity bounds concurrent sessions; eviction logs the
	// oldest ones out.
	defaultCapacity = 1024

	tokenBytes = 32
)

// Store holds login sessions in an expiring LRU. Safe for concurrent use.
type Store struct {
	ttl      time.Duration
	sessions *expirable.LRU[string, model.Session]
}

// NewStore creates a session store. A non-positive ttl falls back to
// DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: expirable.NewLRU[string, model.Session](defaultCapacity, nil, ttl),
	}
}

// Issue creates a session with a fresh random token.
func (s *Store) Issue(userID, email, name, picture string) model.Session {
	now := time.Now()
	sess := model.Session{
		Token:     newToken(),
		UserID:    userID,
		Email:     email,
		Name:      name,
		Picture:   picture,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions.Add(sess.Token, sess)
	return sess
}

// Validate resolves a token to its live session.
func (s *Store) Validate(token string) (model.Session, bool) {
	if token == "" {
		return model.Session{}, false
	}
	sess, ok := s.sessions.Get(token)
	if !ok || sess.Expired(time.Now()) {
		return model.Session{}, false
	}
	return sess, true
}

// Revoke drops a session. Revoking an unknown token is a no-op.
func (s *Store) Revoke(token string) {
	s.sessions.Remove(token)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}

func newToken() string {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure is unrecoverable
	}
	return hex.EncodeToString(buf)
}
