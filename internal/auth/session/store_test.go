package session_test

import (
	"testing"
	"time"

	"github.com/KN-gho/timebudget/internal/auth/session"
)

func TestIssueAndValidate(t *testing.T) {
	store := session.NewStore(time.Hour)

	sess := store.Issue("user-1", "taro@example.com", "Taro", "")
	if len(sess.Token) != 64 {
		t.Fatalf("token length = %d, want 64 hex chars", len(sess.Token))
	}

	got, ok := store.Validate(sess.Token)
	if !ok {
		t.Fatal("Validate returned false for a fresh token")
	}
	if got.UserID != "user-1" || got.Email != "taro@example.com" {
		t.Errorf("session = %+v", got)
	}
	if !got.ExpiresAt.After(got.CreatedAt) {
		t.Errorf("ExpiresAt %v not after CreatedAt %v", got.ExpiresAt, got.CreatedAt)
	}
}

func TestValidateUnknownToken(t *testing.T) {
	store := session.NewStore(time.Hour)

	if _, ok := store.Validate("no-such-token"); ok {
		t.Error("Validate accepted an unknown token")
	}
	if _, ok := store.Validate(""); ok {
		t.Error("Validate accepted an empty token")
	}
}

func TestRevoke(t *testing.T) {
	store := session.NewStore(time.Hour)

	sess := store.Issue("user-1", "", "", "")
	store.Revoke(sess.Token)

	if _, ok := store.Validate(sess.Token); ok {
		t.Error("Validate accepted a revoked token")
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0", store.Len())
	}

	// Revoking again must not panic.
	store.Revoke(sess.Token)
}

func TestExpiry(t *testing.T) {
	store := session.NewStore(10 * time.Millisecond)

	sess := store.Issue("user-1", "", "", "")
	time.Sleep(30 * time.Millisecond)

	if _, ok := store.Validate(sess.Token); ok {
		t.Error("Validate accepted an expired token")
	}
}

func TestTokensAreUnique(t *testing.T) {
	store := session.NewStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess := store.Issue("user-1", "", "", "")
		if seen[sess.Token] {
			t.Fatal("duplicate token issued")
		}
		seen[sess.Token] = true
	}
}
