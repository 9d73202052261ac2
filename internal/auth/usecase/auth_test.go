package usecase_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/KN-gho/timebudget/internal/auth"
	"github.com/KN-gho/timebudget/internal/auth/session"
	"github.com/KN-gho/timebudget/internal/auth/usecase"
	"github.com/KN-gho/timebudget/internal/model"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/log"
)

type mockUserRepo struct{}

func (mockUserRepo) CreateUser(ctx context.Context, opt userRepo.CreateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (mockUserRepo) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) { return nil, nil }

func (mockUserRepo) UpdateUser(ctx context.Context, opt userRepo.UpdateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (mockUserRepo) DeleteUser(ctx context.Context, id string) error { return nil }

func (mockUserRepo) UpsertSettings(ctx context.Context, opt userRepo.UpsertSettingsOptions) (model.UserSettings, error) {
	return model.UserSettings{}, nil
}

func (mockUserRepo) GetSettings(ctx context.Context, userID string) (model.UserSettings, error) {
	return model.UserSettings{}, nil
}

func newUseCase() (*session.Store, auth.UseCase) {
	sessions := session.NewStore(time.Hour)
	uc := usecase.New(usecase.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/callback",
	}, sessions, mockUserRepo{}, log.NewNop())
	return sessions, uc
}

func TestLoginURL(t *testing.T) {
	_, uc := newUseCase()

	out, err := uc.LoginURL(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State == "" {
		t.Fatal("State is empty")
	}

	u, err := url.Parse(out.URL)
	if err != nil {
		t.Fatalf("URL unparsable: %v", err)
	}
	q := u.Query()
	if q.Get("client_id") != "client-id" {
		t.Errorf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("state") != out.State {
		t.Errorf("state param = %q, want %q", q.Get("state"), out.State)
	}
	if !strings.Contains(q.Get("scope"), "userinfo.email") {
		t.Errorf("scope = %q, want userinfo.email", q.Get("scope"))
	}
	if q.Get("redirect_uri") != "http://localhost:8080/api/v1/auth/callback" {
		t.Errorf("redirect_uri = %q", q.Get("redirect_uri"))
	}
}

func TestLoginURLStatesAreUnique(t *testing.T) {
	_, uc := newUseCase()

	first, _ := uc.LoginURL(context.Background())
	second, _ := uc.LoginURL(context.Background())
	if first.State == second.State {
		t.Error("two logins share a state")
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	_, uc := newUseCase()

	_, err := uc.Callback(context.Background(), auth.CallbackInput{Code: "code", State: "forged"})
	if !errors.Is(err, auth.ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
}

func TestMeAndLogout(t *testing.T) {
	sessions, uc := newUseCase()

	sess := sessions.Issue("user-1", "taro@example.com", "Taro", "")

	out, err := uc.Me(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Session.UserID != "user-1" {
		t.Errorf("UserID = %q", out.Session.UserID)
	}

	if err := uc.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Me(context.Background(), sess.Token); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("err after logout = %v, want ErrSessionNotFound", err)
	}
	if err := uc.Logout(context.Background(), sess.Token); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("second logout err = %v, want ErrSessionNotFound", err)
	}
}
