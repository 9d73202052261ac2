package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/KN-gho/timebudget/internal/auth"
)

// LoginURL starts the OAuth flow with a one-time CSRF state.
func (uc *implUseCase) LoginURL(ctx context.Context) (auth.LoginURLOutput, error) {
	state := newState()
	uc.states.Add(state, struct{}{})

	return auth.LoginURLOutput{
		URL:   uc.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline),
		State: state,
	}, nil
}

// Callback exchanges the authorization code, fetches the Google
// profile, and issues a session. A registered user with the same email
// is linked onto the session.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.SessionOutput, error) {
	if _, ok := uc.states.Get(input.State); !ok {
		return auth.SessionOutput{}, auth.ErrInvalidState
	}
	uc.states.Remove(input.State)

	token, err := uc.oauth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Callback Exchange: %v", err)
		return auth.SessionOutput{}, auth.ErrExchangeFailed
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(uc.oauth.TokenSource(ctx, token)))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Callback NewService: %v", err)
		return auth.SessionOutput{}, auth.ErrUserinfoFailed
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Callback Userinfo: %v", err)
		return auth.SessionOutput{}, auth.ErrUserinfoFailed
	}

	var userID string
	if info.Email != "" {
		users, listErr := uc.users.ListUsers(ctx)
		if listErr != nil {
			uc.l.Warnf(ctx, "uc.Callback ListUsers: %v", listErr)
		}
		for _, u := range users {
			if u.Email == info.Email {
				userID = u.ID
				break
			}
		}
	}

	sess := uc.sessions.Issue(userID, info.Email, info.Name, info.Picture)
	return auth.SessionOutput{Session: sess}, nil
}

// Me resolves a session token.
func (uc *implUseCase) Me(ctx context.Context, token string) (auth.SessionOutput, error) {
	sess, ok := uc.sessions.Validate(token)
	if !ok {
		return auth.SessionOutput{}, auth.ErrSessionNotFound
	}
	return auth.SessionOutput{Session: sess}, nil
}

// Logout revokes a session token.
func (uc *implUseCase) Logout(ctx context.Context, token string) error {
	if _, ok := uc.sessions.Validate(token); !ok {
		return auth.ErrSessionNotFound
	}
	uc.sessions.Revoke(token)
	return nil
}

func newState() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure is unrecoverable
	}
	return hex.EncodeToString(buf)
}
