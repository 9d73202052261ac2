package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// LoginURL starts the OAuth flow and returns the consent page URL.
	LoginURL(ctx context.Context) (LoginURLOutput, error)
	// Callback exchanges the authorization code, fetches the Google
	// profile, and issues an opaque session token.
	Callback(ctx context.Context, input CallbackInput) (SessionOutput, error)
	// Me resolves a session token to its session.
	Me(ctx context.Context, token string) (SessionOutput, error)
	Logout(ctx context.Context, token string) error
}
