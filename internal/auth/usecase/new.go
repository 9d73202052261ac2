package usecase

import (
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KN-gho/timebudget/internal/auth/session"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/log"
)

const (
	// stateTTL bounds how long a pending login may take.
	stateTTL      = 10 * time.Minute
	stateCapacity = 256
)

// Config holds the Google OAuth application credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	oauth    *oauth2.Config
	sessions *session.Store
	users    userRepo.Repository
	states   *expirable.LRU[string, struct{}]
	l        log.Logger
}

// New creates a new auth UseCase implementation.
func New(cfg Config, sessions *session.Store, users userRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		sessions: sessions,
		users:    users,
		states:   expirable.NewLRU[string, struct{}](stateCapacity, nil, stateTTL),
		l:        l,
	}
}
