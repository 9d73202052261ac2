package repository

import (
	"context"

	"github.com/KN-gho/timebudget/internal/model"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
	SettingsRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// SettingsRepository defines data access for per-user settings.
type SettingsRepository interface {
	UpsertSettings(ctx context.Context, opt UpsertSettingsOptions) (model.UserSettings, error)
	// GetSettings returns a zero-value settings record (UserID == "")
	// when the user has none yet.
	GetSettings(ctx context.Context, userID string) (model.UserSettings, error)
}
