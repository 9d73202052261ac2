package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Profile CRUD
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	List(ctx context.Context) (ListOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error

	// Daily rhythm settings
	SaveSettings(ctx context.Context, input SaveSettingsInput) (SettingsOutput, error)
	GetSettings(ctx context.Context, userID string) (SettingsOutput, error)
}
