package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id, userID string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id, userID string) error

	// VoiceIntake transcribes audio and extracts a pre-filled task draft.
	VoiceIntake(ctx context.Context, input VoiceIntakeInput) (VoiceIntakeOutput, error)

	// Report computes the daily and weekly pressure scores for the user's
	// open tasks as of today.
	Report(ctx context.Context, userID string) (ReportOutput, error)
}
