package usecase

import (
	"context"

	"github.com/KN-gho/timebudget/internal/user"
	repo "github.com/KN-gho/timebudget/internal/user/repository"
)

// Register creates a new user after checking for name uniqueness.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return user.RegisterOutput{}, user.ErrDuplicateName
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         input.Name,
		Email:        input.Email,
		RegionID:     input.RegionID,
		RegionName:   input.RegionName,
		WorkHours:    input.WorkHours,
		CommuteHours: input.CommuteHours,
		SleepHours:   input.SleepHours,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.RegisterOutput{}, err
	}

	return user.RegisterOutput{User: created}, nil
}

// Detail returns a single user by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (user.DetailOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	if u.ID == "" {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: u}, nil
}

// List returns all registered users.
func (uc *implUseCase) List(ctx context.Context) (user.ListOutput, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return user.ListOutput{}, err
	}
	return user.ListOutput{Users: users, Total: len(users)}, nil
}

// Update replaces a user's mutable profile fields.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (user.UpdateOutput, error) {
	updated, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:           input.ID,
		Email:        input.Email,
		RegionID:     input.RegionID,
		RegionName:   input.RegionName,
		WorkHours:    input.WorkHours,
		CommuteHours: input.CommuteHours,
		SleepHours:   input.SleepHours,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return user.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return user.UpdateOutput{}, user.ErrUserNotFound
	}
	return user.UpdateOutput{User: updated}, nil
}

// Delete removes a user and, via cascade, their settings, tasks, diary and
// schedules.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneUser: %v", err)
		return err
	}
	if existing.ID == "" {
		return user.ErrUserNotFound
	}
	return uc.repo.DeleteUser(ctx, id)
}
