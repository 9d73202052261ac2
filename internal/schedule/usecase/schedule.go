package usecase

import (
	"context"
	"time"

	"github.com/KN-gho/timebudget/internal/schedule"
	repo "github.com/KN-gho/timebudget/internal/schedule/repository"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
)

// Add registers a schedule for the user.
func (uc *implUseCase) Add(ctx context.Context, input schedule.AddInput) (schedule.AddOutput, error) {
	if err := uc.requireUser(ctx, input.UserID); err != nil {
		return schedule.AddOutput{}, err
	}

	created, err := uc.repo.CreateSchedule(ctx, repo.CreateScheduleOptions{
		UserID:     input.UserID,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EventName:  input.EventName,
		Location:   input.Location,
		Outdoor:    input.Outdoor,
		Importance: input.Importance,
		Changeable: input.Changeable,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateSchedule: %v", err)
		return schedule.AddOutput{}, err
	}
	return schedule.AddOutput{Schedule: created}, nil
}

// ListByDate returns the user's schedules for one day.
func (uc *implUseCase) ListByDate(ctx context.Context, userID string, date time.Time) (schedule.ListOutput, error) {
	schedules, err := uc.repo.ListSchedules(ctx, repo.ListSchedulesOptions{UserID: userID, Date: date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByDate: %v", err)
		return schedule.ListOutput{}, err
	}
	return schedule.ListOutput{Schedules: schedules}, nil
}

// ListAll returns all of the user's schedules, date ascending.
func (uc *implUseCase) ListAll(ctx context.Context, userID string) (schedule.ListOutput, error) {
	schedules, err := uc.repo.ListSchedules(ctx, repo.ListSchedulesOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAll: %v", err)
		return schedule.ListOutput{}, err
	}
	return schedule.ListOutput{Schedules: schedules}, nil
}

// Delete removes a schedule, scoped to the owner.
func (uc *implUseCase) Delete(ctx context.Context, id, userID string) error {
	s, err := uc.repo.GetOneSchedule(ctx, repo.GetOneScheduleOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneSchedule: %v", err)
		return err
	}
	if s.ID == "" {
		return schedule.ErrScheduleNotFound
	}
	return uc.repo.DeleteSchedule(ctx, s.ID)
}

// requireUser maps a missing user to the domain sentinel.
func (uc *implUseCase) requireUser(ctx context.Context, userID string) error {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.requireUser: %v", err)
		return err
	}
	if u.ID == "" {
		return schedule.ErrUserNotFound
	}
	return nil
}
