package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/KN-gho/timebudget/internal/diary"
	repo "github.com/KN-gho/timebudget/internal/diary/repository"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
)

const defaultRecentLimit = 7

// Save creates the entry for the date. A date that already has one is
// a conflict; Update is the overwrite path.
func (uc *implUseCase) Save(ctx context.Context, input diary.SaveInput) (diary.EntryOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return diary.EntryOutput{}, diary.ErrEmptyContent
	}
	if err := uc.requireUser(ctx, input.UserID); err != nil {
		return diary.EntryOutput{}, err
	}

	existing, err := uc.repo.GetEntry(ctx, input.UserID, input.Date)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save GetEntry: %v", err)
		return diary.EntryOutput{}, err
	}
	if existing.ID != "" {
		return diary.EntryOutput{}, diary.ErrEntryExists
	}

	created, err := uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
		UserID:  input.UserID,
		Date:    input.Date,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save CreateEntry: %v", err)
		return diary.EntryOutput{}, err
	}
	return diary.EntryOutput{Entry: created}, nil
}

// Get returns the entry for the date.
func (uc *implUseCase) Get(ctx context.Context, userID string, date time.Time) (diary.EntryOutput, error) {
	e, err := uc.repo.GetEntry(ctx, userID, date)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get: %v", err)
		return diary.EntryOutput{}, err
	}
	if e.ID == "" {
		return diary.EntryOutput{}, diary.ErrEntryNotFound
	}
	return diary.EntryOutput{Entry: e}, nil
}

// Update overwrites the entry's content for the date.
func (uc *implUseCase) Update(ctx context.Context, input diary.UpdateInput) (diary.EntryOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return diary.EntryOutput{}, diary.ErrEmptyContent
	}

	updated, err := uc.repo.UpdateEntry(ctx, repo.UpdateEntryOptions{
		UserID:  input.UserID,
		Date:    input.Date,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update: %v", err)
		return diary.EntryOutput{}, err
	}
	if updated.ID == "" {
		return diary.EntryOutput{}, diary.ErrEntryNotFound
	}
	return diary.EntryOutput{Entry: updated}, nil
}

// Delete removes the entry for the date.
func (uc *implUseCase) Delete(ctx context.Context, userID string, date time.Time) error {
	e, err := uc.repo.GetEntry(ctx, userID, date)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetEntry: %v", err)
		return err
	}
	if e.ID == "" {
		return diary.ErrEntryNotFound
	}
	return uc.repo.DeleteEntry(ctx, userID, date)
}

// Recent returns the latest n entries, newest date first.
func (uc *implUseCase) Recent(ctx context.Context, userID string, n int) (diary.ListOutput, error) {
	if n <= 0 {
		n = defaultRecentLimit
	}
	entries, err := uc.repo.ListRecent(ctx, userID, n)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recent: %v", err)
		return diary.ListOutput{}, err
	}
	return diary.ListOutput{Entries: entries}, nil
}

// Month returns the entries within a calendar month, date ascending.
func (uc *implUseCase) Month(ctx context.Context, input diary.MonthInput) (diary.ListOutput, error) {
	from := time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	entries, err := uc.repo.ListRange(ctx, input.UserID, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Month: %v", err)
		return diary.ListOutput{}, err
	}
	return diary.ListOutput{Entries: entries}, nil
}

// requireUser maps a missing user to the domain sentinel.
func (uc *implUseCase) requireUser(ctx context.Context, userID string) error {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.requireUser: %v", err)
		return err
	}
	if u.ID == "" {
		return diary.ErrUserNotFound
	}
	return nil
}
