package usecase

import (
	"context"

	"github.com/KN-gho/timebudget/internal/user"
	repo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/pressure"
)

// SaveSettings validates the raw clock strings and upserts the user's
// daily rhythm. The weekday window must be forward in time since it feeds
// the pressure calculator.
func (uc *implUseCase) SaveSettings(ctx context.Context, input user.SaveSettingsInput) (user.SettingsOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveSettings GetOneUser: %v", err)
		return user.SettingsOutput{}, err
	}
	if existing.ID == "" {
		return user.SettingsOutput{}, user.ErrUserNotFound
	}

	wdWake, err := pressure.ParseClock(input.WeekdayWake)
	if err != nil {
		return user.SettingsOutput{}, user.ErrInvalidClock
	}
	wdSleep, err := pressure.ParseClock(input.WeekdaySleep)
	if err != nil {
		return user.SettingsOutput{}, user.ErrInvalidClock
	}
	if wdSleep <= wdWake {
		return user.SettingsOutput{}, user.ErrInvalidClock
	}

	opt := repo.UpsertSettingsOptions{
		UserID:       input.UserID,
		WeekdayWake:  wdWake,
		WeekdaySleep: wdSleep,
	}
	if opt.WeekendWake, err = optionalClock(input.WeekendWake, wdWake); err != nil {
		return user.SettingsOutput{}, user.ErrInvalidClock
	}
	if opt.WeekendSleep, err = optionalClock(input.WeekendSleep, wdSleep); err != nil {
		return user.SettingsOutput{}, user.ErrInvalidClock
	}
	if opt.WorkStart, err = optionalClock(input.WorkStart, 0); err != nil {
		return user.SettingsOutput{}, user.ErrInvalidClock
	}
	if opt.WorkEnd, err = optionalClock(input.WorkEnd, 0); err != nil {
		return user.SettingsOutput{}, user.ErrInvalidClock
	}

	saved, err := uc.repo.UpsertSettings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveSettings UpsertSettings: %v", err)
		return user.SettingsOutput{}, err
	}
	return user.SettingsOutput{Settings: saved}, nil
}

// GetSettings reads the user's daily rhythm.
func (uc *implUseCase) GetSettings(ctx context.Context, userID string) (user.SettingsOutput, error) {
	settings, err := uc.repo.GetSettings(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetSettings: %v", err)
		return user.SettingsOutput{}, err
	}
	if settings.UserID == "" {
		return user.SettingsOutput{}, user.ErrSettingsNotFound
	}
	return user.SettingsOutput{Settings: settings}, nil
}

// optionalClock parses an optional clock string, falling back when empty.
func optionalClock(raw string, fallback pressure.Clock) (pressure.Clock, error) {
	if raw == "" {
		return fallback, nil
	}
	return pressure.ParseClock(raw)
}
