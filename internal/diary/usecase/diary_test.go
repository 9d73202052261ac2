package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KN-gho/timebudget/internal/diary"
	"github.com/KN-gho/timebudget/internal/diary/repository"
	"github.com/KN-gho/timebudget/internal/diary/usecase"
	"github.com/KN-gho/timebudget/internal/model"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/log"
)

// mock dependencies

type mockEntryRepo struct {
	entries map[string]model.DiaryEntry // keyed by date string
	fail    bool

	rangeFrom, rangeTo time.Time
}

func key(d time.Time) string { return d.Format("2006-01-02") }

func (m *mockEntryRepo) CreateEntry(ctx context.Context, opt repository.CreateEntryOptions) (model.DiaryEntry, error) {
	if m.fail {
		return model.DiaryEntry{}, errors.New("db error")
	}
	e := model.DiaryEntry{ID: "entry-" + key(opt.Date), UserID: opt.UserID, Date: opt.Date, Content: opt.Content}
	m.entries[key(opt.Date)] = e
	return e, nil
}

func (m *mockEntryRepo) GetEntry(ctx context.Context, userID string, date time.Time) (model.DiaryEntry, error) {
	if m.fail {
		return model.DiaryEntry{}, errors.New("db error")
	}
	return m.entries[key(date)], nil
}

func (m *mockEntryRepo) UpdateEntry(ctx context.Context, opt repository.UpdateEntryOptions) (model.DiaryEntry, error) {
	e, ok := m.entries[key(opt.Date)]
	if !ok {
		return model.DiaryEntry{}, nil
	}
	e.Content = opt.Content
	m.entries[key(opt.Date)] = e
	return e, nil
}

func (m *mockEntryRepo) DeleteEntry(ctx context.Context, userID string, date time.Time) error {
	delete(m.entries, key(date))
	return nil
}

func (m *mockEntryRepo) ListRecent(ctx context.Context, userID string, limit int) ([]model.DiaryEntry, error) {
	var out []model.DiaryEntry
	for _, e := range m.entries {
		out = append(out, e)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockEntryRepo) ListRange(ctx context.Context, userID string, from, to time.Time) ([]model.DiaryEntry, error) {
	m.rangeFrom, m.rangeTo = from, to
	return nil, nil
}

type mockUserRepo struct {
	users map[string]model.User
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt userRepo.CreateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (model.User, error) {
	return m.users[opt.ID], nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) { return nil, nil }

func (m *mockUserRepo) UpdateUser(ctx context.Context, opt userRepo.UpdateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) error { return nil }

func (m *mockUserRepo) UpsertSettings(ctx context.Context, opt userRepo.UpsertSettingsOptions) (model.UserSettings, error) {
	return model.UserSettings{}, nil
}

func (m *mockUserRepo) GetSettings(ctx context.Context, userID string) (model.UserSettings, error) {
	return model.UserSettings{}, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSaveAndConflict(t *testing.T) {
	repo := &mockEntryRepo{entries: map[string]model.DiaryEntry{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := usecase.New(repo, users, log.NewNop())

	in := diary.SaveInput{UserID: "user-1", Date: day(2025, 6, 10), Content: "今日は集中できた"}
	out, err := uc.Save(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Entry.Content != in.Content {
		t.Errorf("Content = %q", out.Entry.Content)
	}

	// Same date again is a conflict, not an overwrite.
	if _, err := uc.Save(context.Background(), in); !errors.Is(err, diary.ErrEntryExists) {
		t.Fatalf("err = %v, want ErrEntryExists", err)
	}
}

func TestSaveEmptyContent(t *testing.T) {
	repo := &mockEntryRepo{entries: map[string]model.DiaryEntry{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := usecase.New(repo, users, log.NewNop())

	_, err := uc.Save(context.Background(), diary.SaveInput{
		UserID: "user-1", Date: day(2025, 6, 10), Content: "   ",
	})
	if !errors.Is(err, diary.ErrEmptyContent) {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}
}

func TestSaveUnknownUser(t *testing.T) {
	repo := &mockEntryRepo{entries: map[string]model.DiaryEntry{}}
	users := &mockUserRepo{users: map[string]model.User{}}
	uc := usecase.New(repo, users, log.NewNop())

	_, err := uc.Save(context.Background(), diary.SaveInput{
		UserID: "ghost", Date: day(2025, 6, 10), Content: "x",
	})
	if !errors.Is(err, diary.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateMissingEntry(t *testing.T) {
	repo := &mockEntryRepo{entries: map[string]model.DiaryEntry{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := usecase.New(repo, users, log.NewNop())

	_, err := uc.Update(context.Background(), diary.UpdateInput{
		UserID: "user-1", Date: day(2025, 6, 10), Content: "x",
	})
	if !errors.Is(err, diary.ErrEntryNotFound) {
		t.Fatalf("err = %v, want ErrEntryNotFound", err)
	}
}

func TestDeleteMissingEntry(t *testing.T) {
	repo := &mockEntryRepo{entries: map[string]model.DiaryEntry{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := usecase.New(repo, users, log.NewNop())

	err := uc.Delete(context.Background(), "user-1", day(2025, 6, 10))
	if !errors.Is(err, diary.ErrEntryNotFound) {
		t.Fatalf("err = %v, want ErrEntryNotFound", err)
	}
}

func TestMonthRange(t *testing.T) {
	repo := &mockEntryRepo{entries: map[string]model.DiaryEntry{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := usecase.New(repo, users, log.NewNop())

	_, err := uc.Month(context.Background(), diary.MonthInput{
		UserID: "user-1", Year: 2025, Month: time.February,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := day(2025, 2, 1); !repo.rangeFrom.Equal(want) {
		t.Errorf("from = %v, want %v", repo.rangeFrom, want)
	}
	if want := day(2025, 2, 28); !repo.rangeTo.Equal(want) {
		t.Errorf("to = %v, want %v", repo.rangeTo, want)
	}
}
