package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/internal/task"
	"github.com/KN-gho/timebudget/internal/task/repository"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/deadline"
	"github.com/KN-gho/timebudget/pkg/log"
	"github.com/KN-gho/timebudget/pkg/openai"
	"github.com/KN-gho/timebudget/pkg/pressure"
)

// mock dependencies

type mockTaskRepo struct {
	tasks   map[string]model.Task
	failGet bool
	updated *repository.UpdateTaskOptions
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{
		ID:               "task-1",
		UserID:           opt.UserID,
		Title:            opt.Title,
		Deadline:         opt.Deadline,
		Priority:         opt.Priority,
		EstimatedMinutes: opt.EstimatedMinutes,
	}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.failGet {
		return model.Task{}, errors.New("db error")
	}
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.updated = &opt
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Title = opt.Title
	t.Deadline = opt.Deadline
	t.EstimatedMinutes = opt.EstimatedMinutes
	t.ProgressMinutes = opt.ProgressMinutes
	t.ProgressSessions = opt.ProgressSessions
	t.Completed = opt.Completed
	return t, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

type mockUserRepo struct {
	users    map[string]model.User
	settings map[string]model.UserSettings
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
	return m.settings[userID], nil
}

type mockAI struct {
	transcript string
	completion string
	failChat   bool
}

func (m *mockAI) ChatCompletion(ctx context.Context, req *openai.ChatRequest) (*openai.ChatResponse, error) {
	if m.failChat {
		return nil, errors.New("api error")
	}
	return &openai.ChatResponse{
		Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: m.completion}}},
	}, nil
}

func (m *mockAI) Transcribe(ctx context.Context, req *openai.TranscriptionRequest) (*openai.TranscriptionResponse, error) {
	return &openai.TranscriptionResponse{Text: m.transcript}, nil
}

func newTestUseCase(taskRepo *mockTaskRepo, users *mockUserRepo, ai *mockAI, today time.Time) *implUseCase {
	resolver, _ := deadline.NewResolver("UTC")
	uc := New(taskRepo, users, ai, resolver, pressure.NewCalculator(pressure.MondayStart), log.NewNop())
	uc.now = func() time.Time { return today }
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpdateAccumulatesProgress(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"task-1": {
			ID: "task-1", UserID: "user-1", Title: "レポート",
			Deadline: date(2025, 6, 20), EstimatedMinutes: 120,
			ProgressMinutes: 30, ProgressSessions: 1,
		},
	}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := newTestUseCase(repo, users, &mockAI{}, date(2025, 6, 10))

	add := 45
	out, err := uc.Update(context.Background(), task.UpdateInput{
		ID: "task-1", UserID: "user-1", AddProgressMinutes: &add,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.ProgressMinutes != 75 {
		t.Errorf("ProgressMinutes = %d, want 75", out.Task.ProgressMinutes)
	}
	if out.Task.ProgressSessions != 2 {
		t.Errorf("ProgressSessions = %d, want 2", out.Task.ProgressSessions)
	}
	if out.Task.Title != "レポート" {
		t.Errorf("Title changed on progress-only update: %q", out.Task.Title)
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := newTestUseCase(repo, users, &mockAI{}, date(2025, 6, 10))

	_, err := uc.Update(context.Background(), task.UpdateInput{ID: "missing", UserID: "user-1"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDetailScopedToOwner(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"task-1": {ID: "task-1", UserID: "user-1", Deadline: date(2025, 6, 20)},
	}}
	users := &mockUserRepo{users: map[string]model.User{}}
	uc := newTestUseCase(repo, users, &mockAI{}, date(2025, 6, 10))

	if _, err := uc.Detail(context.Background(), "task-1", "someone-else"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound for foreign owner", err)
	}
}

func TestCreateRequiresUser(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{}}
	users := &mockUserRepo{users: map[string]model.User{}}
	uc := newTestUseCase(repo, users, &mockAI{}, date(2025, 6, 10))

	_, err := uc.Create(context.Background(), task.CreateInput{UserID: "ghost", Title: "x", Deadline: date(2025, 6, 20)})
	if !errors.Is(err, task.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestVoiceIntakeParsesLabeledLines(t *testing.T) {
	today := date(2025, 6, 10)
	ai := &mockAI{
		transcript: "25日までにレポートを仕上げる、だいたい90分くらい",
		completion: "タスク名: レポート提出\nメモ・内容: 講義の最終レポート\n優先度(1~5): 4\n目安時間(分): 90分\nしめきり(YYYY-MM-DD形式): 25日までに",
	}
	repo := &mockTaskRepo{tasks: map[string]model.Task{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := newTestUseCase(repo, users, ai, today)

	out, err := uc.VoiceIntake(context.Background(), task.VoiceIntakeInput{
		UserID: "user-1", Filename: "input.wav", Audio: []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Draft.Title != "レポート提出" {
		t.Errorf("Title = %q", out.Draft.Title)
	}
	if out.Draft.Content != "講義の最終レポート" {
		t.Errorf("Content = %q", out.Draft.Content)
	}
	if out.Draft.Priority != 4 {
		t.Errorf("Priority = %d, want 4", out.Draft.Priority)
	}
	if out.Draft.EstimatedMinutes != 90 {
		t.Errorf("EstimatedMinutes = %d, want 90", out.Draft.EstimatedMinutes)
	}
	if want := date(2025, 6, 25); !out.Draft.Deadline.Equal(want) {
		t.Errorf("Deadline = %v, want %v", out.Draft.Deadline, want)
	}
	if out.Transcript != ai.transcript {
		t.Errorf("Transcript = %q", out.Transcript)
	}
}

func TestVoiceIntakeDefaultsOnMissingFields(t *testing.T) {
	today := date(2025, 6, 10)
	ai := &mockAI{
		transcript: "なにか",
		completion: "タスク名: 買い物\nしめきり: いつか",
	}
	repo := &mockTaskRepo{tasks: map[string]model.Task{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := newTestUseCase(repo, users, ai, today)

	out, err := uc.VoiceIntake(context.Background(), task.VoiceIntakeInput{
		UserID: "user-1", Filename: "input.wav", Audio: []byte{1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Draft.Priority != defaultPriority {
		t.Errorf("Priority = %d, want default %d", out.Draft.Priority, defaultPriority)
	}
	if out.Draft.EstimatedMinutes != defaultEstimatedMinutes {
		t.Errorf("EstimatedMinutes = %d, want default %d", out.Draft.EstimatedMinutes, defaultEstimatedMinutes)
	}
	// Unresolvable deadline falls back to today.
	if !out.Draft.Deadline.Equal(today) {
		t.Errorf("Deadline = %v, want today %v", out.Draft.Deadline, today)
	}
}

func TestVoiceIntakeWithoutAIClient(t *testing.T) {
	// main wires a nil AI client when no API key is configured.
	repo := &mockTaskRepo{tasks: map[string]model.Task{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	resolver, _ := deadline.NewResolver("UTC")
	uc := New(repo, users, nil, resolver, pressure.NewCalculator(pressure.MondayStart), log.NewNop())

	_, err := uc.VoiceIntake(context.Background(), task.VoiceIntakeInput{
		UserID: "user-1", Filename: "input.wav", Audio: []byte{1},
	})
	if !errors.Is(err, task.ErrAIUnavailable) {
		t.Fatalf("err = %v, want ErrAIUnavailable", err)
	}
}

func TestVoiceIntakeEmptyAudio(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := newTestUseCase(repo, users, &mockAI{}, date(2025, 6, 10))

	_, err := uc.VoiceIntake(context.Background(), task.VoiceIntakeInput{UserID: "user-1"})
	if !errors.Is(err, task.ErrEmptyAudio) {
		t.Fatalf("err = %v, want ErrEmptyAudio", err)
	}
}

func TestReportScoresAndLevels(t *testing.T) {
	// Tuesday, 16 disposable hours (07:00-23:00): 960 min/day.
	today := date(2025, 6, 10)
	wake, _ := pressure.ParseClock("07:00")
	sleep, _ := pressure.ParseClock("23:00")

	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"due-today": {
			ID: "due-today", UserID: "user-1",
			Deadline: today, EstimatedMinutes: 480,
		},
		"due-later": {
			ID: "due-later", UserID: "user-1",
			Deadline: date(2025, 6, 12), EstimatedMinutes: 960,
		},
	}}
	users := &mockUserRepo{
		users: map[string]model.User{"user-1": {ID: "user-1"}},
		settings: map[string]model.UserSettings{
			"user-1": {UserID: "user-1", WeekdayWake: wake, WeekdaySleep: sleep},
		},
	}
	uc := newTestUseCase(repo, users, &mockAI{}, today)

	out, err := uc.Report(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Daily: 480 full + 960*0.5 = 960 over 960 -> 1.0, critical/red.
	if out.Daily.Ratio != 1.0 {
		t.Errorf("Daily.Ratio = %v, want 1.0", out.Daily.Ratio)
	}
	if out.Daily.Level != string(pressure.LevelCritical) {
		t.Errorf("Daily.Level = %q, want critical", out.Daily.Level)
	}
	if out.Daily.Color != "red" {
		t.Errorf("Daily.Color = %q, want red", out.Daily.Color)
	}
	if out.Daily.DonutPercent != 100 {
		t.Errorf("Daily.DonutPercent = %v, want 100", out.Daily.DonutPercent)
	}

	// Weekly: both due by Sunday -> 1440 full over 960*6 = 5760 -> 0.25, low/white.
	if out.Weekly.Ratio != 0.25 {
		t.Errorf("Weekly.Ratio = %v, want 0.25", out.Weekly.Ratio)
	}
	if out.Weekly.Level != string(pressure.LevelLow) {
		t.Errorf("Weekly.Level = %q, want low", out.Weekly.Level)
	}
}

func TestReportWithoutSettingsIsZero(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t": {ID: "t", UserID: "user-1", Deadline: date(2025, 6, 10), EstimatedMinutes: 600},
	}}
	users := &mockUserRepo{users: map[string]model.User{"user-1": {ID: "user-1"}}}
	uc := newTestUseCase(repo, users, &mockAI{}, date(2025, 6, 10))

	out, err := uc.Report(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Daily.Ratio != 0 || out.Weekly.Ratio != 0 {
		t.Errorf("scores without settings = %v/%v, want 0/0", out.Daily.Ratio, out.Weekly.Ratio)
	}
	if out.Daily.Level != string(pressure.LevelLow) {
		t.Errorf("Daily.Level = %q, want low", out.Daily.Level)
	}
}
