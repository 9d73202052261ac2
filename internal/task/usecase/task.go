package usecase

import (
	"context"

	"github.com/KN-gho/timebudget/internal/task"
	repo "github.com/KN-gho/timebudget/internal/task/repository"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
)

// Create registers a task for the user.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if err := uc.requireUser(ctx, input.UserID); err != nil {
		return task.CreateOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:           input.UserID,
		Title:            input.Title,
		Category:         input.Category,
		Content:          input.Content,
		Deadline:         input.Deadline,
		Priority:         input.Priority,
		EstimatedMinutes: input.EstimatedMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}
	return task.CreateOutput{Task: created}, nil
}

// List returns a page of the user's tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:    input.UserID,
		Completed: input.Completed,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail returns a single task, scoped to the owner.
func (uc *implUseCase) Detail(ctx context.Context, id, userID string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update, merging changed fields onto the
// current row. Progress minutes accumulate and bump the session count.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	current, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if current.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:               current.ID,
		Title:            current.Title,
		Category:         current.Category,
		Content:          current.Content,
		Deadline:         current.Deadline,
		Priority:         current.Priority,
		EstimatedMinutes: current.EstimatedMinutes,
		ProgressMinutes:  current.ProgressMinutes,
		ProgressSessions: current.ProgressSessions,
		Completed:        current.Completed,
	}
	if input.Title != nil {
		opt.Title = *input.Title
	}
	if input.Category != nil {
		opt.Category = *input.Category
	}
	if input.Content != nil {
		opt.Content = *input.Content
	}
	if input.Deadline != nil {
		opt.Deadline = *input.Deadline
	}
	if input.Priority != nil {
		opt.Priority = *input.Priority
	}
	if input.EstimatedMinutes != nil {
		opt.EstimatedMinutes = *input.EstimatedMinutes
	}
	if input.AddProgressMinutes != nil && *input.AddProgressMinutes > 0 {
		opt.ProgressMinutes += *input.AddProgressMinutes
		opt.ProgressSessions++
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a task, scoped to the owner.
func (uc *implUseCase) Delete(ctx context.Context, id, userID string) error {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if t.ID == "" {
		return task.ErrTaskNotFound
	}
	return uc.repo.DeleteTask(ctx, t.ID)
}

// requireUser maps a missing user to the domain sentinel.
func (uc *implUseCase) requireUser(ctx context.Context, userID string) error {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.requireUser: %v", err)
		return err
	}
	if u.ID == "" {
		return task.ErrUserNotFound
	}
	return nil
}
