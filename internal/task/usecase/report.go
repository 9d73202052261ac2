package usecase

import (
	"context"

	"github.com/KN-gho/timebudget/internal/task"
	repo "github.com/KN-gho/timebudget/internal/task/repository"
	"github.com/KN-gho/timebudget/pkg/pressure"
)

// Report computes the daily and weekly pressure scores over the user's
// open tasks. A user without saved wake/sleep settings reports zero
// pressure on both windows.
func (uc *implUseCase) Report(ctx context.Context, userID string) (task.ReportOutput, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return task.ReportOutput{}, err
	}

	open := false
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:    userID,
		Completed: &open,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Report ListTasks: %v", err)
		return task.ReportOutput{}, err
	}

	settings, err := uc.users.GetSettings(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Report GetSettings: %v", err)
		return task.ReportOutput{}, err
	}

	var sched *pressure.Schedule
	if settings.UserID != "" {
		sched = settings.PressureSchedule()
	}

	input := make([]pressure.Task, len(tasks))
	for i, t := range tasks {
		input[i] = t.PressureTask()
	}

	today := uc.now()
	return task.ReportOutput{
		Daily:  scoreReport(uc.calc.DailyScore(sched, input, today)),
		Weekly: scoreReport(uc.calc.WeeklyScore(sched, input, today)),
	}, nil
}

func scoreReport(ratio float64) task.ScoreReport {
	level := pressure.LevelOf(ratio)
	return task.ScoreReport{
		Ratio:        ratio,
		Level:        string(level),
		Color:        level.Color(),
		DonutPercent: pressure.DonutPercent(ratio),
	}
}
