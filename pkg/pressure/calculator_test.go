package pressure_test

import (
	"math"
	"testing"
	"time"

	"github.com/KN-gho/timebudget/pkg/pressure"
)

// 07:00 wake, 23:00 sleep -> 16 disposable hours = 960 free minutes.
func testSchedule(t *testing.T) *pressure.Schedule {
	t.Helper()
	wake, err := pressure.ParseClock("07:00:00")
	if err != nil {
		t.Fatal(err)
	}
	sleep, err := pressure.ParseClock("23:00:00")
	if err != nil {
		t.Fatal(err)
	}
	return &pressure.Schedule{Wake: wake, Sleep: sleep}
}

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDailyScore(t *testing.T) {
	calc := pressure.NewCalculator(pressure.MondayStart)
	sched := testSchedule(t)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC) // Tuesday

	t.Run("nil schedule is zero", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today, EstimatedMinutes: 120}}
		approx(t, calc.DailyScore(nil, tasks, today), 0)
	})

	t.Run("empty task list is zero", func(t *testing.T) {
		approx(t, calc.DailyScore(sched, nil, today), 0)
	})

	t.Run("inverted wake window is zero", func(t *testing.T) {
		inverted := &pressure.Schedule{Wake: sched.Sleep, Sleep: sched.Wake}
		tasks := []pressure.Task{{Deadline: today, EstimatedMinutes: 120}}
		approx(t, calc.DailyScore(inverted, tasks, today), 0)
	})

	t.Run("due today counts full weight", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today, EstimatedMinutes: 96}}
		approx(t, calc.DailyScore(sched, tasks, today), 0.1) // 96/960
	})

	t.Run("due later counts half weight", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today.AddDate(0, 0, 1), EstimatedMinutes: 96}}
		approx(t, calc.DailyScore(sched, tasks, today), 0.05)
	})

	t.Run("overdue open tasks are excluded", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today.AddDate(0, 0, -1), EstimatedMinutes: 96}}
		approx(t, calc.DailyScore(sched, tasks, today), 0)
	})

	t.Run("completed tasks are excluded", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today, EstimatedMinutes: 96, Completed: true}}
		approx(t, calc.DailyScore(sched, tasks, today), 0)
	})

	t.Run("progress reduces remaining", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today, EstimatedMinutes: 120, ProgressMinutes: 24}}
		approx(t, calc.DailyScore(sched, tasks, today), 0.1) // (120-24)/960
	})

	t.Run("progress past estimate floors at zero", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today, EstimatedMinutes: 60, ProgressMinutes: 90}}
		approx(t, calc.DailyScore(sched, tasks, today), 0)
	})

	t.Run("score is never negative", func(t *testing.T) {
		tasks := []pressure.Task{
			{Deadline: today, EstimatedMinutes: 30, ProgressMinutes: 45},
			{Deadline: today.AddDate(0, 0, 3), EstimatedMinutes: 10},
		}
		if got := calc.DailyScore(sched, tasks, today); got < 0 {
			t.Errorf("negative score %v", got)
		}
	})
}

func TestWeeklyScore(t *testing.T) {
	calc := pressure.NewCalculator(pressure.MondayStart)
	sched := testSchedule(t)

	// Tuesday 2025-06-10: 5 days left, week ends Sunday 2025-06-15.
	// Weekly disposable = 16h * 6 days = 96h = 5760 minutes.
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	endOfWeek := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("nil schedule is zero", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today, EstimatedMinutes: 60}}
		approx(t, calc.WeeklyScore(nil, tasks, today), 0)
	})

	t.Run("due on end of week counts full weight", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: endOfWeek, EstimatedMinutes: 576}}
		approx(t, calc.WeeklyScore(sched, tasks, today), 0.1) // 576/5760
	})

	t.Run("due one day past end of week counts half", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: endOfWeek.AddDate(0, 0, 1), EstimatedMinutes: 576}}
		approx(t, calc.WeeklyScore(sched, tasks, today), 0.05)
	})

	t.Run("overdue tasks count full weight weekly", func(t *testing.T) {
		tasks := []pressure.Task{{Deadline: today.AddDate(0, 0, -2), EstimatedMinutes: 576}}
		approx(t, calc.WeeklyScore(sched, tasks, today), 0.1)
	})

	t.Run("sunday has one day of budget", func(t *testing.T) {
		sunday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		tasks := []pressure.Task{{Deadline: sunday, EstimatedMinutes: 96}}
		approx(t, calc.WeeklyScore(sched, tasks, sunday), 0.1) // 96/960
	})
}

func TestWeekDaysLeft(t *testing.T) {
	tests := []struct {
		name string
		week pressure.Week
		day  time.Time
		want int
	}{
		{"monday under monday start", pressure.MondayStart, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), 6},
		{"tuesday under monday start", pressure.MondayStart, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 5},
		{"sunday under monday start", pressure.MondayStart, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 0},
		{"sunday under sunday start", pressure.Week{Start: time.Sunday}, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 6},
		{"saturday under sunday start", pressure.Week{Start: time.Sunday}, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.week.DaysLeft(tt.day); got != tt.want {
				t.Errorf("DaysLeft = %d, want %d", got, tt.want)
			}
		})
	}
}
