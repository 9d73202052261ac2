package pressure

import "time"

// Week names the week-boundary convention: the week starts on Start and ends
// six days later. The default convention starts on Monday, so the week ends
// on Sunday.
type Week struct {
	Start time.Weekday
}

// MondayStart is the default convention (Monday first, week ends Sunday).
var MondayStart = Week{Start: time.Monday}

// dayIndex maps a weekday onto 0..6 with w.Start at 0.
func (w Week) dayIndex(d time.Weekday) int {
	return (int(d) - int(w.Start) + 7) % 7
}

// DaysLeft is the number of days after today until the week ends.
func (w Week) DaysLeft(today time.Time) int {
	return 6 - w.dayIndex(today.Weekday())
}

// Calculator computes time-pressure ratios: weighted remaining task minutes
// divided by the user's free minutes over a horizon. It holds no state beyond
// the week convention and is safe for concurrent use.
type Calculator struct {
	week Week
}

// NewCalculator creates a Calculator using the given week convention.
func NewCalculator(week Week) *Calculator {
	return &Calculator{week: week}
}

// DailyScore is today's pressure ratio.
//
// Open tasks due today count at full weight, tasks due later at half weight.
// Overdue open tasks contribute nothing here (while WeeklyScore counts them);
// that asymmetry matches the shipped scoring behavior and is kept as-is.
func (c *Calculator) DailyScore(sched *Schedule, tasks []Task, today time.Time) float64 {
	if sched == nil {
		return 0
	}
	hours := sched.DisposableHours()
	if hours <= 0 {
		return 0
	}

	day := civil(today)
	var weighted float64
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		switch deadline := civil(t.Deadline); {
		case deadline == day:
			weighted += float64(t.Remaining())
		case deadline > day:
			weighted += float64(t.Remaining()) * 0.5
		}
	}

	return weighted / (hours * 60)
}

// WeeklyScore is the pressure ratio over the rest of the current week,
// today included. Open tasks due by the end of the week count at full
// weight; later deadlines still add half weight as future load.
func (c *Calculator) WeeklyScore(sched *Schedule, tasks []Task, today time.Time) float64 {
	if sched == nil {
		return 0
	}

	daysLeft := c.week.DaysLeft(today)
	hours := sched.DisposableHours() * float64(daysLeft+1)
	if hours <= 0 {
		return 0
	}

	endOfWeek := civil(today.AddDate(0, 0, daysLeft))
	var weighted float64
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if civil(t.Deadline) <= endOfWeek {
			weighted += float64(t.Remaining())
		} else {
			weighted += float64(t.Remaining()) * 0.5
		}
	}

	return weighted / (hours * 60)
}

// civil collapses a timestamp to a comparable calendar date.
func civil(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
