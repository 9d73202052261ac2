package pressure

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// ParseClock parses "HH:MM" or "HH:MM:SS" into a Clock. Seconds are dropped.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid clock %q", s)
		}
	}

	return Clock(hour*60 + minute), nil
}

// String formats the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Schedule is a user's wake/sleep window for a single day.
// Sleep is expected to be after Wake; a window that is not forward in time
// yields zero disposable hours and therefore a zero score.
type Schedule struct {
	Wake  Clock
	Sleep Clock
}

// DisposableHours is the span between wake and sleep in hours.
func (s Schedule) DisposableHours() float64 {
	diff := int(s.Sleep) - int(s.Wake)
	if diff <= 0 {
		return 0
	}
	return float64(diff) / 60.0
}

// Task is the slice of a task record the calculator needs.
type Task struct {
	Deadline         time.Time
	EstimatedMinutes int
	ProgressMinutes  int
	Completed        bool
}

// Remaining is the task's estimated minutes minus logged progress, floored at zero.
func (t Task) Remaining() int {
	rem := t.EstimatedMinutes - t.ProgressMinutes
	if rem < 0 {
		return 0
	}
	return rem
}
