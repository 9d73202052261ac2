// Package deadline resolves free-form deadline text, as produced by voice
// transcription or LLM extraction, into concrete calendar dates.
package deadline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	monthDayRe   = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
	jpMonthDayRe = regexp.MustCompile(`^(\d{1,2})月(\d{1,2})$`)
	bareDigitsRe = regexp.MustCompile(`^\d+$`)
)

// Resolver converts deadline strings to absolute dates in a fixed timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Tokyo".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Resolve parses raw deadline text against the reference date and returns the
// resolved date at midnight, or ok=false when the text names no date.
//
// Matching order: explicit ISO dates win, then month-day forms resolved
// against the current year, then a bare day-of-month resolved to its nearest
// upcoming occurrence. Day numbers past the end of a month clamp to the last
// valid day instead of failing, since upstream extraction is noisy.
func (r *Resolver) Resolve(raw string, today time.Time) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	// Drop "by/until" suffixes and a trailing day marker.
	s = strings.ReplaceAll(s, "までに", "")
	s = strings.ReplaceAll(s, "まで", "")
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "日"))
	if s == "" {
		return time.Time{}, false
	}

	// 1. YYYY-MM-DD
	if t, err := time.ParseInLocation("2006-01-02", s, r.location); err == nil {
		return t, true
	}

	// 2. M-D against the current year
	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		return r.monthDay(today.Year(), atoi(m[1]), atoi(m[2]))
	}

	// 3. M月D against the current year
	if m := jpMonthDayRe.FindStringSubmatch(s); m != nil {
		return r.monthDay(today.Year(), atoi(m[1]), atoi(m[2]))
	}

	// 4. Bare day-of-month: nearest upcoming occurrence
	if bareDigitsRe.MatchString(s) {
		return r.nearestDay(atoi(s), today)
	}

	return time.Time{}, false
}

// monthDay builds year-month-day with the day clamped to the month's length.
func (r *Resolver) monthDay(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	return r.date(year, time.Month(month), day), true
}

// nearestDay resolves a bare day number to this month when it has not passed
// yet, otherwise to next month.
func (r *Resolver) nearestDay(day int, today time.Time) (time.Time, bool) {
	if day < 1 {
		return time.Time{}, false
	}

	year, month, _ := today.Date()
	if day < today.Day() {
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return r.date(year, month, day), true
}

// date builds a midnight date in the resolver's timezone, clamping the day to
// the month's last valid day.
func (r *Resolver) date(year int, month time.Month, day int) time.Time {
	if last := lastDay(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, r.location)
}

// lastDay is the number of days in the given month.
func lastDay(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
