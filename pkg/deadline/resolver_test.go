package deadline_test

import (
	"testing"
	"time"

	"github.com/KN-gho/timebudget/pkg/deadline"
)

func TestNewResolver(t *testing.T) {
	if _, err := deadline.NewResolver("Asia/Tokyo"); err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	if _, err := deadline.NewResolver("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	r, err := deadline.NewResolver("UTC")
	if err != nil {
		t.Fatal(err)
	}

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		raw   string
		today time.Time
		want  time.Time
		ok    bool
	}{
		{
			name:  "ISO date passes through",
			raw:   "2025-06-25",
			today: date(2025, 6, 1),
			want:  date(2025, 6, 25),
			ok:    true,
		},
		{
			name:  "month-day resolves to current year",
			raw:   "6-25",
			today: date(2025, 6, 1),
			want:  date(2025, 6, 25),
			ok:    true,
		},
		{
			name:  "month-day clamps to month length",
			raw:   "2-30",
			today: date(2025, 2, 1),
			want:  date(2025, 2, 28),
			ok:    true,
		},
		{
			name:  "month-day clamp respects leap years",
			raw:   "2-30",
			today: date(2024, 2, 1),
			want:  date(2024, 2, 29),
			ok:    true,
		},
		{
			name:  "japanese month-day form",
			raw:   "6月25日",
			today: date(2025, 6, 1),
			want:  date(2025, 6, 25),
			ok:    true,
		},
		{
			name:  "bare day still ahead this month",
			raw:   "25",
			today: date(2025, 6, 10),
			want:  date(2025, 6, 25),
			ok:    true,
		},
		{
			name:  "bare day equal to today stays in this month",
			raw:   "10",
			today: date(2025, 6, 10),
			want:  date(2025, 6, 10),
			ok:    true,
		},
		{
			name:  "bare day already passed rolls to next month",
			raw:   "5",
			today: date(2025, 6, 10),
			want:  date(2025, 7, 5),
			ok:    true,
		},
		{
			name:  "bare day rollover wraps the year",
			raw:   "5",
			today: date(2025, 12, 10),
			want:  date(2026, 1, 5),
			ok:    true,
		},
		{
			name:  "until suffix and day marker are stripped",
			raw:   "25日までに",
			today: date(2025, 6, 10),
			want:  date(2025, 6, 25),
			ok:    true,
		},
		{
			name:  "made suffix alone is stripped",
			raw:   "6-25まで",
			today: date(2025, 6, 1),
			want:  date(2025, 6, 25),
			ok:    true,
		},
		{
			name:  "empty input",
			raw:   "",
			today: date(2025, 6, 1),
			ok:    false,
		},
		{
			name:  "only suffix text",
			raw:   "までに",
			today: date(2025, 6, 1),
			ok:    false,
		},
		{
			name:  "non-date text",
			raw:   "not a date",
			today: date(2025, 6, 1),
			ok:    false,
		},
		{
			name:  "month out of range",
			raw:   "13-5",
			today: date(2025, 6, 1),
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.raw, tt.today)
			if ok != tt.ok {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// A resolved date fed back through Resolve returns the same date.
func TestResolveRoundTrip(t *testing.T) {
	r, _ := deadline.NewResolver("UTC")
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	first, ok := r.Resolve("25日までに", today)
	if !ok {
		t.Fatal("first resolve failed")
	}

	second, ok := r.Resolve(first.Format("2006-01-02"), today)
	if !ok {
		t.Fatal("round-trip resolve failed")
	}
	if !second.Equal(first) {
		t.Errorf("round trip changed date: %v -> %v", first, second)
	}
}
