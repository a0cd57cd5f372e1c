package datemath_test

import (
	"testing"
	"time"

	"taskmagic/pkg/datemath"
)

func TestDayBounds(t *testing.T) {
	base := time.Date(2024, 1, 10, 12, 34, 56, 789, time.UTC)

	if got := datemath.StartOfDay(base); !got.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := datemath.EndOfDay(base); !got.Equal(time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)) {
		t.Errorf("EndOfDay = %v", got)
	}
	if got := datemath.AtTime(base, 9, 30); !got.Equal(time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("AtTime = %v", got)
	}
}

func TestNextWeekday(t *testing.T) {
	// Wednesday, January 10, 2024
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		target    time.Weekday
		inclusive bool
		want      time.Time
	}{
		{
			name:   "Friday later this week",
			target: time.Friday,
			want:   time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Monday rolls to next week",
			target: time.Monday,
			want:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Same weekday excluded",
			target: time.Wednesday,
			want:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Same weekday included",
			target:    time.Wednesday,
			inclusive: true,
			want:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Inclusive still rolls past days",
			target:    time.Tuesday,
			inclusive: true,
			want:      time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			if tt.inclusive {
				got = datemath.NextWeekdayInclusive(base, tt.target)
			} else {
				got = datemath.NextWeekday(base, tt.target)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNearestDayOfMonth(t *testing.T) {
	tests := []struct {
		name string
		base time.Time
		day  int
		want time.Time
	}{
		{
			name: "Later this month",
			base: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			day:  25,
			want: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Same day counts",
			base: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			day:  10,
			want: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Already passed rolls to next month",
			base: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			day:  5,
			want: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Clamped to short month",
			base: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			day:  31,
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Clamped candidate on the same day counts",
			base: time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC),
			day:  31,
			want: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Rolls then clamps to the next month",
			base: time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
			day:  30,
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "December rolls into January",
			base: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			day:  5,
			want: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.NearestDayOfMonth(tt.base, tt.day)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextHourBoundary(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "Rounds up",
			in:   time.Date(2024, 1, 10, 12, 30, 0, 0, time.UTC),
			want: time.Date(2024, 1, 10, 13, 0, 0, 0, time.UTC),
		},
		{
			name: "Exact boundary kept",
			in:   time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "Seconds push over",
			in:   time.Date(2024, 1, 10, 12, 0, 0, 1, time.UTC),
			want: time.Date(2024, 1, 10, 13, 0, 0, 0, time.UTC),
		},
		{
			name: "Crosses midnight",
			in:   time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.NextHourBoundary(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := datemath.DaysInMonth(2024, time.February); got != 29 {
		t.Errorf("leap February = %d, want 29", got)
	}
	if got := datemath.DaysInMonth(2023, time.February); got != 28 {
		t.Errorf("February = %d, want 28", got)
	}
	if got := datemath.DaysInMonth(2024, time.December); got != 31 {
		t.Errorf("December = %d, want 31", got)
	}
}
