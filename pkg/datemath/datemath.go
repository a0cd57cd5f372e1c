package datemath

import "time"

// StartOfDay returns midnight UTC at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59 UTC on t's day, the default due time for
// date-only input.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, time.UTC)
}

// AtTime returns t's day at hour:min UTC with seconds zeroed.
func AtTime(t time.Time, hour, min int) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, time.UTC)
}

// NextWeekday returns the next occurrence of target strictly after t's day.
// When t already falls on target the result is a full week out.
func NextWeekday(t time.Time, target time.Weekday) time.Time {
	t = t.UTC()
	daysUntil := int(target - t.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return StartOfDay(t.AddDate(0, 0, daysUntil))
}

// NextWeekdayInclusive returns the next occurrence of target counting t's
// own day as a candidate.
func NextWeekdayInclusive(t time.Time, target time.Weekday) time.Time {
	t = t.UTC()
	daysUntil := int(target - t.Weekday())
	if daysUntil < 0 {
		daysUntil += 7
	}
	return StartOfDay(t.AddDate(0, 0, daysUntil))
}

// NearestDayOfMonth returns the nearest occurrence of the given day of
// month at or after t's day. The day is clamped to the length of the
// candidate month, so day 31 in April yields April 30.
func NearestDayOfMonth(t time.Time, day int) time.Time {
	t = t.UTC()
	candidate := time.Date(t.Year(), t.Month(), clampDay(t.Year(), t.Month(), day), 0, 0, 0, 0, time.UTC)
	if candidate.Before(StartOfDay(t)) {
		next := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		candidate = time.Date(next.Year(), next.Month(), clampDay(next.Year(), next.Month(), day), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// NextHourBoundary rounds t up to the next exact hour. A time already on
// an hour boundary is returned unchanged.
func NextHourBoundary(t time.Time) time.Time {
	t = t.UTC()
	truncated := t.Truncate(time.Hour)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Hour)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if max := DaysInMonth(year, month); day > max {
		return max
	}
	return day
}
