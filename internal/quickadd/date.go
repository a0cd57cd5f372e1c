package quickadd

import (
	"regexp"
	"time"

	"taskmagic/pkg/datemath"
)

var inDaysRe = regexp.MustCompile(`(?:in|через)\s+(\d{1,3})\s+(?:days?|д(?:ень|ня|ней))`)

// extractAbsoluteDate resolves one-shot dates; it runs only when no earlier
// stage pinned a day. Bare weekdays exclude today, so "on wednesday" said
// on a Wednesday lands on next week.
func extractAbsoluteDate(st *state, now time.Time) time.Time {
	for _, rd := range relativeDays {
		if s, e, ok := findPhrase(st.lower, rd.word, 0); ok {
			st.erase(s, e)
			return datemath.StartOfDay(now.AddDate(0, 0, rd.offset))
		}
	}

	if s, e, n, ok := findCount(st.lower, inDaysRe); ok {
		st.erase(s, e)
		return datemath.StartOfDay(now.AddDate(0, 0, n))
	}

	bestStart, bestEnd := -1, -1
	var bestDay time.Weekday
	for _, wn := range weekdayNames {
		if s, e, ok := findPhrase(st.lower, wn.name, 0); ok && (bestStart == -1 || s < bestStart) {
			bestStart, bestEnd, bestDay = s, e, wn.day
		}
	}
	if bestStart >= 0 {
		start := expandPreposition(st.lower, bestStart, weekdayPrepositions)
		st.erase(start, bestEnd)
		return datemath.NextWeekday(now, bestDay)
	}

	return time.Time{}
}
