package quickadd

import (
	"regexp"
	"time"

	"taskmagic/pkg/datemath"
)

var everyNHoursRe = regexp.MustCompile(`(?:every|каждые)\s+(\d{1,3})\s+(?:hours?|час(?:а|ов)?)`)

var monthDayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`every\s+(\d{1,2})(?:st|nd|rd|th)`),
	regexp.MustCompile(`каждое\s+(\d{1,2})\s+числ[оа]`),
}

// extractRecurrence handles the repeat keywords and the weekday and
// day-of-month recurrence forms. It returns the anchor day when one of the
// forms pins a date; the time of day is applied later.
func extractRecurrence(st *state, p *Patch, now time.Time) time.Time {
	// Keyword rules are mutually exclusive; the first match wins.
	for _, rule := range intervalRules {
		matched := false
		for _, phrase := range rule.phrases {
			if s, e, ok := findPhrase(st.lower, phrase, 0); ok {
				p.RepeatAfter = rule.seconds
				p.RepeatMode = rule.mode
				st.erase(s, e)
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	if !p.HasRecurrence() {
		if s, e, n, ok := findCount(st.lower, everyNHoursRe); ok && n >= 1 {
			p.RepeatAfter = int64(n) * secondsPerHour
			p.RepeatMode = RepeatModeInterval
			st.erase(s, e)
		}
	}

	var dueDay time.Time

	// The plural-weekday idiom anchors on Tuesday counting today.
	for _, idiom := range tuesdayIdioms {
		if s, e, ok := findPhrase(st.lower, idiom, 0); ok {
			if !p.HasRecurrence() {
				p.RepeatAfter = secondsPerWeek
				p.RepeatMode = RepeatModeInterval
			}
			dueDay = datemath.NextWeekdayInclusive(now, time.Tuesday)
			st.erase(s, e)
			break
		}
	}

	if dueDay.IsZero() {
		bestStart, bestEnd := -1, -1
		var bestDay time.Weekday
		for _, wr := range weekdayRepeats {
			if s, e, ok := findPhrase(st.lower, wr.phrase, 0); ok && (bestStart == -1 || s < bestStart) {
				bestStart, bestEnd, bestDay = s, e, wr.day
			}
		}
		if bestStart >= 0 {
			if !p.HasRecurrence() {
				p.RepeatAfter = secondsPerWeek
				p.RepeatMode = RepeatModeInterval
			}
			dueDay = datemath.NextWeekdayInclusive(now, bestDay)
			st.erase(bestStart, bestEnd)
		}
	}

	if dueDay.IsZero() {
		for _, re := range monthDayPatterns {
			if s, e, day, ok := findCount(st.lower, re); ok {
				if !p.HasRecurrence() {
					p.RepeatMode = RepeatModeMonth
				}
				dueDay = datemath.NearestDayOfMonth(now, day)
				st.erase(s, e)
				break
			}
		}
	}

	return dueDay
}
