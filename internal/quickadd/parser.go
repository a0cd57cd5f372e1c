package quickadd

import (
	"time"

	"taskmagic/pkg/datemath"
)

// Parse runs the extraction pipeline over one line of text with now as the
// reference instant. All matching and date math happen in UTC; Parse never
// reads the system clock. A nil result means the text carried no actionable
// markers. Parse is pure and safe for concurrent use.
func Parse(text string, now time.Time) *Patch {
	now = now.UTC()
	st := newState(text)
	p := &Patch{}

	extractPriority(st, p)
	extractProject(st, p)
	extractLabels(st, p)

	explicit := extractClockTime(st)
	period := extractDayPeriod(st)

	dueDay := extractRecurrence(st, p, now)
	if dueDay.IsZero() {
		dueDay = extractAbsoluteDate(st, now)
	}

	effective := explicit
	if effective == nil {
		effective = period
	}

	switch {
	case !dueDay.IsZero():
		if effective != nil {
			p.DueDate = datemath.AtTime(dueDay, effective.hour, effective.min)
		} else {
			p.DueDate = datemath.EndOfDay(dueDay)
		}
	case effective != nil:
		due := datemath.AtTime(now, effective.hour, effective.min)
		if due.Before(now) {
			due = due.AddDate(0, 0, 1)
		}
		p.DueDate = due
	case p.RepeatAfter > 0 && p.RepeatAfter < secondsPerDay:
		// Sub-daily intervals anchor on the next round hour.
		p.DueDate = datemath.NextHourBoundary(now)
	case p.RepeatMode == RepeatModeMonth:
		due := datemath.EndOfDay(now)
		if due.Before(now) {
			due = due.AddDate(0, 0, 1)
		}
		p.DueDate = due
	}

	p.Title = cleanTitle(text, st.text)

	if p.empty() {
		return nil
	}
	return p
}
