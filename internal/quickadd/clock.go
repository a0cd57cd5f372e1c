package quickadd

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// extractClockTime finds an explicit time in the buffer. The H[H]:MM colon
// form is tried first and wins; the hour-only form needs a leading
// preposition. The matched span, preposition included, is erased.
func extractClockTime(st *state) *clockTime {
	if ct, ok := matchColonTime(st); ok {
		return ct
	}
	if ct, ok := matchBareHour(st); ok {
		return ct
	}
	return nil
}

func matchColonTime(st *state) (*clockTime, bool) {
	s := st.lower
	for k := 1; k < len(s); k++ {
		if s[k] != ':' {
			continue
		}
		hLen := 0
		for hLen < 2 && k-hLen-1 >= 0 && isDigit(s[k-hLen-1]) {
			hLen++
		}
		hStart := k - hLen
		if hLen == 0 || !wordStart(s, hStart) {
			continue
		}
		if digitSpan(s, k+1, 3) != 2 || !wordEnd(s, k+3) {
			continue
		}
		hour, _ := strconv.Atoi(s[hStart:k])
		min, _ := strconv.Atoi(s[k+1 : k+3])
		if hour > 23 || min > 59 {
			continue
		}
		start := expandPreposition(s, hStart, timePrepositions)
		st.erase(start, k+3)
		return &clockTime{hour, min}, true
	}
	return nil, false
}

func matchBareHour(st *state) (*clockTime, bool) {
	s := st.lower
	bestStart, bestEnd, bestHour := -1, -1, 0
	for _, prep := range timePrepositions {
		from := 0
		for {
			ps, pe, ok := findPhrase(s, prep, from)
			if !ok {
				break
			}
			from = ps + 1

			d := pe
			for d < len(s) {
				r, size := utf8.DecodeRuneInString(s[d:])
				if !unicode.IsSpace(r) {
					break
				}
				d += size
			}
			if d == pe {
				continue
			}
			run := digitSpan(s, d, 3)
			if run < 1 || run > 2 || !wordEnd(s, d+run) {
				continue
			}
			// A colon right after means a rejected H:MM candidate, not a
			// bare hour.
			if d+run < len(s) && s[d+run] == ':' {
				continue
			}
			hour, _ := strconv.Atoi(s[d : d+run])
			if hour > 23 {
				continue
			}
			if bestStart == -1 || ps < bestStart {
				bestStart, bestEnd, bestHour = ps, d+run, hour
			}
			break
		}
	}
	if bestStart < 0 {
		return nil, false
	}
	st.erase(bestStart, bestEnd)
	return &clockTime{bestHour, 0}, true
}

// extractDayPeriod finds the first named time-of-day marker in text order
// and erases it. Its value applies only when no explicit time was matched.
func extractDayPeriod(st *state) *clockTime {
	bestStart, bestEnd := -1, -1
	var best clockTime
	for word, ct := range dayPeriods {
		s, e, ok := findPhrase(st.lower, word, 0)
		if !ok {
			continue
		}
		if bestStart == -1 || s < bestStart || (s == bestStart && e > bestEnd) {
			bestStart, bestEnd, best = s, e, ct
		}
	}
	if bestStart < 0 {
		return nil
	}
	st.erase(bestStart, bestEnd)
	return &best
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
