package quickadd

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// state carries the two pieces the pipeline shares: the input with matched
// substrings progressively cut out, and a lowercase shadow used for
// case-insensitive scanning. The shadow is folded rune by rune so both
// strings stay byte-aligned and a match position in one is valid in the
// other.
type state struct {
	text  string
	lower string
}

func newState(text string) *state {
	return &state{text: text, lower: foldLine(text)}
}

// erase cuts [start, end) out of both buffers.
func (s *state) erase(start, end int) {
	s.text = s.text[:start] + s.text[end:]
	s.lower = s.lower[:start] + s.lower[end:]
}

// foldLine lowercases s without changing its byte layout. Runes whose
// lowercase form has a different encoded length are kept as-is; no such
// rune appears in the marker dictionaries.
func foldLine(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		lr := unicode.ToLower(r)
		if utf8.RuneLen(lr) == utf8.RuneLen(r) {
			b.WriteRune(lr)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordStart reports whether offset begins a word: start of string or
// preceded by a non letter/digit rune. The stock \b assertion only knows
// ASCII, so Cyrillic boundaries are checked by hand.
func wordStart(s string, offset int) bool {
	if offset <= 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:offset])
	return !isWordRune(r)
}

// wordEnd reports whether offset ends a word: end of string or followed by
// a non letter/digit rune.
func wordEnd(s string, offset int) bool {
	if offset >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[offset:])
	return !isWordRune(r)
}

// findPhrase locates the first word-bounded occurrence of phrase in s at or
// after from. Returns the byte span and whether it matched.
func findPhrase(s, phrase string, from int) (int, int, bool) {
	for i := from; i+len(phrase) <= len(s); {
		j := strings.Index(s[i:], phrase)
		if j < 0 {
			return 0, 0, false
		}
		start := i + j
		end := start + len(phrase)
		if wordStart(s, start) && wordEnd(s, end) {
			return start, end, true
		}
		i = start + 1
	}
	return 0, 0, false
}

// leadingWord returns the run of letter/digit runes at the start of s.
func leadingWord(s string) string {
	end := 0
	for _, r := range s {
		if !isWordRune(r) {
			break
		}
		end += utf8.RuneLen(r)
	}
	return s[:end]
}

// expandPreposition widens a match starting at start to include a directly
// preceding preposition from words, plus the whitespace in between. Returns
// the widened start offset, or start unchanged.
func expandPreposition(s string, start int, words []string) int {
	i := start
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	if i == start {
		return start
	}
	end := i
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !isWordRune(r) {
			break
		}
		i -= size
	}
	word := s[i:end]
	for _, w := range words {
		if word == w && wordStart(s, i) {
			return i
		}
	}
	return start
}

// digitSpan returns how many ASCII digit bytes s has at offset, capped at max.
func digitSpan(s string, offset, max int) int {
	n := 0
	for offset+n < len(s) && n < max && s[offset+n] >= '0' && s[offset+n] <= '9' {
		n++
	}
	return n
}

// findCount scans s for re, requiring word boundaries at both match edges,
// and returns the match span plus the first captured number.
func findCount(s string, re *regexp.Regexp) (int, int, int, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		if !wordStart(s, m[0]) || !wordEnd(s, m[1]) {
			continue
		}
		n, err := strconv.Atoi(s[m[2]:m[3]])
		if err != nil {
			continue
		}
		return m[0], m[1], n, true
	}
	return 0, 0, 0, false
}
