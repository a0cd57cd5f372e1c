package quickadd

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isMarkerRune(r rune) bool {
	return r == '!' || r == '+' || r == '*' || r == '"'
}

// findQuoted locates the first `<marker>"..."` capture at or after from.
// The capture may span whitespace; it is returned trimmed. Empty captures
// do not match.
func findQuoted(s string, marker byte, from int) (int, int, string, bool) {
	for i := from; i < len(s); i++ {
		if s[i] != marker || !wordStart(s, i) {
			continue
		}
		if i+1 >= len(s) || s[i+1] != '"' {
			continue
		}
		j := strings.IndexByte(s[i+2:], '"')
		if j < 0 {
			continue
		}
		name := strings.TrimSpace(s[i+2 : i+2+j])
		if name == "" {
			continue
		}
		return i, i + 3 + j, name, true
	}
	return 0, 0, "", false
}

// findSimple locates the first `<marker><token>` capture at or after from.
// The token is the longest run excluding whitespace and marker characters.
func findSimple(s string, marker byte, from int) (int, int, string, bool) {
	for i := from; i < len(s); i++ {
		if s[i] != marker || !wordStart(s, i) {
			continue
		}
		end := i + 1
		for end < len(s) {
			r, size := utf8.DecodeRuneInString(s[end:])
			if unicode.IsSpace(r) || isMarkerRune(r) {
				break
			}
			end += size
		}
		if end == i+1 {
			continue
		}
		return i, end, s[i+1 : end], true
	}
	return 0, 0, "", false
}

// extractProject takes the first project marker, the quoted form winning
// over the simple token form. The name is kept verbatim; resolution to a
// project ID happens downstream.
func extractProject(st *state, p *Patch) {
	if start, end, name, ok := findQuoted(st.text, '+', 0); ok {
		p.ProjectName = name
		st.erase(start, end)
		return
	}
	if start, end, name, ok := findSimple(st.text, '+', 0); ok {
		p.ProjectName = name
		st.erase(start, end)
	}
}

// extractLabels collects every label marker: all quoted captures in text
// order, then all simple tokens in text order. Duplicates are kept.
func extractLabels(st *state, p *Patch) {
	for {
		start, end, name, ok := findQuoted(st.text, '*', 0)
		if !ok {
			break
		}
		p.Labels = append(p.Labels, name)
		st.erase(start, end)
	}
	for {
		start, end, name, ok := findSimple(st.text, '*', 0)
		if !ok {
			break
		}
		p.Labels = append(p.Labels, name)
		st.erase(start, end)
	}
}
