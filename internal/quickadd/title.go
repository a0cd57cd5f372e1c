package quickadd

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// cleanTitle collapses the whitespace left behind by erased markers and
// upper-cases the first rune. It returns "" when the remainder is empty or
// indistinguishable from the trimmed input.
func cleanTitle(original, remaining string) string {
	cleaned := strings.TrimSpace(multiSpaceRe.ReplaceAllString(remaining, " "))
	if cleaned == "" {
		return ""
	}
	if strings.EqualFold(cleaned, strings.TrimSpace(original)) {
		return ""
	}
	r, size := utf8.DecodeRuneInString(cleaned)
	return string(unicode.ToUpper(r)) + cleaned[size:]
}
