// Package ruleid derives stable kebab-case rule identifiers for findings.
package ruleid

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FromProp returns the rule id for a prop violation, e.g. "button-variant".
func FromProp(component, prop string) string {
	return join(Slug(component), Slug(prop))
}

// FromElement returns the rule id for an accessibility finding on element,
// e.g. "text-field" for TextField.
func FromElement(element string) string {
	return Slug(element)
}

// Slug converts a name into kebab-case. It NFD-normalizes and strips
// combining marks, breaks CamelCase words, maps every other non-alphanumeric
// run to a single dash and lowercases the result.
func Slug(s string) string {
	s = norm.NFD.String(s)

	var b strings.Builder
	var prev rune
	dash := false
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if b.Len() > 0 && !dash && wordBoundary(prev, r, runes, i) {
				dash = true
			}
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
			prev = r
		default:
			dash = true
			prev = r
		}
	}
	return b.String()
}

// wordBoundary reports whether an upper-case r at index i starts a new
// CamelCase word: after a lower-case letter or digit, or as the last capital
// of an acronym followed by a lower-case letter ("HTMLLabel" -> html-label).
func wordBoundary(prev, r rune, runes []rune, i int) bool {
	if !unicode.IsUpper(r) {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}

func join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "-")
}
