package text

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UppercaseFirst upper-cases the first rune of s and leaves the rest unchanged.
func UppercaseFirst(s string) string {
	return mapFirst(s, cases.Upper(language.Und))
}

// LowercaseFirst lower-cases the first rune of s and leaves the rest unchanged.
func LowercaseFirst(s string) string {
	return mapFirst(s, cases.Lower(language.Und))
}

// mapFirst applies c to the first rune of s. Casers are stateful, so each
// call gets its own.
func mapFirst(s string, c cases.Caser) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return c.String(s[:size]) + s[size:]
}
