// Package text provides first-character case helpers.
//
// Case mapping uses the full Unicode mappings from golang.org/x/text/cases
// with no language tailoring, so a single rune may map to several
// (UppercaseFirst("ßa") is "SSa").
package text
