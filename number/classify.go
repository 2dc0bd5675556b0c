package number

import "strings"

// scanState is the position of the IsNumber scanner within a literal.
type scanState uint8

const (
	// stateBody accepts the sign, digits and at most one dot.
	stateBody scanState = iota
	// stateSuffix captures every remaining rune verbatim.
	stateSuffix
	// stateDone is reached at end of input.
	stateDone
)

// literalScanner is a single-pass, non-backtracking scanner for IsNumber.
type literalScanner struct {
	state  scanState
	dot    bool
	minus  bool
	suffix strings.Builder
}

// step consumes the rune r found at byte offset i. It returns false when the
// input can no longer be a valid literal.
func (s *literalScanner) step(i int, r rune) bool {
	switch s.state {
	case stateSuffix:
		s.suffix.WriteRune(r)
		return true
	case stateBody:
		switch {
		case r == '-' && i == 0:
			s.minus = true
		case r == '.':
			if s.dot {
				return false
			}
			s.dot = true
		case r == 'f' || r == 'u' || r == 'i':
			s.state = stateSuffix
			s.suffix.WriteRune(r)
		case isDigit(r):
		default:
			return false
		}
		return true
	default:
		return false
	}
}

// finish moves the scanner to stateDone and reports whether the consumed
// input is a valid literal.
func (s *literalScanner) finish() bool {
	s.state = stateDone
	if s.suffix.Len() == 0 {
		return true
	}

	typ, ok := ParseType(s.suffix.String())
	if !ok {
		return false
	}

	switch {
	case typ.Float():
		return true
	case typ.Signed():
		return !s.dot
	case typ.Unsigned():
		return !s.dot && !s.minus
	default:
		return false
	}
}

// IsNumber reports whether text is a decimal literal with an optional type
// suffix. See the package documentation for the grammar.
//
// The scan never requires a digit, so a bare suffix such as "u32" is
// accepted, as are "", "-" and ".".
func IsNumber(text string) bool {
	var s literalScanner
	for i, r := range text {
		if !s.step(i, r) {
			return false
		}
	}
	return s.finish()
}

// IsDigit reports whether every rune of text is a decimal digit. When
// allowNegative is true a single '-' is also permitted as the first rune.
// The empty string is reported as true.
func IsDigit(text string, allowNegative bool) bool {
	for i, r := range text {
		if allowNegative && r == '-' && i == 0 {
			continue
		}
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// IsUDigit is IsDigit(text, false).
func IsUDigit(text string) bool {
	return IsDigit(text, false)
}

// IsIDigit is IsDigit(text, true).
func IsIDigit(text string) bool {
	return IsDigit(text, true)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
