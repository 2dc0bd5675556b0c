package number

import "fmt"

// ParseError describes why numeric text could not be converted.
type ParseError struct {
	// Input is the text that failed to parse.
	Input string
	// Type is the target type of the conversion.
	Type Type
	// Kind is the failure category.
	Kind ParseErrKind
	// Err is the underlying strconv error, if any.
	Err error
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse %s %q: %s", e.Type, e.Input, e.Kind)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	// ParseEmpty means the input was the empty string.
	ParseEmpty ParseErrKind = iota + 1
	// ParseInvalidDigit means the input contained a character outside the
	// target type's grammar.
	ParseInvalidDigit
	// ParseOverflow means the value does not fit the target width.
	ParseOverflow
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseInvalidDigit:
		return "invalid digit"
	case ParseOverflow:
		return "overflow"
	default:
		return "invalid"
	}
}
