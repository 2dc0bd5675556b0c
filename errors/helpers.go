package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var perr *number.ParseError
//	if errors.As(err, &perr) {
//	    kind := perr.Kind
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a CodedError.
//
// The code is taken from the outermost CodedError in the chain.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var coded CodedError
	if stderrors.As(err, &coded) {
		return coded.Code()
	}

	return CodeUnknown
}
