package errors

import stderrors "errors"

// WithContext adds a single context field to an error.
// Returns a new CodedError with the context field added.
// Existing context fields are preserved.
//
// If err is not a CodedError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "path not found")
//	err = errors.WithContext(err, "path", p)
func WithContext(err error, key string, value interface{}) CodedError {
	if err == nil {
		return nil
	}

	var coded CodedError
	if !stderrors.As(err, &coded) {
		coded = &codedError{
			code:    CodeUnknown,
			message: err.Error(),
			cause:   err,
		}
	}

	ctx := coded.Context()
	if ctx == nil {
		ctx = make(map[string]interface{}, 1)
	}
	ctx[key] = value

	return &codedError{
		code:    coded.Code(),
		message: coded.Message(),
		context: ctx,
		cause:   coded.Unwrap(),
	}
}
