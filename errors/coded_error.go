package errors

import "fmt"

// codedError is the concrete implementation of CodedError.
// It is private to enforce construction through package functions.
type codedError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *codedError) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
func (e *codedError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none was attached.
func (e *codedError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *codedError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
