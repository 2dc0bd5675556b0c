package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// CodeNotFound indicates a file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates the environment is missing required configuration.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeIO indicates a filesystem operation failed.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeInternal indicates an internal invariant was violated.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
