// Package errors provides the structured errors shared by the toolkit packages.
//
// Every error returned by a toolkit function carries an ErrorCode describing
// what went wrong (a path that does not exist, malformed numeric input, an
// unset environment variable, a failed write). The package stays compatible
// with the standard library: errors.Is, errors.As and errors.Unwrap all see
// through a CodedError to the cause it wraps.
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeNotFound, "path not found")
//	err := errors.Newf(errors.CodeInvalidInput, "%q is not a valid u8", text)
//
// Wrapping errors:
//
//	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_APPEND, 0o644)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to open file for append")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "path", name)
//
// Inspecting errors:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // the path does not exist
//	}
//
// # Error Codes
//
//   - CodeNotFound: a file or directory does not exist
//   - CodeInvalidInput: caller supplied malformed input (e.g. numeric text)
//   - CodeInvalidConfig: the environment is not configured as required
//   - CodeIO: a filesystem read or write failed
//   - CodeInternal: an invariant inside the toolkit was violated
//   - CodeUnknown: the error did not originate from this package
//
// Errors are immutable once created. Context maps are copied on the way in
// and on the way out.
package errors
