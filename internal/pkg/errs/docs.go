// Package errs provides standardized error types for the dispatch core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value falls outside its allowed bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - InvalidTransitionError: for illegal order lifecycle transitions
//   - StorageUnavailableError: for transient storage failures that callers may retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can match the sentinel
//
// Handlers and adapters classify errors exclusively through errors.Is on the
// sentinels, never by string matching.
package errs
