// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the validation
// pipeline produces:
//   - ObjectNotFoundError: For when a route-identified record does not exist
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is present but violates a rule
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels are what the HTTP adapter classifies on: ErrObjectNotFound maps
// to 404 responses, the other two map to 400 responses. This keeps the guard
// chain free of transport concerns while producing deterministic, single-cause
// error messages.
package errs
