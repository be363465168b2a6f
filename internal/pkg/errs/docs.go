// Package errs provides standardized error types for the deliveries service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error
//
// Expected business outcomes (conflict, invalid transition) are modeled as
// sentinel errors in the domain packages, not here; errs covers the
// cross-cutting validation and lookup failures.
package errs
