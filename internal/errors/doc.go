// Package errors provides error handling conventions for extra-platforms.
//
// This package defines sentinel errors for registry lookups and
// construction, an ExitError type for CLI exit code handling, and thin
// wrappers over github.com/cockroachdb/errors so callers need a single
// import.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // unknown trait or group id
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error, or a false predicate for "is"
//   - ExitSystem (2): System-related error (I/O, terminal, encoding)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(errors.ErrNotFound, "Run: extra-platforms list")
//	os.Exit(errors.ExitCode(err))
package errors
