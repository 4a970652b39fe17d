// Package errors provides error handling conventions for the gdvm CLI.
//
// This package defines sentinel errors for the expected failure modes of the
// install/launch pipeline, an ExitError type for CLI exit code handling, and
// exit code constants following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, gdvmerrors.ErrVersionNotFound) {
//	    // report "version not found" instead of a raw failure
//	}
//
// ErrVersionNotFound and ErrPlatformUnsupported are expected user-input
// outcomes: the release index has no such tag, or the tagged release ships
// no artifact for the host platform. They are reported as plain messages.
// Transport and I/O failures are ordinary wrapped errors and are fatal for
// the invocation.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main unwraps it via [errors.As] to pick the process exit code.
package errors
