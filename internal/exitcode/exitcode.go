// Package exitcode maps failures to process exit codes so scripts can branch
// on what went wrong without parsing stderr.
package exitcode

import (
	"os"

	"github.com/taskzilla/taskzilla-cli/internal/apierr"
)

const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates the session is missing or expired
	AuthError = 3

	// PermissionError indicates the server refused the action
	PermissionError = 4

	// NotFoundError indicates the resource does not exist
	NotFoundError = 5

	// ValidationError indicates the input was rejected
	ValidationError = 6

	// NetworkError indicates the server could not be reached
	NetworkError = 7

	// ServerError indicates the server failed
	ServerError = 8

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to its exit code via the normalized
// taxonomy. Errors that never went through the pipeline get GeneralError.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	apiErr, ok := apierr.AsError(err)
	if !ok {
		return GeneralError
	}

	switch apiErr.Kind {
	case apierr.KindNetwork:
		return NetworkError
	case apierr.KindAuth:
		return AuthError
	case apierr.KindPermission:
		return PermissionError
	case apierr.KindNotFound:
		return NotFoundError
	case apierr.KindValidation:
		return ValidationError
	case apierr.KindServer:
		return ServerError
	default:
		return GeneralError
	}
}
