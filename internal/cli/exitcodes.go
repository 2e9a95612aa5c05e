package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: storage errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments or malformed positional values.
	ExitUsage = 2

	// ExitNotFound indicates a requested column or task does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: positions outside the board.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command. The
// message has already been printed when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
