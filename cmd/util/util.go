package util

import (
	"errors"
	"fmt"
)

const (
	// ExitUsage covers usage errors, missing tools, missing parameters and failed provisioning calls.
	ExitUsage = 1
	// ExitAuth is returned when cloud credentials or the cluster service session are unusable.
	ExitAuth = 2
)

// ExitError carries the process exit status an error should terminate with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps err to a process exit status. Errors without an explicit code exit with ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// ValidateRequiredOption returns a cobra style error message when the flag value is empty
func ValidateRequiredOption(flag string, value string) error {
	if len(value) == 0 {
		return fmt.Errorf("required flag(s) \"%s\" not set", flag)
	}
	return nil
}
