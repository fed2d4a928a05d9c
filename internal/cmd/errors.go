package cmd

import "fmt"

// ExitCodeError carries a process exit code through the cobra error path so
// main can propagate the exit code of an executed command.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError creates an ExitCodeError with the given code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

// Error returns a formatted message for the exit code.
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// toolNotAvailableError returns a user-friendly error when the Azure CLI
// cannot be located on this machine.
func toolNotAvailableError() error {
	return fmt.Errorf("azure cli not found; install it from https://aka.ms/azure-cli and try again")
}
