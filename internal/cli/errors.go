package cli

import (
	"errors"

	"github.com/specialistvlad/symcrypt/internal/app"
	"github.com/specialistvlad/symcrypt/internal/request"
)

// Exit codes reported by the process.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrMalformedArguments matches every syntactic parse failure.
var ErrMalformedArguments = errors.New("malformed arguments")

// MalformedArgumentsError describes why the argument vector was rejected.
type MalformedArgumentsError struct {
	Reason string
}

func (e *MalformedArgumentsError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrMalformedArguments.
func (e *MalformedArgumentsError) Is(target error) bool {
	return target == ErrMalformedArguments
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	// ShowUsage asks the entrypoint to print the usage banner after Message.
	ShowUsage bool
	Err       error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Classify maps a pipeline error onto an exit code. Argument and request
// errors are usage errors and come with the banner; everything else is a
// plain failure.
func Classify(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	switch {
	case errors.Is(err, ErrMalformedArguments), errors.Is(err, request.ErrInvalidRequest):
		return &ExitError{Code: ExitUsage, Message: err.Error(), ShowUsage: true, Err: err}
	case errors.Is(err, app.ErrConfig):
		return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	default:
		return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
	}
}
