package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks caller-supplied context that fails shape checks
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidResponse marks model output that is not JSON or has the wrong root shape
	ErrInvalidResponse = errors.New("invalid response")
)

// ValidationError carries the messages of a failed request validation
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(e.Messages, ", "))
}

// Is makes errors.Is(err, ErrInvalidInput) hold for validation errors
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ModelInvocationError wraps a failure of the model call itself.
// The provider error is kept as is and reachable through errors.Unwrap.
type ModelInvocationError struct {
	Provider string
	Err      error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("model invocation failed (%s): %v", e.Provider, e.Err)
}

func (e *ModelInvocationError) Unwrap() error {
	return e.Err
}
