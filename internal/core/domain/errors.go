package domain

import "errors"

var (
	ErrNotAuthenticated   = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidStep        = errors.New("invalid wizard step")
	ErrRunInProgress      = errors.New("stress test already running")
	ErrNoResults          = errors.New("no stress test results")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrCheckoutResponse   = errors.New("malformed checkout session response")
	ErrPaymentIncomplete  = errors.New("payment not completed")
	ErrBackendUnavailable = errors.New("backend not available")
	ErrBackend            = errors.New("backend call failed")
	ErrProfileExists      = errors.New("profile already exists")
)

// ValidationError carries the user-facing message of a failed client-side check.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid returns a ValidationError with the given message.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// BackendError is an opaque rejection from the backend actor.
type BackendError struct {
	Op      string
	Message string
}

func (e *BackendError) Error() string { return e.Op + ": " + e.Message }

func (e *BackendError) Is(target error) bool { return target == ErrBackend }
