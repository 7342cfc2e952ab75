package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNotSubscribed    = errors.New("must subscribe first")
	ErrAlreadyCompleted = errors.New("already complete")
)

// ValidationError carries the first failing form rule's message. The UI
// surfaces it verbatim in the status line and keeps the current screen.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(msg string) error { return &ValidationError{Msg: msg} }
