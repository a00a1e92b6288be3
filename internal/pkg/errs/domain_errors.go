package errs

import "errors"

// Error classes shared by domain, usecase and handler layers.
// Concrete errors are created with Newf and tagged with one class via Mark;
// the handler maps the class to an HTTP status.
var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInternal          = errors.New("internal error")
)

// Validation builds a validation-class error with a public message.
func Validation(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrValidation)
}

func NotFound(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrNotFound)
}

func Forbidden(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrForbidden)
}

func Unauthorized(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrUnauthorized)
}

func Conflict(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrConflict)
}

func InvalidState(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrInvalidState)
}

func InvalidTransition(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrInvalidTransition)
}

// Internal marks a storage or dependency failure, keeping the underlying message.
func Internal(err error, msg string) error {
	return Mark(Wrap(err, msg), ErrInternal)
}
