package entity

import "errors"

// Domain errors surfaced by the usecases. All of them are recoverable and
// are mapped to HTTP statuses at the handler layer.
var (
	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned when a user, cafe, discount or pending
	// request does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidMood is returned when a mood update names an unknown mood.
	ErrInvalidMood = errors.New("invalid mood")

	// ErrValidation is returned when an input field fails validation, e.g.
	// a discount percentage outside [1,100].
	ErrValidation = errors.New("validation failed")
)
