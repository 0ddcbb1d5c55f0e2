package booking

import "errors"

var (
	// ErrNotFound is returned when a booking does not exist.
	ErrNotFound = errors.New("booking not found")

	// ErrForbidden is returned when a booking belongs to another user.
	ErrForbidden = errors.New("booking does not belong to user")

	// ErrInvalidTransition is returned for a disallowed status change.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
