package jobs

import "errors"

var (
	// ErrNotFound is returned when a job description does not exist for the caller.
	ErrNotFound = errors.New("job description not found")
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("invalid input")
)
