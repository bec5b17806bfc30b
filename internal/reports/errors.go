package reports

import "errors"

var (
	// ErrNotFound marks a report that does not exist or is not owned by the
	// caller.
	ErrNotFound = errors.New("analysis report not found")
	// ErrInvalidInput marks missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrResumeNotFound marks a missing or foreign resume reference.
	ErrResumeNotFound = errors.New("resume not found")
	// ErrJobNotFound marks a missing or foreign job description reference.
	ErrJobNotFound = errors.New("job description not found")
)
