package resumes

import "errors"

var (
	// ErrNotFound is returned when a resume does not exist for the caller.
	ErrNotFound = errors.New("resume not found")
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedType is returned when the file type is not allowed.
	ErrUnsupportedType = errors.New("only PDF and DOCX files are allowed")
	// ErrFileTooLarge is returned when the file exceeds the upload limit.
	ErrFileTooLarge = errors.New("file exceeds the 5MB limit")
)
