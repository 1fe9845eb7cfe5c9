package domain

import "errors"

// Domain errors
var (
	ErrNoFileSelected    = errors.New("no file selected")
	ErrNotPDF            = errors.New("file is not a PDF")
	ErrSubmissionPending = errors.New("submission in progress")
	ErrNothingToCopy     = errors.New("no report rendered")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
