package resumes

import "errors"

var (
	// ErrNotFound reports a resume id that does not exist for the user.
	ErrNotFound = errors.New("resume not found")
	// ErrInvalidInput reports a malformed request payload.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownTemplate reports a template id outside the catalog.
	ErrUnknownTemplate = errors.New("unknown template")
)
