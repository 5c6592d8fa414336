package models

import "errors"

var (
	// Validation errors, reported as 400.
	ErrMissingParameters = errors.New("missing required parameters")
	ErrInvalidRequest    = errors.New("invalid request body")

	// Configuration error, reported as 500 at call time.
	ErrMissingAPIKey = errors.New("API key environment variable not set")

	// The model reply did not match the expected JSON shape.
	ErrMalformedReply = errors.New("malformed model reply")
)

// IsValidationError reports whether err should be answered with a 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingParameters) || errors.Is(err, ErrInvalidRequest)
}
