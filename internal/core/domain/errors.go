package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a game or sale does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned for non-numeric or non-positive identifiers
	ErrInvalidID = errors.New("invalid id")
)

// ValidationError reports a client-side validation failure. The operation
// it guards is never attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
