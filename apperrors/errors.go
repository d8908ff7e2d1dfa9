// Package apperrors defines the error taxonomy shared by the store, the
// services and the request handler. Handlers map these onto HTTP status
// codes; everything else is reported as an internal error.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrFilePdfNotFound is returned when no record matches the requested
// filePdfId, either directly or through the secondary index.
var ErrFilePdfNotFound = errors.New("file pdf not found")

// ErrUnsupportedOperation is returned for method/path combinations the API
// does not implement.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ValidationError describes rejected request input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
