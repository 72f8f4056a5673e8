package mulenpay

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports a structural violation in a request payload before
// any network call is made. Field carries the full path to the offending
// field, including the item index for receipt items, e.g. "items[2].vat_code".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// APIError is a non-2xx response from the MulenPay API. Message is the
// decoded "message" field of the remote error body when the body is JSON,
// otherwise the raw body text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mulenpay: %s (status %d)", e.Message, e.StatusCode)
}
