package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMessage indicates a required field is missing or the email does not parse.
	ErrInvalidMessage = errors.New("contact: invalid message")

	// ErrUnconfigured indicates the mail service has no usable public key.
	ErrUnconfigured = errors.New("contact: sender not configured")

	// ErrSend indicates the mail service rejected or never answered the request.
	ErrSend = errors.New("contact: send failed")

	// ErrOpen indicates the local mail client could not be launched.
	ErrOpen = errors.New("contact: cannot open mail client")
)

// FieldError names the form field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidMessage, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidMessage
}

// StatusError carries a non-2xx response from the mail service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrSend, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrSend
}
