// Package apperr defines the error kinds shared by every entity package.
//
// Domain packages declare their own sentinel errors and wrap one of these
// kinds so the transport layer can map a whole family with a single
// errors.Is check.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrMissingHeader          = errors.New("missing authorization header")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrValidation             = errors.New("validation error")
	ErrStore                  = errors.New("store error")
	ErrUploadFailed           = errors.New("image upload failed")
	ErrNotFoundOrUnauthorized = errors.New("not found or unauthorized")
	ErrNotFound               = errors.New("not found")
)

// kindError carries a caller-facing message and the kind it belongs to.
type kindError struct {
	kind error
	msg  string
	err  error
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() []error {
	if e.err != nil {
		return []error{e.kind, e.err}
	}
	return []error{e.kind}
}

// New returns an error of the given kind whose message is shown to the caller as is.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Validation returns a ValidationError carrying msg.
func Validation(msg string) error {
	return New(ErrValidation, msg)
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) error {
	return New(ErrValidation, fmt.Sprintf(format, args...))
}

// Store wraps a row store failure. The store's own message is kept verbatim.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: ErrStore, msg: err.Error(), err: err}
}

// Upload wraps an image host failure.
func Upload(err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: ErrUploadFailed, msg: "image upload failed: " + err.Error(), err: err}
}

// Message returns the caller-facing text of err.
func Message(err error) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.msg
	}
	return err.Error()
}

// OrStore returns err unchanged when it already carries one of the kinds above,
// otherwise it wraps it as a store error.
func OrStore(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrMissingHeader, ErrInvalidToken, ErrValidation, ErrStore, ErrUploadFailed, ErrNotFoundOrUnauthorized, ErrNotFound} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return Store(err)
}
