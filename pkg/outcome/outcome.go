// Package outcome defines the error taxonomy shared by every domain
// service: validation rejections, missing records, storage failures and
// the single undifferentiated credential failure. Handlers map these to
// HTTP statuses; nothing else crosses the service boundary.
package outcome

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an operation against a stale or unknown identity.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned for every authentication failure,
	// whether the username is unknown or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError rejects a write with a human-readable reason. The store
// is left untouched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalidf builds a ValidationError from a format string.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation rejection and, if so,
// returns its reason.
func IsValidation(err error) (string, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Reason, true
	}
	return "", false
}

// PersistenceError wraps a storage-layer failure on a write that passed
// local validation, e.g. a race against a database constraint. The
// enclosing transaction has been rolled back.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persist wraps err as a PersistenceError unless it already carries one of
// the taxonomy kinds. A nil err stays nil.
func Persist(err error) error {
	if err == nil {
		return nil
	}
	var v *ValidationError
	var p *PersistenceError
	if errors.As(err, &v) || errors.As(err, &p) || errors.Is(err, ErrNotFound) {
		return err
	}
	return &PersistenceError{Err: err}
}
