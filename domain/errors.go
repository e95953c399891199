package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for store operations. Every failure is local to a single
// operation and leaves persisted state untouched; nothing here is fatal and
// nothing is retried automatically.
var (
	// ErrValidation covers missing or malformed required fields.
	ErrValidation = errors.New("invalid input")

	// ErrConflict covers uniqueness violations. Use the field-specific
	// wrappers below so callers can tell the user which field collided.
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials is the only error sign-in may return for a
	// credential mismatch. The message deliberately does not say whether the
	// email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound reports a record id with no matching record.
	ErrNotFound = errors.New("not found")

	// ErrForbidden reports a capability check failure: the acting principal's
	// role does not permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrPersistence wraps faults from the underlying key-value store. The
	// operation is aborted with no partial write.
	ErrPersistence = errors.New("storage unavailable")

	// ErrTooManyAttempts is returned by the optional sign-in throttle.
	ErrTooManyAttempts = errors.New("too many sign-in attempts")
)

var (
	ErrEmailTaken   = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrStaffIDTaken = fmt.Errorf("%w: staff id already in use", ErrConflict)
)
