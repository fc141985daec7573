package account

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField covers any required input that is empty after trimming.
	ErrMissingField = errors.New("required field is missing")

	// ErrWeakCredential covers passwords shorter than the minimum length.
	ErrWeakCredential = errors.New("password does not meet minimum requirements")

	ErrDuplicateAccount = errors.New("account with this email already exists")
	ErrAccountNotFound  = errors.New("account not found")

	// ErrPasswordMismatch is visible inside the engine for logging and tests.
	// The transport boundary collapses it together with ErrAccountNotFound
	// into ErrAuthFailure so callers cannot enumerate accounts.
	ErrPasswordMismatch = errors.New("password mismatch")

	// ErrAuthFailure is the uniform credential failure exposed to callers.
	ErrAuthFailure = errors.New("invalid email or password")
)

// MissingField wraps ErrMissingField with the offending field name.
func MissingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
