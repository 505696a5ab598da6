package services

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("vendor already exists")
	// ErrNotFound is returned when a vendor or order id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when a password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidID is returned for malformed order ids.
	ErrInvalidID = errors.New("invalid id")
	// ErrTokenExpired is returned for tokens at or past their expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidSignature is returned for tokens that are malformed or not
	// signed with the configured secret.
	ErrInvalidSignature = errors.New("invalid token signature")
)

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
