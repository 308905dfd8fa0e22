// ABOUTME: Error types returned by the record store.
// ABOUTME: Write failures carry the operation and key; reads never fail.
package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageFailure matches every *StorageError via errors.Is.
	ErrStorageFailure = errors.New("storage failure")
	// ErrNotFound is returned when no check-in matches an id or prefix.
	ErrNotFound = errors.New("check-in not found")
	// ErrAmbiguousID is returned when a prefix matches more than one check-in.
	ErrAmbiguousID = errors.New("ambiguous id prefix")
	// ErrInvalidCheckIn is returned when a check-in fails validation on save.
	ErrInvalidCheckIn = errors.New("invalid check-in")
)

// StorageError reports a write the medium rejected.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrStorageFailure) hold for any StorageError.
func (e *StorageError) Is(target error) bool { return target == ErrStorageFailure }
