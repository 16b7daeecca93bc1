package ggplot

import (
	"errors"
	"fmt"
)

// ErrBackend is the marker every backend failure matches with errors.Is.
var ErrBackend = errors.New("ggplot: backend error")

// Sentinel causes carried by a BackendError.
var (
	// ErrNoTextEngine is returned by text measurement on a backend
	// created without a text context.
	ErrNoTextEngine = errors.New("no text engine")

	// ErrReleased is returned by any call made after the paint pass
	// that created the backend has ended.
	ErrReleased = errors.New("backend released")
)

// BackendError is the error type returned by DrawingBackend methods.
// It records the failing operation and the underlying cause.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("ggplot: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrBackend.
func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

func backendError(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}
