package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("store: key not found")

// ReadError reports a stored value that exists but cannot be decoded.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store: read %s: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
