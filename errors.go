package vgacoe

import (
	"errors"
	"fmt"
)

// ErrWriteFailure is returned when an output file cannot be written
var ErrWriteFailure = errors.New("write failure")

// WriteError records the output path that could not be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrWriteFailure, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrWriteFailure
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailure
}
