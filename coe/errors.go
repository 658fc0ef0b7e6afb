package coe

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when a frame is not the declared size
	ErrDimensionMismatch = errors.New("coe: frame dimensions do not match")

	// ErrCapacityExceeded is returned when the pixel stream does not fit
	// in the target memory
	ErrCapacityExceeded = errors.New("coe: pixel stream exceeds capacity")

	errBadDimensions = errors.New("coe: width and height must be positive")
	errBadCapacity   = errors.New("coe: capacity must not be negative")
	errNoFrames      = errors.New("coe: no frames")
	errNoFrame       = errors.New("coe: frame index out of range")
	errEmpty         = errors.New("coe: memory image has no entries")
	errBadRadix      = errors.New("coe: unsupported radix")
	errNoRadix       = errors.New("coe: missing radix declaration")
	errNoVector      = errors.New("coe: missing initialization vector")
	errUnterminated  = errors.New("coe: initialization vector is not terminated")
	errTrailing      = errors.New("coe: unexpected data after initialization vector")
)

// DimensionError records a frame whose size differs from the declared
// width and height
type DimensionError struct {
	Frame                 int
	Width, Height         int
	WantWidth, WantHeight int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("coe: frame %d is %dx%d, expected %dx%d", e.Frame, e.Width, e.Height, e.WantWidth, e.WantHeight)
}

// Is reports whether target is ErrDimensionMismatch
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// CapacityError records a pixel stream that is larger than the memory it
// is meant to initialize
type CapacityError struct {
	Used     int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("coe: %d entries exceed capacity of %d", e.Used, e.Capacity)
}

// Is reports whether target is ErrCapacityExceeded
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// EntryError records an initialization vector entry that could not be parsed
type EntryError struct {
	Index int
	Entry string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("coe: entry %d %q: %v", e.Index, e.Entry, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
