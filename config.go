package vgacoe

import (
	"errors"
	"fmt"

	"github.com/bodgit/vgacoe/coe"
)

var (
	errBadSize     = errors.New("width and height must be positive")
	errBadCapacity = errors.New("capacity must not be negative")
	errBadWrap     = errors.New("line wrap must not be negative")
	errBadFrames   = errors.New("maximum frames must not be negative")
)

// Config controls how images are laid out in memory and written
type Config struct {
	// Width and Height are the frame dimensions, sources are scaled to fit
	Width, Height int

	// Capacity is the depth of the target memory. Zero sizes the memory
	// to the frames exactly.
	Capacity int

	// Pad fills unused capacity with zero entries
	Pad bool

	// LineWrap is the number of entries per line. Zero uses the frame
	// width.
	LineWrap int

	// MaxFrames limits the number of frames taken from an animation, zero
	// takes them all
	MaxFrames int

	// Sample spreads MaxFrames evenly across an animation rather than
	// taking the first ones
	Sample bool

	// Preview also writes a JPEG thumbnail or animated GIF of the
	// quantized frames next to each output
	Preview bool

	// Device is used to report block RAM usage
	Device coe.Device
}

// DefaultConfig returns the configuration for a single 200x150 frame in a
// 32K entry memory
func DefaultConfig() Config {
	return Config{
		Width:    coe.DefaultWidth,
		Height:   coe.DefaultHeight,
		Capacity: coe.DefaultCapacity,
		Pad:      true,
		Device:   coe.XC7A100T,
	}
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errBadSize
	case c.Capacity < 0:
		return errBadCapacity
	case c.LineWrap < 0:
		return errBadWrap
	case c.MaxFrames < 0:
		return errBadFrames
	}
	return nil
}

func (c Config) lineWrap() int {
	if c.LineWrap == 0 {
		return c.Width
	}
	return c.LineWrap
}

func (c Config) streamOptions() coe.StreamOptions {
	return coe.StreamOptions{
		Width:    c.Width,
		Height:   c.Height,
		Capacity: c.Capacity,
		Pad:      c.Pad,
	}
}

// key identifies the settings that affect the content of an output file
func (c Config) key() string {
	return fmt.Sprintf("%dx%d/%d/%t/%d", c.Width, c.Height, c.Capacity, c.Pad, c.lineWrap())
}
