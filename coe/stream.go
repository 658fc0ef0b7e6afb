package coe

import "image"

// StreamOptions controls how frames are laid out in memory
type StreamOptions struct {
	Width, Height int

	// Capacity is the depth of the target memory. Zero means the memory
	// is sized to fit the frames exactly.
	Capacity int

	// Pad fills unused capacity with zero entries
	Pad bool
}

// MemoryImage is the content of a block RAM holding one or more frames
type MemoryImage struct {
	// Entries holds the pixel stream followed by any padding
	Entries []Pixel

	// Used is the number of entries holding pixel data
	Used int

	Frames        int
	Width, Height int
}

// Depth returns the number of entries in the memory image
func (m *MemoryImage) Depth() int {
	return len(m.Entries)
}

// FrameSize returns the number of entries per frame
func (m *MemoryImage) FrameSize() int {
	return m.Width * m.Height
}

// Frame returns the i-th frame. The returned image shares storage with the
// memory image.
func (m *MemoryImage) Frame(i int) (*Image, error) {
	if i >= m.Frames {
		return nil, errNoFrame
	}
	return frameImage(m.Entries[:m.Used], i, m.Width, m.Height)
}

// EncodeStream quantizes each frame in turn into a single memory image. If
// the frames need more entries than the capacity allows then a
// *CapacityError is returned before any frame is read.
func EncodeStream(frames []image.Image, o StreamOptions) (*MemoryImage, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, errBadDimensions
	}
	if o.Capacity < 0 {
		return nil, errBadCapacity
	}
	if len(frames) == 0 {
		return nil, errNoFrames
	}

	used := len(frames) * o.Width * o.Height
	if o.Capacity > 0 && used > o.Capacity {
		return nil, &CapacityError{
			Used:     used,
			Capacity: o.Capacity,
		}
	}

	depth := used
	if o.Pad && o.Capacity > 0 {
		depth = o.Capacity
	}

	entries := make([]Pixel, 0, depth)
	for i, m := range frames {
		var err error
		if entries, err = appendFrame(entries, m, i, o.Width, o.Height); err != nil {
			return nil, err
		}
	}

	// Padding entries are zero
	entries = entries[:depth]

	return &MemoryImage{
		Entries: entries,
		Used:    used,
		Frames:  len(frames),
		Width:   o.Width,
		Height:  o.Height,
	}, nil
}
