package coe

import (
	"image"
	"image/color"
)

// Image is an in-memory image of RGB444 pixels stored in row-major order
type Image struct {
	Pix    []Pixel
	Stride int
	Rect   image.Rectangle
}

// NewImage returns a new Image with the given bounds
func NewImage(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]Pixel, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (m *Image) ColorModel() color.Model { return Model }

func (m *Image) Bounds() image.Rectangle { return m.Rect }

func (m *Image) At(x, y int) color.Color {
	return m.PixelAt(x, y)
}

// PixelAt returns the pixel at (x, y), or zero if it is out of bounds
func (m *Image) PixelAt(x, y int) Pixel {
	if !(image.Point{x, y}.In(m.Rect)) {
		return 0
	}
	return m.Pix[m.PixOffset(x, y)]
}

// PixOffset returns the index of the pixel at (x, y) in Pix
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x - m.Rect.Min.X)
}

func (m *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	m.Pix[m.PixOffset(x, y)] = Model.Convert(c).(Pixel)
}

// SetPixel sets the pixel at (x, y)
func (m *Image) SetPixel(x, y int, p Pixel) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	m.Pix[m.PixOffset(x, y)] = p & entryMask
}

// frameImage wraps the i-th frame of a flat pixel stream without copying
func frameImage(entries []Pixel, i, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadDimensions
	}
	size := width * height
	if i < 0 || (i+1)*size > len(entries) {
		return nil, errNoFrame
	}
	return &Image{
		Pix:    entries[i*size : (i+1)*size : (i+1)*size],
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}
