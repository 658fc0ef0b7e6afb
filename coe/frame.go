package coe

import (
	"image"
	"image/color"
)

// EncodeFrame quantizes m into width*height pixels. Pixels are read a row
// at a time from top to bottom, each row from left to right. The frame is
// never resized; m must already be exactly width by height.
func EncodeFrame(m image.Image, width, height int) ([]Pixel, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadDimensions
	}
	return appendFrame(make([]Pixel, 0, width*height), m, 0, width, height)
}

func appendFrame(dst []Pixel, m image.Image, index, width, height int) ([]Pixel, error) {
	b := m.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, &DimensionError{
			Frame:      index,
			Width:      b.Dx(),
			Height:     b.Dy(),
			WantWidth:  width,
			WantHeight: height,
		}
	}

	switch fm := m.(type) {
	case *Image:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := fm.PixOffset(b.Min.X, y)
			dst = append(dst, fm.Pix[i:i+width]...)
		}
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := fm.PixOffset(x, y)
				dst = append(dst, Quantize(fm.Pix[i+0], fm.Pix[i+1], fm.Pix[i+2]))
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				dst = append(dst, Quantize(c.R, c.G, c.B))
			}
		}
	}

	return dst, nil
}
