package coe

import "image/color"

// Pixel is a packed RGB444 value
type Pixel uint16

// QuantizeChannel reduces an 8-bit channel to its upper four bits
func QuantizeChannel(c uint8) uint8 {
	return c >> 4
}

// Quantize packs the 8-bit channels r, g, and b into a Pixel
func Quantize(r, g, b uint8) Pixel {
	return Pixel(uint16(QuantizeChannel(r))<<8 | uint16(QuantizeChannel(g))<<4 | uint16(QuantizeChannel(b)))
}

// Channels returns the 4-bit red, green, and blue components
func (p Pixel) Channels() (r, g, b uint8) {
	return uint8(p >> 8 & 0x0f), uint8(p >> 4 & 0x0f), uint8(p & 0x0f)
}

// RGBA implements the color.Color interface. Each nibble is replicated to
// fill the 16-bit range so 0xF maps to full intensity.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r4, g4, b4 := p.Channels()
	return uint32(r4) * 0x1111, uint32(g4) * 0x1111, uint32(b4) * 0x1111, 0xffff
}

// Model is the color.Model for RGB444 pixels. Alpha is discarded rather than
// composited, matching a plain conversion to RGB.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Quantize(n.R, n.G, n.B)
}
