package coe

import "math/bits"

// warnThreshold is the fraction of a device's block RAM above which Warn
// reports true
const warnThreshold = 0.8

// Device describes the block RAM available on an FPGA part
type Device struct {
	Name  string
	Kbits int
}

// XC7A100T is the Artix-7 part used on the Nexys 4 DDR board
var XC7A100T = Device{
	Name:  "XC7A100T",
	Kbits: 4860,
}

// Usage is the share of a device's block RAM taken by a memory image
type Usage struct {
	Device  Device
	Depth   int
	Kbits   float64
	Percent float64
}

// Usage computes the block RAM needed for depth 12-bit words
func (d Device) Usage(depth int) Usage {
	u := Usage{
		Device: d,
		Depth:  depth,
		Kbits:  float64(depth*BitsPerPixel) / 1024,
	}
	if d.Kbits > 0 {
		u.Percent = u.Kbits / float64(d.Kbits) * 100
	}
	return u
}

// Warn reports whether the usage is close to or over the device limit
func (u Usage) Warn() bool {
	return u.Percent > warnThreshold*100
}

// AddressWidth returns the number of address bits needed for a memory of
// the given depth
func AddressWidth(depth int) int {
	if depth <= 2 {
		return 1
	}
	return bits.Len(uint(depth - 1))
}
