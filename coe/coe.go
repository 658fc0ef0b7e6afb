/*
Package coe implements an encoder and decoder for Xilinx COE memory
initialization files holding 12-bit RGB444 pixel data.

Each 8-bit color channel is truncated to its upper four bits and the three
nibbles are packed as 0000RRRRGGGGBBBB. Frames are serialized row by row, top
to bottom and left to right, and concatenated in the order given. The
resulting stream is optionally padded with zero entries up to the depth of
the target block RAM.

The file is plain text; zero or more comment lines starting with a
semicolon, the radix declaration, and the initialization vector:

	; 2x2 = 4 pixels, 12bit RGB
	memory_initialization_radix=16;
	memory_initialization_vector=
	F00,
	0F0,
	00F,
	FFF;
*/
package coe

const (
	// BitsPerPixel is the width of each memory word
	BitsPerPixel = 12

	// DefaultWidth and DefaultHeight are the frame dimensions used by the
	// VGA display core
	DefaultWidth  = 200
	DefaultHeight = 150

	// DefaultCapacity is the depth of a 32K entry block RAM
	DefaultCapacity = 32 << 10

	radixKey  = "memory_initialization_radix"
	vectorKey = "memory_initialization_vector"

	entryDigits = 3
	entryMask   = 1<<BitsPerPixel - 1
)
