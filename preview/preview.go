/*
Package preview renders quantized frames back to ordinary image formats so
the effect of the RGB444 reduction can be checked before the memory image is
loaded onto the FPGA.
*/
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const (
	thumbnailQuality = 95
	maxColors        = 256

	// DefaultDelay is the delay between animation frames in 100ths of a
	// second
	DefaultDelay = 10
)

var errNoFrames = errors.New("preview: no frames")

// WriteThumbnail writes m to w as a JPEG
func WriteThumbnail(w io.Writer, m image.Image) error {
	return jpeg.Encode(w, m, &jpeg.Options{Quality: thumbnailQuality})
}

func paletted(q draw.Quantizer, m image.Image) *image.Paletted {
	b := m.Bounds()

	// Reuse the palette if the frame already has few enough colors
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= maxColors {
		return pm
	}

	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// WriteAnimation writes frames to w as an animated GIF that loops forever
// with delay 100ths of a second between each frame. Each frame gets its
// own palette of up to 256 colors chosen by median cut.
func WriteAnimation(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return errNoFrames
	}

	q := quantize.MedianCutQuantizer{}

	g := &gif.GIF{
		Image:    make([]*image.Paletted, 0, len(frames)),
		Delay:    make([]int, 0, len(frames)),
		Disposal: make([]byte, 0, len(frames)),
	}
	for _, m := range frames {
		g.Image = append(g.Image, paletted(&q, m))
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}

	return gif.EncodeAll(w, g)
}
