package frames

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gifPalette = color.Palette{
	color.Transparent,
	color.NRGBA{0xff, 0x00, 0x00, 0xff},
	color.NRGBA{0x00, 0xff, 0x00, 0xff},
	color.NRGBA{0x00, 0x00, 0xff, 0xff},
	color.NRGBA{0xff, 0xff, 0xff, 0xff},
}

// writeGIF writes an 8x8 animation where frame i is a solid color taken
// from the palette, cycling through the opaque entries
func writeGIF(t *testing.T, file string, n int) {
	t.Helper()

	g := &gif.GIF{
		Config: image.Config{ColorModel: gifPalette, Width: 8, Height: 8},
	}
	for i := 0; i < n; i++ {
		m := image.NewPaletted(image.Rect(0, 0, 8, 8), gifPalette)
		for j := range m.Pix {
			m.Pix[j] = uint8(1 + i%4)
		}
		g.Image = append(g.Image, m)
		g.Delay = append(g.Delay, 10)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}

	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()

	require.Nil(t, gif.EncodeAll(f, g))
}

func TestLoadGIF(t *testing.T) {
	file := filepath.Join(t.TempDir(), "anim.gif")
	writeGIF(t, file, 8)

	frames, err := LoadGIF(file, 8, 8, 0, false)
	require.Nil(t, err)
	require.Len(t, frames, 8)
	for i, m := range frames {
		assert.Equal(t, gifPalette[1+i%4], m.At(4, 4))
	}

	frames, err = LoadGIF(file, 4, 4, 3, false)
	require.Nil(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, image.Rect(0, 0, 4, 4), frames[0].Bounds())
	assert.Equal(t, gifPalette[3], frames[2].At(1, 1))

	// 8 frames sampled down to 4 picks every other frame
	frames, err = LoadGIF(file, 8, 8, 4, true)
	require.Nil(t, err)
	require.Len(t, frames, 4)
	for i, m := range frames {
		assert.Equal(t, gifPalette[1+(i*2)%4], m.At(0, 0))
	}
}

func TestLoadGIFNotFound(t *testing.T) {
	_, err := LoadGIF(filepath.Join(t.TempDir(), "missing.gif"), 8, 8, 0, false)
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestComposite(t *testing.T) {
	// Second frame only covers the left half; the right half keeps the
	// first frame, then is cleared once disposed to background
	first := image.NewPaletted(image.Rect(0, 0, 4, 2), gifPalette)
	for i := range first.Pix {
		first.Pix[i] = 1
	}
	second := image.NewPaletted(image.Rect(0, 0, 2, 2), gifPalette)
	for i := range second.Pix {
		second.Pix[i] = 3
	}
	third := image.NewPaletted(image.Rect(2, 0, 3, 1), gifPalette)
	third.Pix[0] = 4

	g := &gif.GIF{
		Image:    []*image.Paletted{first, second, third},
		Disposal: []byte{gif.DisposalNone, gif.DisposalBackground, gif.DisposalNone},
		Config:   image.Config{Width: 4, Height: 2},
	}

	out := composite(g)
	require.Len(t, out, 3)

	assert.Equal(t, color.NRGBA{0x00, 0x00, 0xff, 0xff}, out[1].At(0, 0))
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0x00, 0xff}, out[1].At(3, 0))

	// Left half cleared after the second frame
	assert.Equal(t, color.NRGBA{}, out[2].At(0, 0))
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, out[2].At(2, 0))
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0x00, 0xff}, out[2].At(3, 1))
}
