package vgacoe

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/vgacoe/frames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "anim.gif")
	writeGIF(t, input, 6)
	out := filepath.Join(dir, "frames")

	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.MaxFrames = 2, 2, 3
	c, _ := newConverter(t, cfg, nil)

	files, err := c.Extract(input, out)
	require.Nil(t, err)
	assert.Equal(t, []string{"frame_0.jpg", "frame_1.jpg", "frame_2.jpg"}, files)

	// Frames 0, 2 and 4 of the black, white, red cycle
	want := [][3]bool{{false, false, false}, {true, false, false}, {true, true, true}}
	for i, file := range files {
		f, err := os.Open(filepath.Join(out, file))
		require.Nil(t, err)

		m, err := jpeg.Decode(f)
		f.Close()
		require.Nil(t, err)

		r, g, b, _ := m.At(1, 1).RGBA()
		assert.Equal(t, want[i], [3]bool{r > 0x8000, g > 0x8000, b > 0x8000}, file)
	}

	// The extracted frames feed straight into Batch
	converted, err := c.Batch(out, filepath.Join(dir, "coe_files"))
	require.Nil(t, err)
	assert.Equal(t, []string{"frame_0.coe", "frame_1.coe", "frame_2.coe"}, converted)
}

func TestExtractDefaultFrames(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "anim.gif")
	writeGIF(t, input, 4)

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 2, 2
	c, _ := newConverter(t, cfg, nil)

	files, err := c.Extract(input, dir)
	require.Nil(t, err)
	assert.Len(t, files, 4)
}

func TestExtractNotFound(t *testing.T) {
	c, _ := newConverter(t, DefaultConfig(), nil)

	_, err := c.Extract(filepath.Join(t.TempDir(), "missing.gif"), t.TempDir())
	assert.ErrorIs(t, err, frames.ErrInputNotFound)
}
