package frames

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, file string, m image.Image) {
	t.Helper()

	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()

	require.Nil(t, png.Encode(f, m))
}

func fill(r image.Rectangle, c color.Color) *image.NRGBA {
	m := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "red.png")
	writePNG(t, file, fill(image.Rect(0, 0, 40, 30), color.NRGBA{0xff, 0x00, 0x00, 0xff}))

	m, err := LoadImage(file, 20, 15)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 15), m.Bounds())

	// A solid color survives resampling
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0x00, 0xff}, m.At(10, 7))
}

func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"), 20, 15)
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestLoadImageCorrupt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "corrupt.png")
	require.Nil(t, os.WriteFile(file, []byte("not an image"), 0644))

	_, err := LoadImage(file, 20, 15)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestLoadImages(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i, c := range []color.Color{color.White, color.Black} {
		file := filepath.Join(dir, string(rune('a'+i))+".png")
		writePNG(t, file, fill(image.Rect(0, 0, 4, 4), c))
		files = append(files, file)
	}

	frames, err := LoadImages(files, 4, 4)
	require.Nil(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, frames[0].At(0, 0))
	assert.Equal(t, color.NRGBA{0x00, 0x00, 0x00, 0xff}, frames[1].At(3, 3))

	_, err = LoadImages(append(files, filepath.Join(dir, "c.png")), 4, 4)
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestResize(t *testing.T) {
	src := fill(image.Rect(5, 5, 9, 9), color.NRGBA{0x12, 0x34, 0x56, 0xff})

	m, err := Resize(src, 4, 4)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), m.Bounds())
	assert.Equal(t, src.Pix, m.Pix)

	_, err = Resize(src, 0, 4)
	assert.Equal(t, errBadSize, err)
}

func TestSample(t *testing.T) {
	tables := []struct {
		total, count int
		want         []int
	}{
		{10, 0, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{10, 3, []int{0, 3, 6}},
		{10, 5, []int{0, 2, 4, 6, 8}},
		{10, 7, []int{0, 1, 2, 3, 4, 5, 6}},
		{4, 10, []int{0, 1, 2, 3}},
		{0, 3, []int{}},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Sample(table.total, table.count))
	}
}
