package vgacoe

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, file string, width, height int, c color.Color) {
	t.Helper()

	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, c)
		}
	}

	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()

	require.Nil(t, png.Encode(f, m))
}

func newConverter(t *testing.T, cfg Config, catalog *Catalog) (*Converter, *bytes.Buffer) {
	t.Helper()

	b := new(bytes.Buffer)
	c, err := New(cfg, catalog, log.New(b, "", 0))
	require.Nil(t, err)
	return c, b
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Capacity = 4, 3, 16
	return cfg
}
