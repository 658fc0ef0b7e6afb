package vgacoe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/vgacoe/coe"
	"github.com/bodgit/vgacoe/frames"
	"github.com/bodgit/vgacoe/preview"
)

// DefaultExtractFrames is the number of frames Extract takes when no
// maximum is configured
const DefaultExtractFrames = 10

// Extract takes frames spread evenly across the animated GIF in input,
// quantizes them to RGB444 at the configured size and writes them to
// outDir as frame_0.jpg, frame_1.jpg, and so on, ready for Batch. The
// configured maximum number of frames is used, or DefaultExtractFrames if
// it is zero. The names of the files written are returned.
func (c *Converter) Extract(input, outDir string) ([]string, error) {
	count := c.cfg.MaxFrames
	if count == 0 {
		count = DefaultExtractFrames
	}

	images, err := frames.LoadGIF(input, c.cfg.Width, c.cfg.Height, count, true)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	files := make([]string, 0, len(images))
	for i, m := range images {
		p, err := coe.EncodeFrame(m, c.cfg.Width, c.cfg.Height)
		if err != nil {
			return nil, err
		}
		quantized := coe.NewImage(m.Bounds())
		copy(quantized.Pix, p)

		name := fmt.Sprintf("frame_%d.jpg", i)
		if err := WriteFile(filepath.Join(outDir, name), func(w io.Writer) error {
			return preview.WriteThumbnail(w, quantized)
		}); err != nil {
			return nil, err
		}
		c.logger.Printf("[%d/%d] Saved %s\n", i+1, len(images), filepath.Join(outDir, name))
		files = append(files, name)
	}

	c.logger.Printf("Extracted %d frame(s) from %s into %s\n", len(files), input, outDir)

	return files, nil
}
