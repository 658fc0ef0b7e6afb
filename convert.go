package vgacoe

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/vgacoe/coe"
	"github.com/bodgit/vgacoe/frames"
	"github.com/bodgit/vgacoe/preview"
)

// Result describes a COE file that has been written
type Result struct {
	Output    string
	Preview   string
	Frames    int
	FrameSize int
	Used      int
	Depth     int
	Usage     coe.Usage
}

func previewPath(output, suffix string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + suffix
}

func (c *Converter) encode(images []image.Image, output string, comments func(*coe.MemoryImage) []string) (*Result, error) {
	m, err := coe.EncodeStream(images, c.cfg.streamOptions())
	if err != nil {
		return nil, err
	}

	o := &coe.Options{
		Comments: comments(m),
		LineWrap: c.cfg.lineWrap(),
	}
	if err := WriteFile(output, func(w io.Writer) error {
		return coe.Encode(w, m, o)
	}); err != nil {
		return nil, err
	}

	r := &Result{
		Output:    output,
		Frames:    m.Frames,
		FrameSize: m.FrameSize(),
		Used:      m.Used,
		Depth:     m.Depth(),
		Usage:     c.cfg.Device.Usage(m.Depth()),
	}

	// The COE file is complete even if the preview cannot be written
	if c.cfg.Preview {
		if r.Preview, err = c.writePreview(m, output); err != nil {
			r.Preview = ""
			return r, err
		}
	}

	c.report(r)

	return r, nil
}

func (c *Converter) writePreview(m *coe.MemoryImage, output string) (string, error) {
	quantized := make([]image.Image, 0, m.Frames)
	for i := 0; i < m.Frames; i++ {
		f, err := m.Frame(i)
		if err != nil {
			return "", err
		}
		quantized = append(quantized, f)
	}

	if len(quantized) == 1 {
		file := previewPath(output, "_thumb.jpg")
		return file, WriteFile(file, func(w io.Writer) error {
			return preview.WriteThumbnail(w, quantized[0])
		})
	}

	file := previewPath(output, "_preview.gif")
	return file, WriteFile(file, func(w io.Writer) error {
		return preview.WriteAnimation(w, quantized, preview.DefaultDelay)
	})
}

func (c *Converter) report(r *Result) {
	c.logger.Printf("Wrote %s: %d frame(s) of %dx%d, %d pixels, depth %d\n", r.Output, r.Frames, c.cfg.Width, c.cfg.Height, r.Used, r.Depth)
	if r.Preview != "" {
		c.logger.Printf("Preview written to %s\n", r.Preview)
	}
	c.logger.Printf("Block Memory Generator: Single Port ROM, Port A Width %d, Port A Depth %d (%d address bits), Load Init File %s\n", coe.BitsPerPixel, r.Depth, coe.AddressWidth(r.Depth), filepath.Base(r.Output))
	c.logger.Printf("Verilog parameters: FRAME_COUNT = %d, FRAME_SIZE = %d\n", r.Frames, r.FrameSize)
	c.logger.Printf("BRAM: %.1f Kbit, %.1f%% of %s\n", r.Usage.Kbits, r.Usage.Percent, r.Usage.Device.Name)
	if r.Usage.Warn() {
		c.logger.Printf("Warning: %s uses %.1f%% of the %s block RAM\n", r.Output, r.Usage.Percent, r.Usage.Device.Name)
	}
}

// ConvertImage scales the image in input to the configured size and
// writes it to output as a single frame
func (c *Converter) ConvertImage(input, output string) (*Result, error) {
	m, err := frames.LoadImage(input, c.cfg.Width, c.cfg.Height)
	if err != nil {
		return nil, err
	}

	return c.encode([]image.Image{m}, output, func(m *coe.MemoryImage) []string {
		return []string{
			fmt.Sprintf("%dx%d = %d pixels, 12bit RGB", m.Width, m.Height, m.FrameSize()),
		}
	})
}

// ConvertFrames scales each image in inputs to the configured size and
// writes them to output as consecutive frames
func (c *Converter) ConvertFrames(inputs []string, output string) (*Result, error) {
	for i, input := range inputs {
		c.logger.Printf("Frame %d/%d: %s\n", i+1, len(inputs), input)
	}

	images, err := frames.LoadImages(inputs, c.cfg.Width, c.cfg.Height)
	if err != nil {
		return nil, err
	}

	return c.encode(images, output, func(m *coe.MemoryImage) []string {
		return []string{
			fmt.Sprintf("Video frames: %d frames, %dx%d each", m.Frames, m.Width, m.Height),
		}
	})
}

// ConvertGIF writes the frames of the animated GIF in input to output,
// limited by the configured maximum number of frames
func (c *Converter) ConvertGIF(input, output string) (*Result, error) {
	images, err := frames.LoadGIF(input, c.cfg.Width, c.cfg.Height, c.cfg.MaxFrames, c.cfg.Sample)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("%s: using %d frame(s)\n", input, len(images))

	return c.encode(images, output, func(m *coe.MemoryImage) []string {
		return []string{
			fmt.Sprintf("GIF to COE - %s", filepath.Base(input)),
			fmt.Sprintf("Frames: %d, Size: %dx%d", m.Frames, m.Width, m.Height),
			fmt.Sprintf("Total pixels: %d", m.Used),
			fmt.Sprintf("BRAM config: Width=%d, Depth=%d", coe.BitsPerPixel, m.Depth()),
		}
	})
}
