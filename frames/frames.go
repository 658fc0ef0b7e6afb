/*
Package frames loads the raster frames that feed the COE encoder.

Still images in GIF, JPEG, or PNG format and every frame of an animated GIF
are decoded, flattened to RGB and scaled to the requested size.
*/
package frames

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	xdraw "golang.org/x/image/draw"
)

// ErrInputNotFound is returned when a source path does not exist
var ErrInputNotFound = errors.New("frames: input not found")

var errBadSize = errors.New("frames: width and height must be positive")

func open(file string) (*os.File, error) {
	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, file)
		}
		return nil, err
	}
	return f, nil
}

// Resize scales m to width by height. Catmull-Rom resampling is used unless
// m is already the right size in which case it is only copied.
func Resize(m image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadSize
	}

	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if b.Dx() == width && b.Dy() == height {
		draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), m, b, xdraw.Src, nil)
	}

	return dst, nil
}

// LoadImage decodes the image in file and scales it to width by height
func LoadImage(file string, width, height int) (image.Image, error) {
	f, err := open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("frames: %s: %w", file, err)
	}

	return Resize(m, width, height)
}

// LoadImages calls LoadImage for each file in turn
func LoadImages(files []string, width, height int) ([]image.Image, error) {
	frames := make([]image.Image, 0, len(files))
	for _, file := range files {
		m, err := LoadImage(file, width, height)
		if err != nil {
			return nil, err
		}
		frames = append(frames, m)
	}
	return frames, nil
}

// Sample returns count indices spread evenly over total items. If count is
// zero or not less than total then every index is returned.
func Sample(total, count int) []int {
	if count <= 0 || count > total {
		count = total
	}

	interval := 1
	if count > 0 && total/count > 1 {
		interval = total / count
	}

	indices := make([]int, 0, count)
	for i := 0; i < count; i++ {
		indices = append(indices, i*interval)
	}
	return indices
}
