package frames

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
)

// composite renders each frame of g onto a canvas the size of the logical
// screen, honouring the disposal method of the preceding frame
func composite(g *gif.GIF) []*image.NRGBA {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewNRGBA(bounds)
	var previous *image.NRGBA

	out := make([]*image.NRGBA, 0, len(g.Image))
	for i, m := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = image.NewNRGBA(bounds)
			draw.Draw(previous, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, m.Bounds(), m, m.Bounds().Min, draw.Over)

		frame := image.NewNRGBA(bounds)
		draw.Draw(frame, bounds, canvas, bounds.Min, draw.Src)
		out = append(out, frame)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, m.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return out
}

// LoadGIF decodes every frame of the animated GIF in file and scales each
// to width by height. If max is positive no more than max frames are
// returned; the first max frames, or if sample is set, max frames spread
// evenly across the animation.
func LoadGIF(file string, width, height, max int, sample bool) ([]image.Image, error) {
	f, err := open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("frames: %s: %w", file, err)
	}

	all := composite(g)

	var indices []int
	switch {
	case max > 0 && max < len(all) && sample:
		indices = Sample(len(all), max)
	case max > 0 && max < len(all):
		indices = Sample(max, max)
	default:
		indices = Sample(len(all), 0)
	}

	frames := make([]image.Image, 0, len(indices))
	for _, i := range indices {
		m, err := Resize(all[i], width, height)
		if err != nil {
			return nil, err
		}
		frames = append(frames, m)
	}

	return frames, nil
}
