package main

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/bodgit/vgacoe"
	"github.com/bodgit/vgacoe/coe"
)

func inspect(w io.Writer, file string, device coe.Device, width, height, frame int, output string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := coe.Decode(f)
	if err != nil {
		return err
	}

	for _, c := range doc.Comments {
		fmt.Fprintf(w, "; %s\n", c)
	}

	u := device.Usage(doc.Depth())
	fmt.Fprintf(w, "Radix:         %d\n", doc.Radix)
	fmt.Fprintf(w, "Depth:         %d\n", doc.Depth())
	fmt.Fprintf(w, "Address width: %d\n", coe.AddressWidth(doc.Depth()))
	fmt.Fprintf(w, "BRAM:          %.1f Kbit (%.1f%% of %s)\n", u.Kbits, u.Percent, u.Device.Name)
	if width > 0 && height > 0 {
		fmt.Fprintf(w, "Frames:        %d of %dx%d\n", doc.Depth()/(width*height), width, height)
	}

	if output == "" {
		return nil
	}

	m, err := doc.Frame(frame, width, height)
	if err != nil {
		return err
	}

	return vgacoe.WriteFile(output, func(w io.Writer) error {
		return png.Encode(w, m)
	})
}
