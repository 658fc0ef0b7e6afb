package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/vgacoe"
	"github.com/bodgit/vgacoe/coe"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func layoutFlags(output string, capacity, wrap int) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   output,
			Usage:   "output file",
		},
		&cli.IntFlag{
			Name:  "width",
			Value: coe.DefaultWidth,
			Usage: "frame width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: coe.DefaultHeight,
			Usage: "frame height in pixels",
		},
		&cli.IntFlag{
			Name:  "capacity",
			Value: capacity,
			Usage: "memory depth in entries, 0 to fit the frames exactly",
		},
		&cli.BoolFlag{
			Name:  "no-pad",
			Usage: "do not fill unused capacity with zero entries",
		},
		&cli.IntFlag{
			Name:  "wrap",
			Value: wrap,
			Usage: "entries per line, 0 for the frame width",
		},
		&cli.BoolFlag{
			Name:  "preview",
			Usage: "also write a preview of the quantized frames",
		},
	}, deviceFlags()...)
}

func deviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "device",
			Value: coe.XC7A100T.Name,
			Usage: "FPGA part used to report block RAM usage",
		},
		&cli.IntFlag{
			Name:  "kbits",
			Value: coe.XC7A100T.Kbits,
			Usage: "block RAM available on the FPGA part in Kbit",
		},
	}
}

func device(c *cli.Context) coe.Device {
	if c.String("device") == "" {
		return coe.XC7A100T
	}
	return coe.Device{
		Name:  c.String("device"),
		Kbits: c.Int("kbits"),
	}
}

func config(c *cli.Context) vgacoe.Config {
	cfg := vgacoe.DefaultConfig()
	cfg.Width = c.Int("width")
	cfg.Height = c.Int("height")
	cfg.Capacity = c.Int("capacity")
	cfg.Pad = !c.Bool("no-pad")
	cfg.LineWrap = c.Int("wrap")
	cfg.MaxFrames = c.Int("max-frames")
	cfg.Sample = c.Bool("sample")
	cfg.Preview = c.Bool("preview")
	cfg.Device = device(c)
	return cfg
}

func newConverter(c *cli.Context, useCatalog bool) (*vgacoe.Converter, func(), error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var catalog *vgacoe.Catalog
	if db := c.String("db"); useCatalog && db != "" {
		var err error
		if catalog, err = vgacoe.NewCatalog(db); err != nil {
			return nil, nil, err
		}
	}
	closer := func() {
		if catalog != nil {
			catalog.Close()
		}
	}

	v, err := vgacoe.New(config(c), catalog, logger)
	if err != nil {
		closer()
		return nil, nil, err
	}

	return v, closer, nil
}

func printResult(r *vgacoe.Result) {
	fmt.Printf("%s: %d frame(s), %d pixels, depth %d, %.1f Kbit BRAM (%.1f%% of %s)\n", r.Output, r.Frames, r.Used, r.Depth, r.Usage.Kbits, r.Usage.Percent, r.Usage.Device.Name)
	if r.Usage.Warn() {
		fmt.Printf("warning: block RAM usage above %s budget\n", r.Usage.Device.Name)
	}
}

func convert(fn func(*vgacoe.Converter, *cli.Context) (*vgacoe.Result, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}

		v, closer, err := newConverter(c, false)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer closer()

		r, err := fn(v, c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		printResult(r)

		return nil
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "vgacoe"
	app.Usage = "Convert images and animations into COE files for FPGA VGA frame buffers"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"VGACOE_DB"},
			Usage:   "path to conversion catalog, used by batch to skip unchanged images",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "image",
			Usage:       "Convert a single image",
			Description: "The image is scaled to the frame size and padded to the memory depth.",
			ArgsUsage:   "FILE",
			Flags:       layoutFlags("result.coe", coe.DefaultCapacity, 0),
			Action: convert(func(v *vgacoe.Converter, c *cli.Context) (*vgacoe.Result, error) {
				return v.ConvertImage(c.Args().First(), c.String("output"))
			}),
		},
		{
			Name:        "frames",
			Usage:       "Merge several images into consecutive frames",
			Description: "",
			ArgsUsage:   "FILE...",
			Flags:       layoutFlags("video_frames.coe", 0, 0),
			Action: convert(func(v *vgacoe.Converter, c *cli.Context) (*vgacoe.Result, error) {
				return v.ConvertFrames(c.Args().Slice(), c.String("output"))
			}),
		},
		{
			Name:        "gif",
			Usage:       "Convert the frames of an animated GIF",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: append(layoutFlags("video_frames.coe", 0, 1),
				&cli.IntFlag{
					Name:    "max-frames",
					Aliases: []string{"m"},
					Usage:   "maximum number of frames, 0 for all",
				},
				&cli.BoolFlag{
					Name:  "sample",
					Usage: "spread the maximum number of frames evenly across the animation",
				},
			),
			Action: convert(func(v *vgacoe.Converter, c *cli.Context) (*vgacoe.Result, error) {
				return v.ConvertGIF(c.Args().First(), c.String("output"))
			}),
		},
		{
			Name:        "batch",
			Usage:       "Convert every image in a directory",
			Description: "Each image becomes a COE file of the same name and a file_list.txt manifest is written.",
			ArgsUsage:   "[INPUT_DIR [OUTPUT_DIR]]",
			Flags:       layoutFlags("", coe.DefaultCapacity, 16)[1:],
			Action: func(c *cli.Context) error {
				in, out := "frames", "coe_files"
				if c.NArg() > 0 {
					in = c.Args().Get(0)
				}
				if c.NArg() > 1 {
					out = c.Args().Get(1)
				}

				v, closer, err := newConverter(c, true)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				files, err := v.Batch(in, out)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Printf("Converted %d image(s) into %s\n", len(files), out)

				return nil
			},
		},
		{
			Name:        "extract",
			Usage:       "Extract evenly spaced frames from an animated GIF",
			Description: "Frames are quantized and written as frame_0.jpg, frame_1.jpg, ... ready for batch.",
			ArgsUsage:   "FILE [OUTPUT_DIR]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Value: coe.DefaultWidth,
					Usage: "frame width in pixels",
				},
				&cli.IntFlag{
					Name:  "height",
					Value: coe.DefaultHeight,
					Usage: "frame height in pixels",
				},
				&cli.IntFlag{
					Name:    "max-frames",
					Aliases: []string{"m"},
					Value:   vgacoe.DefaultExtractFrames,
					Usage:   "number of frames to extract",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				out := "frames"
				if c.NArg() > 1 {
					out = c.Args().Get(1)
				}

				v, closer, err := newConverter(c, false)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				files, err := v.Extract(c.Args().First(), out)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Printf("Extracted %d frame(s) into %s\n", len(files), out)

				return nil
			},
		},
		{
			Name:        "inspect",
			Usage:       "Describe a COE file and optionally extract a frame",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Value: coe.DefaultWidth,
					Usage: "frame width in pixels",
				},
				&cli.IntFlag{
					Name:  "height",
					Value: coe.DefaultHeight,
					Usage: "frame height in pixels",
				},
				&cli.IntFlag{
					Name:  "frame",
					Usage: "frame to extract",
				},
				&cli.StringFlag{
					Name:  "png",
					Usage: "write the extracted frame to this PNG file",
				},
			}, deviceFlags()...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := inspect(os.Stdout, c.Args().First(), device(c), c.Int("width"), c.Int("height"), c.Int("frame"), c.String("png")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
