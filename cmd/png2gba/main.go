package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrisstone/png2gba"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/bmp"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// arrayName derives a C identifier from the input filename.
func arrayName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, name)
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

func main() {
	app := cli.NewApp()

	app.Name = "png2gba"
	app.Usage = "convert images into C header files for GBA programming"
	app.ArgsUsage = "FILE"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "palette",
			Aliases: []string{"p"},
			Usage:   "use a palette of 16 or 256 colors",
		},
		&cli.BoolFlag{
			Name:    "tileize",
			Aliases: []string{"t"},
			Usage:   "output the data in 8x8 tile order",
		},
		&cli.StringFlag{
			Name:    "colorkey",
			Aliases: []string{"c"},
			Value:   png2gba.DefaultColorKey,
			Usage:   "color to use as transparent",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file, defaults to the input name with a .h extension",
		},
		&cli.BoolFlag{
			Name:    "quantize",
			Aliases: []string{"q"},
			Usage:   "reduce the image colors to fit the palette",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		logger := log.New(io.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		input := c.Args().First()

		in, err := os.Open(input)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		m, _, err := image.Decode(in)
		in.Close()
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		output := c.String("output")
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".h"
		}

		out, err := os.Create(output)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		conv := png2gba.New(logger)
		if err := conv.Convert(out, arrayName(input), m, png2gba.Options{
			PaletteSize: c.Int("palette"),
			Tiled:       c.Bool("tileize"),
			ColorKey:    c.String("colorkey"),
			Quantize:    c.Bool("quantize"),
		}); err != nil {
			out.Close()
			os.Remove(output)
			return cli.NewExitError(err, 1)
		}

		if err := out.Close(); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
