package png2gba

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/chrisstone/png2gba/header"
	"github.com/chrisstone/png2gba/palette"
	"github.com/chrisstone/png2gba/raster"
	"github.com/chrisstone/png2gba/rgb15"
	"github.com/ericpauley/go-quantize/quantize"
)

// DefaultColorKey is the colorkey used when the caller does not choose one.
const DefaultColorKey = "#ff00ff"

// Palette sizes supported by the hardware.
const (
	Palette16  = 16
	Palette256 = 256
)

// Options configures a single conversion.
type Options struct {
	// PaletteSize selects indexed mode with a 16 or 256 entry palette.
	// Zero emits direct 15-bit colors instead.
	PaletteSize int

	// Tiled walks the image as 8 by 8 tiles instead of row by row. Both
	// image dimensions must be multiples of 8.
	Tiled bool

	// ColorKey is the "#RRGGBB" color reserved at palette index 0 for
	// transparency. Empty means DefaultColorKey.
	ColorKey string

	// Quantize reduces the image colors with a median cut before the
	// palette is built, so an indexed conversion cannot overflow it.
	Quantize bool
}

// Convert walks m in the order opts selects and writes the resulting C
// header to w. name is used for the identifiers in the generated file. The
// output is not valid if an error is returned.
func (c *Converter) Convert(w io.Writer, name string, m image.Image, opts Options) error {
	if opts.PaletteSize != 0 && opts.PaletteSize != Palette16 && opts.PaletteSize != Palette256 {
		return fmt.Errorf("png2gba: palette must be %d or %d colors", Palette16, Palette256)
	}
	indexed := opts.PaletteSize != 0

	key := opts.ColorKey
	if key == "" {
		key = DefaultColorKey
	}
	colorkey, err := rgb15.ParseHex(key)
	if err != nil {
		return fmt.Errorf("parse colorkey: %w", err)
	}

	if indexed && opts.Quantize {
		m = reduceColors(m, opts.PaletteSize)
	}

	img := raster.FromImage(m)

	var cur *raster.Cursor
	if opts.Tiled {
		if cur, err = raster.NewTiled(img.Width, img.Height); err != nil {
			return err
		}
	} else {
		cur = raster.NewLinear(img.Width, img.Height)
	}

	var pal *palette.Builder
	if indexed {
		pal = palette.New(opts.PaletteSize)
		if _, err := pal.Insert(colorkey); err != nil {
			return err
		}
	}

	c.logger.Printf("converting %s: %dx%d, palette %d, tiled %t", name, img.Width, img.Height, opts.PaletteSize, opts.Tiled)

	hw := header.New(w)
	if err := hw.Preamble(name, img.Width, img.Height, indexed); err != nil {
		return err
	}

	for {
		row, col, ok := cur.Next()
		if !ok {
			break
		}

		r, g, b, _ := img.At(row, col)
		qc := rgb15.Quantize(r, g, b)

		if indexed {
			i, err := pal.Insert(qc)
			if err != nil {
				return fmt.Errorf("pixel (%d, %d): %w", row, col, err)
			}
			if err := hw.Index(i); err != nil {
				return err
			}
		} else if err := hw.Color(qc); err != nil {
			return err
		}
	}

	if err := hw.Close(); err != nil {
		return err
	}

	if indexed {
		c.logger.Printf("%d of %d palette slots used", pal.Len(), opts.PaletteSize)
		return hw.Palette(name, pal.Colors())
	}

	return nil
}

// reduceColors quantizes m down to what the palette can hold, leaving room
// for the colorkey and the reserved final slot.
func reduceColors(m image.Image, max int) image.Image {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, max-2), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}
