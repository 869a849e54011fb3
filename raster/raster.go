/*
Package raster provides pixel access and traversal order for image
conversion.

The GBA stores tiled graphics as 8 by 8 pixel tiles, so a Cursor can walk an
image either in plain row-major order or one tile at a time, row-major within
each tile. Tiled traversal requires both image dimensions to be multiples of
the tile size.
*/
package raster

import (
	"errors"
	"image"
	"image/draw"
)

// TileSize is the fixed tile edge length used by the hardware.
const TileSize = 8

var (
	// ErrUnsupportedFormat is returned for pixel buffers that are not
	// three or four channels per pixel.
	ErrUnsupportedFormat = errors.New("raster: image is not in the RGB or RGBA format")

	// ErrUnsupportedDimensions is returned when tiled traversal is
	// requested for an image whose dimensions are not multiples of the
	// tile size.
	ErrUnsupportedDimensions = errors.New("raster: tiled image dimensions must be multiples of 8")

	errBufferSize = errors.New("raster: buffer does not match dimensions")
)

// Image is a decoded image held as a row-major byte buffer with three or
// four interleaved channels per pixel. It is immutable once constructed.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// New wraps an existing pixel buffer for callers holding raw decoder output
// rather than an image.Image; the conversion pipeline itself adapts decoded
// images with FromImage. The buffer must hold exactly width*height*channels
// bytes and channels must be 3 or 4.
func New(width, height, channels int, pix []byte) (*Image, error) {
	if channels != 3 && channels != 4 {
		return nil, ErrUnsupportedFormat
	}
	if width <= 0 || height <= 0 || len(pix) != width*height*channels {
		return nil, errBufferSize
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      pix,
	}, nil
}

// FromImage converts any decoded image into a four channel buffer with the
// top-left corner at (0, 0).
func FromImage(m image.Image) *Image {
	b := m.Bounds()
	nm := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nm, nm.Bounds(), m, b.Min, draw.Src)
	return &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 4,
		Pix:      nm.Pix,
	}
}

// At returns the channels of the pixel at the given row and column. Alpha is
// 0xff for three channel images.
func (p *Image) At(row, col int) (r, g, b, a uint8) {
	i := (row*p.Width + col) * p.Channels
	r, g, b = p.Pix[i], p.Pix[i+1], p.Pix[i+2]
	a = 0xff
	if p.Channels == 4 {
		a = p.Pix[i+3]
	}
	return
}

// Cursor yields every pixel position of an image exactly once in emission
// order. A cursor is single use; each walk needs a fresh one.
type Cursor struct {
	width  int
	height int
	tiled  bool

	row, col int

	// position within the current tile
	tileRow, tileCol int
}

// NewLinear returns a cursor that walks the image row by row, left to right.
func NewLinear(width, height int) *Cursor {
	return &Cursor{width: width, height: height}
}

// NewTiled returns a cursor that walks the image one 8 by 8 tile at a time,
// left to right and top to bottom, row-major within each tile.
func NewTiled(width, height int) (*Cursor, error) {
	if width%TileSize != 0 || height%TileSize != 0 {
		return nil, ErrUnsupportedDimensions
	}
	return &Cursor{width: width, height: height, tiled: true}, nil
}

// Next returns the position of the next pixel to emit. ok is false once
// every pixel has been yielded.
func (c *Cursor) Next() (row, col int, ok bool) {
	if c.row >= c.height {
		return 0, 0, false
	}

	row, col = c.row, c.col

	if !c.tiled {
		c.col++
		if c.col >= c.width {
			c.row++
			c.col = 0
		}
		return row, col, true
	}

	c.col++
	c.tileCol++

	// at the end of a tile row, drop down to the next one
	if c.tileCol >= TileSize {
		c.row++
		c.tileRow++
		c.col -= TileSize
		c.tileCol = 0

		// finished the whole tile, move right to the next tile
		if c.tileRow >= TileSize {
			c.row -= TileSize
			c.tileRow = 0
			c.col += TileSize
		}

		// finished a full band of tiles, start the next band
		if c.col >= c.width {
			c.tileCol = 0
			c.tileRow = 0
			c.col = 0
			c.row += TileSize
		}
	}

	return row, col, true
}
