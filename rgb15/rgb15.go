/*
Package rgb15 implements the packed 15-bit color format used by the GBA
display hardware.

A color occupies the low 15 bits of a 16-bit value with five bits per
channel, laid out as bbbbbgggggrrrrr. Converting from 24-bit color discards
the low three bits of each channel.
*/
package rgb15

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// ErrMalformed is returned by ParseHex for anything that is not a "#RRGGBB"
// hex color string.
var ErrMalformed = errors.New("rgb15: malformed hex color")

// Color is a packed 15-bit BGR color.
type Color uint16

// Quantize packs an 8-bit-per-channel color into 15 bits, discarding the low
// three bits of each channel.
func Quantize(r, g, b uint8) Color {
	return Color(b>>3)<<10 | Color(g>>3)<<5 | Color(r>>3)
}

// FromColor converts any color.Color, ignoring alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Quantize(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseHex converts a "#RRGGBB" string into a packed color. Exactly six hex
// digits after the leading "#" are accepted.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return Quantize(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// RGBA implements color.Color. The low three bits of each channel are zero.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c&0x1f) << 3
	r |= r << 8
	g = uint32(c>>5&0x1f) << 3
	g |= g << 8
	b = uint32(c>>10&0x1f) << 3
	b |= b << 8
	return r, g, b, 0xffff
}
