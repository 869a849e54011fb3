/*
Package palette implements the bounded color table used by indexed GBA
images.

Colors are assigned indices in insertion order, so looking up a color that
has been seen before always yields the index of its first occurrence. Index 0
conventionally holds the transparent colorkey and is inserted by the caller
before any image pixel. The hardware format keeps the final slot free, so a
table of capacity max holds at most max-1 colors.
*/
package palette

import (
	"errors"

	"github.com/chrisstone/png2gba/rgb15"
)

// ErrOverflow is returned by Insert when the table cannot hold another
// color. There is no way to represent the extra color in the output format
// so the whole conversion has to be abandoned.
var ErrOverflow = errors.New("palette: too many colors")

// Builder deduplicates quantized colors into a bounded table. The zero value
// is not usable; use New.
type Builder struct {
	colors []rgb15.Color
	max    int
}

// New returns an empty Builder with room for max colors. Callers validate
// that max is one of the sizes the hardware supports (16 or 256) before
// constructing the Builder.
func New(max int) *Builder {
	return &Builder{
		colors: make([]rgb15.Color, 0, max),
		max:    max,
	}
}

// Insert returns the index assigned to c, adding it to the table if it has
// not been seen before.
func (b *Builder) Insert(c rgb15.Color) (uint8, error) {
	for i, e := range b.colors {
		if e == c {
			return uint8(i), nil
		}
	}

	if len(b.colors) >= b.max-1 {
		return 0, ErrOverflow
	}

	b.colors = append(b.colors, c)
	return uint8(len(b.colors) - 1), nil
}

// Len returns the number of colors inserted so far.
func (b *Builder) Len() int {
	return len(b.colors)
}

// Colors returns all max slots in index order, with unused slots zero
// filled.
func (b *Builder) Colors() []rgb15.Color {
	out := make([]rgb15.Color, b.max)
	copy(out, b.colors)
	return out
}
