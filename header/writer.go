/*
Package header renders a converted image as a C header file.

The layout is fixed: a file comment, width and height defines, the pixel
data as an array of hex literals eight per line, and for indexed images a
palette array nine per line with every slot emitted, used or not. The
grouping and padding must not change as generated headers are compared
byte for byte.
*/
package header

import (
	"fmt"
	"io"

	"github.com/chrisstone/png2gba/rgb15"
)

const valuesPerLine = 8

// Writer emits a C header for one converted image. Methods are called in
// order: Preamble, one call per pixel value, Close, then Palette for indexed
// images.
type Writer struct {
	w     io.Writer
	count int
}

// New returns a Writer emitting to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Preamble writes the file comment, the width and height defines and opens
// the data array. Indexed images store 8-bit palette indices, direct color
// images store 16-bit packed colors.
func (h *Writer) Preamble(name string, width, height int, indexed bool) error {
	ctype := "unsigned short"
	if indexed {
		ctype = "unsigned char"
	}

	if _, err := fmt.Fprintf(h.w, "/* %s.h\n * generated by png2gba */\n\n", name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(h.w, "#define %s_width %d\n#define %s_height %d\n\n", name, width, name, height); err != nil {
		return err
	}
	_, err := fmt.Fprintf(h.w, "const %s %s_data [] = {\n", ctype, name)
	return err
}

func (h *Writer) value(literal string) error {
	if h.count == 0 {
		if _, err := io.WriteString(h.w, "    "); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(h.w, literal+", "); err != nil {
		return err
	}

	h.count++
	if h.count >= valuesPerLine {
		if _, err := io.WriteString(h.w, "\n"); err != nil {
			return err
		}
		h.count = 0
	}
	return nil
}

// Color writes one direct color literal.
func (h *Writer) Color(c rgb15.Color) error {
	return h.value(fmt.Sprintf("0x%04X", uint16(c)))
}

// Index writes one palette index literal.
func (h *Writer) Index(i uint8) error {
	return h.value(fmt.Sprintf("0x%02X", i))
}

// Close terminates the data array.
func (h *Writer) Close() error {
	h.count = 0
	_, err := io.WriteString(h.w, "\n};\n\n")
	return err
}

// Palette writes the full palette table. The last entry has no trailing
// separator and the literals are lowercase, unlike the pixel data.
func (h *Writer) Palette(name string, colors []rgb15.Color) error {
	if _, err := fmt.Fprintf(h.w, "const unsigned short %s_palette [] = {\n", name); err != nil {
		return err
	}

	count := 0
	for i, c := range colors {
		if count == 0 {
			if _, err := io.WriteString(h.w, "    "); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(h.w, "0x%04x", uint16(c)); err != nil {
			return err
		}
		if i != len(colors)-1 {
			if _, err := io.WriteString(h.w, ", "); err != nil {
				return err
			}
		}

		count++
		if count > valuesPerLine {
			if _, err := io.WriteString(h.w, "\n"); err != nil {
				return err
			}
			count = 0
		}
	}

	_, err := io.WriteString(h.w, "\n};\n\n")
	return err
}
