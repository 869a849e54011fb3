package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walk(t *testing.T, c *Cursor) [][2]int {
	t.Helper()

	var out [][2]int
	for {
		row, col, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, [2]int{row, col})
	}

	// a finished cursor stays finished
	_, _, ok := c.Next()
	assert.False(t, ok)

	return out
}

func TestLinearCursor(t *testing.T) {
	got := walk(t, NewLinear(3, 2))
	assert.Equal(t, [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}, got)
}

func TestLinearCursorCoverage(t *testing.T) {
	const w, h = 13, 7

	got := walk(t, NewLinear(w, h))
	require.Len(t, got, w*h)

	seen := make(map[[2]int]struct{})
	for _, p := range got {
		assert.True(t, p[0] >= 0 && p[0] < h && p[1] >= 0 && p[1] < w)
		seen[p] = struct{}{}
	}
	assert.Len(t, seen, w*h)
}

func TestTiledCursorSingleTile(t *testing.T) {
	// one tile degenerates to plain row-major order
	tc, err := NewTiled(8, 8)
	require.NoError(t, err)

	assert.Equal(t, walk(t, NewLinear(8, 8)), walk(t, tc))
}

func TestTiledCursorTileOrder(t *testing.T) {
	tc, err := NewTiled(16, 8)
	require.NoError(t, err)

	got := walk(t, tc)
	require.Len(t, got, 128)

	// the whole left tile comes before any pixel of the right tile
	for i, p := range got[:64] {
		assert.Equal(t, [2]int{i / 8, i % 8}, p)
	}
	for i, p := range got[64:] {
		assert.Equal(t, [2]int{i / 8, i%8 + 8}, p)
	}
}

func TestTiledCursorCoverage(t *testing.T) {
	const w, h = 24, 16

	tc, err := NewTiled(w, h)
	require.NoError(t, err)

	got := walk(t, tc)
	require.Len(t, got, w*h)

	seen := make(map[[2]int]struct{})
	for _, p := range got {
		seen[p] = struct{}{}
	}
	assert.Len(t, seen, w*h)

	// tiles are visited left to right, top to bottom
	assert.Equal(t, [2]int{0, 0}, got[0])
	assert.Equal(t, [2]int{0, 8}, got[64])
	assert.Equal(t, [2]int{0, 16}, got[128])
	assert.Equal(t, [2]int{8, 0}, got[192])
}

func TestTiledCursorDimensions(t *testing.T) {
	for _, table := range [][2]int{
		{10, 8},
		{8, 10},
		{9, 9},
	} {
		_, err := NewTiled(table[0], table[1])
		assert.ErrorIs(t, err, ErrUnsupportedDimensions, fmt.Sprintf("%dx%d", table[0], table[1]))
	}
}

func TestNew(t *testing.T) {
	pix := make([]byte, 2*2*3)
	m, err := New(2, 2, 3, pix)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Channels)

	_, err = New(2, 2, 2, make([]byte, 2*2*2))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(2, 2, 3, make([]byte, 5))
	assert.Error(t, err)
}

func TestAt(t *testing.T) {
	m, err := New(2, 1, 3, []byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	r, g, b, a := m.At(0, 1)
	assert.Equal(t, [4]uint8{4, 5, 6, 0xff}, [4]uint8{r, g, b, a})
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 4, 5))
	src.SetNRGBA(2, 3, color.NRGBA{10, 20, 30, 40})
	src.SetNRGBA(3, 4, color.NRGBA{50, 60, 70, 80})

	m := FromImage(src)
	assert.Equal(t, 2, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 4, m.Channels)

	r, g, b, a := m.At(0, 0)
	assert.Equal(t, [4]uint8{10, 20, 30, 40}, [4]uint8{r, g, b, a})

	r, g, b, a = m.At(1, 1)
	assert.Equal(t, [4]uint8{50, 60, 70, 80}, [4]uint8{r, g, b, a})
}
