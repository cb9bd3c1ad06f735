package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const white Color = 0xFFFFFFFF

// setCells returns the coordinates of every pixel equal to col, row by row.
func setCells(c Canvas, col Color) [][2]int {
	var out [][2]int
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y) == col {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func TestColorChannels(t *testing.T) {
	c := Color(0xFF2020FF)
	assert.Equal(t, uint8(0xFF), c.R())
	assert.Equal(t, uint8(0x20), c.G())
	assert.Equal(t, uint8(0x20), c.B())
	assert.Equal(t, uint8(0xFF), c.A())
	assert.Equal(t, c, RGBA(0xFF, 0x20, 0x20, 0xFF))
	assert.Equal(t, Color(0x04030201), RGBA(1, 2, 3, 4))
}

func TestWrap(t *testing.T) {
	buf := make([]uint32, 12)

	c, err := Wrap(buf, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Width)
	assert.True(t, c.Valid())

	_, err = Wrap(buf, 4, 4)
	assert.ErrorIs(t, err, ErrShortBuffer)

	_, err = Wrap(buf, -1, 4)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.ErrorIs(t, Canvas{Width: 1, Height: -1}.Err(), ErrInvalidSize)
	assert.ErrorIs(t, Canvas{Width: 2, Height: 2}.Err(), ErrShortBuffer)
	assert.NoError(t, New(2, 2).Err())

	c, err = Wrap(nil, 0, 0)
	require.NoError(t, err)
	c.Fill(white)
}

func TestWrapSharesStorage(t *testing.T) {
	buf := make([]uint32, 4)
	c, err := Wrap(buf, 2, 2)
	require.NoError(t, err)
	c.Set(1, 1, white)
	assert.Equal(t, uint32(white), buf[3])
}

func TestFill(t *testing.T) {
	sizes := [][2]int{{0, 0}, {0, 5}, {5, 0}, {1, 1}, {7, 3}}
	for _, s := range sizes {
		c := New(s[0], s[1])
		c.Fill(0xFF123456)
		for i, p := range c.Pixels {
			require.Equal(t, uint32(0xFF123456), p, "size %v cell %d", s, i)
		}
	}
}

func TestFillLeavesSurplusAlone(t *testing.T) {
	buf := make([]uint32, 6)
	c, err := Wrap(buf, 2, 2)
	require.NoError(t, err)
	c.Fill(white)
	assert.Equal(t, []uint32{0, 0}, buf[4:])
}

func TestInvalidViewIsNoop(t *testing.T) {
	buf := make([]uint32, 3)
	c := Canvas{Pixels: buf, Width: 2, Height: 2}
	assert.False(t, c.Valid())

	c.Fill(white)
	c.FillRect(Rectangle{0, 0, 2, 2}, white)
	c.FillCircle(Circle{1, 1, 5}, white)
	c.DrawLine(Line{0, 0, 1, 1}, white)
	c.FillTriangle(Triangle{0, 0, 2, 0, 0, 2}, white)
	c.Set(0, 0, white)

	assert.Equal(t, []uint32{0, 0, 0}, buf)
	assert.Equal(t, Color(0), c.At(0, 0))
}

func TestSetAtClip(t *testing.T) {
	c := New(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-100, 100}} {
		c.Set(p[0], p[1], white)
		assert.Equal(t, Color(0), c.At(p[0], p[1]))
	}
	assert.Empty(t, setCells(c, white))
}

func TestDrawShape(t *testing.T) {
	shapes := []Shape{
		Rectangle{0, 0, 2, 2},
		Circle{5, 5, 1},
		Line{0, 9, 9, 9},
		Triangle{6, 0, 9, 0, 9, 3},
	}
	a := New(10, 10)
	b := New(10, 10)
	for _, s := range shapes {
		a.Draw(s, white)
	}
	b.FillRect(Rectangle{0, 0, 2, 2}, white)
	b.FillCircle(Circle{5, 5, 1}, white)
	b.DrawLine(Line{0, 9, 9, 9}, white)
	b.FillTriangle(Triangle{6, 0, 9, 0, 9, 3}, white)
	assert.Equal(t, b.Pixels, a.Pixels)
}
