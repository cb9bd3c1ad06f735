// Package canvas rasterizes filled primitives into a caller-owned buffer of
// packed 32-bit colors.
package canvas

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize = errors.New("canvas: invalid size")
	ErrShortBuffer = errors.New("canvas: buffer too short")
)

// Color is a packed 0xAABBGGRR value. Alpha is stored but never blended.
type Color uint32

// RGBA packs four channel bytes into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }
func (c Color) A() uint8 { return uint8(c >> 24) }

// Canvas is a non-owning view over a row-major pixel buffer.
// Pixels must hold at least Width*Height cells while the view is in use.
type Canvas struct {
	Pixels []uint32
	Width  int
	Height int
}

// Wrap validates pixels against the given dimensions and returns a view over them.
func Wrap(pixels []uint32, width, height int) (Canvas, error) {
	c := Canvas{Pixels: pixels, Width: width, Height: height}
	if err := c.check(); err != nil {
		return Canvas{}, err
	}
	return c, nil
}

// New allocates a zeroed buffer of width*height cells and wraps it.
// Negative dimensions are treated as zero.
func New(width, height int) Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return Canvas{
		Pixels: make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
}

func (c Canvas) check() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if len(c.Pixels) < c.Width*c.Height {
		return fmt.Errorf("%w: have %d cells, need %d", ErrShortBuffer, len(c.Pixels), c.Width*c.Height)
	}
	return nil
}

// Err returns why the view cannot be drawn into, or nil.
func (c Canvas) Err() error {
	return c.check()
}

// Valid reports whether the view can be drawn into.
func (c Canvas) Valid() bool {
	return c.check() == nil
}

// In reports whether (x, y) lies inside the buffer.
func (c Canvas) In(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// At returns the color at (x, y), or 0 outside the buffer.
func (c Canvas) At(x, y int) Color {
	if !c.Valid() || !c.In(x, y) {
		return 0
	}
	return Color(c.Pixels[y*c.Width+x])
}

// Set overwrites a single pixel. Out-of-bounds coordinates are ignored.
func (c Canvas) Set(x, y int, col Color) {
	if !c.Valid() || !c.In(x, y) {
		return
	}
	c.Pixels[y*c.Width+x] = uint32(col)
}

// Fill overwrites every cell with col.
func (c Canvas) Fill(col Color) {
	if !c.Valid() {
		return
	}
	px := c.Pixels[:c.Width*c.Height]
	for i := range px {
		px[i] = uint32(col)
	}
}

// Draw renders s into the canvas.
func (c Canvas) Draw(s Shape, col Color) {
	s.Draw(c, col)
}

// span fills row y from x0 to x1 inclusive. Callers pass clipped bounds.
func (c Canvas) span(y, x0, x1 int, col Color) {
	row := c.Pixels[y*c.Width : (y+1)*c.Width]
	for x := x0; x <= x1; x++ {
		row[x] = uint32(col)
	}
}

// clamp limits [lo, hi] to [0, n-1]. ok is false when nothing remains.
func clamp(lo, hi, n int) (int, int, bool) {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi, lo <= hi
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
