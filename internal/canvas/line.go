package canvas

// DrawLine rasterizes l as a run of vertical column spans.
//
// For a non-vertical line the slope dy/dx and intercept c = y1 - dy*x1/dx are
// evaluated with truncating integer division, and column x is filled between
// the line's values at x and x+1. Strokes look solid at any slope but are not
// sub-pixel accurate. A vertical line fills its single column.
func (c Canvas) DrawLine(l Line, col Color) {
	if !c.Valid() {
		return
	}

	dx := l.X2 - l.X1
	dy := l.Y2 - l.Y1

	if dx == 0 {
		x := l.X1
		if x < 0 || x >= c.Width {
			return
		}
		y1, y2 := l.Y1, l.Y2
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		c.column(x, y1, y2, col)
		return
	}

	k := l.Y1 - dy*l.X1/dx

	x1, x2 := l.X1, l.X2
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1, x2, ok := clamp(x1, x2, c.Width)
	if !ok {
		return
	}
	for x := x1; x <= x2; x++ {
		sy1 := dy*x/dx + k
		sy2 := dy*(x+1)/dx + k
		if sy1 > sy2 {
			sy1, sy2 = sy2, sy1
		}
		c.column(x, sy1, sy2, col)
	}
}

// column fills rows y1..y2 of column x, clipping rows to the buffer.
// x must already be in bounds.
func (c Canvas) column(x, y1, y2 int, col Color) {
	y1, y2, ok := clamp(y1, y2, c.Height)
	if !ok {
		return
	}
	for y := y1; y <= y2; y++ {
		c.Pixels[y*c.Width+x] = uint32(col)
	}
}
