package canvas

// Shape is any primitive that can be rasterized into a Canvas.
type Shape interface {
	Draw(c Canvas, col Color)
}

// Rectangle is anchored at (X0, Y0). A negative W or H extends the
// rectangle left or up from the anchor instead of right or down.
type Rectangle struct {
	X0, Y0 int
	W, H   int
}

// Circle is centred on (CX, CY). A negative R behaves like |R|.
type Circle struct {
	CX, CY int
	R      int
}

type Line struct {
	X1, Y1 int
	X2, Y2 int
}

type Triangle struct {
	X1, Y1 int
	X2, Y2 int
	X3, Y3 int
}

func (r Rectangle) Draw(c Canvas, col Color) { c.FillRect(r, col) }
func (ci Circle) Draw(c Canvas, col Color)   { c.FillCircle(ci, col) }
func (l Line) Draw(c Canvas, col Color)      { c.DrawLine(l, col) }
func (t Triangle) Draw(c Canvas, col Color)  { c.FillTriangle(t, col) }

// Normalize returns the inclusive corner coordinates covered by r, ordered
// so that x1 <= x2 and y1 <= y2. ok is false for zero width or height.
func (r Rectangle) Normalize() (x1, y1, x2, y2 int, ok bool) {
	if r.W == 0 || r.H == 0 {
		return 0, 0, 0, 0, false
	}
	x1 = r.X0
	x2 = r.X0 + sign(r.W)*(abs(r.W)-1)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1 = r.Y0
	y2 = r.Y0 + sign(r.H)*(abs(r.H)-1)
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return x1, y1, x2, y2, true
}
