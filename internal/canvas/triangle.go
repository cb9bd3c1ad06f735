package canvas

// FillTriangle overwrites every in-bounds pixel whose centre lies inside t or
// on one of its edges. Either winding order is accepted; a triangle with zero
// area draws nothing.
//
// Vertices are doubled so that pixel centres (x+0.5, y+0.5) become the odd
// integers 2x+1, 2y+1 and every edge test stays in exact integer arithmetic.
func (c Canvas) FillTriangle(t Triangle, col Color) {
	if !c.Valid() {
		return
	}

	ax, ay := 2*t.X1, 2*t.Y1
	bx, by := 2*t.X2, 2*t.Y2
	cx, cy := 2*t.X3, 2*t.Y3

	area := edge(ax, ay, bx, by, cx, cy)
	if area == 0 {
		return
	}
	if area < 0 {
		bx, by, cx, cy = cx, cy, bx, by
	}

	// Bounding box
	minX, maxX, ok := clamp(min(t.X1, t.X2, t.X3), max(t.X1, t.X2, t.X3), c.Width)
	if !ok {
		return
	}
	minY, maxY, ok := clamp(min(t.Y1, t.Y2, t.Y3), max(t.Y1, t.Y2, t.Y3), c.Height)
	if !ok {
		return
	}

	// Edge values at the centre of (minX, minY) and their per-pixel deltas.
	px, py := 2*minX+1, 2*minY+1
	w0row := edge(bx, by, cx, cy, px, py)
	w1row := edge(cx, cy, ax, ay, px, py)
	w2row := edge(ax, ay, bx, by, px, py)
	w0dx, w0dy := -2*(cy-by), 2*(cx-bx)
	w1dx, w1dy := -2*(ay-cy), 2*(ax-cx)
	w2dx, w2dy := -2*(by-ay), 2*(bx-ax)

	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := w0row, w1row, w2row
		row := c.Pixels[y*c.Width : (y+1)*c.Width]
		for x := minX; x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				row[x] = uint32(col)
			}
			w0 += w0dx
			w1 += w1dx
			w2 += w2dx
		}
		w0row += w0dy
		w1row += w1dy
		w2row += w2dy
	}
}

// edge returns twice the signed area of the triangle (a, b, p).
func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}
