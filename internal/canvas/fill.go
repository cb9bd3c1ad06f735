package canvas

import "math/bits"

// FillRect overwrites every in-bounds cell covered by r.
func (c Canvas) FillRect(r Rectangle, col Color) {
	if !c.Valid() {
		return
	}
	x1, y1, x2, y2, ok := r.Normalize()
	if !ok {
		return
	}
	if x1, x2, ok = clamp(x1, x2, c.Width); !ok {
		return
	}
	if y1, y2, ok = clamp(y1, y2, c.Height); !ok {
		return
	}
	for y := y1; y <= y2; y++ {
		c.span(y, x1, x2, col)
	}
}

// FillCircle overwrites every in-bounds cell whose squared distance from the
// centre is at most R*R.
func (c Canvas) FillCircle(ci Circle, col Color) {
	if !c.Valid() {
		return
	}
	r := abs(ci.R)
	if r == 0 {
		return
	}
	// No cell is farther from the centre than its farthest corner in
	// Manhattan distance, so larger radii cover the same cells.
	reach := max(abs(ci.CX), abs(ci.CX-(c.Width-1))) + max(abs(ci.CY), abs(ci.CY-(c.Height-1)))
	r = min(r, reach)

	x1, x2, ok := clamp(ci.CX-r, ci.CX+r, c.Width)
	if !ok {
		return
	}
	y1, y2, ok := clamp(ci.CY-r, ci.CY+r, c.Height)
	if !ok {
		return
	}

	// Within the bounding square dx*dx+dy*dy <= 2*r*r, which fits in an
	// int below 1<<31; beyond that the test is done in 128 bits.
	if r >= 1<<31 {
		for y := y1; y <= y2; y++ {
			row := c.Pixels[y*c.Width : (y+1)*c.Width]
			for x := x1; x <= x2; x++ {
				if inCircleWide(x-ci.CX, y-ci.CY, r) {
					row[x] = uint32(col)
				}
			}
		}
		return
	}

	rr := r * r
	for y := y1; y <= y2; y++ {
		dy := y - ci.CY
		row := c.Pixels[y*c.Width : (y+1)*c.Width]
		for x := x1; x <= x2; x++ {
			dx := x - ci.CX
			if dx*dx+dy*dy <= rr {
				row[x] = uint32(col)
			}
		}
	}
}

// inCircleWide reports dx*dx+dy*dy <= r*r without overflow.
func inCircleWide(dx, dy, r int) bool {
	ux, uy, ur := uint64(abs(dx)), uint64(abs(dy)), uint64(r)
	xh, xl := bits.Mul64(ux, ux)
	yh, yl := bits.Mul64(uy, uy)
	sl, carry := bits.Add64(xl, yl, 0)
	sh, _ := bits.Add64(xh, yh, carry)
	rh, rl := bits.Mul64(ur, ur)
	return sh < rh || (sh == rh && sl <= rl)
}
