package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillRectCentre(t *testing.T) {
	c := New(4, 4)
	c.FillRect(Rectangle{X0: 1, Y0: 1, W: 2, H: 2}, white)
	assert.Equal(t, [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}, setCells(c, white))
	assert.Len(t, setCells(c, 0), 12)
}

func TestFillRectClipsLeft(t *testing.T) {
	c := New(4, 1)
	c.FillRect(Rectangle{X0: -2, Y0: 0, W: 4, H: 1}, white)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}}, setCells(c, white))
}

func TestFillRectZero(t *testing.T) {
	c := New(4, 4)
	c.FillRect(Rectangle{X0: 1, Y0: 1, W: 0, H: 3}, white)
	c.FillRect(Rectangle{X0: 1, Y0: 1, W: 3, H: 0}, white)
	assert.Empty(t, setCells(c, white))
}

func TestFillRectNegativeMatchesReanchored(t *testing.T) {
	cases := []Rectangle{
		{X0: 5, Y0: 5, W: -3, H: 2},
		{X0: 5, Y0: 5, W: 3, H: -2},
		{X0: 5, Y0: 5, W: -3, H: -4},
		{X0: 0, Y0: 0, W: -5, H: -5},
		{X0: 9, Y0: 1, W: -12, H: 1},
		{X0: 2, Y0: 2, W: -1, H: -1},
	}
	for _, r := range cases {
		want := r
		if want.W < 0 {
			want.X0 = r.X0 + r.W + 1
			want.W = -r.W
		}
		if want.H < 0 {
			want.Y0 = r.Y0 + r.H + 1
			want.H = -r.H
		}

		a := New(10, 10)
		b := New(10, 10)
		a.FillRect(r, white)
		b.FillRect(want, white)
		assert.Equal(t, b.Pixels, a.Pixels, "%+v vs %+v", r, want)
		assert.NotEqual(t, New(10, 10).Pixels, a.Pixels, "%+v drew nothing", r)
	}
}

func TestFillRectOutside(t *testing.T) {
	c := New(4, 4)
	for _, r := range []Rectangle{
		{X0: -10, Y0: 0, W: 5, H: 4},
		{X0: 4, Y0: 0, W: 5, H: 4},
		{X0: 0, Y0: -10, W: 4, H: 5},
		{X0: 0, Y0: 4, W: 4, H: 5},
		{X0: 100, Y0: 100, W: -50, H: -50},
	} {
		c.FillRect(r, white)
	}
	assert.Empty(t, setCells(c, white))

	c.FillRect(Rectangle{X0: -1 << 20, Y0: -1 << 20, W: 1 << 21, H: 1 << 21}, white)
	assert.Len(t, setCells(c, white), 16)
}

func TestFillCircleMembership(t *testing.T) {
	cases := []Circle{
		{CX: 5, CY: 5, R: 3},
		{CX: 0, CY: 0, R: 4},
		{CX: 9, CY: 2, R: 6},
		{CX: -2, CY: 5, R: 3},
		{CX: 5, CY: 5, R: 1},
		{CX: 5, CY: 5, R: 20},
	}
	for _, ci := range cases {
		c := New(10, 10)
		c.FillCircle(ci, white)
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				dx, dy := x-ci.CX, y-ci.CY
				in := dx*dx+dy*dy <= ci.R*ci.R
				assert.Equal(t, in, c.At(x, y) == white, "%+v at (%d,%d)", ci, x, y)
			}
		}
	}
}

func TestFillCircleRadiusOne(t *testing.T) {
	c := New(3, 3)
	c.FillCircle(Circle{CX: 1, CY: 1, R: 1}, white)
	assert.Equal(t, [][2]int{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}, setCells(c, white))
}

func TestFillCircleZeroRadius(t *testing.T) {
	c := New(4, 4)
	c.FillCircle(Circle{CX: 2, CY: 2, R: 0}, white)
	assert.Empty(t, setCells(c, white))
}

func TestFillCircleNegativeRadius(t *testing.T) {
	a := New(10, 10)
	b := New(10, 10)
	a.FillCircle(Circle{CX: 4, CY: 4, R: -3}, white)
	b.FillCircle(Circle{CX: 4, CY: 4, R: 3}, white)
	assert.Equal(t, b.Pixels, a.Pixels)
}

func TestFillCircleHugeRadius(t *testing.T) {
	c := New(4, 4)
	c.FillCircle(Circle{CX: 2, CY: 2, R: 1 << 40}, white)
	assert.Len(t, setCells(c, white), 16)

	c = New(4, 4)
	c.FillCircle(Circle{CX: 1, CY: 1, R: -(1 << 62)}, white)
	assert.Len(t, setCells(c, white), 16)
}

func TestFillCircleFarCentreExact(t *testing.T) {
	// (2^40-x)^2 + y^2 <= (2^40-1)^2 holds at x=1 only for y=0
	c := New(4, 4)
	c.FillCircle(Circle{CX: 1 << 40, CY: 0, R: 1<<40 - 1}, white)
	want := [][2]int{
		{1, 0}, {2, 0}, {3, 0},
		{2, 1}, {3, 1},
		{2, 2}, {3, 2},
		{2, 3}, {3, 3},
	}
	assert.Equal(t, want, setCells(c, white))

	c = New(4, 4)
	c.FillCircle(Circle{CX: 1 << 40, CY: 0, R: 1<<40 - 2}, white)
	assert.Equal(t, [][2]int{{2, 0}, {3, 0}, {3, 1}, {3, 2}, {3, 3}}, setCells(c, white))
}

func TestFillCircleFarOutside(t *testing.T) {
	c := New(4, 4)
	c.FillCircle(Circle{CX: 100, CY: 100, R: 10}, white)
	c.FillCircle(Circle{CX: -100, CY: 2, R: 10}, white)
	assert.Empty(t, setCells(c, white))
}
