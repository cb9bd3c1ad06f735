package scene

import (
	"math"

	"olive-renderer/internal/canvas"
)

const (
	width  = 800
	height = 600

	cols       = 8
	rows       = 6
	cellWidth  = width / cols
	cellHeight = height / rows
)

// Checker is an 8x6 board of alternating cells.
func Checker() Scene {
	return Scene{
		Name:   "checker",
		Width:  width,
		Height: height,
		Draw: func(c canvas.Canvas) {
			c.Fill(Background)
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					col := Background
					if (x+y)%2 == 0 {
						col = Foreground
					}
					c.FillRect(canvas.Rectangle{
						X0: x * cellWidth,
						Y0: y * cellHeight,
						W:  cellWidth,
						H:  cellHeight,
					}, col)
				}
			}
		},
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Circles puts one circle in every cell, growing towards the bottom right.
func Circles() Scene {
	return Scene{
		Name:   "circle",
		Width:  width,
		Height: height,
		Draw: func(c canvas.Canvas) {
			c.Fill(Background)
			radius := min(cellWidth, cellHeight)
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					u := float64(x) / cols
					v := float64(y) / rows
					t := (u + v) / 2
					c.FillCircle(canvas.Circle{
						CX: x*cellWidth + cellWidth/2,
						CY: y*cellHeight + cellHeight/2,
						R:  int(lerp(float64(radius/8), float64(radius/2), t)),
					}, Foreground)
				}
			}
		},
	}
}

// Lines draws both diagonals, four steep lines and a centre cross.
func Lines() Scene {
	return Scene{
		Name:   "lines",
		Width:  width,
		Height: height,
		Draw: func(c canvas.Canvas) {
			c.Fill(Background)
			c.DrawLine(canvas.Line{X1: 0, Y1: 0, X2: width, Y2: height}, Foreground)
			c.DrawLine(canvas.Line{X1: width, Y1: 0, X2: 0, Y2: height}, Foreground)

			c.DrawLine(canvas.Line{X1: 0, Y1: 0, X2: width / 4, Y2: height}, Green)
			c.DrawLine(canvas.Line{X1: width / 4, Y1: 0, X2: 0, Y2: height}, Green)
			c.DrawLine(canvas.Line{X1: width, Y1: 0, X2: width / 4 * 3, Y2: height}, Green)
			c.DrawLine(canvas.Line{X1: width / 4 * 3, Y1: 0, X2: width, Y2: height}, Green)

			c.DrawLine(canvas.Line{X1: 0, Y1: height / 2, X2: width, Y2: height / 2}, Blue)
			c.DrawLine(canvas.Line{X1: width / 2, Y1: 0, X2: width / 2, Y2: height}, Blue)
		},
	}
}

// Triangle is the upright triangle of the browser demo.
func Triangle() Scene {
	s := RotatedTriangle(0)
	s.Name = "triangle"
	return s
}

// RotatedTriangle turns the demo triangle by angle radians about the
// canvas centre. The rotation happens here, before rasterization.
func RotatedTriangle(angle float64) Scene {
	pts := [3][2]int{
		{width / 2, height / 8},
		{width / 8, height / 2},
		{width * 7 / 8, height * 7 / 8},
	}
	if angle != 0 {
		sin, cos := math.Sincos(angle)
		cx, cy := float64(width)/2, float64(height)/2
		for i, p := range pts {
			dx, dy := float64(p[0])-cx, float64(p[1])-cy
			pts[i] = [2]int{
				int(math.Round(cx + dx*cos - dy*sin)),
				int(math.Round(cy + dx*sin + dy*cos)),
			}
		}
	}
	return Scene{
		Name:   "triangle-rotated",
		Width:  width,
		Height: height,
		Draw: func(c canvas.Canvas) {
			c.Fill(Background)
			c.FillTriangle(canvas.Triangle{
				X1: pts[0][0], Y1: pts[0][1],
				X2: pts[1][0], Y2: pts[1][1],
				X3: pts[2][0], Y3: pts[2][1],
			}, 0xFF2020AA)
		},
	}
}
