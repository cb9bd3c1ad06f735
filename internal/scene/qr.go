package scene

import "olive-renderer/internal/canvas"

const (
	qrSize = 21

	qrBlack canvas.Color = 0xFF000000
	qrWhite canvas.Color = 0xFFFFFFFF
	qrFill  canvas.Color = 0xFFFEEE00
)

// Level is a QR error correction level.
type Level byte

const (
	LevelL Level = 'l'
	LevelM Level = 'm'
	LevelQ Level = 'q'
	LevelH Level = 'h'
)

// QR draws the fixed structure of a version 1 (21x21) QR symbol: finder
// patterns, timing patterns, the dark module and the format bits for the
// given error correction level with mask 1. Data modules are left unset.
func QR(level Level) Scene {
	return Scene{
		Name:   "qr",
		Width:  qrSize,
		Height: qrSize,
		Draw: func(c canvas.Canvas) {
			drawQR(c, level)
		},
	}
}

func module(c canvas.Canvas, x, y, w, h int, col canvas.Color) {
	c.FillRect(canvas.Rectangle{X0: x, Y0: y, W: w, H: h}, col)
}

func finder(c canvas.Canvas, x, y int) {
	module(c, x, y, 7, 7, qrBlack)
	module(c, x+1, y+1, 5, 5, qrWhite)
	module(c, x+2, y+2, 3, 3, qrBlack)
}

func drawQR(c canvas.Canvas, level Level) {
	c.Fill(qrFill)

	// Finder patterns with their white separators
	module(c, 0, 0, 8, 8, qrWhite)
	finder(c, 0, 0)
	module(c, qrSize-8, 0, 8, 8, qrWhite)
	finder(c, qrSize-7, 0)
	module(c, 0, qrSize-8, 8, 8, qrWhite)
	finder(c, 0, qrSize-7)

	// Dark module
	module(c, 8, 13, 1, 1, qrBlack)

	// Timing patterns
	for i := 8; i <= 12; i++ {
		col := qrWhite
		if i%2 == 0 {
			col = qrBlack
		}
		module(c, i, 6, 1, 1, col)
		module(c, 6, i, 1, 1, col)
	}

	// Error correction level; M is all white
	module(c, 0, 8, 2, 1, qrWhite)
	module(c, 8, 19, 1, 2, qrWhite)
	switch level {
	case LevelQ:
		module(c, 0, 8, 2, 1, qrBlack)
		module(c, 8, 19, 1, 2, qrBlack)
	case LevelH:
		module(c, 0, 8, 1, 1, qrBlack)
		module(c, 8, 20, 1, 1, qrBlack)
	case LevelL:
		module(c, 1, 8, 1, 1, qrBlack)
		module(c, 8, 19, 1, 1, qrBlack)
	}

	// Mask pattern 1
	module(c, 2, 8, 3, 1, qrBlack)
	module(c, 8, 16, 1, 3, qrBlack)

	// Format error correction bits
	module(c, 5, 8, 1, 1, qrWhite)

	module(c, 7, 8, 1, 1, qrBlack)
	module(c, 8, 8, 1, 1, qrWhite)
	module(c, 8, 7, 1, 1, qrBlack)

	module(c, 8, 4, 1, 2, qrBlack)
	module(c, 8, 3, 1, 1, qrWhite)
	module(c, 8, 1, 1, 2, qrBlack)
	module(c, 8, 0, 1, 1, qrWhite)

	module(c, 13, 8, 1, 1, qrWhite)
	module(c, 14, 8, 3, 1, qrBlack)
	module(c, 17, 8, 1, 1, qrWhite)
	module(c, 18, 8, 2, 1, qrBlack)
	module(c, 20, 8, 1, 1, qrWhite)

	module(c, 8, 14, 1, 1, qrBlack)
	module(c, 8, 15, 1, 1, qrWhite)
}
