package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"olive-renderer/internal/canvas"
)

var ErrFormat = errors.New("ppm: invalid format")

// Header holds the fields declared before the pixel data.
type Header struct {
	Width  int
	Height int
	MaxVal int
}

// ReadHeader parses a P6 header from r, leaving r positioned at the first
// pixel byte. Comments starting with '#' are skipped.
func ReadHeader(r *bufio.Reader) (Header, error) {
	var magic [2]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Header{}, fmt.Errorf("%w: magic: %w", ErrFormat, err)
	}
	if string(magic[:]) != Magic {
		return Header{}, fmt.Errorf("%w: magic %q", ErrFormat, magic[:])
	}

	var h Header
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{"width", &h.Width},
		{"height", &h.Height},
		{"maxval", &h.MaxVal},
	} {
		v, err := readInt(r)
		if err != nil {
			return Header{}, fmt.Errorf("%w: %s: %w", ErrFormat, field.name, err)
		}
		*field.dst = v
	}

	// exactly one whitespace byte separates the header from the raster
	b, err := r.ReadByte()
	if err != nil {
		return Header{}, fmt.Errorf("%w: header end: %w", ErrFormat, err)
	}
	if !isSpace(b) {
		return Header{}, fmt.Errorf("%w: header end %q", ErrFormat, b)
	}
	return h, nil
}

// Decode reads a P6 image with a channel maximum of 255. Decoded pixels
// are fully opaque.
func Decode(r io.Reader) (canvas.Canvas, error) {
	br := bufio.NewReader(r)
	h, err := ReadHeader(br)
	if err != nil {
		return canvas.Canvas{}, err
	}
	if h.MaxVal != MaxVal {
		return canvas.Canvas{}, fmt.Errorf("%w: maxval %d", ErrFormat, h.MaxVal)
	}
	if h.Width*h.Height > MaxPixels {
		return canvas.Canvas{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrFormat, h.Width, h.Height, MaxPixels)
	}

	c := canvas.New(h.Width, h.Height)
	var rgb [3]byte
	for i := range c.Pixels {
		if _, err := io.ReadFull(br, rgb[:]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return canvas.Canvas{}, fmt.Errorf("ppm: pixel %d: %w", i, err)
		}
		c.Pixels[i] = uint32(canvas.RGBA(rgb[0], rgb[1], rgb[2], 0xFF))
	}
	return c, nil
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string) (canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return canvas.Canvas{}, fmt.Errorf("ppm: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return canvas.Canvas{}, fmt.Errorf("ppm: decode %s: %w", path, err)
	}
	return c, nil
}

func readInt(r *bufio.Reader) (int, error) {
	if err := skipSpace(r); err != nil {
		return 0, err
	}
	v, digits := 0, 0
	for {
		b, err := r.ReadByte()
		if err == io.EOF && digits > 0 {
			return v, nil
		}
		if err != nil {
			return 0, err
		}
		if b < '0' || b > '9' {
			if digits == 0 {
				return 0, fmt.Errorf("unexpected byte %q", b)
			}
			return v, r.UnreadByte()
		}
		v = v*10 + int(b-'0')
		if v > 1<<24 {
			return 0, errors.New("value too large")
		}
		digits++
	}
}

// skipSpace consumes whitespace and comments up to the next token.
func skipSpace(r *bufio.Reader) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case isSpace(b):
		case b == '#':
			if _, err := r.ReadBytes('\n'); err != nil {
				return err
			}
		default:
			return r.UnreadByte()
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
