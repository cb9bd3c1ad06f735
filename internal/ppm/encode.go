// Package ppm reads and writes the binary PPM ("P6") raster format.
//
// A file is the ASCII header "P6\n<width> <height> 255\n" followed by one
// red, green, blue byte triple per pixel in row-major order, with no padding
// and no trailer.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"olive-renderer/internal/canvas"
)

const (
	// Magic is the format tag that opens every file.
	Magic = "P6"
	// MaxVal is the only channel maximum this package writes or accepts.
	MaxVal = 255
	// MaxPixels bounds width*height accepted by the decoder.
	MaxPixels = 1 << 28
)

// Encode writes c to path, creating or truncating the file.
//
// The file is always closed before Encode returns. A write that fails after
// the header went out is not rolled back, so path may be left truncated.
func Encode(c canvas.Canvas, path string) (err error) {
	if err := c.Err(); err != nil {
		return fmt.Errorf("ppm: encode %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("ppm: close %s: %w", path, cerr)
		}
	}()

	if err := Write(f, c); err != nil {
		return fmt.Errorf("ppm: write %s: %w", path, err)
	}
	return nil
}

// Write streams c to w in P6 format. The alpha channel is dropped.
func Write(w io.Writer, c canvas.Canvas) error {
	if err := c.Err(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d %d\n", Magic, c.Width, c.Height, MaxVal); err != nil {
		return err
	}

	var rgb [3]byte
	for _, p := range c.Pixels[:c.Width*c.Height] {
		col := canvas.Color(p)
		rgb[0] = col.R()
		rgb[1] = col.G()
		rgb[2] = col.B()
		if _, err := bw.Write(rgb[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
