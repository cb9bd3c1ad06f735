package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"olive-renderer/internal/canvas"
	"olive-renderer/internal/ppm"
)

// Save writes c to path in the format named by its extension.
func Save(path string, c canvas.Canvas) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return SaveAs(path, c, f)
}

// SaveAs writes c to path using format f regardless of the extension.
// The destination is closed on every return path.
func SaveAs(path string, c canvas.Canvas, f Format) (err error) {
	if f == PPM {
		return ppm.Encode(c, path)
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	if err := Encode(out, c, f); err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return nil
}

// Encode writes c to w using format f.
func Encode(w io.Writer, c canvas.Canvas, f Format) error {
	if f == PPM {
		return ppm.Write(w, c)
	}

	img := ToNRGBA(c)
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
		return nil
	case TGA:
		return tga.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Load decodes the image at path into a new canvas. PPM files go through
// the ppm package; png, jpeg, tga, bmp and webp through their decoders.
func Load(path string) (canvas.Canvas, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ppm" {
		return ppm.DecodeFile(path)
	}

	var decode func(io.Reader) (image.Image, error)
	switch ext {
	case ".png":
		decode = png.Decode
	case ".jpg", ".jpeg":
		decode = jpeg.Decode
	case ".tga":
		decode = tga.Decode
	case ".bmp":
		decode = bmp.Decode
	case ".webp":
		decode = webp.Decode
	default:
		return canvas.Canvas{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return canvas.Canvas{}, fmt.Errorf("export: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return canvas.Canvas{}, fmt.Errorf("export: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}
