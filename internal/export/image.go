// Package export converts canvases to Go images and hands them to
// third-party encoders.
package export

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"olive-renderer/internal/canvas"
	"olive-renderer/internal/ppm"
)

var ErrScale = errors.New("export: scale too large")

// ToNRGBA copies c into a new non-premultiplied image. Packed 0xAABBGGRR
// colors map byte for byte onto NRGBA's R, G, B, A layout.
func ToNRGBA(c canvas.Canvas) *image.NRGBA {
	if !c.Valid() {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i, p := range c.Pixels[:c.Width*c.Height] {
		col := canvas.Color(p)
		o := i * 4
		img.Pix[o] = col.R()
		img.Pix[o+1] = col.G()
		img.Pix[o+2] = col.B()
		img.Pix[o+3] = col.A()
	}
	return img
}

// FromImage copies src into a newly allocated canvas.
func FromImage(src image.Image) canvas.Canvas {
	n := toNRGBA(src)
	b := n.Bounds()
	c := canvas.New(b.Dx(), b.Dy())
	for y := 0; y < c.Height; y++ {
		off := y * n.Stride
		for x := 0; x < c.Width; x++ {
			i := off + x*4
			c.Pixels[y*c.Width+x] = uint32(canvas.RGBA(n.Pix[i], n.Pix[i+1], n.Pix[i+2], n.Pix[i+3]))
		}
	}
	return c
}

// CheckScale reports whether a w x h image enlarged by factor stays within
// ppm.MaxPixels. Factors <= 1 always pass.
func CheckScale(w, h, factor int) error {
	if factor <= 1 || w <= 0 || h <= 0 {
		return nil
	}
	if factor > ppm.MaxPixels/w || factor > ppm.MaxPixels/h || (w*factor)*(h*factor) > ppm.MaxPixels {
		return fmt.Errorf("%w: %dx%d by %d exceeds %d pixels", ErrScale, w, h, factor, ppm.MaxPixels)
	}
	return nil
}

// Upscale enlarges c by an integer factor with nearest-neighbour sampling,
// keeping hard module edges. factor <= 1 returns c unchanged.
func Upscale(c canvas.Canvas, factor int) (canvas.Canvas, error) {
	if factor <= 1 || !c.Valid() {
		return c, nil
	}
	if err := CheckScale(c.Width, c.Height, factor); err != nil {
		return canvas.Canvas{}, err
	}
	src := ToNRGBA(c)
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width*factor, c.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst), nil
}

// toNRGBA converts any image to NRGBA anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
