package main

import (
	"flag"
	"fmt"
	"os"

	"olive-renderer/internal/export"
)

func convert(src, dst string, scale int) error {
	c, err := export.Load(src)
	if err != nil {
		return err
	}
	w, h := c.Width, c.Height
	if c, err = export.Upscale(c, scale); err != nil {
		return err
	}
	if err := export.Save(dst, c); err != nil {
		return err
	}
	fmt.Printf("OK  %s (%dx%d) -> %s (%dx%d)\n", src, w, h, dst, c.Width, c.Height)
	return nil
}

func main() {
	scale := flag.Int("scale", 1, "Integer upscale factor")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: oliveconv [-scale N] input output\n\n")
		fmt.Fprintf(os.Stderr, "Reads ppm, png, jpeg, tga, bmp or webp; writes ppm, png, webp, tga or bmp.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := convert(flag.Arg(0), flag.Arg(1), *scale); err != nil {
		fmt.Fprintf(os.Stderr, "ERR %v\n", err)
		os.Exit(1)
	}
}
