package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Format selects an output encoder.
type Format int

const (
	PPM Format = iota
	PNG
	WebP
	TGA
	BMP
)

var formatNames = [...]string{
	PPM:  "ppm",
	PNG:  "png",
	WebP: "webp",
	TGA:  "tga",
	BMP:  "bmp",
}

// Formats lists every supported format in declaration order.
func Formats() []Format {
	return []Format{PPM, PNG, WebP, TGA, BMP}
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat maps a case-insensitive name such as "png" or ".ppm" to a Format.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimPrefix(name, "."))
	if n == "jpg" || n == "jpeg" {
		return 0, fmt.Errorf("%w: %q is decode-only", ErrUnknownFormat, name)
	}
	for f, s := range formatNames {
		if s == n {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the Format matching path's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
