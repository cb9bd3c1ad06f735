// Package scene holds the demo pictures drawn with the canvas primitives.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"olive-renderer/internal/canvas"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

const (
	Background canvas.Color = 0xFF202020
	Foreground canvas.Color = 0xFF2020FF
	Green      canvas.Color = 0xFF20FF20
	Blue       canvas.Color = 0xFFFF2020
)

// Scene draws a fixed picture into a canvas of its own size.
type Scene struct {
	Name   string
	Width  int
	Height int
	Draw   func(c canvas.Canvas)
}

var registry = map[string]Scene{}

func register(s Scene) {
	registry[s.Name] = s
}

func init() {
	register(Checker())
	register(Circles())
	register(Lines())
	register(Triangle())
	register(QR(LevelH))
}

// All returns every registered scene ordered by name.
func All() []Scene {
	out := make([]Scene, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the scene registered under name.
func Lookup(name string) (Scene, error) {
	s, ok := registry[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return s, nil
}

// Render allocates a buffer sized for s and draws s into it.
func Render(s Scene) canvas.Canvas {
	c := canvas.New(s.Width, s.Height)
	if s.Draw != nil {
		s.Draw(c)
	}
	return c
}
