package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olive-renderer/internal/canvas"
	"olive-renderer/internal/export"
	"olive-renderer/internal/ppm"
	"olive-renderer/internal/scene"
)

func square(name string, col canvas.Color) scene.Scene {
	return scene.Scene{
		Name:   name,
		Width:  3,
		Height: 2,
		Draw:   func(c canvas.Canvas) { c.Fill(col) },
	}
}

func TestRunWritesEveryFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir: dir,
		Formats:   []export.Format{export.PPM, export.PNG},
		Workers:   2,
	}
	scenes := []scene.Scene{square("a", 0xFF0000FF), square("b", 0xFF00FF00), square("c", 0xFFFF0000)}

	results := Run(context.Background(), cfg, scenes...)
	require.Len(t, results, 6)
	for i, r := range results {
		assert.True(t, r.Success, r.Error)
		assert.Equal(t, scenes[i/2].Name, r.Scene)
		assert.FileExists(t, r.Path)
	}

	c, err := ppm.DecodeFile(filepath.Join(dir, "b.ppm"))
	require.NoError(t, err)
	assert.Equal(t, canvas.Color(0xFF00FF00), c.At(2, 1))
}

func TestRunScale(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir: dir,
		Scenes:    []scene.Scene{square("big", 0xFFFFFFFF)},
		Formats:   []export.Format{export.PPM},
		ScaleFor:  func(string) int { return 4 },
	}
	results := Run(context.Background(), cfg)
	require.Len(t, results, 1)
	require.True(t, results[0].Success)

	c, err := ppm.DecodeFile(results[0].Path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 8, c.Height)
}

func TestRunScaleTooLarge(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir: dir,
		Formats:   []export.Format{export.PPM, export.PNG},
		ScaleFor:  func(string) int { return 1 << 40 },
	}
	results := Run(context.Background(), cfg, square("huge", 0xFFFFFFFF))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.Contains(t, r.Error, "scale too large")
		assert.NoFileExists(t, r.Path)
	}
}

func TestRunReportsFailures(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	cfg := Config{
		OutputDir: filepath.Join(blocker, "sub"),
		Formats:   []export.Format{export.PNG},
	}
	results := Run(context.Background(), cfg, square("x", 0))
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{OutputDir: t.TempDir(), Formats: []export.Format{export.PPM}}
	results := Run(ctx, cfg, square("a", 0), square("b", 0))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.Equal(t, context.Canceled.Error(), r.Error)
		assert.NoFileExists(t, r.Path)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Scene: "qr", Format: "png", Path: filepath.Join(dir, "qr.png"), Success: true},
		{Scene: "qr", Format: "tga", Path: filepath.Join(dir, "qr.tga"), Error: "boom"},
	}
	path := filepath.Join(dir, "manifest.json")
	require.NoError(t, WriteManifest(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Equal(t, []ManifestEntry{{Scene: "qr", Format: "png", Image: "qr.png"}}, entries)
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	cfg := Config{OutputDir: t.TempDir(), Formats: []export.Format{export.PPM}}
	Run(context.Background(), cfg, square("logged", 0))
	assert.Contains(t, buf.String(), "scene=logged")
	assert.Contains(t, buf.String(), "generated")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
