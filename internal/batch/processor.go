package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"olive-renderer/internal/export"
	"olive-renderer/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Scenes    []scene.Scene
	Formats   []export.Format
	// ScaleFor returns the upscale factor for a scene; nil means 1.
	ScaleFor func(name string) int
	Workers  int
	// Progress is the interval between progress log lines; zero disables them.
	Progress time.Duration
}

// Result holds the outcome of writing one scene in one format.
type Result struct {
	Scene   string
	Format  string
	Path    string
	Success bool
	Error   string
}

// Run renders every scene with a worker pool and writes it in every format.
// Each job draws into its own buffer. Scenes not yet dispatched when ctx is
// cancelled are reported as failed with the context error.
func Run(ctx context.Context, cfg Config, scenes ...scene.Scene) []Result {
	if len(scenes) == 0 {
		scenes = cfg.Scenes
	}
	workers := max(cfg.Workers, 1)
	log := Logger()

	total := len(scenes)
	perScene := make([][]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						log.Info("progress", "done", p, "total", total, "scenes_per_sec", rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				perScene[idx] = processScene(cfg, scenes[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	sent := 0
dispatch:
	for i := range scenes {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
			sent++
		}
	}
	close(jobs)

	wg.Wait()
	close(done)

	for i := sent; i < total; i++ {
		perScene[i] = failAll(cfg, scenes[i], ctx.Err())
	}

	var results []Result
	for _, rs := range perScene {
		results = append(results, rs...)
	}
	log.Debug("batch finished", "scenes", total, "outputs", len(results), "elapsed", time.Since(start))
	return results
}

func processScene(cfg Config, s scene.Scene) []Result {
	log := Logger().With("scene", s.Name)

	c := scene.Render(s)
	scale := 1
	if cfg.ScaleFor != nil {
		scale = cfg.ScaleFor(s.Name)
	}
	c, err := export.Upscale(c, scale)
	if err != nil {
		log.Warn("upscale failed", "scale", scale, "err", err)
		return failAll(cfg, s, err)
	}
	log.Debug("rendered", "width", c.Width, "height", c.Height, "scale", scale)

	dir := cfg.OutputDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return failAll(cfg, s, err)
	}

	results := make([]Result, 0, len(cfg.Formats))
	for _, f := range cfg.Formats {
		path := OutputPath(dir, s.Name, f)
		r := Result{Scene: s.Name, Format: f.String(), Path: path}
		if err := export.SaveAs(path, c, f); err != nil {
			log.Warn("save failed", "path", path, "err", err)
			r.Error = err.Error()
		} else {
			log.Info("generated", "path", path)
			r.Success = true
		}
		results = append(results, r)
	}
	return results
}

func failAll(cfg Config, s scene.Scene, err error) []Result {
	results := make([]Result, len(cfg.Formats))
	for i, f := range cfg.Formats {
		results[i] = Result{
			Scene:  s.Name,
			Format: f.String(),
			Path:   OutputPath(cfg.OutputDir, s.Name, f),
			Error:  fmt.Sprint(err),
		}
	}
	return results
}

// OutputPath returns where scene name is written in format f.
func OutputPath(dir, name string, f export.Format) string {
	return filepath.Join(dir, name+f.Ext())
}
