package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"olive-renderer/internal/batch"
	"olive-renderer/internal/config"
	"olive-renderer/internal/export"
	"olive-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json or .toml)")
	outputDir := flag.String("output", "", "Output directory (default: imgs)")
	scenes := flag.String("scene", "", "Comma-separated scenes to render (default: all)")
	formats := flag.String("format", "", "Comma-separated output formats: ppm,png,webp,tga,bmp (default: ppm,png)")
	scale := flag.Int("scale", 0, "Integer upscale factor for image outputs (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")
	watch := flag.Bool("watch", false, "Re-render whenever the config file changes (requires -config)")
	list := flag.Bool("list", false, "List available scenes and exit")

	flag.Parse()

	if *list {
		for _, s := range scene.All() {
			fmt.Printf("%-10s %dx%d\n", s.Name, s.Width, s.Height)
		}
		return
	}

	flags := config.Flags{
		OutputDir: *outputDir,
		Scenes:    config.SplitList(*scenes),
		Formats:   config.SplitList(*formats),
		Scale:     *scale,
		Workers:   *workers,
		Verbose:   *verbose,
	}

	cfg, err := loadConfig(*configFile, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *watch {
		if *configFile == "" {
			fmt.Fprintln(os.Stderr, "Error: -watch requires -config.")
			os.Exit(1)
		}
		run(ctx, cfg)
		if err := watchConfig(ctx, *configFile, func() {
			cfg, err := loadConfig(*configFile, flags)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reloading config: %v\n", err)
				return
			}
			run(ctx, cfg)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if failed := run(ctx, cfg); failed > 0 {
		os.Exit(1)
	}
}

func loadConfig(path string, flags config.Flags) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	// CLI flags override config file
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// run renders one batch and returns the number of failed outputs.
func run(ctx context.Context, cfg config.Config) int {
	batch.SetLogger(newLogger(cfg.LogLevel))

	var scenes []scene.Scene
	for _, name := range cfg.Scenes {
		s, _ := scene.Lookup(name) // validated by loadConfig
		scenes = append(scenes, s)
	}
	var formats []export.Format
	for _, name := range cfg.Formats {
		f, _ := export.ParseFormat(name)
		formats = append(formats, f)
	}

	fmt.Printf("Scenes: %d, Formats: %s, Workers: %d\n", len(scenes), strings.Join(cfg.Formats, ","), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(ctx, batch.Config{
		OutputDir: cfg.OutputDir,
		Scenes:    scenes,
		Formats:   formats,
		ScaleFor:  cfg.ScaleFor,
		Workers:   cfg.Workers,
		Progress:  2 * time.Second,
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("Generated %s\n", r.Path)
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Written: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s.%s: %s\n", e.Scene, e.Format, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	return failed
}
