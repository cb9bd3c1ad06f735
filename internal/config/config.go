package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"olive-renderer/internal/export"
	"olive-renderer/internal/scene"
)

// Config holds output paths and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir" toml:"output_dir"`

	// Render settings
	Scenes   []string `json:"scenes" toml:"scenes"`
	Formats  []string `json:"formats" toml:"formats"`
	Scale    int      `json:"scale" toml:"scale"`
	QRScale  int      `json:"qr_scale" toml:"qr_scale"`
	Workers  int      `json:"workers" toml:"workers"`
	LogLevel string   `json:"log_level" toml:"log_level"`
}

// Load reads a config file and returns Config. Files ending in .toml are
// parsed as TOML, anything else as JSON.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Scenes    []string
	Formats   []string
	Scale     int
	Workers   int
	Verbose   bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	}
	if len(flags.Formats) > 0 {
		c.Formats = flags.Formats
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Verbose {
		c.LogLevel = "debug"
	}

	if c.OutputDir == "" {
		c.OutputDir = "imgs"
	}
	if len(c.Scenes) == 0 {
		c.Scenes = scene.Names()
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{"ppm", "png"}
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.QRScale <= 0 {
		c.QRScale = 10
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that every scene and format name is known and that each
// scene's scaled output stays within the export size limit.
func (c *Config) Validate() error {
	for _, name := range c.Scenes {
		s, err := scene.Lookup(name)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := export.CheckScale(s.Width, s.Height, c.ScaleFor(name)); err != nil {
			return fmt.Errorf("config: scene %s: %w", name, err)
		}
	}
	for _, name := range c.Formats {
		if _, err := export.ParseFormat(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

// ScaleFor returns the upscale factor for the named scene.
func (c *Config) ScaleFor(name string) int {
	if name == "qr" {
		return c.QRScale
	}
	return c.Scale
}

// SplitList splits a comma-separated flag value, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
