package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// config holds the demo settings. Flags override values from a file.
type config struct {
	Width   uint32 `toml:"width" yaml:"width"`
	Height  uint32 `toml:"height" yaml:"height"`
	Output  string `toml:"output" yaml:"output"`
	Caption string `toml:"caption" yaml:"caption"`
	Samples int    `toml:"samples" yaml:"samples"`

	// Font is the caption font family. Names other than the generic
	// families need SystemFonts.
	Font        string `toml:"font" yaml:"font"`
	SystemFonts bool   `toml:"system_fonts" yaml:"system_fonts"`
}

func defaultConfig() config {
	return config{
		Width:   1024,
		Height:  768,
		Output:  "chart.png",
		Caption: "y=x^2",
		Samples: 101,
		Font:    "sans-serif",
	}
}

// loadConfig reads path over the defaults. The format follows the file
// extension: .toml, .yaml or .yml.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Output == "" {
		return fmt.Errorf("output file not set")
	}
	return nil
}
