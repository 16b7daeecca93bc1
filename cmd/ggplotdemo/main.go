// Command ggplotdemo draws a y = x^2 line chart through ggplot and writes
// it as PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/raster"
	"github.com/gogpu/ggplot/scene"
	"github.com/gogpu/ggplot/text"
)

func main() {
	var (
		width   = flag.Uint("width", 0, "image width (default 1024)")
		height  = flag.Uint("height", 0, "image height (default 768)")
		output  = flag.String("output", "", "output file (default chart.png)")
		cfgPath = flag.String("config", "", "optional .toml or .yaml config file")
		font    = flag.String("font", "", "caption font family (default sans-serif)")
		sysFont = flag.Bool("system-fonts", false, "resolve font families among installed fonts")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := defaultConfig()
	if *cfgPath != "" {
		var err error
		if cfg, err = loadConfig(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width != 0 {
		cfg.Width = uint32(*width)
	}
	if *height != 0 {
		cfg.Height = uint32(*height)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *font != "" {
		cfg.Font = *font
	}
	if *sysFont {
		cfg.SystemFonts = true
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Chart saved to %s (%dx%d)\n", cfg.Output, cfg.Width, cfg.Height)
}

func run(cfg config) error {
	s, err := render(cfg)
	if err != nil {
		return err
	}

	r, err := raster.Render(s, int(cfg.Width), int(cfg.Height), raster.Options{Background: color.Black})
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// render records the chart into a new scene.
func render(cfg config) (*scene.Scene, error) {
	s := scene.NewScene()
	opts := []text.Option{text.WithLogger(ggplot.Logger())}
	if cfg.SystemFonts {
		opts = append(opts, text.WithSystemFonts(""))
	}
	tctx := text.NewContext(opts...)

	c := squareChart(cfg.Caption, cfg.Samples)
	if cfg.Font != "" {
		c.font = ggplot.FontFamily(cfg.Font)
	}
	if err := ggplot.Paint(cfg.Width, cfg.Height, s, tctx, c.draw); err != nil {
		return nil, fmt.Errorf("paint: %w", err)
	}
	return s, nil
}
