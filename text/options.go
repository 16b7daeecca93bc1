package text

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures Context creation.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	language    string
	systemFonts bool
	cacheDir    string
}

func defaultConfig() config {
	return config{
		logger:   slog.New(nopHandler{}),
		language: "en",
	}
}

// WithLogger sets the logger for font resolution diagnostics.
// A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = slog.New(nopHandler{})
		}
		c.logger = l
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper.
// The default is "en".
func WithLanguage(tag string) Option {
	return func(c *config) {
		c.language = tag
	}
}

// WithSystemFonts enables lookup of named families among installed fonts.
// The font index is cached under cacheDir; an empty cacheDir selects the
// user cache directory.
func WithSystemFonts(cacheDir string) Option {
	return func(c *config) {
		c.systemFonts = true
		c.cacheDir = cacheDir
	}
}

// nopHandler silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// fontscanLogger forwards fontscan's Printf diagnostics to slog at debug level.
type fontscanLogger struct {
	l *slog.Logger
}

func (f fontscanLogger) Printf(format string, args ...any) {
	f.l.Debug(fmt.Sprintf(format, args...), "component", "fontscan")
}
