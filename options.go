package ggplot

import "log/slog"

// Option configures a backend during creation.
//
// Example:
//
//	b := ggplot.NewSceneBackend(800, 600, s, ggplot.WithLogger(logger))
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: Logger()}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger for a single backend, overriding the
// package logger. A nil logger disables logging for that backend.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}
