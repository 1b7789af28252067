package serial

import "log/slog"

type options struct {
	logger *slog.Logger
}

type Option func(*options)

// WithLogger sets the logger receiving registry events at debug level
// and redefinitions at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func makeOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
