package ecs

import "log/slog"

type options struct {
	logger    *slog.Logger
	strictGet bool
}

// Option configures a World.
type Option func(*options)

// WithLogger sets the logger used by the World. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.Default()
		}

		o.logger = logger
	}
}

// WithStrictGet makes Get panic if the entity does not have the requested component,
// instead of attaching the zero value. Use this to find call sites that depend on
// Get creating components. Those should switch to GetOrInsertDefault.
func WithStrictGet() Option {
	return func(o *options) {
		o.strictGet = true
	}
}
