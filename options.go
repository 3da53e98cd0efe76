package xnd

import (
	"github.com/robinovitch61/xnd/bitmap"
)

type options struct {
	allocator bitmap.Allocator
	logger    *Logger
}

// Option configures Build and Free behavior.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger: NoopLogger(),
	}
}

// WithLogger configures structured logging for build and free operations.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAllocator overrides the allocator used for bitmap construction.
// Passing nil keeps the default heap allocator.
func WithAllocator(a bitmap.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}
