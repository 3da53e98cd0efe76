package bitmap

type options struct {
	allocator Allocator
}

// Option configures Init.
type Option func(*options)

func defaultOptions() options {
	return options{allocator: heapAllocator{}}
}

// WithAllocator overrides the allocator used for bit buffers and node
// arrays. Passing nil keeps the default heap allocator. The main use is
// fault injection when testing teardown-on-failure behavior.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.allocator = a
		}
	}
}
