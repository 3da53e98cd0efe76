package bitmap

import (
	"fmt"

	"github.com/robinovitch61/xnd/types"
)

// Allocator provides zero-initialized storage for bitmap trees. The builder
// allocates through an Allocator so that allocation failure can be injected
// and audited; the default allocator is backed by the Go heap and never
// fails in practice.
type Allocator interface {
	// AllocBytes returns n zeroed bytes.
	AllocBytes(n int64) ([]byte, error)
	// AllocNodes returns n empty bitmap nodes.
	AllocNodes(n int64) ([]Bitmap, error)
}

type heapAllocator struct{}

func (heapAllocator) AllocBytes(n int64) ([]byte, error) {
	return make([]byte, n), nil
}

func (heapAllocator) AllocNodes(n int64) ([]Bitmap, error) {
	return make([]Bitmap, n), nil
}

// allocBits allocates a zeroed bit buffer for nelem elements. On failure it
// records out-of-memory on ctx and reports it, wrapping the allocator's
// underlying error.
func allocBits(a Allocator, nelem int64, ctx *types.Context) ([]byte, error) {
	data, err := a.AllocBytes(bitmapSize(nelem))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ctx.MemoryError(), err)
	}
	return data, nil
}

// allocNodes allocates n nodes in the empty state, with the same failure
// contract as allocBits.
func allocNodes(a Allocator, n int64, ctx *types.Context) ([]Bitmap, error) {
	next, err := a.AllocNodes(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ctx.MemoryError(), err)
	}
	return next, nil
}
