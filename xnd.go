package xnd

import (
	"github.com/robinovitch61/xnd/bitmap"
	"github.com/robinovitch61/xnd/types"
)

// View addresses one element of a typed value: the element's type, its flat
// index within the bitmap node that owns its validity bit, and that node.
// A View is a cheap value; it borrows the bitmap, it does not own it.
type View struct {
	Type   *types.Type
	Index  int64
	Bitmap *bitmap.Bitmap
}

// IsValid reports whether the viewed element is present. Elements of
// non-optional types are always valid.
func (v View) IsValid() bool {
	return bitmap.IsValid(v.Type, v.Bitmap, v.Index)
}

// IsNA reports whether the viewed element is missing. Elements of
// non-optional types are never missing.
func (v View) IsNA() bool {
	return bitmap.IsNA(v.Type, v.Bitmap, v.Index)
}

// SetValid marks the viewed element present. The viewed type must be
// optional and its bitmap node must carry a bit buffer; violations are
// programming errors, not recoverable conditions.
func (v View) SetValid() {
	if !v.Type.IsOptional() {
		panic("xnd: SetValid on non-optional type")
	}
	bitmap.SetValid(v.Bitmap, v.Index)
}

// Build allocates the validity bitmap tree for a single value of type t.
// t must be concrete. ctx receives the out-of-memory condition on
// allocation failure, in addition to the returned error; on failure nothing
// remains allocated.
func Build(t *types.Type, ctx *types.Context, opts ...Option) (*bitmap.Bitmap, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var b bitmap.Bitmap
	err := bitmap.Init(&b, t, ctx, bitmap.WithAllocator(o.allocator))
	o.logger.LogBuild(t.String(), err)
	if err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

// Free tears down a bitmap tree built by Build. It is idempotent and safe
// on trees in any state of construction.
func Free(b *bitmap.Bitmap, opts ...Option) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	bitmap.Clear(b)
	o.logger.LogFree()
}
