package bitmap

import (
	"github.com/robinovitch61/xnd/types"
)

// Bitmap is one node of a validity bitmap tree. A node holds either a flat
// bit buffer (one bit per element, for an optional non-array type), an array
// of child nodes (for a tuple or record with optional data beneath), or
// neither (for a subtree with no optional data anywhere).
//
// The zero value is the empty state and is ready for Init.
type Bitmap struct {
	data []byte
	next []Bitmap
	size int64
}

// Empty reports whether b is in the empty state: no bit buffer, no children.
func (b *Bitmap) Empty() bool {
	return b.data == nil && b.next == nil && b.size == 0
}

// Data returns the node's bit buffer, or nil if absent.
func (b *Bitmap) Data() []byte { return b.data }

// Size returns the number of child nodes, 0 when there are none.
func (b *Bitmap) Size() int64 { return b.size }

// Child returns the i-th child node. The child is owned by b; callers must
// not retain it past b's teardown.
func (b *Bitmap) Child(i int64) *Bitmap { return &b.next[i] }

// bitmapSize returns the byte size of a bit buffer for nelem elements.
func bitmapSize(nelem int64) int64 {
	return (nelem + 7) / 8
}

// Init builds the validity bitmap tree for a single value of type t into b.
// t must be concrete and b must be empty. The tree mirrors only the parts of
// t that can hold optional values; if nothing in t is optional, b stays
// empty and no allocation is performed.
//
// On allocation failure the partially built tree is torn down before the
// error is returned, and the failure is recorded on ctx. b is empty again
// after a failed Init; no partial trees are ever left live.
func Init(b *Bitmap, t *types.Type, ctx *types.Context, opts ...Option) error {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return initBitmap(b, t, 1, ctx, o.allocator)
}

func initBitmap(b *Bitmap, t *types.Type, nitems int64, ctx *types.Context, a Allocator) error {
	if !t.IsConcrete() {
		panic("bitmap: Init on non-concrete type")
	}
	if !b.Empty() {
		panic("bitmap: Init on non-empty node")
	}

	if t.Ndim() == 0 && t.IsOptional() {
		data, err := allocBits(a, nitems, ctx)
		if err != nil {
			return err
		}
		b.data = data
	}

	if !t.SubtreeIsOptional() {
		return nil
	}

	switch t.Kind() {
	case types.KindFixedDim:
		// Arrays do not add a tree level: the element count multiplies
		// into the count passed down and the same node is reused.
		return initBitmap(b, t.Elem(), nitems*t.Shape(), ctx, a)

	case types.KindVarDim:
		// The last offsets entry is the total element count across all
		// runs. The table is trusted as supplied by the type layer.
		offsets := t.Offsets()
		n := offsets[len(offsets)-1]
		return initBitmap(b, t.Dtype(), n, ctx, a)

	case types.KindTuple, types.KindRecord:
		// Branching containers add a tree level: one child per
		// (outer item, field) pair, each recursed with item count 1.
		shape := int64(t.FieldCount())
		n := nitems * shape

		next, err := allocNodes(a, n, ctx)
		if err != nil {
			Clear(b)
			return err
		}
		b.next = next
		b.size = n

		for i := int64(0); i < nitems; i++ {
			for k := int64(0); k < shape; k++ {
				child := &b.next[i*shape+k]
				if err := initBitmap(child, t.FieldType(int(k)), 1, ctx, a); err != nil {
					Clear(b)
					return err
				}
			}
		}
		return nil

	default:
		return nil
	}
}

// Clear tears down the tree rooted at b, returning it to the empty state.
// It is idempotent, never fails, and is safe on partially built trees.
func Clear(b *Bitmap) {
	b.data = nil
	if b.next != nil {
		for i := range b.next {
			Clear(&b.next[i])
		}
		b.next = nil
	}
	b.size = 0
}

// IsValid reports whether element n of the value addressed by (t, b) is
// present. Values of non-optional types are always valid.
func IsValid(t *types.Type, b *Bitmap, n int64) bool {
	if !t.IsOptional() {
		return true
	}
	return isValid(b, n)
}

// IsNA reports whether element n of the value addressed by (t, b) is
// missing. Values of non-optional types are never missing.
func IsNA(t *types.Type, b *Bitmap, n int64) bool {
	if !t.IsOptional() {
		return false
	}
	return !isValid(b, n)
}

func isValid(b *Bitmap, n int64) bool {
	if n < 0 {
		panic("bitmap: negative index")
	}
	return b.data[n/8]>>(uint(n)%8)&1 != 0
}

// SetValid marks element n present. The owning type must be optional and
// b's bit buffer must be present with n within its allocated bit range;
// violations are programming errors. Validity is monotonic: there is no
// corresponding clear-bit operation, missing is only the default state.
func SetValid(b *Bitmap, n int64) {
	if n < 0 {
		panic("bitmap: negative index")
	}
	b.data[n/8] |= 1 << (uint(n) % 8)
}
