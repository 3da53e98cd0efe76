package bitmap

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/robinovitch61/xnd/types"
)

// ValidSet collects the positions of the valid elements among the first
// nelem elements addressed by (t, b) into a Roaring Bitmap, for use with
// set-based filtering. For a non-optional type every position is valid.
//
// The result is derived from the validity buffer, not a view onto it;
// later SetValid calls do not update it. Positions must fit in uint32.
func ValidSet(t *types.Type, b *Bitmap, nelem int64) *roaring.Bitmap {
	rb := roaring.New()
	if !t.IsOptional() {
		rb.AddRange(0, uint64(nelem))
		return rb
	}
	for i := int64(0); i < nelem; i++ {
		if isValid(b, i) {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// CountValid returns the number of valid elements among the first nelem
// elements addressed by (t, b).
func CountValid(t *types.Type, b *Bitmap, nelem int64) int64 {
	if !t.IsOptional() {
		return nelem
	}

	var n int64
	full := nelem / 8
	for _, x := range b.data[:full] {
		n += int64(bits.OnesCount8(x))
	}
	if rem := nelem % 8; rem != 0 {
		mask := byte(1)<<uint(rem) - 1
		n += int64(bits.OnesCount8(b.data[full] & mask))
	}
	return n
}
