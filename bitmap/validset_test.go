package bitmap

import (
	"testing"

	"github.com/robinovitch61/xnd/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidSet(t *testing.T) {
	const n = 20
	typ := types.FixedDim(n, types.Optional(types.Int64()))

	var b Bitmap
	require.NoError(t, Init(&b, typ, types.NewContext()))

	for _, i := range []int64{0, 7, 8, 19} {
		SetValid(&b, i)
	}

	dtype := typ.Dtype()
	set := ValidSet(dtype, &b, n)
	assert.Equal(t, uint64(4), set.GetCardinality())
	for _, i := range []uint32{0, 7, 8, 19} {
		assert.True(t, set.Contains(i), "position %d", i)
	}
	assert.False(t, set.Contains(1))
	assert.False(t, set.Contains(18))

	assert.Equal(t, int64(4), CountValid(dtype, &b, n))
}

func TestValidSetNonOptional(t *testing.T) {
	typ := types.Int64()

	var b Bitmap
	require.NoError(t, Init(&b, typ, types.NewContext()))

	set := ValidSet(typ, &b, 5)
	assert.Equal(t, uint64(5), set.GetCardinality())
	assert.Equal(t, int64(5), CountValid(typ, &b, 5))
}

func TestCountValidTailMask(t *testing.T) {
	// 10 elements span two bytes; bits 10..15 of the second byte are
	// allocation slack and must not be counted.
	const n = 10
	typ := types.FixedDim(n, types.Optional(types.Bool()))

	var b Bitmap
	require.NoError(t, Init(&b, typ, types.NewContext()))

	for i := int64(0); i < n; i++ {
		SetValid(&b, i)
	}
	assert.Equal(t, int64(n), CountValid(typ.Dtype(), &b, n))
	assert.Equal(t, int64(8), CountValid(typ.Dtype(), &b, 8))
	assert.Equal(t, int64(3), CountValid(typ.Dtype(), &b, 3))
}
