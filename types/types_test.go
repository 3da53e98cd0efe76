package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindAny, "Any"},
		{KindBool, "Bool"},
		{KindInt64, "Int64"},
		{KindFloat64, "Float64"},
		{KindString, "String"},
		{KindFixedDim, "FixedDim"},
		{KindVarDim, "VarDim"},
		{KindTuple, "Tuple"},
		{KindRecord, "Record"},
		{KindRef, "Ref"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestOptional(t *testing.T) {
	base := Int64()
	opt := Optional(base)

	assert.False(t, base.IsOptional(), "Optional must not mutate its argument")
	assert.False(t, base.SubtreeIsOptional())
	assert.True(t, opt.IsOptional())
	assert.True(t, opt.SubtreeIsOptional())
	assert.Equal(t, KindInt64, opt.Kind())
}

func TestSubtreeIsOptionalPropagation(t *testing.T) {
	tests := []struct {
		name     string
		typ      *Type
		expected bool
	}{
		{"Scalar", Float64(), false},
		{"FixedDimPlain", FixedDim(4, Int64()), false},
		{"FixedDimOptionalElem", FixedDim(4, Optional(Int64())), true},
		{"VarDimOptionalElem", VarDim([]int64{0, 2}, Optional(Bool())), true},
		{"OptionalDim", Optional(FixedDim(4, Int64())), true},
		{"TuplePlain", Tuple(Int64(), Bool()), false},
		{"TupleDeepOptional", Tuple(Int64(), FixedDim(2, Optional(Bool()))), true},
		{"RecordPlain", Record(Field{Name: "x", Type: Int64()}), false},
		{"RefOptionalBeneath", Ref(Optional(String())), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.SubtreeIsOptional())
		})
	}
}

func TestIsConcrete(t *testing.T) {
	assert.True(t, Int64().IsConcrete())
	assert.False(t, Any().IsConcrete())
	assert.False(t, FixedDim(3, Any()).IsConcrete())
	assert.False(t, Tuple(Int64(), Any()).IsConcrete())
	assert.False(t, Ref(Any()).IsConcrete())
	assert.True(t, Record(Field{Name: "x", Type: Optional(Bool())}).IsConcrete())
}

func TestNdimAndDtype(t *testing.T) {
	t2 := FixedDim(2, FixedDim(3, Optional(Int64())))
	assert.Equal(t, 2, t2.Ndim())
	assert.Equal(t, KindInt64, t2.Dtype().Kind())
	assert.True(t, t2.Dtype().IsOptional())

	v := VarDim([]int64{0, 3, 3, 7}, Float64())
	assert.Equal(t, 1, v.Ndim())
	assert.Equal(t, KindFloat64, v.Dtype().Kind())

	s := Optional(Bool())
	assert.Equal(t, 0, s.Ndim())
	assert.Same(t, s, s.Dtype())
}

func TestVarDimOffsets(t *testing.T) {
	v := VarDim([]int64{0, 3, 3, 7}, Int64())
	offsets := v.Offsets()
	require.Len(t, offsets, 4)
	// The last entry is the total element count across all runs.
	assert.Equal(t, int64(7), offsets[len(offsets)-1])
}

func TestFields(t *testing.T) {
	r := Record(
		Field{Name: "id", Type: Int64()},
		Field{Name: "score", Type: Optional(Float64())},
	)
	require.Equal(t, 2, r.FieldCount())
	assert.Equal(t, "id", r.Fields()[0].Name)
	assert.Equal(t, KindFloat64, r.FieldType(1).Kind())
	assert.True(t, r.FieldType(1).IsOptional())
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      *Type
		expected string
	}{
		{Optional(Int64()), "?int64"},
		{FixedDim(3, Optional(Float64())), "3 * ?float64"},
		{VarDim([]int64{0, 2}, Bool()), "var * bool"},
		{Tuple(Int64(), Optional(Bool())), "(int64, ?bool)"},
		{Record(Field{Name: "x", Type: Int64()}, Field{Name: "y", Type: Optional(String())}), "{x: int64, y: ?string}"},
		{Ref(Int64()), "ref(int64)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.typ.String())
	}
}

func TestContext(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Err())

	err := ctx.MemoryError()
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.ErrorIs(t, ctx.Err(), ErrOutOfMemory)

	// First error wins.
	ctx.SetError(assert.AnError)
	assert.ErrorIs(t, ctx.Err(), ErrOutOfMemory)

	// A nil context still reports the failure to the caller.
	var nilCtx *Context
	assert.ErrorIs(t, nilCtx.MemoryError(), ErrOutOfMemory)
	assert.NoError(t, nilCtx.Err())
}
