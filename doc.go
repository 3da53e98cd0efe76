// Package xnd manages validity (null) bitmaps for values of arbitrarily
// nested, statically described types.
//
// A value's type (see the types package) may mark any sub-value optional.
// Each optional sub-value needs one bit recording whether it is present or
// missing, and because types nest, those bits form a tree shaped like the
// optional-bearing parts of the type (see the bitmap package).
//
// # Quick start
//
//	t := types.Record(
//	    types.Field{Name: "id", Type: types.Int64()},
//	    types.Field{Name: "score", Type: types.Optional(types.Float64())},
//	)
//
//	ctx := types.NewContext()
//	b, err := xnd.Build(t, ctx)
//	if err != nil {
//	    // out of memory; nothing was left allocated
//	}
//	defer xnd.Free(b)
//
//	score := xnd.View{Type: t.FieldType(1), Index: 0, Bitmap: b.Child(1)}
//	score.IsNA()     // true: missing is the default
//	score.SetValid() // mark present; validity is monotonic, there is no unset
//
// # Concurrency
//
// Construction and teardown require exclusive ownership of the tree. After
// construction, concurrent reads (IsValid/IsNA) are safe only while no
// SetValid calls occur; mixed read/write synchronization is the caller's
// responsibility.
package xnd
