// Package types describes arbitrarily nested, statically known value types:
// scalars, fixed- and variable-length arrays, tuples and records, any of
// which may be marked optional.
//
// A Type is built with the package constructors and is immutable afterwards,
// so subtrees can be shared between types without copying:
//
//	t := types.Record(
//	    types.Field{Name: "id", Type: types.Int64()},
//	    types.Field{Name: "score", Type: types.Optional(types.Float64())},
//	    types.Field{Name: "tags", Type: types.VarDim([]int64{0, 3}, types.String())},
//	)
//
// The package exposes only read-only structural queries: kind, optionality,
// concreteness, array shapes and offsets, and fields. Layout decisions (for
// example validity bitmap construction in the bitmap package) pattern-match
// on Kind, which is a closed set.
//
// # Error context
//
// Context is the shared error channel threaded through allocation-heavy
// operations. It records the first failure only; callers inspect it with
// Err after a chain of calls.
package types
