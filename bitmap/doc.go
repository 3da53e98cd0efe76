// Package bitmap implements validity (null) bitmap trees for nested typed
// values.
//
// Every optional sub-value of a typed value needs one bit recording whether
// it is present or missing. Because types nest arbitrarily, that information
// is a tree whose shape mirrors exactly the parts of the type tree that can
// hold optional data:
//
//   - A non-array optional type gets a flat bit buffer, one bit per element,
//     missing (0) by default.
//   - Array dimensions, fixed or variable, do not add a tree level: their
//     element counts multiply into the buffer size of the same node, so all
//     elements of nested arrays down to the first non-array type share one
//     flat buffer.
//   - Tuples and records add a tree level: one child node per (item, field)
//     pair.
//   - A subtree with no optional data anywhere stays empty. No allocation.
//
// Build a tree with Init, address bits with IsValid, IsNA and SetValid, and
// tear it down with Clear. Clear is idempotent and safe on partially built
// trees; Init uses it to unwind on allocation failure, so a failed build
// never leaks.
//
// The package is single-writer: construction and teardown require exclusive
// ownership of the node, and concurrent reads are safe only while no
// SetValid calls occur.
package bitmap
