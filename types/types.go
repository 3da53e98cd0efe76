package types

import (
	"fmt"
	"strings"
)

// Kind identifies the structural category of a type.
type Kind uint8

const (
	// KindAny is an unresolved placeholder. A type containing KindAny
	// anywhere is not concrete and cannot be used for memory layout.
	KindAny Kind = iota
	KindBool
	KindInt64
	KindFloat64
	KindString
	KindFixedDim
	KindVarDim
	KindTuple
	KindRecord
	KindRef
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "Any"
	case KindBool:
		return "Bool"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	case KindFixedDim:
		return "FixedDim"
	case KindVarDim:
		return "VarDim"
	case KindTuple:
		return "Tuple"
	case KindRecord:
		return "Record"
	case KindRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// Field is a named member of a record. Tuples use positional fields with
// empty names.
type Field struct {
	Name string
	Type *Type
}

// Type is an immutable descriptor for an arbitrarily nested type: scalars,
// fixed- and variable-length arrays, tuples, records. Construct types with
// the package-level constructors; a Type is never mutated after construction,
// so subtrees may be shared freely between types.
type Type struct {
	kind Kind
	opt  bool

	// cached structural facts, computed once at construction
	concrete   bool
	subtreeOpt bool

	shape   int64   // KindFixedDim
	offsets []int64 // KindVarDim
	elem    *Type   // KindFixedDim, KindVarDim, KindRef
	fields  []Field // KindTuple, KindRecord
}

// Bool returns the bool scalar type.
func Bool() *Type { return scalar(KindBool) }

// Int64 returns the int64 scalar type.
func Int64() *Type { return scalar(KindInt64) }

// Float64 returns the float64 scalar type.
func Float64() *Type { return scalar(KindFloat64) }

// String returns the string scalar type.
func String() *Type { return scalar(KindString) }

// Any returns an unresolved placeholder type. It is not concrete.
func Any() *Type {
	return &Type{kind: KindAny}
}

func scalar(k Kind) *Type {
	return &Type{kind: k, concrete: true}
}

// Optional returns a copy of t marked optional. The original is unchanged.
func Optional(t *Type) *Type {
	u := *t
	u.opt = true
	u.subtreeOpt = true
	return &u
}

// FixedDim returns an array type with a statically known element count.
func FixedDim(shape int64, elem *Type) *Type {
	if shape < 0 {
		panic(fmt.Sprintf("types: negative shape %d", shape))
	}
	return &Type{
		kind:       KindFixedDim,
		concrete:   elem.concrete,
		subtreeOpt: elem.subtreeOpt,
		shape:      shape,
		elem:       elem,
	}
}

// VarDim returns a variable-length array type over elem. The offsets table
// delimits the array runs; its entries are non-decreasing, start at 0, and
// the last entry equals the total element count across all runs. The table
// is trusted as supplied, not validated.
func VarDim(offsets []int64, elem *Type) *Type {
	return &Type{
		kind:       KindVarDim,
		concrete:   elem.concrete && len(offsets) > 0,
		subtreeOpt: elem.subtreeOpt,
		offsets:    offsets,
		elem:       elem,
	}
}

// Tuple returns a composite type with positional fields.
func Tuple(elems ...*Type) *Type {
	fields := make([]Field, len(elems))
	for i, e := range elems {
		fields[i] = Field{Type: e}
	}
	return composite(KindTuple, fields)
}

// Record returns a composite type with named fields.
func Record(fields ...Field) *Type {
	return composite(KindRecord, fields)
}

func composite(k Kind, fields []Field) *Type {
	t := &Type{kind: k, concrete: true, fields: fields}
	for _, f := range fields {
		t.concrete = t.concrete && f.Type.concrete
		t.subtreeOpt = t.subtreeOpt || f.Type.subtreeOpt
	}
	return t
}

// Ref returns a reference (pointer) type over t. It is a composite for
// structural purposes but is neither an array nor a branching container.
func Ref(t *Type) *Type {
	return &Type{
		kind:       KindRef,
		concrete:   t.concrete,
		subtreeOpt: t.subtreeOpt,
		elem:       t,
	}
}

// Kind returns the structural category of t.
func (t *Type) Kind() Kind { return t.kind }

// IsOptional reports whether t itself may represent a missing value.
func (t *Type) IsOptional() bool { return t.opt }

// IsConcrete reports whether t is fully resolved, with no placeholders
// anywhere in its subtree.
func (t *Type) IsConcrete() bool { return t.concrete }

// SubtreeIsOptional reports whether t or any type beneath it is optional.
func (t *Type) SubtreeIsOptional() bool { return t.subtreeOpt }

// Ndim returns the number of leading array dimensions of t.
func (t *Type) Ndim() int {
	n := 0
	for u := t; u.kind == KindFixedDim || u.kind == KindVarDim; u = u.elem {
		n++
	}
	return n
}

// Shape returns the element count of a fixed-length array type.
func (t *Type) Shape() int64 { return t.shape }

// Elem returns the element type of an array or reference type, nil otherwise.
func (t *Type) Elem() *Type { return t.elem }

// Offsets returns the offsets table of a variable-length array type.
func (t *Type) Offsets() []int64 { return t.offsets }

// Dtype returns t with all leading array dimensions stripped.
func (t *Type) Dtype() *Type {
	u := t
	for u.kind == KindFixedDim || u.kind == KindVarDim {
		u = u.elem
	}
	return u
}

// Fields returns the fields of a tuple or record type.
func (t *Type) Fields() []Field { return t.fields }

// FieldCount returns the number of fields of a tuple or record type.
func (t *Type) FieldCount() int { return len(t.fields) }

// FieldType returns the type of field i of a tuple or record type.
func (t *Type) FieldType(i int) *Type { return t.fields[i].Type }

// String returns a compact datashape-like notation for t, e.g.
// "3 * ?int64" or "{x: int64, y: ?float64}".
func (t *Type) String() string {
	var sb strings.Builder
	t.format(&sb)
	return sb.String()
}

func (t *Type) format(sb *strings.Builder) {
	if t.opt {
		sb.WriteByte('?')
	}
	switch t.kind {
	case KindAny:
		sb.WriteString("Any")
	case KindBool:
		sb.WriteString("bool")
	case KindInt64:
		sb.WriteString("int64")
	case KindFloat64:
		sb.WriteString("float64")
	case KindString:
		sb.WriteString("string")
	case KindFixedDim:
		fmt.Fprintf(sb, "%d * ", t.shape)
		t.elem.format(sb)
	case KindVarDim:
		sb.WriteString("var * ")
		t.elem.format(sb)
	case KindTuple:
		sb.WriteByte('(')
		for i, f := range t.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			f.Type.format(sb)
		}
		sb.WriteByte(')')
	case KindRecord:
		sb.WriteByte('{')
		for i, f := range t.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			f.Type.format(sb)
		}
		sb.WriteByte('}')
	case KindRef:
		sb.WriteString("ref(")
		t.elem.format(sb)
		sb.WriteByte(')')
	default:
		sb.WriteString("unknown")
	}
}
