package typesys

import "nucleus/internal/tree"

// Type is a tagged structural descriptor. Its identity for interning
// purposes is (Kind, Sons, Count, Conv, ContainerID) — nominal kinds
// (KindObject, KindEnum, KindRecord when declared rather than structural)
// additionally key on Decl so that two textually-identical declarations
// never collapse into one TypeID.
type Type struct {
	Kind Kind

	// Sons holds the ordered child types: element type for array-likes,
	// field types (in declaration order) for tuples, parameter types
	// followed by the result type for procs, bound type arguments for
	// generic instantiations.
	Sons []TypeID

	// Count is the fixed length for KindArray (ArrayDynamicLength for an
	// unbounded array's index type is expressed as a KindRange son instead).
	Count uint32

	// Node optionally points back at the declaration's AST: the field list
	// for records/objects/enums, the parameter list for procs, the literal
	// bounds for a range. Safe to import tree.NodeID directly since
	// internal/tree never imports internal/typesys.
	Node tree.NodeID

	// Decl is the declaring symbol, when this type was introduced by a
	// declaration rather than built structurally (records, objects, enums,
	// declared generics). NoSymbolID for structural/builtin types.
	Decl SymbolID

	Flags Flags

	// ContainerID links a generic-inst back to the generic template it
	// instantiates.
	ContainerID TypeID

	Conv CallConv

	Size  uint32
	Align uint32
}

// ArrayDynamicLength marks an array/sequence with no compile-time-known
// length.
const ArrayDynamicLength = ^uint32(0)

// Elem returns the element type for array-likes, ptr/ref/var wrappers, and
// distinct/forward aliases: the conventional "last son" position.
func (t Type) Elem() TypeID {
	if len(t.Sons) == 0 {
		return NoTypeID
	}
	return t.Sons[len(t.Sons)-1]
}

// IsGenericFamily reports whether k is one of the three generic kinds.
func (k Kind) IsGenericFamily() bool {
	switch k {
	case KindGeneric, KindGenericParam, KindGenericInst:
		return true
	default:
		return false
	}
}
