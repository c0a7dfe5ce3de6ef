package typesys

import "fmt"

// Kind enumerates every type-descriptor shape the store can hold, grouped
// the way the data model describes them: primitives, compounds, callables,
// generics, and bookkeeping kinds.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Primitives.
	KindBool
	KindChar
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindFloat128
	KindString
	KindCString
	KindPointer
	KindAnyEnum

	// Compounds.
	KindArray
	KindArrayConstructor
	KindOpenArray
	KindSequence
	KindSet
	KindTuple
	KindRecord
	KindRecordConstructor
	KindObject
	KindRef
	KindPtr
	KindVar

	// Callable.
	KindProc

	// Generic.
	KindGeneric
	KindGenericParam
	KindGenericInst

	// Bookkeeping.
	KindRange
	KindEnum
	KindEmptySet
	KindNil
	KindForward
	KindDistinct
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindFloat128:
		return "float128"
	case KindString:
		return "string"
	case KindCString:
		return "cstring"
	case KindPointer:
		return "pointer"
	case KindAnyEnum:
		return "any-enum"
	case KindArray:
		return "array"
	case KindArrayConstructor:
		return "array-constructor"
	case KindOpenArray:
		return "open-array"
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindTuple:
		return "tuple"
	case KindRecord:
		return "record"
	case KindRecordConstructor:
		return "record-constructor"
	case KindObject:
		return "object"
	case KindRef:
		return "ref"
	case KindPtr:
		return "ptr"
	case KindVar:
		return "var"
	case KindProc:
		return "proc"
	case KindGeneric:
		return "generic"
	case KindGenericParam:
		return "generic-param"
	case KindGenericInst:
		return "generic-inst"
	case KindRange:
		return "range"
	case KindEnum:
		return "enum"
	case KindEmptySet:
		return "empty-set"
	case KindNil:
		return "nil"
	case KindForward:
		return "forward"
	case KindDistinct:
		return "distinct"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsSignedInt reports whether k is one of the fixed-width signed integer
// kinds int8..int64 (the type relation treats these as one family).
func (k Kind) IsSignedInt() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k is one of float32/float64/float128.
func (k Kind) IsFloat() bool {
	switch k {
	case KindFloat32, KindFloat64, KindFloat128:
		return true
	default:
		return false
	}
}

// CallConv is the calling convention tag a KindProc type carries.
type CallConv uint8

const (
	ConvDefault CallConv = iota
	ConvC
	ConvStd
	ConvFast
	ConvClosure
	ConvInline
	ConvNoinline
)

func (c CallConv) String() string {
	switch c {
	case ConvDefault:
		return "default"
	case ConvC:
		return "c"
	case ConvStd:
		return "stdcall"
	case ConvFast:
		return "fastcall"
	case ConvClosure:
		return "closure"
	case ConvInline:
		return "inline"
	case ConvNoinline:
		return "noinline"
	default:
		return "?"
	}
}

// Flags is a bag of boolean type attributes.
type Flags uint16

const (
	FlagExported Flags = 1 << iota
	FlagBuiltin
	FlagVarargs   // last Proc parameter accepts a variable tail
	FlagMutableAt // set on KindRef/KindVar wrapping a mutable target
)
