package typesys

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Builtins holds TypeIDs for the primitive kinds every compilation unit
// needs without a declaration.
type Builtins struct {
	Invalid  TypeID
	Bool     TypeID
	Char     TypeID
	Int8     TypeID
	Int16    TypeID
	Int32    TypeID
	Int64    TypeID
	Float32  TypeID
	Float64  TypeID
	Float128 TypeID
	String   TypeID
	CString  TypeID
	Pointer  TypeID
	EmptySet TypeID
	Nil      TypeID
}

// Interner assigns stable TypeIDs to Type descriptors, hashing structural
// kinds by shape and nominal kinds by declaration identity.
type Interner struct {
	types []Type
	index map[string]TypeID

	builtins Builtins

	records  []RecordInfo
	enums    []EnumInfo
	procs    []ProcInfo
	generics []GenericInfo
}

// NewInterner constructs an Interner seeded with every builtin primitive.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[string]TypeID, 64),
	}
	in.records = append(in.records, RecordInfo{})
	in.enums = append(in.enums, EnumInfo{})
	in.procs = append(in.procs, ProcInfo{})
	in.generics = append(in.generics, GenericInfo{})

	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Char = in.Intern(Type{Kind: KindChar})
	in.builtins.Int8 = in.Intern(Type{Kind: KindInt8})
	in.builtins.Int16 = in.Intern(Type{Kind: KindInt16})
	in.builtins.Int32 = in.Intern(Type{Kind: KindInt32})
	in.builtins.Int64 = in.Intern(Type{Kind: KindInt64})
	in.builtins.Float32 = in.Intern(Type{Kind: KindFloat32})
	in.builtins.Float64 = in.Intern(Type{Kind: KindFloat64})
	in.builtins.Float128 = in.Intern(Type{Kind: KindFloat128})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.CString = in.Intern(Type{Kind: KindCString})
	in.builtins.Pointer = in.Intern(Type{Kind: KindPointer})
	in.builtins.EmptySet = in.Intern(Type{Kind: KindEmptySet})
	in.builtins.Nil = in.Intern(Type{Kind: KindNil})
	return in
}

// Builtins returns the TypeIDs assigned to primitive kinds.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures t has a stable TypeID, reusing an existing descriptor with
// the same structural key when one exists. Nominal kinds (KindObject,
// KindEnum when declared, KindRecord when carrying a Decl) always allocate
// fresh — two declarations are never the same type even if structurally
// identical, matching the data model's "equality on nominal kinds is by id"
// rule.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return in.builtins.Invalid
	}
	if isNominal(t) {
		return in.internRaw(t)
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRawKeyed(t, key)
}

func isNominal(t Type) bool {
	switch t.Kind {
	case KindObject, KindEnum, KindRecord:
		return true
	default:
		return false
	}
}

func (in *Interner) internRaw(t Type) TypeID {
	return in.internRawKeyed(t, typeKey(t))
}

func (in *Interner) internRawKeyed(t Type, key string) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("typesys: type table overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	if !isNominal(t) {
		in.index[key] = id
	}
	return id
}

// Lookup returns the descriptor for id.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics if id is not valid within this interner.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("typesys: invalid TypeID")
	}
	return t
}

// Len returns the number of interned types, including the invalid sentinel.
func (in *Interner) Len() int {
	return len(in.types)
}

// typeKey renders a Type's structural identity as a comparable map key.
// Sons is variable-length, so it is joined into the string rather than
// spread across a fixed-shape struct key the way the teacher's fixed-arity
// typeKey does for its Elem/Count/Width fields.
func typeKey(t Type) string {
	var b strings.Builder
	b.WriteByte(byte(t.Kind))
	b.WriteByte(':')
	for i, son := range t.Sons {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(son), 10))
	}
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(t.Count), 10))
	b.WriteByte(':')
	b.WriteByte(byte(t.Conv))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(t.ContainerID), 10))
	return b.String()
}
