package typesys

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"nucleus/internal/ident"
	"nucleus/internal/tree"
)

// RecordField describes one field of a record, object, or record-constructor
// type. HasDefault is meaningful only on a declared record's field list: it
// lets the type relation accept a constructor that omits the field.
type RecordField struct {
	Name       ident.ID
	Type       TypeID
	HasDefault bool
}

// RecordInfo stores metadata for a declared record/object type: its name,
// declaration node, field list, and (for object types) the base type it
// extends, used by the type relation's "chains to the formal through base
// links" object-subtyping rule.
type RecordInfo struct {
	Name   ident.ID
	Decl   tree.NodeID
	Fields []RecordField
	Base   TypeID
}

// RegisterRecord allocates a nominal record/object type and returns its
// TypeID. Fields are attached afterward via SetRecordFields once the field
// list has been resolved (records may reference themselves through a ref
// indirection before their own fields are known).
func (in *Interner) RegisterRecord(kind Kind, name ident.ID, decl tree.NodeID) TypeID {
	slot := in.appendRecordInfo(RecordInfo{Name: name, Decl: decl})
	return in.internRaw(Type{Kind: kind, Node: decl, Sons: []TypeID{TypeID(slot)}})
}

// SetRecordFields stores the resolved field list for a record/object type.
func (in *Interner) SetRecordFields(id TypeID, fields []RecordField) {
	info := in.recordInfo(id)
	if info == nil {
		return
	}
	info.Fields = slices.Clone(fields)
}

// SetRecordBase stores the base type an object extends.
func (in *Interner) SetRecordBase(id, base TypeID) {
	info := in.recordInfo(id)
	if info == nil {
		return
	}
	info.Base = base
}

// RecordInfo returns metadata for id, if id names a record/object type.
func (in *Interner) RecordInfo(id TypeID) (*RecordInfo, bool) {
	info := in.recordInfo(id)
	if info == nil {
		return nil, false
	}
	return info, true
}

func (in *Interner) recordInfo(id TypeID) *RecordInfo {
	t, ok := in.Lookup(id)
	if !ok || (t.Kind != KindRecord && t.Kind != KindObject && t.Kind != KindRecordConstructor) || len(t.Sons) == 0 {
		return nil
	}
	slot := int(t.Sons[0])
	if slot <= 0 || slot >= len(in.records) {
		return nil
	}
	return &in.records[slot]
}

// RegisterRecordConstructor allocates a structural record-constructor type
// for a record-literal expression's field list: unlike RegisterRecord, this
// is not nominal and never carries a Decl, matching the type relation's
// "record-constructor" actual shape used when matching against a formal
// record or object field list.
func (in *Interner) RegisterRecordConstructor(fields []RecordField) TypeID {
	slot := in.appendRecordInfo(RecordInfo{Fields: slices.Clone(fields)})
	return in.internRaw(Type{Kind: KindRecordConstructor, Sons: []TypeID{TypeID(slot)}})
}

func (in *Interner) appendRecordInfo(info RecordInfo) uint32 {
	in.records = append(in.records, info)
	slot, err := safecast.Conv[uint32](len(in.records) - 1)
	if err != nil {
		panic(fmt.Errorf("typesys: record table overflow: %w", err))
	}
	return slot
}

// EnumVariant describes one member of a declared enum.
type EnumVariant struct {
	Name  ident.ID
	Value int64
}

// EnumInfo stores metadata for a declared enum type.
type EnumInfo struct {
	Name     ident.ID
	Decl     tree.NodeID
	BaseType TypeID
	Variants []EnumVariant
}

// RegisterEnum allocates a nominal enum type and returns its TypeID.
func (in *Interner) RegisterEnum(name ident.ID, decl tree.NodeID, base TypeID) TypeID {
	slot := in.appendEnumInfo(EnumInfo{Name: name, Decl: decl, BaseType: base})
	return in.internRaw(Type{Kind: KindEnum, Node: decl, Sons: []TypeID{TypeID(slot)}})
}

// SetEnumVariants stores the resolved variant list for an enum type.
func (in *Interner) SetEnumVariants(id TypeID, variants []EnumVariant) {
	info := in.enumInfo(id)
	if info == nil {
		return
	}
	info.Variants = slices.Clone(variants)
}

// EnumInfo returns metadata for id, if id names an enum type.
func (in *Interner) EnumInfo(id TypeID) (*EnumInfo, bool) {
	info := in.enumInfo(id)
	if info == nil {
		return nil, false
	}
	return info, true
}

func (in *Interner) enumInfo(id TypeID) *EnumInfo {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindEnum || len(t.Sons) == 0 {
		return nil
	}
	slot := int(t.Sons[0])
	if slot <= 0 || slot >= len(in.enums) {
		return nil
	}
	return &in.enums[slot]
}

func (in *Interner) appendEnumInfo(info EnumInfo) uint32 {
	in.enums = append(in.enums, info)
	slot, err := safecast.Conv[uint32](len(in.enums) - 1)
	if err != nil {
		panic(fmt.Errorf("typesys: enum table overflow: %w", err))
	}
	return slot
}

// ProcInfo stores metadata for a proc type beyond what fits in Sons:
// parameter names (needed to match named arguments) and which trailing
// parameters have defaults.
type ProcInfo struct {
	ParamNames   []ident.ID
	HasDefault   []bool
	VariadicTail bool
}

// RegisterProc interns a proc type. params is the parameter type list,
// result the return type (NoTypeID for a proc returning nothing); the two
// are stored positionally in Sons (params..., result) so structural equality
// of two anonymous proc types falls out of the ordinary typeKey hash. Sons[0]
// is the ProcInfo slot; registrations with equal metadata reuse one slot.
func (in *Interner) RegisterProc(params []TypeID, paramNames []ident.ID, hasDefault []bool, variadicTail bool, result TypeID, conv CallConv) TypeID {
	var slot uint32
	for i := uint32(1); int(i) < len(in.procs); i++ {
		p := in.procs[i]
		if p.VariadicTail == variadicTail && slices.Equal(p.ParamNames, paramNames) && slices.Equal(p.HasDefault, hasDefault) {
			slot = i
			break
		}
	}
	if slot == 0 {
		slot = in.appendProcInfo(ProcInfo{
			ParamNames:   slices.Clone(paramNames),
			HasDefault:   slices.Clone(hasDefault),
			VariadicTail: variadicTail,
		})
	}
	sons := make([]TypeID, 0, len(params)+2)
	sons = append(sons, TypeID(slot))
	sons = append(sons, params...)
	sons = append(sons, result)
	return in.Intern(Type{Kind: KindProc, Sons: sons, Conv: conv})
}

// ProcSignature splits a proc type's Sons back into its parameter types and
// result type.
func (in *Interner) ProcSignature(id TypeID) (params []TypeID, result TypeID, ok bool) {
	t, found := in.Lookup(id)
	if !found || t.Kind != KindProc || len(t.Sons) < 2 {
		return nil, NoTypeID, false
	}
	return t.Sons[1 : len(t.Sons)-1], t.Sons[len(t.Sons)-1], true
}

// ProcInfo returns the parameter-name/default metadata for a proc type.
func (in *Interner) ProcInfo(id TypeID) (*ProcInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindProc || len(t.Sons) == 0 {
		return nil, false
	}
	slot := int(t.Sons[0])
	if slot <= 0 || slot >= len(in.procs) {
		return nil, false
	}
	return &in.procs[slot], true
}

func (in *Interner) appendProcInfo(info ProcInfo) uint32 {
	in.procs = append(in.procs, info)
	slot, err := safecast.Conv[uint32](len(in.procs) - 1)
	if err != nil {
		panic(fmt.Errorf("typesys: proc table overflow: %w", err))
	}
	return slot
}

// GenericInfo stores metadata for a declared generic (KindGeneric) or a
// generic parameter (KindGenericParam): its name and, for a parameter, the
// contract types it is bound to satisfy.
type GenericInfo struct {
	Name        ident.ID
	Decl        tree.NodeID
	Constraints []TypeID // contract bounds; empty means unconstrained
}

// RegisterGeneric allocates a declared generic template type.
func (in *Interner) RegisterGeneric(name ident.ID, decl tree.NodeID, arity int) TypeID {
	slot := in.appendGenericInfo(GenericInfo{Name: name, Decl: decl})
	sons := make([]TypeID, arity)
	return in.internRaw(Type{Kind: KindGeneric, Node: decl, Sons: append([]TypeID{TypeID(slot)}, sons...)})
}

// RegisterGenericParam allocates a placeholder type for one generic
// parameter, optionally bound to a set of contract constraints.
func (in *Interner) RegisterGenericParam(name ident.ID, decl tree.NodeID, constraints []TypeID) TypeID {
	slot := in.appendGenericInfo(GenericInfo{Name: name, Decl: decl, Constraints: slices.Clone(constraints)})
	return in.internRaw(Type{Kind: KindGenericParam, Node: decl, Sons: []TypeID{TypeID(slot)}})
}

// RegisterGenericInst interns a concrete instantiation of a generic
// template with the given bound type arguments, keyed by ContainerID so
// repeated instantiations with the same arguments share a TypeID (the
// caching behaviour spec's Instantiate operation requires).
func (in *Interner) RegisterGenericInst(container TypeID, args []TypeID) TypeID {
	return in.Intern(Type{Kind: KindGenericInst, Sons: slices.Clone(args), ContainerID: container})
}

// GenericInfo returns metadata for a declared generic or generic parameter.
// KindGenericInst has no entry of its own — look up its ContainerID's info
// instead.
func (in *Interner) GenericInfo(id TypeID) (*GenericInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || (t.Kind != KindGeneric && t.Kind != KindGenericParam) || len(t.Sons) == 0 {
		return nil, false
	}
	slot := int(t.Sons[0])
	if slot <= 0 || slot >= len(in.generics) {
		return nil, false
	}
	return &in.generics[slot], true
}

func (in *Interner) appendGenericInfo(info GenericInfo) uint32 {
	in.generics = append(in.generics, info)
	slot, err := safecast.Conv[uint32](len(in.generics) - 1)
	if err != nil {
		panic(fmt.Errorf("typesys: generic table overflow: %w", err))
	}
	return slot
}
