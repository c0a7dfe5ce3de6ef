package typesys

import (
	"testing"

	"nucleus/internal/ident"
)

func TestBuiltinsDistinct(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	seen := map[TypeID]bool{}
	ids := []TypeID{b.Bool, b.Char, b.Int8, b.Int16, b.Int32, b.Int64, b.Float32, b.Float64, b.Float128, b.String, b.CString, b.Pointer, b.EmptySet, b.Nil}
	for _, id := range ids {
		if !id.IsValid() {
			t.Fatalf("builtin id must be valid, got %d", id)
		}
		if seen[id] {
			t.Fatalf("builtin %d reused for two distinct kinds", id)
		}
		seen[id] = true
	}
}

func TestInternStructuralDedup(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().Int32

	a := in.Intern(Type{Kind: KindArray, Sons: []TypeID{elem}, Count: 4})
	b := in.Intern(Type{Kind: KindArray, Sons: []TypeID{elem}, Count: 4})
	if a != b {
		t.Fatalf("identical array descriptors should intern to the same id, got %d and %d", a, b)
	}

	c := in.Intern(Type{Kind: KindArray, Sons: []TypeID{elem}, Count: 8})
	if a == c {
		t.Fatalf("arrays with different Count must not collapse")
	}
}

func TestNominalTypesNeverDedup(t *testing.T) {
	in := NewInterner()
	pool := ident.NewPool()
	name := pool.Intern("Point")

	a := in.RegisterRecord(KindObject, name, 0)
	b := in.RegisterRecord(KindObject, name, 0)
	if a == b {
		t.Fatalf("two distinct object declarations must not share a TypeID even with identical shape")
	}
}

func TestRecordFieldsRoundTrip(t *testing.T) {
	in := NewInterner()
	pool := ident.NewPool()
	name := pool.Intern("Point")
	x := pool.Intern("x")
	y := pool.Intern("y")

	rec := in.RegisterRecord(KindRecord, name, 0)
	in.SetRecordFields(rec, []RecordField{
		{Name: x, Type: in.Builtins().Int32},
		{Name: y, Type: in.Builtins().Int32},
	})

	info, ok := in.RecordInfo(rec)
	if !ok {
		t.Fatalf("RecordInfo reported not-ok")
	}
	if len(info.Fields) != 2 {
		t.Fatalf("len(info.Fields) = %d, want 2", len(info.Fields))
	}
	if info.Fields[0].Name != x || info.Fields[1].Name != y {
		t.Fatalf("field order not preserved: %+v", info.Fields)
	}
}

func TestProcSignatureRoundTrip(t *testing.T) {
	in := NewInterner()
	params := []TypeID{in.Builtins().Int32, in.Builtins().Bool}
	proc := in.RegisterProc(params, nil, nil, false, in.Builtins().String, ConvDefault)

	gotParams, result, ok := in.ProcSignature(proc)
	if !ok {
		t.Fatalf("ProcSignature reported not-ok")
	}
	if len(gotParams) != 2 || gotParams[0] != params[0] || gotParams[1] != params[1] {
		t.Fatalf("ProcSignature params mismatch: got %v, want %v", gotParams, params)
	}
	if result != in.Builtins().String {
		t.Fatalf("ProcSignature result = %d, want string", result)
	}
}

func TestProcSignatureDedup(t *testing.T) {
	in := NewInterner()
	params := []TypeID{in.Builtins().Int32}
	a := in.RegisterProc(params, nil, nil, false, in.Builtins().Bool, ConvDefault)
	b := in.RegisterProc(params, nil, nil, false, in.Builtins().Bool, ConvDefault)
	if a != b {
		t.Fatalf("structurally identical anonymous proc types should dedup, got %d and %d", a, b)
	}
}

func TestGenericInstantiationCaches(t *testing.T) {
	in := NewInterner()
	pool := ident.NewPool()
	container := in.RegisterGeneric(pool.Intern("Box"), 0, 1)

	a := in.RegisterGenericInst(container, []TypeID{in.Builtins().Int32})
	b := in.RegisterGenericInst(container, []TypeID{in.Builtins().Int32})
	if a != b {
		t.Fatalf("instantiating the same generic with the same args twice must return the same TypeID, got %d and %d", a, b)
	}

	c := in.RegisterGenericInst(container, []TypeID{in.Builtins().Bool})
	if a == c {
		t.Fatalf("instantiating with different args must not collapse")
	}
}

func TestGenericParamConstraints(t *testing.T) {
	in := NewInterner()
	pool := ident.NewPool()
	contract := in.Builtins().Bool // stand-in TypeID used only as a constraint marker here
	param := in.RegisterGenericParam(pool.Intern("T"), 0, []TypeID{contract})

	info, ok := in.GenericInfo(param)
	if !ok {
		t.Fatalf("GenericInfo reported not-ok")
	}
	if len(info.Constraints) != 1 || info.Constraints[0] != contract {
		t.Fatalf("constraints not preserved: %+v", info.Constraints)
	}
}

func TestEnumVariantsRoundTrip(t *testing.T) {
	in := NewInterner()
	pool := ident.NewPool()
	red := pool.Intern("Red")
	green := pool.Intern("Green")

	e := in.RegisterEnum(pool.Intern("Color"), 0, in.Builtins().Int32)
	in.SetEnumVariants(e, []EnumVariant{
		{Name: red, Value: 0},
		{Name: green, Value: 1},
	})

	info, ok := in.EnumInfo(e)
	if !ok {
		t.Fatalf("EnumInfo reported not-ok")
	}
	if len(info.Variants) != 2 || info.Variants[1].Name != green {
		t.Fatalf("variants not preserved: %+v", info.Variants)
	}
}
