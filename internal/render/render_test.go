package render

import (
	"strings"
	"testing"

	"nucleus/internal/ident"
	"nucleus/internal/source"
	"nucleus/internal/symtab"
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

func harness() (*typesys.Interner, *symtab.Symbols, *ident.Pool, *tree.Builder) {
	store := typesys.NewInterner()
	symbols := symtab.NewSymbols(0)
	pool := ident.NewPool()
	tb := tree.NewBuilder(tree.Hints{})
	return store, symbols, pool, tb
}

func render(store *typesys.Interner, symbols *symtab.Symbols, pool *ident.Pool, tb *tree.Builder, root tree.NodeID, flags Flags) string {
	out, _ := Render(store, symbols, pool, nil, tb, root, flags)
	return string(out)
}

func TestRenderIntLiteralDefaultWidthHasNoSuffix(t *testing.T) {
	store, symbols, pool, tb := harness()
	id := tb.Nodes.NewLit(tree.LitInt32, source.Span{}, tree.LitPayload{Int: 42})
	tb.SetType(id, tree.TypeID(store.Builtins().Int32))

	got := render(store, symbols, pool, tb, id, 0)
	if got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
}

func TestRenderIntLiteralNonDefaultWidthGetsSuffix(t *testing.T) {
	store, symbols, pool, tb := harness()
	id := tb.Nodes.NewLit(tree.LitInt8, source.Span{}, tree.LitPayload{Int: 7})
	tb.SetType(id, tree.TypeID(store.Builtins().Int8))

	got := render(store, symbols, pool, tb, id, 0)
	if got != "7'i8" {
		t.Fatalf("got %q, want %q", got, "7'i8")
	}
}

func TestRenderHexLiteralRadixPreserved(t *testing.T) {
	store, symbols, pool, tb := harness()
	id := tb.Nodes.NewLit(tree.LitInt32, source.Span{}, tree.LitPayload{Int: 255, Radix: 16})
	tb.SetType(id, tree.TypeID(store.Builtins().Int32))

	got := render(store, symbols, pool, tb, id, 0)
	if got != "0x000000ff" {
		t.Fatalf("got %q, want %q", got, "0x000000ff")
	}
}

func TestRenderHexLiteralWidthMatchesDeclaredByteSize(t *testing.T) {
	store, symbols, pool, tb := harness()

	i8 := tb.Nodes.NewLit(tree.LitInt8, source.Span{}, tree.LitPayload{Int: 15, Radix: 16})
	tb.SetType(i8, tree.TypeID(store.Builtins().Int8))
	if got := render(store, symbols, pool, tb, i8, 0); got != "0x0f'i8" {
		t.Fatalf("got %q, want %q", got, "0x0f'i8")
	}

	i64 := tb.Nodes.NewLit(tree.LitInt64, source.Span{}, tree.LitPayload{Int: 1, Radix: 16})
	tb.SetType(i64, tree.TypeID(store.Builtins().Int64))
	if got := render(store, symbols, pool, tb, i64, 0); got != "0x0000000000000001'i64" {
		t.Fatalf("got %q, want %q", got, "0x0000000000000001'i64")
	}
}

func TestRenderOctalAndBinaryLiteralWidths(t *testing.T) {
	store, symbols, pool, tb := harness()

	oct := tb.Nodes.NewLit(tree.LitInt16, source.Span{}, tree.LitPayload{Int: 8, Radix: 8})
	tb.SetType(oct, tree.TypeID(store.Builtins().Int16))
	if got := render(store, symbols, pool, tb, oct, 0); got != "0o000010'i16" {
		t.Fatalf("got %q, want %q", got, "0o000010'i16")
	}

	bin := tb.Nodes.NewLit(tree.LitInt8, source.Span{}, tree.LitPayload{Int: 5, Radix: 2})
	tb.SetType(bin, tree.TypeID(store.Builtins().Int8))
	if got := render(store, symbols, pool, tb, bin, 0); got != "0b00000101'i8" {
		t.Fatalf("got %q, want %q", got, "0b00000101'i8")
	}
}

func TestRenderBoolShapedLiteralPrintsTrueFalse(t *testing.T) {
	store, symbols, pool, tb := harness()
	id := tb.Nodes.NewLit(tree.LitInt32, source.Span{}, tree.LitPayload{Int: 1, IsTrue: true})
	tb.SetType(id, tree.TypeID(store.Builtins().Bool))

	got := render(store, symbols, pool, tb, id, 0)
	if got != "true" {
		t.Fatalf("got %q, want %q", got, "true")
	}
}

func TestRenderFloatLiteralDefaultAlwaysHasDecimalPoint(t *testing.T) {
	store, symbols, pool, tb := harness()
	id := tb.Nodes.NewLit(tree.LitFloat64, source.Span{}, tree.LitPayload{Float: 3})
	tb.SetType(id, tree.TypeID(store.Builtins().Float64))

	got := render(store, symbols, pool, tb, id, 0)
	if got != "3.0" {
		t.Fatalf("got %q, want %q", got, "3.0")
	}
}

func TestRenderStringLiteralEscapesControlBytes(t *testing.T) {
	store, symbols, pool, tb := harness()
	raw := pool.Intern("a\nb")
	id := tb.Nodes.NewLit(tree.LitStringPlain, source.Span{}, tree.LitPayload{Str: raw})

	got := render(store, symbols, pool, tb, id, 0)
	want := `"a\nb"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderCallShortArgListStaysOnOneLine(t *testing.T) {
	store, symbols, pool, tb := harness()
	fn := tb.Nodes.NewIdent(source.Span{}, pool.Intern("add"))
	a := tb.Nodes.NewLit(tree.LitInt32, source.Span{}, tree.LitPayload{Int: 1})
	b := tb.Nodes.NewLit(tree.LitInt32, source.Span{}, tree.LitPayload{Int: 2})
	tb.SetType(a, tree.TypeID(store.Builtins().Int32))
	tb.SetType(b, tree.TypeID(store.Builtins().Int32))
	call := tb.Nodes.NewChildren(tree.Call, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{fn, a, b}})

	got := render(store, symbols, pool, tb, call, 0)
	if got != "add(1, 2)" {
		t.Fatalf("got %q, want %q", got, "add(1, 2)")
	}
}

func TestRenderCallLongArgListWraps(t *testing.T) {
	store, symbols, pool, tb := harness()
	fn := tb.Nodes.NewIdent(source.Span{}, pool.Intern("processEverything"))
	children := []tree.NodeID{fn}
	names := []string{"firstArgumentName", "secondArgumentName", "thirdArgumentName", "fourthArgumentName"}
	for _, name := range names {
		children = append(children, tb.Nodes.NewIdent(source.Span{}, pool.Intern(name)))
	}
	call := tb.Nodes.NewChildren(tree.Call, source.Span{}, tree.ChildrenPayload{Children: children})

	got := render(store, symbols, pool, tb, call, 0)
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected a long argument list to wrap, got %q", got)
	}
	for _, name := range names {
		if !strings.Contains(got, name) {
			t.Fatalf("wrapped output %q missing argument %q", got, name)
		}
	}
}

func TestRenderInfixSpacesOperator(t *testing.T) {
	store, symbols, pool, tb := harness()
	a := tb.Nodes.NewIdent(source.Span{}, pool.Intern("x"))
	b := tb.Nodes.NewIdent(source.Span{}, pool.Intern("y"))
	infix := tb.Nodes.NewChildren(tree.Infix, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{a, b}, Op: tree.OpAdd})

	got := render(store, symbols, pool, tb, infix, 0)
	if got != "x + y" {
		t.Fatalf("got %q, want %q", got, "x + y")
	}
}

func TestRenderDotAccess(t *testing.T) {
	store, symbols, pool, tb := harness()
	base := tb.Nodes.NewIdent(source.Span{}, pool.Intern("obj"))
	dot := tb.Nodes.NewChildren(tree.Dot, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{base}, Name: pool.Intern("field")})

	got := render(store, symbols, pool, tb, dot, 0)
	if got != "obj.field" {
		t.Fatalf("got %q, want %q", got, "obj.field")
	}
}

func TestRenderSymRefUsesDeclaredName(t *testing.T) {
	store, symbols, pool, tb := harness()
	name := pool.Intern("counter")
	sym := symbols.New(symtab.Symbol{Name: name, Kind: symtab.SymbolVariable})
	ref := tb.Nodes.NewSymRef(source.Span{}, tree.SymbolID(sym))

	got := render(store, symbols, pool, tb, ref, 0)
	if got != "counter" {
		t.Fatalf("got %q, want %q", got, "counter")
	}

	withIDs := render(store, symbols, pool, tb, ref, WithIDs)
	if !strings.Contains(withIDs, "counter[") {
		t.Fatalf("WithIDs output %q missing bracketed symbol id", withIDs)
	}
}

func TestRenderHiddenConversionIsTransparent(t *testing.T) {
	store, symbols, pool, tb := harness()
	inner := tb.Nodes.NewIdent(source.Span{}, pool.Intern("n"))
	conv := tb.Nodes.NewChildren(tree.HiddenStdConv, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{inner}})

	got := render(store, symbols, pool, tb, conv, 0)
	if got != "n" {
		t.Fatalf("hidden conversion must render as its operand, got %q", got)
	}
}

func TestRenderIfWithElseIndentsBothBranches(t *testing.T) {
	store, symbols, pool, tb := harness()
	cond := tb.Nodes.NewIdent(source.Span{}, pool.Intern("ok"))
	thenStmt := tb.Nodes.NewIdent(source.Span{}, pool.Intern("a"))
	thenBlock := tb.Nodes.NewChildren(tree.Block, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{thenStmt}})
	elseStmt := tb.Nodes.NewIdent(source.Span{}, pool.Intern("b"))
	elseBlock := tb.Nodes.NewChildren(tree.Block, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{elseStmt}})
	elseNode := tb.Nodes.NewChildren(tree.Else, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{elseBlock}})
	ifNode := tb.Nodes.NewChildren(tree.If, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{cond, thenBlock, elseNode}})

	got := render(store, symbols, pool, tb, ifNode, 0)
	want := "if ok:\n  a\nelse:\n  b"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLSubSectionAlwaysWraps(t *testing.T) {
	store, _, pool, tb := harness()
	decl := tb.Nodes.NewChildren(tree.IdentDefs, source.Span{}, tree.ChildrenPayload{Name: pool.Intern("x")})
	section := tb.Nodes.NewChildren(tree.VarSection, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{decl}})

	if got := LSub(store, pool, tb, section); got != WrapSentinel {
		t.Fatalf("var section LSub = %d, want WrapSentinel", got)
	}
}

func TestLSubAbsentSlotContributesNothing(t *testing.T) {
	store, _, pool, tb := harness()
	fn := tb.Nodes.NewIdent(source.Span{}, pool.Intern("f"))
	call := tb.Nodes.NewChildren(tree.Call, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{fn, tree.NoNodeID}})

	got := LSub(store, pool, tb, call)
	want := LSub(store, pool, tb, tb.Nodes.NewChildren(tree.Call, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{fn}}))
	if got != want {
		t.Fatalf("absent slot should not widen the estimate: got %d, want %d", got, want)
	}
}

func TestTokenStreamConcatenationEqualsRenderedBytes(t *testing.T) {
	store, symbols, pool, tb := harness()
	a := tb.Nodes.NewIdent(source.Span{}, pool.Intern("x"))
	b := tb.Nodes.NewIdent(source.Span{}, pool.Intern("y"))
	infix := tb.Nodes.NewChildren(tree.Infix, source.Span{}, tree.ChildrenPayload{Children: []tree.NodeID{a, b}, Op: tree.OpAdd})

	out, tokens := Render(store, symbols, pool, nil, tb, infix, 0)

	var joined strings.Builder
	for {
		_, text, ok := tokens.Next()
		if !ok {
			break
		}
		joined.WriteString(text)
	}
	if joined.String() != string(out) {
		t.Fatalf("token concatenation %q != rendered bytes %q", joined.String(), string(out))
	}
}

func TestRenderTrailingCommentAlignsWhenItFits(t *testing.T) {
	store, symbols, pool, tb := harness()
	fset := source.NewFileSet()
	content := []byte("# hello")
	fileID := fset.AddVirtual("test", content)
	id := tb.Nodes.NewIdent(source.Span{}, pool.Intern("x"))
	tb.SetComment(id, source.Span{File: fileID, Start: 0, End: uint32(len(content))})

	out, _ := Render(store, symbols, pool, fset, tb, id, 0)
	got := string(out)
	if !strings.HasPrefix(got, "x") || !strings.HasSuffix(got, "# hello") {
		t.Fatalf("got %q, expected aligned trailing comment", got)
	}
}
