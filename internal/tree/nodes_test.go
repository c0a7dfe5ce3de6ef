package tree

import (
	"testing"

	"nucleus/internal/ident"
	"nucleus/internal/source"
)

func TestArenaAllocateGet(t *testing.T) {
	a := NewArena[int](0)
	if a.Len() != 0 {
		t.Fatalf("expected empty arena, got len %d", a.Len())
	}
	if got := a.Get(0); got != nil {
		t.Fatalf("Get(0) should be nil, got %v", got)
	}

	id1 := a.Allocate(10)
	id2 := a.Allocate(20)
	if id1 == 0 || id2 == 0 {
		t.Fatalf("allocated ids must be non-zero, got %d and %d", id1, id2)
	}
	if id1 == id2 {
		t.Fatalf("distinct allocations must yield distinct ids")
	}
	if got := *a.Get(id1); got != 10 {
		t.Fatalf("Get(id1) = %d, want 10", got)
	}
	if got := *a.Get(id2); got != 20 {
		t.Fatalf("Get(id2) = %d, want 20", got)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
}

func TestNewNodesIdentRoundTrip(t *testing.T) {
	pool := ident.NewPool()
	name := pool.Intern("foo")

	nodes := NewNodes(0)
	span := source.Span{File: 1, Start: 0, End: 3}
	id := nodes.NewIdent(span, name)

	if !id.IsValid() {
		t.Fatalf("NewIdent returned invalid id")
	}
	node := nodes.Get(id)
	if node == nil {
		t.Fatalf("Get(id) returned nil")
	}
	if node.Kind != Ident {
		t.Fatalf("node.Kind = %v, want Ident", node.Kind)
	}
	if node.Span != span {
		t.Fatalf("node.Span = %v, want %v", node.Span, span)
	}

	payload, ok := nodes.Ident(id)
	if !ok {
		t.Fatalf("Ident(id) reported not-ok")
	}
	if payload.Name != name {
		t.Fatalf("payload.Name = %d, want %d", payload.Name, name)
	}

	// A literal accessor on an ident node must fail cleanly.
	if _, ok := nodes.Lit(id); ok {
		t.Fatalf("Lit(id) should fail for an Ident node")
	}
}

func TestNewNodesLitRoundTrip(t *testing.T) {
	nodes := NewNodes(0)
	span := source.Span{File: 1, Start: 0, End: 2}
	id := nodes.NewLit(LitInt32, span, LitPayload{Int: 42, Radix: 10})

	payload, ok := nodes.Lit(id)
	if !ok {
		t.Fatalf("Lit(id) reported not-ok")
	}
	if payload.Kind != LitInt32 {
		t.Fatalf("payload.Kind = %v, want LitInt32", payload.Kind)
	}
	if payload.Int != 42 {
		t.Fatalf("payload.Int = %d, want 42", payload.Int)
	}

	if _, ok := nodes.Ident(id); ok {
		t.Fatalf("Ident(id) should fail for a literal node")
	}
}

func TestNewNodesSymRefRoundTrip(t *testing.T) {
	nodes := NewNodes(0)
	span := source.Span{File: 1, Start: 0, End: 1}
	sym := SymbolID(7)
	id := nodes.NewSymRef(span, sym)

	payload, ok := nodes.SymRefData(id)
	if !ok {
		t.Fatalf("SymRefData(id) reported not-ok")
	}
	if payload.Symbol != sym {
		t.Fatalf("payload.Symbol = %d, want %d", payload.Symbol, sym)
	}
}

func TestNewNodesChildrenRoundTrip(t *testing.T) {
	pool := ident.NewPool()
	fieldName := pool.Intern("bar")

	nodes := NewNodes(0)
	lhs := nodes.NewIdent(source.Span{File: 1, Start: 0, End: 1}, pool.Intern("x"))
	rhs := nodes.NewLit(LitInt32, source.Span{File: 1, Start: 4, End: 5}, LitPayload{Int: 1})

	callSpan := source.Span{File: 1, Start: 0, End: 5}
	call := nodes.NewChildren(Infix, callSpan, ChildrenPayload{
		Children: []NodeID{lhs, NoNodeID, rhs},
		Name:     fieldName,
		Op:       OpAdd,
	})

	payload, ok := nodes.Children(call)
	if !ok {
		t.Fatalf("Children(call) reported not-ok")
	}
	if len(payload.Children) != 3 {
		t.Fatalf("len(payload.Children) = %d, want 3", len(payload.Children))
	}
	if payload.Children[1] != NoNodeID {
		t.Fatalf("absent slot must remain NoNodeID, got %d", payload.Children[1])
	}
	if payload.Op != OpAdd {
		t.Fatalf("payload.Op = %v, want OpAdd", payload.Op)
	}
	if payload.Op.String() != "+" {
		t.Fatalf("payload.Op.String() = %q, want %q", payload.Op.String(), "+")
	}
}

func TestBuilderSetters(t *testing.T) {
	b := NewBuilder(Hints{})
	span := source.Span{File: 1, Start: 0, End: 1}
	id := b.Nodes.New(Else, span)

	b.SetType(id, TypeID(3))
	b.SetFlags(id, FlagCompilerGenerated)
	comment := source.Span{File: 1, Start: 10, End: 20}
	b.SetComment(id, comment)

	node := b.Nodes.Get(id)
	if node.Type != TypeID(3) {
		t.Fatalf("node.Type = %d, want 3", node.Type)
	}
	if node.Flags&FlagCompilerGenerated == 0 {
		t.Fatalf("FlagCompilerGenerated not set")
	}
	if node.Comment != comment {
		t.Fatalf("node.Comment = %v, want %v", node.Comment, comment)
	}
}

func TestNodeIDZeroIsInvalid(t *testing.T) {
	if NoNodeID.IsValid() {
		t.Fatalf("NoNodeID must report invalid")
	}
	if NoPayloadID.IsValid() {
		t.Fatalf("NoPayloadID must report invalid")
	}
	if NoTypeID.IsValid() {
		t.Fatalf("NoTypeID must report invalid")
	}
	if NoSymbolID.IsValid() {
		t.Fatalf("NoSymbolID must report invalid")
	}
}
