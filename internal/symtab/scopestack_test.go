package symtab

import (
	"testing"

	"nucleus/internal/ident"
)

func newTestStack() (*ScopeStack, *ident.Pool) {
	pool := ident.NewPool()
	table := NewTable(Hints{})
	return NewScopeStack(table, pool), pool
}

func TestScopeStackLIFO(t *testing.T) {
	stack, _ := newTestStack()
	if stack.Top() != 0 {
		t.Fatalf("new stack should start empty, Top() = %d", stack.Top())
	}

	imported := stack.OpenScope(ScopeImported, ScopeOwner{})
	module := stack.OpenScope(ScopeModule, ScopeOwner{})
	if stack.Top() != 2 {
		t.Fatalf("Top() = %d, want 2", stack.Top())
	}

	stack.CloseScope()
	if stack.Top() != 1 {
		t.Fatalf("Top() = %d after one close, want 1", stack.Top())
	}
	stack.CloseScope()
	if stack.Top() != 0 {
		t.Fatalf("Top() = %d after closing everything, want 0", stack.Top())
	}
	_ = imported
	_ = module
}

func TestScopeStackCloseEmptyPanics(t *testing.T) {
	stack, _ := newTestStack()
	defer func() {
		if recover() == nil {
			t.Fatalf("CloseScope on an empty stack must panic")
		}
	}()
	stack.CloseScope()
}

func TestScopeStackLookupOrder(t *testing.T) {
	stack, pool := newTestStack()
	table := stack.table

	name := pool.Intern("x")

	stack.OpenScope(ScopeModule, ScopeOwner{})
	outer := table.Symbols.New(Symbol{Name: name, Kind: SymbolVariable})
	stack.Add(outer)

	stack.OpenScope(ScopeBlock, ScopeOwner{})
	inner := table.Symbols.New(Symbol{Name: name, Kind: SymbolVariable})
	stack.Add(inner)

	got, ok := stack.Lookup(name)
	if !ok || got != inner {
		t.Fatalf("Lookup should find the innermost shadowing symbol, got %d, ok=%v", got, ok)
	}

	local, ok := stack.LookupLocal(name)
	if !ok || local != inner {
		t.Fatalf("LookupLocal should find the topmost scope's symbol, got %d, ok=%v", local, ok)
	}

	stack.CloseScope()
	got, ok = stack.Lookup(name)
	if !ok || got != outer {
		t.Fatalf("after closing the inner scope, Lookup should find the outer symbol, got %d, ok=%v", got, ok)
	}
}

func TestScopeStackLookupMiss(t *testing.T) {
	stack, pool := newTestStack()
	stack.OpenScope(ScopeModule, ScopeOwner{})

	unknown := pool.Intern("nonexistent")
	if _, ok := stack.Lookup(unknown); ok {
		t.Fatalf("Lookup should fail for a name that was never added")
	}
}

func TestScopeStackAddOnEmptyStackIsNoop(t *testing.T) {
	stack, pool := newTestStack()
	table := stack.table
	name := pool.Intern("x")
	sym := table.Symbols.New(Symbol{Name: name, Kind: SymbolVariable})

	if got := stack.Add(sym); got != NoScopeID {
		t.Fatalf("Add on an empty stack should return NoScopeID, got %d", got)
	}
}
