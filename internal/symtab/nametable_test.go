package symtab

import (
	"strconv"
	"testing"

	"nucleus/internal/ident"
)

func TestNameTableInsertLookup(t *testing.T) {
	pool := ident.NewPool()
	foo := pool.Intern("foo")
	fooRec := pool.MustLookup(foo)

	table := NewNameTable()
	table.Insert(foo, fooRec.Hash, SymbolID(1))

	got, ok := table.Lookup(foo, fooRec.Hash)
	if !ok {
		t.Fatalf("Lookup reported not-ok for an inserted key")
	}
	if got != SymbolID(1) {
		t.Fatalf("Lookup = %d, want 1", got)
	}
}

func TestNameTableMissingKey(t *testing.T) {
	pool := ident.NewPool()
	foo := pool.Intern("foo")
	bar := pool.Intern("bar")
	barRec := pool.MustLookup(bar)

	table := NewNameTable()
	table.Insert(foo, pool.MustLookup(foo).Hash, SymbolID(1))

	if _, ok := table.Lookup(bar, barRec.Hash); ok {
		t.Fatalf("Lookup should fail for a key never inserted")
	}
}

func TestNameTableOverloadSet(t *testing.T) {
	pool := ident.NewPool()
	name := pool.Intern("add")
	rec := pool.MustLookup(name)

	table := NewNameTable()
	table.Insert(name, rec.Hash, SymbolID(1))
	table.Insert(name, rec.Hash, SymbolID(2))
	table.Insert(name, rec.Hash, SymbolID(3))

	all := table.LookupAll(name, rec.Hash)
	if len(all) != 3 {
		t.Fatalf("LookupAll returned %d entries, want 3", len(all))
	}
	seen := map[SymbolID]bool{}
	for _, id := range all {
		seen[id] = true
	}
	for _, want := range []SymbolID{1, 2, 3} {
		if !seen[want] {
			t.Fatalf("LookupAll missing symbol %d", want)
		}
	}
}

func TestNameTableSurvivesGrowth(t *testing.T) {
	pool := ident.NewPool()
	table := NewNameTable()

	const n = 500
	names := make([]ident.ID, n)
	for i := 0; i < n; i++ {
		names[i] = pool.Intern("sym_" + strconv.Itoa(i))
	}
	for i, name := range names {
		rec := pool.MustLookup(name)
		table.Insert(name, rec.Hash, SymbolID(i+1))
	}
	for i, name := range names {
		rec := pool.MustLookup(name)
		got, ok := table.Lookup(name, rec.Hash)
		if !ok {
			t.Fatalf("Lookup failed after growth for entry %d", i)
		}
		if got != SymbolID(i+1) {
			t.Fatalf("Lookup(%d) = %d, want %d", i, got, i+1)
		}
	}
}

