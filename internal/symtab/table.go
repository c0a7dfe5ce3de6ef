package symtab

import (
	"fmt"

	"fortio.org/safecast"
)

// Symbols is a 1-based-index arena of Symbol records. Index 0 is reserved
// for NoSymbolID.
type Symbols struct {
	data []Symbol
}

// NewSymbols creates a symbol arena with an optional capacity hint.
func NewSymbols(capHint uint32) *Symbols {
	if capHint == 0 {
		capHint = 64
	}
	return &Symbols{data: make([]Symbol, 1, capHint+1)}
}

// New allocates sym and returns its permanent SymbolID.
func (s *Symbols) New(sym Symbol) SymbolID {
	n, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("symtab: symbol arena overflow: %w", err))
	}
	id := SymbolID(n)
	sym.ID = id
	s.data = append(s.data, sym)
	return id
}

// Get returns the symbol at id, or nil for NoSymbolID.
func (s *Symbols) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len returns the number of allocated symbols, excluding the sentinel.
func (s *Symbols) Len() int { return len(s.data) - 1 }

// Scopes is a 1-based-index arena of Scope records.
type Scopes struct {
	data []Scope
}

// NewScopes creates a scope arena with an optional capacity hint.
func NewScopes(capHint uint32) *Scopes {
	if capHint == 0 {
		capHint = 16
	}
	return &Scopes{data: make([]Scope, 1, capHint+1)}
}

// New allocates a scope with a fresh NameTable and returns its ScopeID.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, owner ScopeOwner) ScopeID {
	n, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("symtab: scope arena overflow: %w", err))
	}
	id := ScopeID(n)
	s.data = append(s.data, Scope{Kind: kind, Parent: parent, Owner: owner, Names: NewNameTable()})
	return id
}

// Get returns the scope at id, or nil for NoScopeID.
func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len returns the number of allocated scopes, excluding the sentinel.
func (s *Scopes) Len() int { return len(s.data) - 1 }

// Table aggregates the symbol and scope arenas for one compilation unit.
type Table struct {
	Symbols *Symbols
	Scopes  *Scopes
}

// Hints sizes the initial capacity of a Table's arenas.
type Hints struct{ Symbols, Scopes uint32 }

// NewTable builds a fresh, empty table.
func NewTable(h Hints) *Table {
	return &Table{
		Symbols: NewSymbols(h.Symbols),
		Scopes:  NewScopes(h.Scopes),
	}
}
