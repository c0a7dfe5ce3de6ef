package symtab

import "nucleus/internal/ident"

// ScopeStack is an ordered sequence of scopes indexed 0..top-1: index 0
// holds imported symbols, index 1 the current module's top level, deeper
// indices nested routines and blocks. It never shrinks below empty and it
// is a usage error to close-scope past that point.
type ScopeStack struct {
	table  *Table
	pool   *ident.Pool
	scopes []ScopeID
}

// NewScopeStack creates an empty ScopeStack backed by table for symbol/scope
// storage and pool for resolving identifier hashes.
func NewScopeStack(table *Table, pool *ident.Pool) *ScopeStack {
	return &ScopeStack{table: table, pool: pool}
}

// Top returns the number of currently open scopes.
func (s *ScopeStack) Top() int {
	return len(s.scopes)
}

// OpenScope pushes a new scope of kind kind with the given owner and parent
// set to the current top (NoScopeID if the stack was empty). Returns the
// new scope's ID.
func (s *ScopeStack) OpenScope(kind ScopeKind, owner ScopeOwner) ScopeID {
	parent := NoScopeID
	if len(s.scopes) > 0 {
		parent = s.scopes[len(s.scopes)-1]
	}
	id := s.table.Scopes.New(kind, parent, owner)
	s.scopes = append(s.scopes, id)
	return id
}

// CloseScope pops the topmost scope. Panics if the stack is already empty:
// closing more scopes than were opened is a compiler bug, not a diagnosable
// user error.
func (s *ScopeStack) CloseScope() {
	if len(s.scopes) == 0 {
		panic("symtab: close-scope on an empty ScopeStack")
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Add inserts sym into the topmost scope under its own name. Returns
// NoScopeID if the stack is empty.
func (s *ScopeStack) Add(sym SymbolID) ScopeID {
	if len(s.scopes) == 0 {
		return NoScopeID
	}
	top := s.scopes[len(s.scopes)-1]
	scope := s.table.Scopes.Get(top)
	record := s.table.Symbols.Get(sym)
	if scope == nil || record == nil {
		return NoScopeID
	}
	rec, ok := s.pool.Lookup(record.Name)
	if !ok {
		return NoScopeID
	}
	scope.Names.Insert(record.Name, rec.Hash, sym)
	scope.Symbols = append(scope.Symbols, sym)
	return top
}

// LookupLocal searches only the topmost scope.
func (s *ScopeStack) LookupLocal(name ident.ID) (SymbolID, bool) {
	if len(s.scopes) == 0 {
		return NoSymbolID, false
	}
	scope := s.table.Scopes.Get(s.scopes[len(s.scopes)-1])
	if scope == nil {
		return NoSymbolID, false
	}
	hash, ok := s.hashOf(name)
	if !ok {
		return NoSymbolID, false
	}
	return scope.Names.Lookup(name, hash)
}

// Lookup searches from the topmost scope down to the bottom, returning the
// first hit.
func (s *ScopeStack) Lookup(name ident.ID) (SymbolID, bool) {
	hash, ok := s.hashOf(name)
	if !ok {
		return NoSymbolID, false
	}
	for i := len(s.scopes) - 1; i >= 0; i-- {
		scope := s.table.Scopes.Get(s.scopes[i])
		if scope == nil {
			continue
		}
		if sym, found := scope.Names.Lookup(name, hash); found {
			return sym, true
		}
	}
	return NoSymbolID, false
}

// LookupAllLocal returns every symbol under name in the topmost scope (an
// overload set local to that scope).
func (s *ScopeStack) LookupAllLocal(name ident.ID) []SymbolID {
	if len(s.scopes) == 0 {
		return nil
	}
	scope := s.table.Scopes.Get(s.scopes[len(s.scopes)-1])
	if scope == nil {
		return nil
	}
	hash, ok := s.hashOf(name)
	if !ok {
		return nil
	}
	return scope.Names.LookupAll(name, hash)
}

func (s *ScopeStack) hashOf(name ident.ID) (uint32, bool) {
	rec, ok := s.pool.Lookup(name)
	if !ok {
		return 0, false
	}
	return rec.Hash, true
}
