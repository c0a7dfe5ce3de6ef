// Package symtab holds the scope-stacked symbol table: symbols, lexical
// scopes, the open-addressed name table each scope uses for lookup, and a
// trunked integer bitset.
package symtab

// ScopeID references a Scope in a Scopes arena.
type ScopeID uint32

// NoScopeID marks the absence of a scope.
const NoScopeID ScopeID = 0

func (id ScopeID) IsValid() bool { return id != NoScopeID }

// SymbolID references a Symbol in a Symbols arena. Every symbol created
// during a compilation unit gets a distinct, permanent SymbolID.
type SymbolID uint32

// NoSymbolID marks the absence of a symbol.
const NoSymbolID SymbolID = 0

func (id SymbolID) IsValid() bool { return id != NoSymbolID }
