package symtab

import "nucleus/internal/tree"

// ScopeKind enumerates the lexical contexts a Scope can represent.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	ScopeImported          // index 0 of every ScopeStack: symbols pulled in from other modules
	ScopeModule            // the current module's top level
	ScopeFunction
	ScopeBlock
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeImported:
		return "imported"
	case ScopeModule:
		return "module"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// ScopeOwnerKind distinguishes what kind of AST construct opened a scope.
type ScopeOwnerKind uint8

const (
	ScopeOwnerNone ScopeOwnerKind = iota
	ScopeOwnerModule
	ScopeOwnerProc
	ScopeOwnerBlock
)

// ScopeOwner references the AST node that introduced a scope.
type ScopeOwner struct {
	Kind ScopeOwnerKind
	Node tree.NodeID
}

// Scope is a symbol-name-to-symbol table with insertion-order-neutral
// lookup, backed by an open-addressed NameTable. Names maps to symbol
// entries directly; Symbols records every symbol added, in insertion
// order, for scope-local iteration (diagnostics, unused-symbol checks).
type Scope struct {
	Kind    ScopeKind
	Parent  ScopeID
	Owner   ScopeOwner
	Names   *NameTable
	Symbols []SymbolID
}
