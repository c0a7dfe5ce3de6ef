package symtab

import (
	"nucleus/internal/ident"
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

// SymbolKind classifies the kind of program entity a Symbol names.
type SymbolKind uint8

const (
	SymbolUnknown SymbolKind = iota
	SymbolModule
	SymbolTypeDecl
	SymbolVariable
	SymbolParam
	SymbolProc
	SymbolMethod
	SymbolIterator
	SymbolMacro
	SymbolTemplate
	SymbolConverter
	SymbolEnumField
	SymbolField
	SymbolConst
	SymbolLabel
	SymbolGenericParam
	SymbolResult
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolModule:
		return "module"
	case SymbolTypeDecl:
		return "type"
	case SymbolVariable:
		return "variable"
	case SymbolParam:
		return "param"
	case SymbolProc:
		return "proc"
	case SymbolMethod:
		return "method"
	case SymbolIterator:
		return "iterator"
	case SymbolMacro:
		return "macro"
	case SymbolTemplate:
		return "template"
	case SymbolConverter:
		return "converter"
	case SymbolEnumField:
		return "enum-field"
	case SymbolField:
		return "field"
	case SymbolConst:
		return "const"
	case SymbolLabel:
		return "label"
	case SymbolGenericParam:
		return "generic-type-parameter"
	case SymbolResult:
		return "result"
	default:
		return "unknown"
	}
}

// SymbolFlags is a bag of boolean symbol attributes.
type SymbolFlags uint16

const (
	SymFlagUsed SymbolFlags = 1 << iota
	SymFlagExported
	SymFlagImported
	SymFlagSideEffect
)

// Magic tags compiler-intrinsic symbols (built-in operators and magic
// procedures) that the resolver and renderer special-case instead of
// treating like an ordinary user declaration.
type Magic uint8

const (
	MagicNone Magic = iota
	MagicAdd
	MagicSub
	MagicMul
	MagicDiv
	MagicMod
	MagicEq
	MagicLt
	MagicLe
	MagicInc
	MagicDec
	MagicLow
	MagicHigh
	MagicLen
	MagicNew
	MagicDefault
)

// Symbol is a named program entity: an interned name, a kind discriminant,
// the owning symbol (a module or enclosing routine), a reference back to
// its defining AST node, its type, a flag set, a magic tag for compiler
// intrinsics, and a position (parameter index or enum ordinal, where
// applicable).
type Symbol struct {
	ID    SymbolID
	Name  ident.ID
	Kind  SymbolKind
	Owner SymbolID
	Decl  tree.NodeID
	Type  typesys.TypeID
	Flags SymbolFlags
	Magic Magic
	// Position holds the parameter index for SymbolParam or the ordinal for
	// SymbolEnumField; unused otherwise.
	Position uint32
}
