package tree

import (
	"nucleus/internal/ident"
	"nucleus/internal/source"
)

// OperatorKind enumerates the infix/prefix/postfix operator spellings a
// ChildrenPayload can carry in its Op field.
type OperatorKind uint8

const (
	OpNone OperatorKind = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpLogicalAnd
	OpLogicalOr
	OpEq
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpRange
	OpRangeInclusive
	OpIs
	OpPlus  // unary +
	OpMinus // unary -
	OpNot
	OpAddrOf
	OpDeref
)

func (op OperatorKind) String() string {
	switch op {
	case OpAdd, OpPlus:
		return "+"
	case OpSub, OpMinus:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpBitAnd:
		return "&"
	case OpBitOr:
		return "|"
	case OpBitXor:
		return "^"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	case OpLogicalAnd:
		return "&&"
	case OpLogicalOr:
		return "||"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpAssign:
		return "="
	case OpAddAssign:
		return "+="
	case OpSubAssign:
		return "-="
	case OpMulAssign:
		return "*="
	case OpDivAssign:
		return "/="
	case OpModAssign:
		return "%="
	case OpRange:
		return ".."
	case OpRangeInclusive:
		return "..="
	case OpIs:
		return "is"
	case OpNot:
		return "!"
	case OpAddrOf:
		return "&"
	case OpDeref:
		return "*"
	default:
		return "?"
	}
}

// LitPayload backs every literal NodeKind. All literal kinds share this one
// shape (a kind tag plus whichever of the three value fields applies)
// because the alternative — one struct per literal width — buys nothing
// the renderer or resolver needs.
type LitPayload struct {
	Kind    NodeKind
	Int     int64
	Float   float64
	Str     ident.ID // interned raw text for string literals
	IsTrue  bool     // meaningful only for bool-shaped literals reused elsewhere
	Radix   uint8    // 2, 8, 10, or 16 for integer literals; 0 means default (10)
}

// IdentPayload backs Ident nodes.
type IdentPayload struct {
	Name ident.ID
}

// SymPayload backs SymRef nodes: a resolved reference to a declared symbol.
// Symbol is a raw slot mirroring symtab.SymbolID's numeric space, to avoid
// a package cycle (symtab.Symbol.Decl points back at a tree.NodeID).
type SymPayload struct {
	Symbol SymbolID
}

// ChildrenPayload backs every kind that is fundamentally "an operator,
// control structure, or declaration over child nodes": calls, infix/
// prefix/postfix expressions, dot/bracket access, ranges, control-flow
// bodies, declarations, sections, and hidden-conversion wrappers. Nil
// entries in Children are significant — they mark an absent optional slot
// (e.g. a missing else branch, an omitted type annotation) rather than a
// truncated list.
type ChildrenPayload struct {
	Children []NodeID
	Name     ident.ID     // field/label name, when the kind carries one (Dot, IdentDefs, ...)
	Op       OperatorKind // operator spelling, when the kind is an operator
	Inclusive bool        // for RangeExpr
}

// New allocates a bare node with no payload (used for kinds like Else,
// Finally when they carry only children through their parent's payload).
func (n *Nodes) New(kind NodeKind, span source.Span) NodeID {
	return n.alloc(kind, span, NoPayloadID)
}

// NewLit allocates a literal node.
func (n *Nodes) NewLit(kind NodeKind, span source.Span, p LitPayload) NodeID {
	p.Kind = kind
	id := n.lits.Allocate(p)
	return n.alloc(kind, span, PayloadID(id))
}

// Lit returns the literal payload for id, if id names a literal node.
func (n *Nodes) Lit(id NodeID) (*LitPayload, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	switch node.Kind {
	case LitChar, LitInt8, LitInt16, LitInt32, LitInt64, LitFloat32, LitFloat64,
		LitStringPlain, LitStringRaw, LitStringTriple, LitNil:
		return n.lits.Get(uint32(node.Payload)), true
	default:
		return nil, false
	}
}

// NewIdent allocates an identifier node.
func (n *Nodes) NewIdent(span source.Span, name ident.ID) NodeID {
	id := n.idents.Allocate(IdentPayload{Name: name})
	return n.alloc(Ident, span, PayloadID(id))
}

// Ident returns the identifier payload for id.
func (n *Nodes) Ident(id NodeID) (*IdentPayload, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != Ident {
		return nil, false
	}
	return n.idents.Get(uint32(node.Payload)), true
}

// NewSymRef allocates a resolved symbol-reference node.
func (n *Nodes) NewSymRef(span source.Span, sym SymbolID) NodeID {
	id := n.syms.Allocate(SymPayload{Symbol: sym})
	return n.alloc(SymRef, span, PayloadID(id))
}

// SymRefData returns the symbol payload for id.
func (n *Nodes) SymRefData(id NodeID) (*SymPayload, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != SymRef {
		return nil, false
	}
	return n.syms.Get(uint32(node.Payload)), true
}

// NewChildren allocates a node of any operator/control/declaration kind
// backed by ChildrenPayload.
func (n *Nodes) NewChildren(kind NodeKind, span source.Span, p ChildrenPayload) NodeID {
	id := n.children.Allocate(p)
	return n.alloc(kind, span, PayloadID(id))
}

// Children returns the children payload for id, regardless of its exact
// kind — callers switch on node.Kind to interpret Op/Name/Children.
func (n *Nodes) Children(id NodeID) (*ChildrenPayload, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	return n.children.Get(uint32(node.Payload)), true
}
