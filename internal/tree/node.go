package tree

import "nucleus/internal/source"

// NodeKind enumerates every node shape the tree can hold: literals,
// identifiers, symbol references, operators, control structures,
// declarations, sections, and the hidden-conversion nodes the resolver
// inserts.
type NodeKind uint8

const (
	// Literals.
	LitChar NodeKind = iota
	LitInt8
	LitInt16
	LitInt32
	LitInt64
	LitFloat32
	LitFloat64
	LitStringPlain
	LitStringRaw
	LitStringTriple
	LitNil

	// Names.
	Ident
	SymRef

	// Operators.
	Call
	Infix
	Prefix
	Postfix
	Dot
	Bracket
	RangeExpr
	AddrOf
	Deref
	TypeOf
	ObjectDownConv
	ObjectUpConv

	// Control structures.
	If
	When
	Case
	While
	For
	Try
	Block
	RecordCase
	RecordWhen
	OfBranch
	Elif
	Else
	Finally
	Except

	// Declarations.
	ProcDecl
	MethodDecl
	IteratorDecl
	MacroDecl
	TemplateDecl
	ConstDef
	IdentDefs
	VarTuple
	TypeDef
	GenericParams
	GenericParamNode
	FormalParams
	Param
	EnumDef
	EnumFieldDef
	FieldDef
	ObjectType
	RefQualifier
	PtrQualifier
	VarQualifier
	DistinctQualifier
	TupleType
	ProcType
	ArrayTypeExpr
	SeqTypeExpr
	SetTypeExpr

	// Sections.
	TypeSection
	ConstSection
	VarSection
	ImportSection
	FromSection
	IncludeSection

	// Hidden conversions inserted by the resolver.
	HiddenStdConv
	HiddenSubConv
	HiddenCallConv
	StringToCString
	CStringToString
	PassAsOpenArray
	ChckRange
	ChckRange64
	ChckRangeF
)

// NodeFlags is a bag of boolean node attributes.
type NodeFlags uint16

const (
	FlagExported NodeFlags = 1 << iota
	FlagMutable
	FlagCompilerGenerated // set on nodes synthesized by the resolver/renderer, never by a parser
	FlagHasTrailingComma
)

// Node is the thin, uniform record every tree node shares: kind, source
// location, an optional trailing comment, a flag set, and the type the
// resolver assigned it (NoTypeID until then). The concrete data for a kind
// lives in the payload arena matching its shape family; Payload indexes
// into that arena.
type Node struct {
	Kind    NodeKind
	Span    source.Span
	Comment source.Span // NoStringID-equivalent: zero Span means no comment
	Flags   NodeFlags
	Type    TypeID
	Payload PayloadID
}

// Nodes owns the single Node arena plus one payload arena per shape
// family, mirroring the teacher's Exprs/Items split into Arena + per-kind
// side arenas, generalised to a single closed Node type.
type Nodes struct {
	arena *Arena[Node]

	lits     *Arena[LitPayload]
	idents   *Arena[IdentPayload]
	syms     *Arena[SymPayload]
	children *Arena[ChildrenPayload]
}

// NewNodes creates an empty node store with arenas preallocated using
// capHint as an initial-capacity hint (0 is fine).
func NewNodes(capHint uint) *Nodes {
	return &Nodes{
		arena:    NewArena[Node](capHint),
		lits:     NewArena[LitPayload](capHint),
		idents:   NewArena[IdentPayload](capHint),
		syms:     NewArena[SymPayload](capHint),
		children: NewArena[ChildrenPayload](capHint),
	}
}

// Get returns the node at id, or nil for NoNodeID.
func (n *Nodes) Get(id NodeID) *Node {
	return n.arena.Get(uint32(id))
}

// Len returns the number of allocated nodes.
func (n *Nodes) Len() uint32 {
	return n.arena.Len()
}

func (n *Nodes) alloc(kind NodeKind, span source.Span, payload PayloadID) NodeID {
	return NodeID(n.arena.Allocate(Node{Kind: kind, Span: span, Payload: payload}))
}
