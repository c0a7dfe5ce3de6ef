package tree

// NodeID references a Node within a Nodes arena. NoNodeID marks an absent
// child slot, which is itself significant (an "absent optional" position,
// not merely unset memory).
type NodeID uint32

// PayloadID references an entry in one of the per-shape-family payload
// arenas (LitPayload, IdentPayload, SymPayload, ChildrenPayload, ...).
type PayloadID uint32

// TypeID is a raw slot for the type assigned to a node by the resolver. It
// mirrors typesys.TypeID's numeric space without importing internal/typesys,
// exactly as the teacher's ast.TypeID exists independently of types.TypeID
// to avoid a package cycle between the tree and the type system.
type TypeID uint32

// SymbolID is a raw slot for the symbol a node resolves to (idents that
// name a declared entity, and symbol-reference nodes). Mirrors
// symtab.SymbolID's numeric space for the same reason TypeID does.
type SymbolID uint32

const (
	NoNodeID    NodeID    = 0
	NoPayloadID PayloadID = 0
	NoTypeID    TypeID    = 0
	NoSymbolID  SymbolID  = 0
)

func (id NodeID) IsValid() bool    { return id != NoNodeID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }
func (id SymbolID) IsValid() bool  { return id != NoSymbolID }
