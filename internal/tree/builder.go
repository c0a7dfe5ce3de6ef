package tree

import "nucleus/internal/source"

// Hints sizes the initial capacity of a Builder's arenas. Zero fields fall
// back to defaults.
type Hints struct {
	Nodes uint
}

// Builder is the single entry point for constructing a tree: it owns the
// Nodes store and every payload arena behind it.
type Builder struct {
	Nodes *Nodes
}

// NewBuilder creates a Builder with arenas preallocated per hints.
func NewBuilder(hints Hints) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	return &Builder{Nodes: NewNodes(hints.Nodes)}
}

// SetType assigns the resolved type slot on a node.
func (b *Builder) SetType(id NodeID, t TypeID) {
	b.Nodes.Get(id).Type = t
}

// SetComment attaches a trailing comment span to a node.
func (b *Builder) SetComment(id NodeID, span source.Span) {
	b.Nodes.Get(id).Comment = span
}

// SetFlags ORs additional flags onto a node.
func (b *Builder) SetFlags(id NodeID, flags NodeFlags) {
	n := b.Nodes.Get(id)
	n.Flags |= flags
}
