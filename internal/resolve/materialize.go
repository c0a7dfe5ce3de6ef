package resolve

import (
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

// Materialize builds the rewritten call's argument node list from a
// StateMatch candidate's plan. Unlike Score, it mutates tb's node arena and
// must only ever be called for the single winning candidate, after overload
// resolution has already picked it: running it concurrently for two
// candidates that share the same tb would race on the arena.
func Materialize(store *typesys.Interner, tb *tree.Builder, cand *Candidate) []tree.NodeID {
	slots := make([]tree.NodeID, len(cand.plan))
	for i, sp := range cand.plan {
		switch sp.kind {
		case slotDefault:
			slots[i] = tree.NoNodeID
		case slotCollapsed:
			span := tb.Nodes.Get(sp.collapsed[0]).Span
			container := tb.Nodes.NewChildren(tree.Bracket, span, tree.ChildrenPayload{Children: sp.collapsed})
			tb.SetFlags(container, tree.FlagCompilerGenerated)
			ctorType := store.Intern(typesys.Type{Kind: typesys.KindArrayConstructor, Sons: []typesys.TypeID{sp.elemType}, Count: uint32(len(sp.collapsed))})
			tb.SetType(container, tree.TypeID(ctorType))
			slots[i] = container
		case slotSingle, slotConverted:
			if sp.hasWrap {
				slots[i] = wrapHidden(tb, sp.wrap, sp.node, sp.result)
			} else if sp.result != typesys.NoTypeID {
				tb.SetType(sp.node, tree.TypeID(sp.result))
				slots[i] = sp.node
			} else {
				slots[i] = sp.node
			}
		}
	}
	return slots
}

func wrapHidden(tb *tree.Builder, kind tree.NodeKind, arg tree.NodeID, resultType typesys.TypeID) tree.NodeID {
	span := tb.Nodes.Get(arg).Span
	id := tb.Nodes.NewChildren(kind, span, tree.ChildrenPayload{Children: []tree.NodeID{arg}})
	tb.SetType(id, tree.TypeID(resultType))
	tb.SetFlags(id, tree.FlagCompilerGenerated)
	return id
}
