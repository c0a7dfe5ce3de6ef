package resolve

import (
	"nucleus/internal/ident"
	"nucleus/internal/symtab"
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

// MatchState is the outcome of running Score against one candidate.
type MatchState uint8

const (
	StateEmpty MatchState = iota
	StateMatch
	StateNoMatch
)

// Arg is one actual argument at a call site: its (already typechecked) type,
// an optional name for a named argument, whether it is a literal (recorded
// for callers; Score and Materialize do not read it), and the tree node
// carrying its value.
type Arg struct {
	Name      ident.ID // ident.NoID unless this is a named argument
	Type      typesys.TypeID
	IsLiteral bool
	Node      tree.NodeID
}

// Converter is a registered user-defined conversion procedure: it accepts a
// value of type From and produces a value of type To.
type Converter struct {
	Symbol symtab.SymbolID
	From   typesys.TypeID
	To     typesys.TypeID
}

// slotKind classifies how one formal position was filled during scoring, so
// Materialize can rebuild the exact node the position needs without
// re-running argument assignment.
type slotKind uint8

const (
	slotSingle slotKind = iota
	slotDefault
	slotCollapsed
	slotConverted
)

// slotPlan is the materialization recipe for one formal position, recorded
// during the (parallel-safe) scoring pass and replayed sequentially once a
// candidate has won. Scoring decides every wrapping decision up front so
// Materialize never has to re-derive a Rank or re-run Rel.
type slotPlan struct {
	kind slotKind

	node    tree.NodeID    // slotSingle/slotConverted: the actual's own node
	hasWrap bool           // whether node must be wrapped in a hidden-conversion node
	wrap    tree.NodeKind  // the wrapping node kind, when hasWrap
	result  typesys.TypeID // slotSingle: bound type for a generic slot; wrap result type otherwise

	collapsed []tree.NodeID  // slotCollapsed: the actuals gathered into a bracket
	elemType  typesys.TypeID // slotCollapsed: the open-array/sequence element type
}

// Candidate tracks one overload's matching attempt: the per-tier tallies
// used for lexicographic comparison, the bindings this attempt accumulated,
// and (once matched) the materialization plan for its rewritten call.
type Candidate struct {
	Symbol   symtab.SymbolID
	ProcType typesys.TypeID
	Bindings Bindings

	State MatchState

	Exact   int
	Generic int
	Subtype int
	Conv    int

	// BaseTypeMatch records that at least one argument matched a formal
	// open-array/sequence parameter by its bare element type, triggering
	// bracket-constructor collapsing.
	BaseTypeMatch bool

	Result typesys.TypeID

	// FailPos names the argument position matching failed at, for
	// diagnostics; -1 if the candidate is not StateNoMatch, or if the
	// failure is not tied to one argument (an unknown named argument, or a
	// ProcType that is not a proc).
	FailPos int

	plan []slotPlan
}

// precedence returns the four-tuple used for lexicographic candidate
// comparison: (exact, generic, subtype, conv), higher wins at each tier.
func (c *Candidate) precedence() [4]int {
	return [4]int{c.Exact, c.Generic, c.Subtype, c.Conv}
}

// Better reports whether c is a strictly better match than other under the
// lexicographic precedence spec's overload resolution defines.
func (c *Candidate) Better(other *Candidate) bool {
	cp, op := c.precedence(), other.precedence()
	for i := range cp {
		if cp[i] != op[i] {
			return cp[i] > op[i]
		}
	}
	return false
}

// Equal reports whether c and other tie at every precedence tier.
func (c *Candidate) Equal(other *Candidate) bool {
	return c.precedence() == other.precedence()
}
