package resolve

import (
	"nucleus/internal/ident"
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

// Score walks call's actual arguments against symbol's formal parameter
// list and returns a scored Candidate. Score touches only store and the
// candidate's own Bindings map: it never allocates or mutates a tree node,
// which is what makes it safe to run one Score per candidate concurrently
// across the whole overload set. The rewritten call is not built here; call
// Materialize on the winning candidate once the overload set is reduced to
// one, since node construction can then run sequentially.
func Score(store *typesys.Interner, symbol Candidate, args []Arg, converters []Converter) *Candidate {
	cand := &Candidate{
		Symbol:   symbol.Symbol,
		ProcType: symbol.ProcType,
		Bindings: Bindings{},
		FailPos:  -1,
	}

	params, result, ok := store.ProcSignature(symbol.ProcType)
	if !ok {
		cand.State = StateNoMatch
		return cand
	}
	info, hasInfo := store.ProcInfo(symbol.ProcType)
	var names []ident.ID
	var hasDefault []bool
	variadic := false
	if hasInfo {
		names, hasDefault, variadic = info.ParamNames, info.HasDefault, info.VariadicTail
	}

	plan := make([]slotPlan, len(params))
	visited := make([]bool, len(params))

	var positional []Arg
	for _, a := range args {
		if a.Name == ident.NoID {
			positional = append(positional, a)
			continue
		}
		idx := indexOfName(names, a.Name)
		if idx < 0 || visited[idx] {
			cand.State = StateNoMatch
			cand.FailPos = idx
			return cand
		}
		sp, ok := scoreArgument(store, cand, params[idx], a, converters)
		if !ok {
			cand.State = StateNoMatch
			cand.FailPos = idx
			return cand
		}
		plan[idx] = sp
		visited[idx] = true
	}

	pos := 0
	for i := range params {
		if visited[i] {
			continue
		}
		isLast := i == len(params)-1
		if isLast && pos < len(positional) && len(positional)-pos > 1 &&
			IsBaseTypeMatch(store, cand.Bindings, params[i], positional[pos].Type) {
			sp, r := scoreCollapse(store, cand.Bindings, params[i], positional[pos:])
			if r == RankNone {
				cand.State = StateNoMatch
				cand.FailPos = i
				return cand
			}
			tallyRank(cand, r)
			cand.BaseTypeMatch = true
			plan[i] = sp
			visited[i] = true
			pos = len(positional)
			continue
		}
		if pos >= len(positional) {
			if len(hasDefault) > i && hasDefault[i] {
				plan[i] = slotPlan{kind: slotDefault}
				visited[i] = true
				continue
			}
			cand.State = StateNoMatch
			cand.FailPos = i
			return cand
		}
		sp, ok := scoreArgument(store, cand, params[i], positional[pos], converters)
		if !ok {
			cand.State = StateNoMatch
			cand.FailPos = i
			return cand
		}
		plan[i] = sp
		visited[i] = true
		pos++
	}

	if pos < len(positional) {
		if !variadic {
			cand.State = StateNoMatch
			cand.FailPos = len(params)
			return cand
		}
		for _, a := range positional[pos:] {
			sp := slotPlan{kind: slotSingle, node: a.Node}
			if at, ok := store.Lookup(a.Type); ok && at.Kind == typesys.KindString {
				sp.hasWrap = true
				sp.wrap = tree.StringToCString
				sp.result = store.Builtins().CString
			}
			plan = append(plan, sp)
		}
	}

	cand.plan = plan
	cand.Result = result
	cand.State = StateMatch
	return cand
}

func indexOfName(names []ident.ID, name ident.ID) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func tallyRank(c *Candidate, r Rank) {
	switch r {
	case RankEqual:
		c.Exact++
	case RankGeneric:
		c.Generic++
	case RankSubtype:
		c.Subtype++
	case RankConvertible:
		c.Conv++
	}
}

// scoreArgument implements the per-argument typing rule: it scores the
// match into c's tallies and returns the materialization recipe for the
// slot (the argument itself, or a hidden-conversion wrapper around it).
func scoreArgument(store *typesys.Interner, c *Candidate, formal typesys.TypeID, a Arg, converters []Converter) (slotPlan, bool) {
	r := Rel(store, c.Bindings, formal, a.Type)
	ft, _ := store.Lookup(formal)

	switch r {
	case RankEqual:
		c.Exact++
		if ft.Kind == typesys.KindOpenArray {
			return slotPlan{kind: slotSingle, node: a.Node, hasWrap: true, wrap: tree.PassAsOpenArray, result: formal}, true
		}
		return slotPlan{kind: slotSingle, node: a.Node}, true
	case RankSubtype:
		c.Subtype++
		return slotPlan{kind: slotSingle, node: a.Node, hasWrap: true, wrap: tree.HiddenSubConv, result: formal}, true
	case RankGeneric:
		c.Generic++
		bound := substitute(store, c.Bindings, formal)
		return slotPlan{kind: slotSingle, node: a.Node, result: bound}, true
	case RankConvertible:
		c.Conv++
		return slotPlan{kind: slotSingle, node: a.Node, hasWrap: true, wrap: tree.HiddenStdConv, result: formal}, true
	default:
		for _, conv := range converters {
			if Rel(store, c.Bindings, conv.From, a.Type) == RankEqual && Rel(store, c.Bindings, formal, conv.To) == RankEqual {
				c.Conv++
				return slotPlan{kind: slotConverted, node: a.Node, hasWrap: true, wrap: tree.HiddenCallConv, result: conv.To}, true
			}
		}
		return slotPlan{}, false
	}
}

// scoreCollapse scores a trailing run of actuals being gathered into a
// fresh bracket container at a formal open-array/sequence position. It
// returns the weakest per-element rank achieved.
func scoreCollapse(store *typesys.Interner, bindings Bindings, formal typesys.TypeID, elems []Arg) (slotPlan, Rank) {
	ft, _ := store.Lookup(formal)
	elemType := ft.Elem()

	rank := RankEqual
	children := make([]tree.NodeID, 0, len(elems))
	for _, e := range elems {
		r := Rel(store, bindings, elemType, e.Type)
		if r == RankNone {
			return slotPlan{}, RankNone
		}
		rank = Min(rank, r)
		children = append(children, e.Node)
	}
	return slotPlan{kind: slotCollapsed, collapsed: children, elemType: elemType}, rank
}
