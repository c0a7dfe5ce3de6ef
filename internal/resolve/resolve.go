package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"nucleus/internal/diag"
	"nucleus/internal/source"
	"nucleus/internal/symtab"
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

// Overload is one procedure symbol visible at a call site, in the order its
// scope lookup produced it. Callers gather this list from symtab before
// invoking ResolveCall; the resolver itself never touches scopes.
type Overload struct {
	Symbol   symtab.SymbolID
	ProcType typesys.TypeID
}

// Result is the outcome of resolving one call: the winning candidate and
// its materialized rewritten argument list. ResolveCall returns a nil
// *Result when no overload is visible, none matched, or the match was
// ambiguous (in which case a diagnostic has already been reported).
type Result struct {
	Candidate *Candidate
	Rewritten []tree.NodeID
}

// ResolveCall scores every visible overload concurrently — Score never
// mutates tb, so this fan-out is race-free regardless of goroutine
// scheduling — then folds the results in overload order (not completion
// order) so the winner/runner-up decision is deterministic. The winning
// candidate's rewritten call is materialized sequentially afterward, since
// Materialize does mutate tb.
//
// Only one candidate's nodes are ever built: the loser candidates' plans
// are simply discarded, which is why Score defers node construction in the
// first place instead of building it speculatively for every overload.
func ResolveCall(store *typesys.Interner, tb *tree.Builder, instantiator *Instantiator, overloads []Overload, args []Arg, converters []Converter, reporter diag.Reporter, callSpan source.Span) *Result {
	if len(overloads) == 0 {
		diag.ReportError(reporter, diag.UndeclaredIdentifier, callSpan, "call to an identifier with no visible overload").Emit()
		return nil
	}

	scored := make([]*Candidate, len(overloads))
	g, _ := errgroup.WithContext(context.Background())
	for i, ov := range overloads {
		i, ov := i, ov
		g.Go(func() error {
			scored[i] = Score(store, Candidate{Symbol: ov.Symbol, ProcType: ov.ProcType}, args, converters)
			return nil
		})
	}
	_ = g.Wait() // Score never returns an error; every slot is populated

	var best, runnerUp *Candidate
	for _, c := range scored {
		if c.State != StateMatch {
			continue
		}
		switch {
		case best == nil:
			best = c
		case c.Better(best):
			runnerUp = best
			best = c
		case c.Equal(best):
			runnerUp = c
		}
	}

	if best == nil {
		diag.ReportError(reporter, diag.NoMatchingOverload, callSpan, "no overload accepts these arguments").Emit()
		return nil
	}
	if runnerUp != nil && runnerUp.Equal(best) {
		diag.ReportError(reporter, diag.AmbiguousCall, callSpan, "ambiguous call: more than one overload matches equally well").Emit()
		return nil
	}

	if best.Generic > 0 && instantiator != nil {
		concrete := instantiator.Instantiate(best.ProcType, best.Bindings)
		if _, result, ok := store.ProcSignature(concrete); ok {
			best.ProcType = concrete
			best.Result = result
		}
	}

	rewritten := Materialize(store, tb, best)
	return &Result{Candidate: best, Rewritten: rewritten}
}
