package resolve

import "nucleus/internal/typesys"

// relProc implements proc-to-proc compatibility: same calling convention and
// arity, contravariant parameter positions demoted to convertible when the
// swapped direction is a subtype, and a return-type check that agrees on
// presence/absence and demotes a subtype return to convertible overall.
func relProc(store *typesys.Interner, b Bindings, f, a typesys.TypeID, at typesys.Type) Rank {
	if at.Kind != typesys.KindProc {
		return RankNone
	}
	ft := store.MustLookup(f)
	if ft.Conv != at.Conv {
		return RankNone
	}
	fParams, fResult, fok := store.ProcSignature(f)
	aParams, aResult, aok := store.ProcSignature(a)
	if !fok || !aok || len(fParams) != len(aParams) {
		return RankNone
	}

	rank := RankEqual
	for i := range fParams {
		r := Rel(store, b, fParams[i], aParams[i])
		if r == RankNone {
			swapped := Rel(store, b, aParams[i], fParams[i])
			if swapped != RankSubtype {
				return RankNone
			}
			rank = Min(rank, RankConvertible)
			continue
		}
		rank = Min(rank, r)
	}

	hasF, hasA := fResult != typesys.NoTypeID, aResult != typesys.NoTypeID
	if hasF != hasA {
		return RankNone
	}
	if hasF {
		rr := Rel(store, b, fResult, aResult)
		if rr == RankNone {
			return RankNone
		}
		if rr == RankSubtype {
			rr = RankConvertible
		}
		rank = Min(rank, rr)
	}
	return rank
}
