package resolve

import "nucleus/internal/typesys"

// relGenericParam implements the generic-parameter binding rule: an already
// bound parameter accepts only an actual identical to its bound type
// (RankEqual, else RankNone); an unbound parameter
// with satisfied constraints (or none) binds to the concretised actual and
// reports RankGeneric.
func relGenericParam(store *typesys.Interner, bindings Bindings, f, a typesys.TypeID) Rank {
	// Once a parameter is bound, every further occurrence must name exactly
	// that type: rebinding to a merely-convertible or -subtype actual is
	// refused rather than silently widened or narrowed.
	if bound, ok := bindings[f]; ok {
		if bound == a {
			return RankEqual
		}
		return RankNone
	}
	concrete, ok := concretise(store, a)
	if !ok {
		return RankNone
	}
	if info, hasInfo := store.GenericInfo(f); hasInfo && len(info.Constraints) > 0 {
		satisfied := false
		for _, c := range info.Constraints {
			if Rel(store, bindings, c, a) >= RankSubtype {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return RankNone
		}
	}
	bindings[f] = concrete
	return RankGeneric
}

// concretise maps an actual's transient constructor shape onto the type a
// generic parameter should actually be bound to. empty-set and nil carry no
// element type to bind and are rejected outright. A record-constructor has
// no separate "record" target in this type system (declared records are
// nominal and require a declaration this binding step never has), so it
// binds to its own structural shape.
func concretise(store *typesys.Interner, a typesys.TypeID) (typesys.TypeID, bool) {
	at, ok := store.Lookup(a)
	if !ok {
		return typesys.NoTypeID, false
	}
	switch at.Kind {
	case typesys.KindEmptySet, typesys.KindNil:
		return typesys.NoTypeID, false
	case typesys.KindArrayConstructor:
		return store.Intern(typesys.Type{Kind: typesys.KindOpenArray, Sons: []typesys.TypeID{at.Elem()}}), true
	default:
		return a, true
	}
}

// relGeneric implements the declared-generic rule: the actual must be an
// instantiation of the very same template (same ContainerID) at the same
// arity, with every bound type argument unified pairwise against the
// template's own son at that position and ranked at least generic. Two
// anonymous proc types already dedup structurally, so this rule exists for
// the case a formal parameter is declared to accept "any instantiation of
// generic G" rather than one concrete instantiation.
func relGeneric(store *typesys.Interner, bindings Bindings, f typesys.TypeID, ft, at typesys.Type) Rank {
	if at.Kind != typesys.KindGenericInst || at.ContainerID != f {
		return RankNone
	}
	formalArgs := ft.Sons[1:]
	if len(formalArgs) != len(at.Sons) {
		return RankNone
	}
	rank := RankEqual
	for i, fson := range formalArgs {
		if fson == typesys.NoTypeID {
			// Unfilled template slot: unconstrained, satisfied at exactly
			// the generic tier.
			rank = Min(rank, RankGeneric)
			continue
		}
		r := Rel(store, bindings, fson, at.Sons[i])
		if r < RankGeneric {
			return RankNone
		}
		rank = Min(rank, r)
	}
	return rank
}
