package resolve

import "nucleus/internal/typesys"

// relCString implements string/array-to-cstring conversion. A plain string
// actual is always convertible. A char array actual is convertible only
// when its index base is zero and its index type is an integer-family
// member — the Open Question decision: since this type system's KindRange
// carries no literal bound values (only a base type, per the type
// relation's own equal-if-same-base rule), "index base zero" is
// approximated as "the index type is a bare integer kind, not a declared
// subrange" — an array indexed by an explicit range is conservatively
// treated as not zero-based. A ptr char is accepted identically.
func relCString(store *typesys.Interner, at typesys.Type) Rank {
	switch at.Kind {
	case typesys.KindString:
		return RankConvertible
	case typesys.KindArray:
		if isZeroBasedCharArray(store, at) {
			return RankConvertible
		}
		return RankNone
	case typesys.KindPtr:
		if elem, ok := store.Lookup(at.Elem()); ok && elem.Kind == typesys.KindChar {
			return RankConvertible
		}
		return RankNone
	default:
		return RankNone
	}
}

func isZeroBasedCharArray(store *typesys.Interner, at typesys.Type) bool {
	if len(at.Sons) < 2 {
		return false
	}
	idx, ok := store.Lookup(at.Sons[0])
	if !ok || idx.Kind == typesys.KindRange {
		return false
	}
	if idx.Kind.IsSignedInt() {
		elem, ok := store.Lookup(at.Elem())
		return ok && elem.Kind == typesys.KindChar
	}
	return false
}

// relPointer implements the generic pointer's conversion degradations: it
// accepts nil, ref, ptr, proc, and cstring actuals, all at RankConvertible.
func relPointer(at typesys.Type) Rank {
	switch at.Kind {
	case typesys.KindNil, typesys.KindRef, typesys.KindPtr, typesys.KindProc, typesys.KindCString:
		return RankConvertible
	default:
		return RankNone
	}
}
