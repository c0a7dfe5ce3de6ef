package resolve

import "nucleus/internal/typesys"

func relTuple(store *typesys.Interner, b Bindings, ft, at typesys.Type) Rank {
	if at.Kind != typesys.KindTuple {
		return RankNone
	}
	n := len(ft.Sons)
	if len(at.Sons) < n {
		return RankNone
	}
	rank := RankEqual
	for i := 0; i < n; i++ {
		r := Rel(store, b, ft.Sons[i], at.Sons[i])
		if r == RankNone {
			return RankNone
		}
		rank = Min(rank, r)
	}
	if len(at.Sons) > n {
		rank = Min(rank, RankSubtype)
	}
	return rank
}

// relRecordLike implements the record/record-constructor structural rule:
// every formal field must find a like-named actual field (visited at most
// once), missing fields without a default are rejected, and any actual
// field left over at the end is also rejected.
func relRecordLike(store *typesys.Interner, b Bindings, f, a typesys.TypeID, at typesys.Type) Rank {
	if at.Kind != typesys.KindRecord && at.Kind != typesys.KindRecordConstructor {
		return RankNone
	}
	finfo, ok := store.RecordInfo(f)
	if !ok {
		return RankNone
	}
	ainfo, ok := store.RecordInfo(a)
	if !ok {
		return RankNone
	}

	visited := make([]bool, len(ainfo.Fields))
	rank := RankEqual
	for _, ff := range finfo.Fields {
		matched := false
		for i, af := range ainfo.Fields {
			if visited[i] || af.Name != ff.Name {
				continue
			}
			r := Rel(store, b, ff.Type, af.Type)
			if r == RankNone {
				return RankNone
			}
			rank = Min(rank, r)
			visited[i] = true
			matched = true
			break
		}
		if !matched && !ff.HasDefault {
			return RankNone
		}
	}
	for _, v := range visited {
		if !v {
			return RankNone
		}
	}
	return rank
}

func relObject(store *typesys.Interner, f, a typesys.TypeID) Rank {
	cur := a
	for {
		info, ok := store.RecordInfo(cur)
		if !ok || info.Base == typesys.NoTypeID {
			return RankNone
		}
		if info.Base == f {
			return RankSubtype
		}
		cur = info.Base
	}
}
