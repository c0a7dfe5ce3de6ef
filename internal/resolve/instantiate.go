package resolve

import (
	"strconv"
	"strings"

	"nucleus/internal/typesys"
)

// substitute recursively replaces every generic-parameter leaf reachable
// from t with its bound concrete type, rebuilding the compound shapes that
// wrap it (array-likes, ptr/ref/var, proc) so the substitution is visible
// at every depth, not just the top level.
func substitute(store *typesys.Interner, bindings Bindings, t typesys.TypeID) typesys.TypeID {
	tt, ok := store.Lookup(t)
	if !ok {
		return t
	}
	if tt.Kind == typesys.KindGenericParam {
		if bound, ok := bindings[t]; ok {
			return bound
		}
		return t
	}
	if len(tt.Sons) == 0 {
		return t
	}

	switch tt.Kind {
	case typesys.KindPtr, typesys.KindRef, typesys.KindVar, typesys.KindDistinct, typesys.KindForward:
		elem := substitute(store, bindings, tt.Elem())
		if elem == tt.Elem() {
			return t
		}
		clone := tt
		clone.Sons = []typesys.TypeID{elem}
		return store.Intern(clone)
	case typesys.KindArray:
		elem := substitute(store, bindings, tt.Elem())
		if elem == tt.Elem() {
			return t
		}
		clone := tt
		clone.Sons = []typesys.TypeID{tt.Sons[0], elem}
		return store.Intern(clone)
	case typesys.KindOpenArray, typesys.KindSequence, typesys.KindSet:
		elem := substitute(store, bindings, tt.Elem())
		if elem == tt.Elem() {
			return t
		}
		clone := tt
		clone.Sons = []typesys.TypeID{elem}
		return store.Intern(clone)
	case typesys.KindTuple:
		changed := false
		sons := make([]typesys.TypeID, len(tt.Sons))
		for i, son := range tt.Sons {
			sons[i] = substitute(store, bindings, son)
			if sons[i] != son {
				changed = true
			}
		}
		if !changed {
			return t
		}
		clone := tt
		clone.Sons = sons
		return store.Intern(clone)
	case typesys.KindProc:
		params, result, ok := store.ProcSignature(t)
		if !ok {
			return t
		}
		info, _ := store.ProcInfo(t)
		newParams := make([]typesys.TypeID, len(params))
		changed := false
		for i, p := range params {
			newParams[i] = substitute(store, bindings, p)
			if newParams[i] != p {
				changed = true
			}
		}
		newResult := result
		if result != typesys.NoTypeID {
			newResult = substitute(store, bindings, result)
			if newResult != result {
				changed = true
			}
		}
		if !changed {
			return t
		}
		if info != nil {
			return store.RegisterProc(newParams, info.ParamNames, info.HasDefault, info.VariadicTail, newResult, tt.Conv)
		}
		return store.RegisterProc(newParams, nil, nil, false, newResult, tt.Conv)
	default:
		return t
	}
}

// Instantiator caches generic-procedure instantiations by (template,
// normalised bindings), preventing exponential re-instantiation when the
// same template is called repeatedly with the same concrete arguments.
type Instantiator struct {
	store *typesys.Interner
	cache map[string]typesys.TypeID
}

// NewInstantiator creates an Instantiator backed by store.
func NewInstantiator(store *typesys.Interner) *Instantiator {
	return &Instantiator{store: store, cache: make(map[string]typesys.TypeID)}
}

// Instantiate substitutes bindings into template (a generic proc's type) and
// returns the resulting concrete proc type, reusing a prior instantiation
// with the same normalised bindings when one exists.
func (in *Instantiator) Instantiate(template typesys.TypeID, bindings Bindings) typesys.TypeID {
	key := instantiationKey(template, bindings)
	if id, ok := in.cache[key]; ok {
		return id
	}
	id := substitute(in.store, bindings, template)
	in.cache[key] = id
	return id
}

// instantiationKey normalises bindings (sorted by generic-parameter TypeID)
// so that two calls binding the same parameters to the same types in a
// different discovery order still hit the cache.
func instantiationKey(template typesys.TypeID, bindings Bindings) string {
	keys := make([]typesys.TypeID, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(template), 10))
	for _, k := range keys {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(k), 10))
		b.WriteByte('=')
		b.WriteString(strconv.FormatUint(uint64(bindings[k]), 10))
	}
	return b.String()
}
