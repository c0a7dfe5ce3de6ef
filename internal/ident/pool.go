// Package ident interns identifier byte strings into small, stable integer
// ids. Equal bytes always map to the same id; the id space is dense and
// starts at 1, with 0 reserved as the "no identifier" sentinel.
package ident

import (
	"hash/fnv"
	"slices"

	"fortio.org/safecast"
)

// ID names an interned identifier within a Pool.
type ID uint32

// NoID is the sentinel returned for the empty identifier.
const NoID ID = 0

// Identifier is the resolved record for an interned name: its bytes, the
// stable ID assigned by the pool, and the FNV-1a hash of its bytes. The
// hash is part of the public contract (used by symtab's trunked bitset and
// by deterministic overload-set ordering), not an implementation detail.
type Identifier struct {
	Bytes []byte
	Hash  uint32
	ID    ID
}

// Pool interns identifier strings to Ids. Equal bytes always intern to the
// same ID.
type Pool struct {
	byID  []Identifier
	index map[string]ID
}

// NewPool creates an empty Pool. Index 0 is pre-populated with the empty
// identifier so NoID always resolves.
func NewPool() *Pool {
	p := &Pool{
		byID:  []Identifier{{Bytes: nil, Hash: fnvHash(nil), ID: NoID}},
		index: map[string]ID{"": NoID},
	}
	return p
}

// Intern inserts s into the pool and returns its ID, reusing the existing
// entry if s was already interned.
func (p *Pool) Intern(s string) ID {
	if id, ok := p.index[s]; ok {
		return id
	}

	cpy := []byte(s)
	n, err := safecast.Conv[uint32](len(p.byID))
	if err != nil {
		panic(err)
	}
	id := ID(n)
	p.byID = append(p.byID, Identifier{Bytes: cpy, Hash: fnvHash(cpy), ID: id})
	p.index[string(cpy)] = id
	return id
}

// InternBytes is Intern for a byte slice, avoiding an allocation on the
// lookup path when the identifier is already known.
func (p *Pool) InternBytes(b []byte) ID {
	if id, ok := p.index[string(b)]; ok {
		return id
	}
	return p.Intern(string(b))
}

// Lookup returns the Identifier record for id.
func (p *Pool) Lookup(id ID) (Identifier, bool) {
	if !p.Has(id) {
		return Identifier{}, false
	}
	return p.byID[id], true
}

// MustLookup returns the Identifier record for id, panicking if id is not
// valid within this pool.
func (p *Pool) MustLookup(id ID) Identifier {
	rec, ok := p.Lookup(id)
	if !ok {
		panic("ident: invalid ID")
	}
	return rec
}

// Has reports whether id was issued by this pool.
func (p *Pool) Has(id ID) bool {
	return int(id) >= 0 && int(id) < len(p.byID)
}

// Len returns the number of interned identifiers, including NoID.
func (p *Pool) Len() int {
	return len(p.byID)
}

// Snapshot returns a copy of every interned identifier, indexed by ID.
func (p *Pool) Snapshot() []Identifier {
	return slices.Clone(p.byID)
}

func fnvHash(b []byte) uint32 {
	h := fnv.New32a()
	h.Write(b)
	return h.Sum32()
}
