package diag

import "fmt"

// Code identifies one diagnostic kind. The core's own vocabulary is a small,
// closed set: the type relation and overload resolver only ever raise one
// of these, so Code stays a distinct numeric type a caller can switch on
// instead of comparing message strings.
type Code uint16

const (
	// Unknown is the zero value; no producer should emit it deliberately.
	Unknown Code = 0

	// TypeMismatch fires when an actual's type relates to a formal
	// parameter at RankNone: no conversion, subtype, or generic binding
	// connects them.
	TypeMismatch Code = 3200
	// AmbiguousCall fires when two or more overloads tie for the best
	// candidate precedence tuple after scoring completes.
	AmbiguousCall Code = 3201
	// NamedParamNotIdent fires when a call's named-argument label is not
	// a plain identifier.
	NamedParamNotIdent Code = 3202
	// CannotBindTwice fires when a generic parameter would have to unify
	// with two different concrete types within one call.
	CannotBindTwice Code = 3203
	// UndeclaredIdentifier fires when a call site names no visible
	// overload at all.
	UndeclaredIdentifier Code = 3204
	// Generated is informational: attached to a diagnostic about a node
	// the resolver synthesized (a hidden conversion, a collapsed
	// open-array constructor) rather than one that came from source.
	Generated Code = 3205
	// InternalError surfaces a resolver invariant violation as a
	// diagnostic instead of a panic, for callers that would rather keep
	// running than abort on the first broken assumption.
	InternalError Code = 3206
	// NoMatchingOverload fires when scoring rejects every visible
	// overload outright.
	NoMatchingOverload Code = 3207
)

var codeDescription = map[Code]string{
	Unknown:              "unknown diagnostic",
	TypeMismatch:         "type mismatch",
	AmbiguousCall:        "ambiguous call: more than one overload matches equally well",
	NamedParamNotIdent:   "named argument label must be a plain identifier",
	CannotBindTwice:      "generic parameter bound to two different types",
	UndeclaredIdentifier: "undeclared identifier",
	Generated:            "node generated by the compiler",
	InternalError:        "internal error",
	NoMatchingOverload:   "no matching overload",
}

// ID renders c as a stable, human-facing string such as "SEM3201". The
// resolver's whole vocabulary lives in the 3000s, alongside where a
// front-end's own semantic-analysis codes would sit.
func (c Code) ID() string {
	if ic := int(c); ic >= 3000 && ic < 4000 {
		return fmt.Sprintf("SEM%04d", ic)
	}
	return "E0000"
}

// Title returns c's short description, or Unknown's when c is not one of
// the declared constants.
func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[Unknown]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
