package render

import (
	"nucleus/internal/ident"
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

// WrapSentinel means "this subtree cannot be rendered on one line" — any
// value greater than MaxLineLen would do, but a dedicated sentinel keeps
// callers' intent explicit.
const WrapSentinel = MaxLineLen + 1

// LSub returns a cheap upper bound on the column width node would need if
// rendered on a single line, or WrapSentinel when it must always wrap. Each
// kind's formula is additive over its children's own LSub, giving the
// emission pass a one-shot "does this still fit" answer without a full
// trial rendering.
func LSub(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, id tree.NodeID) int {
	if !id.IsValid() {
		return 0
	}
	n := tb.Nodes.Get(id)
	if n == nil {
		return 0
	}

	switch n.Kind {
	case tree.LitChar, tree.LitInt8, tree.LitInt16, tree.LitInt32, tree.LitInt64,
		tree.LitFloat32, tree.LitFloat64, tree.LitNil:
		return len(formatNumericLiteral(store, tb, id))

	case tree.LitStringPlain, tree.LitStringRaw, tree.LitStringTriple:
		if lit, ok := tb.Nodes.Lit(id); ok {
			return len(formatStringLiteral(pool, lit.Str))
		}
		return WrapSentinel

	case tree.Ident:
		if p, ok := tb.Nodes.Ident(id); ok {
			if rec, ok := pool.Lookup(p.Name); ok {
				return len(rec.Bytes)
			}
		}
		return 1

	case tree.SymRef:
		return 8 // resolved names render through their declaration's spelling elsewhere

	case tree.Call:
		return lsubCall(store, pool, tb, id)

	case tree.Infix:
		return lsubInfix(store, pool, tb, id)

	case tree.Prefix, tree.AddrOf, tree.Deref, tree.Postfix:
		return lsubUnary(store, pool, tb, id)

	case tree.Dot:
		return lsubDot(store, pool, tb, id)

	case tree.Bracket:
		return lsubBracketed(store, pool, tb, id, "[", "]")

	case tree.RangeExpr:
		return lsubRange(store, pool, tb, id)

	case tree.HiddenStdConv, tree.HiddenSubConv, tree.HiddenCallConv,
		tree.StringToCString, tree.CStringToString, tree.PassAsOpenArray,
		tree.ChckRange, tree.ChckRange64, tree.ChckRangeF:
		// Hidden conversions are invisible in rendered source: they
		// contribute only their sole child's width.
		if c, ok := tb.Nodes.Children(id); ok && len(c.Children) == 1 {
			return LSub(store, pool, tb, c.Children[0])
		}
		return WrapSentinel

	case tree.VarSection, tree.ConstSection, tree.TypeSection,
		tree.If, tree.When, tree.While, tree.For, tree.Try, tree.Case, tree.Block,
		tree.ProcDecl, tree.MethodDecl, tree.IteratorDecl:
		// Multi-declarator sections and every statement-bearing construct
		// always render across multiple lines.
		return WrapSentinel

	default:
		return lsubGeneric(store, pool, tb, id)
	}
}

func lsubCall(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, id tree.NodeID) int {
	c, ok := tb.Nodes.Children(id)
	if !ok || len(c.Children) == 0 {
		return WrapSentinel
	}
	fn := LSub(store, pool, tb, c.Children[0])
	if fn >= WrapSentinel {
		return WrapSentinel
	}
	total := fn + 2 // parentheses
	elems := lsubCommaList(store, pool, tb, c.Children[1:])
	if elems >= WrapSentinel {
		return WrapSentinel
	}
	return total + elems
}

// lsubCommaList sums each element's width plus ", " separators; any element
// that must wrap forces the whole list to wrap.
func lsubCommaList(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, elems []tree.NodeID) int {
	total := 0
	count := 0
	for _, e := range elems {
		if !e.IsValid() {
			continue // absent optional slot (default argument)
		}
		w := LSub(store, pool, tb, e)
		if w >= WrapSentinel {
			return WrapSentinel
		}
		total += w
		if count > 0 {
			total += 2
		}
		count++
	}
	return total
}

func lsubInfix(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, id tree.NodeID) int {
	c, ok := tb.Nodes.Children(id)
	if !ok || len(c.Children) != 2 {
		return WrapSentinel
	}
	l := LSub(store, pool, tb, c.Children[0])
	r := LSub(store, pool, tb, c.Children[1])
	if l >= WrapSentinel || r >= WrapSentinel {
		return WrapSentinel
	}
	return l + 1 + len(c.Op.String()) + 1 + r
}

func lsubUnary(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, id tree.NodeID) int {
	c, ok := tb.Nodes.Children(id)
	if !ok || len(c.Children) != 1 {
		return WrapSentinel
	}
	inner := LSub(store, pool, tb, c.Children[0])
	if inner >= WrapSentinel {
		return WrapSentinel
	}
	return len(c.Op.String()) + inner
}

func lsubDot(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, id tree.NodeID) int {
	c, ok := tb.Nodes.Children(id)
	if !ok || len(c.Children) != 1 {
		return WrapSentinel
	}
	base := LSub(store, pool, tb, c.Children[0])
	if base >= WrapSentinel {
		return WrapSentinel
	}
	name := 1
	if rec, ok := pool.Lookup(c.Name); ok {
		name = len(rec.Bytes)
	}
	return base + 1 + name
}

func lsubBracketed(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, id tree.NodeID, open, close string) int {
	c, ok := tb.Nodes.Children(id)
	if !ok {
		return WrapSentinel
	}
	elems := lsubCommaList(store, pool, tb, c.Children)
	if elems >= WrapSentinel {
		return WrapSentinel
	}
	return len(open) + elems + len(close)
}

func lsubRange(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, id tree.NodeID) int {
	c, ok := tb.Nodes.Children(id)
	if !ok || len(c.Children) != 2 {
		return WrapSentinel
	}
	l := LSub(store, pool, tb, c.Children[0])
	r := LSub(store, pool, tb, c.Children[1])
	if l >= WrapSentinel || r >= WrapSentinel {
		return WrapSentinel
	}
	sep := 2
	if c.Inclusive {
		sep = 3
	}
	return l + sep + r
}

// lsubGeneric is the fallback for kinds without a dedicated formula: it
// sums children conservatively, still allowing short leaf-only nodes (type
// expressions, qualifiers, small declarations) to stay on one line.
func lsubGeneric(store *typesys.Interner, pool *ident.Pool, tb *tree.Builder, id tree.NodeID) int {
	c, ok := tb.Nodes.Children(id)
	if !ok {
		return 1
	}
	total := 0
	for _, ch := range c.Children {
		if !ch.IsValid() {
			continue
		}
		w := LSub(store, pool, tb, ch)
		if w >= WrapSentinel {
			return WrapSentinel
		}
		total += w + 1
	}
	return total
}
