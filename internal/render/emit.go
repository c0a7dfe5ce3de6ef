package render

import (
	"strconv"
	"strings"

	"nucleus/internal/ident"
	"nucleus/internal/source"
	"nucleus/internal/symtab"
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

// CommentColumn is the target column a short trailing comment aligns to
// when the code before it already fits; a comment that would push past
// MaxLineLen instead wraps onto its own indented block below the node.
const CommentColumn = 30

// ctx carries every collaborator a single Render call needs, avoiding a
// parameter list repeated on every emit* function.
type ctx struct {
	store   *typesys.Interner
	symbols *symtab.Symbols
	pool    *ident.Pool
	fset    *source.FileSet
	tb      *tree.Builder
	e       *Emitter
	flags   Flags
}

// Render synthesizes canonical source text for the subtree rooted at root,
// returning the rendered bytes and a token stream over the same emission.
// fset may be nil when root is known not to carry real comment spans (for
// example, freshly built or entirely compiler-generated trees).
func Render(store *typesys.Interner, symbols *symtab.Symbols, pool *ident.Pool, fset *source.FileSet, tb *tree.Builder, root tree.NodeID, flags Flags) ([]byte, *TokenStream) {
	c := &ctx{store: store, symbols: symbols, pool: pool, fset: fset, tb: tb, e: NewEmitter(), flags: flags}
	c.emitNode(root)
	return c.e.Bytes(), NewTokenStream(c.e.Tokens())
}

func (c *ctx) lsub(id tree.NodeID) int {
	return LSub(c.store, c.pool, c.tb, id)
}

func (c *ctx) children(id tree.NodeID) *tree.ChildrenPayload {
	p, _ := c.tb.Nodes.Children(id)
	return p
}

func (c *ctx) identText(id ident.ID) string {
	rec, ok := c.pool.Lookup(id)
	if !ok {
		return ""
	}
	return string(rec.Bytes)
}

// emitNode dispatches on the node's kind. Hidden-conversion kinds are
// transparent: they carry no source-level spelling of their own, so they
// simply emit their sole operand.
func (c *ctx) emitNode(id tree.NodeID) {
	if !id.IsValid() {
		return
	}
	n := c.tb.Nodes.Get(id)
	if n == nil {
		return
	}

	switch n.Kind {
	case tree.LitChar, tree.LitInt8, tree.LitInt16, tree.LitInt32, tree.LitInt64,
		tree.LitFloat32, tree.LitFloat64, tree.LitNil:
		c.e.Emit(TokNumber, formatNumericLiteral(c.store, c.tb, id))

	case tree.LitStringPlain, tree.LitStringRaw, tree.LitStringTriple:
		if lit, ok := c.tb.Nodes.Lit(id); ok {
			c.e.Emit(TokString, formatStringLiteral(c.pool, lit.Str))
		}

	case tree.Ident:
		if p, ok := c.tb.Nodes.Ident(id); ok {
			c.e.Emit(TokIdent, c.identText(p.Name))
		}

	case tree.SymRef:
		c.emitSymRef(id)

	case tree.Call:
		c.emitCall(id)

	case tree.Infix:
		c.emitInfix(id)

	case tree.Prefix, tree.AddrOf, tree.Deref:
		c.emitPrefix(id)

	case tree.Postfix:
		c.emitPostfix(id)

	case tree.Dot:
		c.emitDot(id)

	case tree.Bracket:
		c.emitBracketed(id, "[", "]")

	case tree.RangeExpr:
		c.emitRange(id)

	case tree.HiddenStdConv, tree.HiddenSubConv, tree.HiddenCallConv,
		tree.StringToCString, tree.CStringToString, tree.PassAsOpenArray,
		tree.ChckRange, tree.ChckRange64, tree.ChckRangeF:
		if ch := c.children(id); ch != nil && len(ch.Children) == 1 {
			c.emitNode(ch.Children[0])
		}

	case tree.If, tree.When:
		c.emitIf(id, n.Kind)
	case tree.Elif:
		c.emitElif(id)
	case tree.Else:
		c.emitTailBlock(id, "else")
	case tree.Finally:
		c.emitTailBlock(id, "finally")
	case tree.Except:
		c.emitExcept(id)

	case tree.While:
		c.emitWhile(id)
	case tree.For:
		c.emitFor(id)
	case tree.Try:
		c.emitTry(id)
	case tree.Case, tree.RecordCase, tree.RecordWhen:
		c.emitCase(id)

	case tree.OfBranch:
		c.emitOfBranch(id)

	case tree.Block:
		c.emitBlock(id)

	case tree.ProcDecl, tree.MethodDecl, tree.IteratorDecl:
		c.emitProcLike(id, n.Kind)

	case tree.FormalParams:
		c.emitFormalParams(id)
	case tree.Param:
		c.emitParam(id)
	case tree.GenericParams:
		c.emitGenericParams(id)
	case tree.GenericParamNode:
		c.emitGenericParamNode(id)

	case tree.IdentDefs:
		c.emitIdentDefs(id)
	case tree.VarTuple:
		c.emitVarTuple(id)
	case tree.ConstDef:
		c.emitConstDef(id)
	case tree.TypeDef:
		c.emitTypeDef(id)
	case tree.EnumDef:
		c.emitEnumDef(id)
	case tree.EnumFieldDef:
		c.emitEnumFieldDef(id)
	case tree.FieldDef:
		c.emitFieldDef(id)
	case tree.ObjectType:
		c.emitObjectType(id)
	case tree.TupleType:
		c.emitBracketed(id, "(", ")")
	case tree.ProcType:
		c.emitProcType(id)
	case tree.ArrayTypeExpr:
		c.emitWrappedType(id, "array")
	case tree.SeqTypeExpr:
		c.emitWrappedType(id, "seq")
	case tree.SetTypeExpr:
		c.emitWrappedType(id, "set")
	case tree.RefQualifier:
		c.emitPrefixKeyword(id, "ref ")
	case tree.PtrQualifier:
		c.emitPrefixKeyword(id, "ptr ")
	case tree.VarQualifier:
		c.emitPrefixKeyword(id, "var ")
	case tree.DistinctQualifier:
		c.emitPrefixKeyword(id, "distinct ")

	case tree.TypeSection:
		c.emitSection(id, "type")
	case tree.ConstSection:
		c.emitSection(id, "const")
	case tree.VarSection:
		c.emitSection(id, "var")
	case tree.ImportSection:
		c.emitPathSection(id, "import")
	case tree.FromSection:
		c.emitPathSection(id, "from")
	case tree.IncludeSection:
		c.emitPathSection(id, "include")

	default:
		c.emitGeneric(id)
	}

	c.emitTrailingComment(id)
}

func (c *ctx) emitSymRef(id tree.NodeID) {
	p, ok := c.tb.Nodes.SymRefData(id)
	if !ok {
		return
	}
	name := ""
	if c.symbols != nil {
		if sym := c.symbols.Get(symtab.SymbolID(p.Symbol)); sym != nil {
			name = c.identText(sym.Name)
		}
	}
	c.e.Emit(TokIdent, name)
	if c.flags.has(WithIDs) {
		c.e.Emit(TokPunct, "[")
		c.e.Emit(TokNumber, strconv.Itoa(int(p.Symbol)))
		c.e.Emit(TokPunct, "]")
	}
}

func (c *ctx) emitCall(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) == 0 {
		return
	}
	c.emitNode(ch.Children[0])
	c.e.Emit(TokPunct, "(")
	c.emitCommaList(ch.Children[1:])
	c.e.Emit(TokPunct, ")")
}

func (c *ctx) emitCommaList(elems []tree.NodeID) {
	elemsWidth := c.lsub0(elems)
	wraps := elemsWidth >= WrapSentinel || c.e.NeedsWrap(elemsWidth+1)
	if !wraps {
		count := 0
		for _, e := range elems {
			if !e.IsValid() {
				continue
			}
			if count > 0 {
				c.e.Emit(TokPunct, ", ")
			}
			c.emitNode(e)
			count++
		}
		return
	}

	pop := c.e.PushLongIndent()
	defer pop()
	count := 0
	for _, e := range elems {
		if !e.IsValid() {
			continue
		}
		if count > 0 {
			c.e.Emit(TokPunct, ",")
		}
		c.e.Newline()
		c.emitNode(e)
		count++
	}
}

func (c *ctx) lsub0(elems []tree.NodeID) int {
	total := 0
	count := 0
	for _, e := range elems {
		if !e.IsValid() {
			continue
		}
		w := c.lsub(e)
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

func (c *ctx) emitInfix(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 2 {
		return
	}
	c.emitNode(ch.Children[0])
	c.e.Space()
	c.e.Emit(TokOperator, ch.Op.String())
	c.e.Space()
	c.emitNode(ch.Children[1])
}

func (c *ctx) emitPrefix(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 1 {
		return
	}
	c.e.Emit(TokOperator, ch.Op.String())
	c.emitNode(ch.Children[0])
}

func (c *ctx) emitPostfix(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 1 {
		return
	}
	c.emitNode(ch.Children[0])
	c.e.Emit(TokOperator, ch.Op.String())
}

func (c *ctx) emitDot(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 1 {
		return
	}
	c.emitNode(ch.Children[0])
	c.e.Emit(TokPunct, ".")
	c.e.Emit(TokIdent, c.identText(ch.Name))
}

func (c *ctx) emitBracketed(id tree.NodeID, open, closeTok string) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokPunct, open)
	c.emitCommaList(ch.Children)
	c.e.Emit(TokPunct, closeTok)
}

func (c *ctx) emitRange(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 2 {
		return
	}
	c.emitNode(ch.Children[0])
	if ch.Inclusive {
		c.e.Emit(TokOperator, "..=")
	} else {
		c.e.Emit(TokOperator, "..")
	}
	c.emitNode(ch.Children[1])
}

// emitIf renders "if <cond>:" / "when <cond>:" followed by an indented
// then-block, optional elif chain, and optional else.
func (c *ctx) emitIf(id tree.NodeID, kind tree.NodeKind) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) < 2 {
		return
	}
	kw := "if"
	if kind == tree.When {
		kw = "when"
	}
	c.e.Emit(TokKeyword, kw)
	c.e.Space()
	c.emitNode(ch.Children[0])
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(ch.Children[1])
	c.e.IndentPop()
	if len(ch.Children) > 2 && ch.Children[2].IsValid() {
		c.e.Newline()
		c.emitNode(ch.Children[2])
	}
}

func (c *ctx) emitElif(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) < 2 {
		return
	}
	c.e.Emit(TokKeyword, "elif")
	c.e.Space()
	c.emitNode(ch.Children[0])
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(ch.Children[1])
	c.e.IndentPop()
	if len(ch.Children) > 2 && ch.Children[2].IsValid() {
		c.e.Newline()
		c.emitNode(ch.Children[2])
	}
}

func (c *ctx) emitTailBlock(id tree.NodeID, kw string) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 1 {
		return
	}
	c.e.Emit(TokKeyword, kw)
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(ch.Children[0])
	c.e.IndentPop()
}

func (c *ctx) emitExcept(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 2 {
		return
	}
	c.e.Emit(TokKeyword, "except")
	if ch.Children[0].IsValid() {
		c.e.Space()
		c.emitNode(ch.Children[0])
	}
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(ch.Children[1])
	c.e.IndentPop()
}

func (c *ctx) emitWhile(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 2 {
		return
	}
	c.e.Emit(TokKeyword, "while")
	c.e.Space()
	c.emitNode(ch.Children[0])
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(ch.Children[1])
	c.e.IndentPop()
}

func (c *ctx) emitFor(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 3 {
		return
	}
	c.e.Emit(TokKeyword, "for")
	c.e.Space()
	c.emitNode(ch.Children[0])
	c.e.Space()
	c.e.Emit(TokKeyword, "in")
	c.e.Space()
	c.emitNode(ch.Children[1])
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(ch.Children[2])
	c.e.IndentPop()
}

func (c *ctx) emitTry(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) < 1 {
		return
	}
	c.e.Emit(TokKeyword, "try")
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(ch.Children[0])
	c.e.IndentPop()
	for _, tail := range ch.Children[1:] {
		if !tail.IsValid() {
			continue
		}
		c.e.Newline()
		c.emitNode(tail)
	}
}

func (c *ctx) emitCase(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) < 1 {
		return
	}
	c.e.Emit(TokKeyword, "case")
	c.e.Space()
	c.emitNode(ch.Children[0])
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	for _, branch := range ch.Children[1:] {
		if !branch.IsValid() {
			continue
		}
		c.e.Newline()
		c.emitNode(branch)
	}
	c.e.IndentPop()
}

func (c *ctx) emitOfBranch(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) < 1 {
		return
	}
	body := ch.Children[len(ch.Children)-1]
	values := ch.Children[:len(ch.Children)-1]
	c.e.Emit(TokKeyword, "of")
	c.e.Space()
	c.emitCommaList(values)
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(body)
	c.e.IndentPop()
}

func (c *ctx) emitBlock(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	for i, stmt := range ch.Children {
		if !stmt.IsValid() {
			continue
		}
		if i > 0 {
			c.e.Newline()
		}
		c.emitNode(stmt)
	}
}

// emitProcLike renders "proc name[generics](params): result:" then body,
// or just the signature when NoBody is set or the body slot is absent
// (a forward declaration).
func (c *ctx) emitProcLike(id tree.NodeID, kind tree.NodeKind) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) < 2 {
		return
	}
	kw := "proc"
	switch kind {
	case tree.MethodDecl:
		kw = "method"
	case tree.IteratorDecl:
		kw = "iterator"
	}
	c.e.Emit(TokKeyword, kw)
	c.e.Space()
	c.e.Emit(TokIdent, c.identText(ch.Name))

	idx := 0
	if idx < len(ch.Children) && c.tb.Nodes.Get(ch.Children[idx]) != nil && c.tb.Nodes.Get(ch.Children[idx]).Kind == tree.GenericParams {
		c.emitNode(ch.Children[idx])
		idx++
	}
	if idx < len(ch.Children) {
		c.emitNode(ch.Children[idx]) // formal params
		idx++
	}
	if idx < len(ch.Children) && ch.Children[idx].IsValid() {
		c.e.Emit(TokPunct, ": ")
		c.emitNode(ch.Children[idx])
	}
	idx++

	hasBody := idx < len(ch.Children) && ch.Children[idx].IsValid() && !c.flags.has(NoBody)
	if !hasBody {
		return
	}
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	c.e.Newline()
	c.emitNode(ch.Children[idx])
	c.e.IndentPop()
}

func (c *ctx) emitFormalParams(id tree.NodeID) {
	c.emitBracketed(id, "(", ")")
}

func (c *ctx) emitParam(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokIdent, c.identText(ch.Name))
	if len(ch.Children) > 0 && ch.Children[0].IsValid() {
		c.e.Emit(TokPunct, ": ")
		c.emitNode(ch.Children[0])
	}
	if len(ch.Children) > 1 && ch.Children[1].IsValid() {
		c.e.Space()
		c.e.Emit(TokOperator, "=")
		c.e.Space()
		c.emitNode(ch.Children[1])
	}
}

func (c *ctx) emitGenericParams(id tree.NodeID) {
	c.emitBracketed(id, "[", "]")
}

func (c *ctx) emitGenericParamNode(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokIdent, c.identText(ch.Name))
	if len(ch.Children) > 0 && ch.Children[0].IsValid() {
		c.e.Emit(TokPunct, ": ")
		c.emitNode(ch.Children[0])
	}
}

func (c *ctx) emitIdentDefs(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokIdent, c.identText(ch.Name))
	if len(ch.Children) > 0 && ch.Children[0].IsValid() {
		c.e.Emit(TokPunct, ": ")
		c.emitNode(ch.Children[0])
	}
	if len(ch.Children) > 1 && ch.Children[1].IsValid() {
		c.e.Space()
		c.e.Emit(TokOperator, "=")
		c.e.Space()
		c.emitNode(ch.Children[1])
	}
}

func (c *ctx) emitVarTuple(id tree.NodeID) {
	c.emitBracketed(id, "(", ")")
}

func (c *ctx) emitConstDef(id tree.NodeID) { c.emitIdentDefs(id) }

func (c *ctx) emitTypeDef(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) == 0 {
		return
	}
	c.e.Emit(TokIdent, c.identText(ch.Name))
	c.e.Space()
	c.e.Emit(TokOperator, "=")
	c.e.Space()
	c.emitNode(ch.Children[0])
}

func (c *ctx) emitEnumDef(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokIdent, c.identText(ch.Name))
	c.e.Space()
	c.e.Emit(TokOperator, "=")
	c.e.Space()
	c.e.Emit(TokKeyword, "enum")
	c.e.IndentPush()
	for _, f := range ch.Children {
		if !f.IsValid() {
			continue
		}
		c.e.Newline()
		c.emitNode(f)
	}
	c.e.IndentPop()
}

func (c *ctx) emitEnumFieldDef(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokIdent, c.identText(ch.Name))
	if len(ch.Children) > 0 && ch.Children[0].IsValid() {
		c.e.Space()
		c.e.Emit(TokOperator, "=")
		c.e.Space()
		c.emitNode(ch.Children[0])
	}
}

func (c *ctx) emitFieldDef(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokIdent, c.identText(ch.Name))
	if len(ch.Children) > 0 && ch.Children[0].IsValid() {
		c.e.Emit(TokPunct, ": ")
		c.emitNode(ch.Children[0])
	}
}

func (c *ctx) emitObjectType(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokKeyword, "object")
	idx := 0
	if len(ch.Children) > 0 && ch.Children[0].IsValid() && c.tb.Nodes.Get(ch.Children[0]).Kind != tree.FieldDef {
		c.e.Emit(TokKeyword, " of ")
		c.emitNode(ch.Children[0])
		idx = 1
	}
	c.e.IndentPush()
	for _, f := range ch.Children[idx:] {
		if !f.IsValid() {
			continue
		}
		c.e.Newline()
		c.emitNode(f)
	}
	c.e.IndentPop()
}

func (c *ctx) emitProcType(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) == 0 {
		return
	}
	c.e.Emit(TokKeyword, "proc")
	c.emitNode(ch.Children[0]) // formal params
	if len(ch.Children) > 1 && ch.Children[1].IsValid() {
		c.e.Emit(TokPunct, ": ")
		c.emitNode(ch.Children[1])
	}
}

func (c *ctx) emitWrappedType(id tree.NodeID, kw string) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) == 0 {
		return
	}
	c.e.Emit(TokKeyword, kw)
	c.e.Emit(TokPunct, "[")
	c.emitCommaList(ch.Children)
	c.e.Emit(TokPunct, "]")
}

func (c *ctx) emitPrefixKeyword(id tree.NodeID, kw string) {
	ch := c.children(id)
	if ch == nil || len(ch.Children) != 1 {
		return
	}
	c.e.Emit(TokKeyword, kw)
	c.emitNode(ch.Children[0])
}

// emitSection renders a keyword-introduced multi-declarator block, one
// declarator per line.
func (c *ctx) emitSection(id tree.NodeID, kw string) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	c.e.Emit(TokKeyword, kw)
	c.e.Emit(TokPunct, ":")
	c.e.IndentPush()
	for _, d := range ch.Children {
		if !d.IsValid() {
			continue
		}
		c.e.Newline()
		c.emitNode(d)
	}
	c.e.IndentPop()
}

func (c *ctx) emitPathSection(id tree.NodeID, kw string) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	for i, p := range ch.Children {
		if !p.IsValid() {
			continue
		}
		if i > 0 {
			c.e.Newline()
		}
		c.e.Emit(TokKeyword, kw)
		c.e.Space()
		c.emitNode(p)
	}
}

// emitGeneric is the fallback for any kind without dedicated handling: it
// prints the node's children space-separated, which is enough to keep the
// renderer total over the node-kind enum even for kinds no test exercises.
func (c *ctx) emitGeneric(id tree.NodeID) {
	ch := c.children(id)
	if ch == nil {
		return
	}
	for i, child := range ch.Children {
		if !child.IsValid() {
			continue
		}
		if i > 0 {
			c.e.Space()
		}
		c.emitNode(child)
	}
}

// emitTrailingComment aligns a short comment to CommentColumn when the
// current line is still left of that column and the comment fits; else puts
// it one space after the node when it still fits within MaxLineLen; else
// wraps it as an indented "#"-prefixed block immediately following the node.
func (c *ctx) emitTrailingComment(id tree.NodeID) {
	if c.flags.has(NoComments) || c.fset == nil {
		return
	}
	n := c.tb.Nodes.Get(id)
	if n == nil || n.Comment.Empty() {
		return
	}
	text := string(c.fset.Get(n.Comment.File).Content[n.Comment.Start:n.Comment.End])
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "#"))
	if text == "" {
		return
	}
	if c.flags.has(DocCommentsOnly) && !strings.HasPrefix(text, "#") {
		return
	}
	if c.flags.has(NoPragmas) && strings.HasPrefix(text, "{.") {
		return
	}

	if c.e.LineLen() < CommentColumn && c.e.LineLen()+len("  # "+text) <= MaxLineLen {
		for c.e.LineLen() < CommentColumn {
			c.e.Emit(TokPunct, " ")
		}
		c.e.Emit(TokComment, "# "+text)
		return
	}

	if c.e.LineLen()+len(" # "+text) <= MaxLineLen {
		c.e.Space()
		c.e.Emit(TokComment, "# "+text)
		return
	}

	pop := c.e.PushLongIndent()
	defer pop()
	for _, line := range wrapComment(text, MaxLineLen-2) {
		c.e.Newline()
		c.e.Emit(TokComment, "# "+line)
	}
}

func wrapComment(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	lines = append(lines, cur)
	return lines
}
