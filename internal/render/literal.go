package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"nucleus/internal/ident"
	"nucleus/internal/tree"
	"nucleus/internal/typesys"
)

// ropeChunk is the maximum display width a single string-literal fragment
// carries before the emitter splits it onto a continuation line; long
// constant text would otherwise blow past MaxLineLen on one token.
const ropeChunk = 64

// formatNumericLiteral spells a literal node's value the way it will be
// rendered: default-radix decimal unless the literal itself requested a
// base, a typed suffix when the assigned type isn't the kind's own default
// width, and a bool-shaped spelling when the resolver assigned a boolean
// type to what the payload otherwise stores as an integer 0/1.
func formatNumericLiteral(store *typesys.Interner, tb *tree.Builder, id tree.NodeID) string {
	lit, ok := tb.Nodes.Lit(id)
	if !ok {
		return ""
	}
	node := tb.Nodes.Get(id)

	if store != nil && node.Type.IsValid() {
		if t, ok := store.Lookup(typesys.TypeID(node.Type)); ok && t.Kind == typesys.KindBool {
			if lit.IsTrue {
				return "true"
			}
			return "false"
		}
	}

	switch lit.Kind {
	case tree.LitChar:
		return formatCharLiteral(lit.Int)
	case tree.LitInt8, tree.LitInt16, tree.LitInt32, tree.LitInt64:
		return formatIntLiteral(store, node, lit)
	case tree.LitFloat32, tree.LitFloat64:
		return formatFloatLiteral(store, node, lit)
	case tree.LitNil:
		return "nil"
	default:
		return ""
	}
}

func widthBytes(kind tree.NodeKind) int {
	switch kind {
	case tree.LitInt8:
		return 1
	case tree.LitInt16:
		return 2
	case tree.LitInt32, tree.LitFloat32:
		return 4
	case tree.LitInt64, tree.LitFloat64:
		return 8
	default:
		return 4
	}
}

func isDefaultWidth(t typesys.Type) bool {
	switch t.Kind {
	case typesys.KindInt32, typesys.KindFloat64:
		return true
	default:
		return false
	}
}

// suffixFor returns the typed suffix a literal needs when its resolved type
// isn't the kind's implicit default (int32 for integers, float64 for
// floats), or "" when no suffix is needed.
func suffixFor(store *typesys.Interner, node *tree.Node) string {
	if store == nil || !node.Type.IsValid() {
		return ""
	}
	t, ok := store.Lookup(typesys.TypeID(node.Type))
	if !ok || isDefaultWidth(t) {
		return ""
	}
	switch t.Kind {
	case typesys.KindInt8:
		return "'i8"
	case typesys.KindInt16:
		return "'i16"
	case typesys.KindInt32:
		return "'i32"
	case typesys.KindInt64:
		return "'i64"
	case typesys.KindFloat32:
		return "'f32"
	case typesys.KindFloat64:
		return "'f64"
	default:
		return ""
	}
}

// padDigits left-pads s with zeros to width, leaving it unchanged if it's
// already at least that wide.
func padDigits(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func formatIntLiteral(store *typesys.Interner, node *tree.Node, lit *tree.LitPayload) string {
	bytes := widthBytes(node.Kind)
	var digits string
	switch lit.Radix {
	case 2:
		digits = "0b" + padDigits(strconv.FormatUint(uint64(lit.Int), 2), bytes*8)
	case 8:
		digits = "0o" + padDigits(strconv.FormatUint(uint64(lit.Int), 8), bytes*3)
	case 16:
		digits = "0x" + padDigits(strconv.FormatUint(uint64(lit.Int), 16), bytes*2)
	default:
		digits = strconv.FormatInt(lit.Int, 10)
	}
	return digits + suffixFor(store, node)
}

// formatFloatLiteral renders a float literal in decimal unless it carries a
// non-default radix, in which case its bits are reinterpreted as a
// same-width unsigned integer and printed in that base (a "float written in
// hex" spelling exists only to let bit patterns round-trip exactly).
func formatFloatLiteral(store *typesys.Interner, node *tree.Node, lit *tree.LitPayload) string {
	if lit.Radix == 0 {
		text := strconv.FormatFloat(lit.Float, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
		return text + suffixFor(store, node)
	}

	var bits uint64
	if widthBytes(node.Kind) == 4 {
		bits = uint64(math.Float32bits(float32(lit.Float)))
	} else {
		bits = math.Float64bits(lit.Float)
	}
	var digits string
	switch lit.Radix {
	case 2:
		digits = "0b" + strconv.FormatUint(bits, 2)
	case 8:
		digits = "0o" + strconv.FormatUint(bits, 8)
	default:
		digits = "0x" + strconv.FormatUint(bits, 16)
	}
	return digits + suffixFor(store, node)
}

func formatCharLiteral(v int64) string {
	r := rune(v)
	var b strings.Builder
	b.WriteByte('\'')
	writeEscapedRune(&b, r, '\'')
	b.WriteByte('\'')
	return b.String()
}

// formatStringLiteral escapes text the way source literals spell it, and
// splits it into ropeChunk-wide fragments joined by "&" continuations when
// its display width exceeds ropeChunk, whatever column the literal starts
// at — mirroring how
// long constant text is broken across lines rather than left as one
// unbounded token.
func formatStringLiteral(pool *ident.Pool, id ident.ID) string {
	rec, ok := pool.Lookup(id)
	if !ok {
		return `""`
	}
	text := string(rec.Bytes)
	if runewidth.StringWidth(text) <= ropeChunk {
		return quoteString(text)
	}

	var fragments []string
	var cur strings.Builder
	width := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if width+w > ropeChunk && cur.Len() > 0 {
			fragments = append(fragments, cur.String())
			cur.Reset()
			width = 0
		}
		cur.WriteRune(r)
		width += w
	}
	if cur.Len() > 0 {
		fragments = append(fragments, cur.String())
	}

	var out strings.Builder
	for i, f := range fragments {
		if i > 0 {
			out.WriteString(" &\n")
		}
		out.WriteString(quoteString(f))
	}
	return out.String()
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		writeEscapedRune(&b, r, '"')
	}
	b.WriteByte('"')
	return b.String()
}

func writeEscapedRune(b *strings.Builder, r rune, quote byte) {
	switch {
	case r == rune(quote):
		b.WriteByte('\\')
		b.WriteByte(quote)
	case r == '\\':
		b.WriteString(`\\`)
	case r == '\n':
		b.WriteString(`\n`)
	case r == '\t':
		b.WriteString(`\t`)
	case r == '\r':
		b.WriteString(`\r`)
	case r < 0x20 || r == 0x7f || r > 0x7e:
		for _, ru := range []byte(string(r)) {
			b.WriteString("\\x")
			hex := strconv.FormatUint(uint64(ru), 16)
			if len(hex) < 2 {
				b.WriteByte('0')
			}
			b.WriteString(hex)
		}
	default:
		b.WriteRune(r)
	}
}
