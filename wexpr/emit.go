package wexpr

import (
	"strings"
)

// ToText serializes e to Wexpr's textual surface syntax. startIndent is the
// starting indent depth, used only when flags includes
// WriteFlagHumanReadable. Invalid serializes to nothing; if e itself is
// Invalid the returned slice is empty.
func (e *Expression) ToText(startIndent int, flags WriteFlags) []byte {
	em := &emitter{pretty: flags&WriteFlagHumanReadable != 0}
	em.emit(e, startIndent)
	return []byte(em.sb.String())
}

// emitter walks an Expression tree producing textual output, grounded on
// glyph/emit.go's emitter struct (a strings.Builder plus a mode flag).
type emitter struct {
	sb     strings.Builder
	pretty bool
}

func (em *emitter) emit(e *Expression, depth int) {
	if e == nil {
		return
	}

	switch e.typ {
	case TypeInvalid:
		// omitted entirely

	case TypeNull:
		em.sb.WriteString("nil")

	case TypeValue:
		em.emitValue(e.strVal)

	case TypeBinaryData:
		em.emitBinaryData(e.binVal)

	case TypeArray:
		em.emitArray(e, depth)

	case TypeMap:
		em.emitMap(e, depth)
	}
}

func (em *emitter) emitValue(s string) {
	if canUnquote(s) {
		em.sb.WriteString(s)
		return
	}
	em.sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			em.sb.WriteByte('\\')
		}
		em.sb.WriteByte(c)
	}
	em.sb.WriteByte('"')
}

// canUnquote reports whether s may be written as a bare, unquoted value: it
// must be non-empty, contain none of the delimiter characters, and not be
// one of the two spellings that the parser would instead read back as Null
// ("nil"/"null"). The last rule is not spelled out by the grammar directly
// but is required for the text round-trip property in spec.md section 8: a
// Value whose payload happens to be the literal text "nil" must round-trip
// as a Value, not collapse into Null.
func canUnquote(s string) bool {
	if s == "" || s == "nil" || s == "null" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if isDelimiter(s[i]) {
			return false
		}
	}
	return true
}

func (em *emitter) emitBinaryData(data []byte) {
	em.sb.WriteByte('<')
	em.sb.WriteString(encodeBase64(data))
	em.sb.WriteByte('>')
}

func (em *emitter) emitArray(e *Expression, depth int) {
	em.sb.WriteString("#(")
	if em.pretty {
		em.emitChildrenPretty(len(e.arrVal), depth, func(i int) {
			em.emit(e.arrVal[i], depth+1)
		})
	} else {
		for i, child := range e.arrVal {
			if i > 0 {
				em.sb.WriteByte(' ')
			}
			em.emit(child, depth)
		}
	}
	em.sb.WriteByte(')')
}

func (em *emitter) emitMap(e *Expression, depth int) {
	em.sb.WriteString("@(")
	if em.pretty {
		em.emitChildrenPretty(len(e.mapVal), depth, func(i int) {
			entry := e.mapVal[i]
			em.emitValue(entry.key)
			em.sb.WriteByte(' ')
			em.emit(entry.value, depth+1)
		})
	} else {
		for i, entry := range e.mapVal {
			if i > 0 {
				em.sb.WriteByte(' ')
			}
			em.emitValue(entry.key)
			em.sb.WriteByte(' ')
			em.emit(entry.value, depth)
		}
	}
	em.sb.WriteByte(')')
}

// emitChildrenPretty writes n children, one per line indented by depth+1
// tabs, with the closing delimiter left for the caller to write on its own
// line at depth.
func (em *emitter) emitChildrenPretty(n int, depth int, writeChild func(i int)) {
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		em.sb.WriteByte('\n')
		em.writeIndent(depth + 1)
		writeChild(i)
	}
	em.sb.WriteByte('\n')
	em.writeIndent(depth)
}

func (em *emitter) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		em.sb.WriteByte('\t')
	}
}
