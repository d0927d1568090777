package wexpr

// ParseText parses a Wexpr document from its textual surface syntax,
// returning the single root Expression. An empty input (after comments and
// whitespace are stripped) yields an Invalid expression and no error, per
// spec.md section 4.2. On failure the returned error is a *ParseError
// carrying a Position; no partial tree is returned.
func ParseText(data []byte, flags ParseFlags) (*Expression, error) {
	lx := newLexer(data)
	tokens, lexErr := lx.tokenize()
	if lexErr != nil {
		return nil, lexErr
	}

	p := &textParser{tokens: tokens, refs: make(map[string]*Expression), values: newValueStore()}

	if p.peek().kind == tkEOF {
		return CreateInvalid(), nil
	}

	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if tail := p.peek(); tail.kind != tkEOF {
		return nil, newParseError(ErrTrailingContent, tail.pos, "trailing content after root expression")
	}

	return root, nil
}

// textParser is a recursive-descent parser over a pre-lexed token stream,
// grounded on glyph/parse.go's Parser-over-TokenStream shape. refs is the
// Reference Table: transient, parser-local state (spec.md section 9) that
// never leaks into the returned Expression tree.
type textParser struct {
	tokens []token
	pos    int
	refs   map[string]*Expression
	values *valueStore
}

func (p *textParser) peek() token {
	return p.tokens[p.pos]
}

func (p *textParser) advance() token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// parseExpression parses any single expression: a value, null, array, map,
// binary data, or reference declaration/expansion (which are stripped or
// expanded into the expression they denote).
func (p *textParser) parseExpression() (*Expression, error) {
	tok := p.peek()

	switch tok.kind {
	case tkNull:
		p.advance()
		return CreateNull(), nil

	case tkValue, tkQuotedValue:
		p.advance()
		return CreateValue(tok.str), nil

	case tkBinary:
		p.advance()
		return &Expression{typ: TypeBinaryData, binVal: tok.bytes}, nil

	case tkArrayOpen:
		p.advance()
		return p.parseArrayBody(tok.pos)

	case tkMapOpen:
		p.advance()
		return p.parseMapBody(tok.pos)

	case tkRefDecl:
		p.advance()
		return p.parseReferenceDeclaration(tok)

	case tkRefExpand:
		p.advance()
		return p.parseReferenceExpansion(tok)

	case tkClose:
		return nil, newParseError(ErrUnexpectedCharacter, tok.pos, "unexpected ')'")

	default:
		return nil, newParseError(ErrUnexpectedCharacter, tok.pos, "unexpected end of input")
	}
}

func (p *textParser) parseArrayBody(openPos Position) (*Expression, error) {
	arr := CreateArray()
	for {
		switch p.peek().kind {
		case tkClose:
			p.advance()
			return arr, nil
		case tkEOF:
			return nil, newParseError(ErrUnterminatedArray, openPos, "unterminated array")
		}

		child, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arr.ArrayAppend(child)
	}
}

func (p *textParser) parseMapBody(openPos Position) (*Expression, error) {
	var items []*Expression
	for {
		switch p.peek().kind {
		case tkClose:
			p.advance()
			return p.buildMap(items, openPos)
		case tkEOF:
			return nil, newParseError(ErrUnterminatedMap, openPos, "unterminated map")
		}

		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *textParser) buildMap(items []*Expression, openPos Position) (*Expression, error) {
	if len(items)%2 != 0 {
		return nil, newParseError(ErrOddMapElementCount, openPos, "odd element count in map")
	}

	m := CreateMap()
	for i := 0; i < len(items); i += 2 {
		key, value := items[i], items[i+1]
		keyText, ok := key.Value()
		if !ok {
			return nil, newParseError(ErrInvalidMapKey, openPos, "map key must reduce to a value")
		}
		m.MapSetValueForKey(p.values.intern(keyText), value)
	}
	return m, nil
}

func (p *textParser) parseReferenceDeclaration(decl token) (*Expression, error) {
	switch p.peek().kind {
	case tkClose, tkEOF:
		return nil, newParseError(ErrBareReferenceDeclaration, decl.pos, "reference declaration [%s] has no following expression", decl.str)
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.refs[decl.str] = expr.Copy()
	return expr, nil
}

func (p *textParser) parseReferenceExpansion(expand token) (*Expression, error) {
	bound, ok := p.refs[expand.str]
	if !ok {
		return nil, newParseError(ErrUnknownReferenceName, expand.pos, "unknown reference name %q", expand.str)
	}
	return bound.Copy(), nil
}
