package kox

import (
	"fmt"
	"strconv"
)

// parser holds one token of lookahead over the lexer. Every production
// returns the parsed expression or the first error encountered; a failed
// parse never yields a partial program.
type parser struct {
	l      *lexer
	source string
	tok    Token
}

func newParser(input string) *parser {
	p := &parser{l: newLexer(input), source: input}
	p.next()
	return p
}

// Parse converts source text into a program. The error, if any, is a
// *ParseError carrying the position of the first failure.
func Parse(input string) (*Program, error) {
	p := newParser(input)
	program := &Program{}

	for !p.is(tokenEOF) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		program.Expressions = append(program.Expressions, expr)

		if p.accept(tokenSemicolon) || selfDelimiting(expr) {
			continue
		}
		if !p.is(tokenEOF) {
			return nil, p.errorExpected(tokenSemicolon)
		}
	}

	return program, nil
}

func (p *parser) next() {
	p.tok = p.l.NextToken()
}

func (p *parser) is(tt TokenType) bool {
	return p.tok.Type == tt
}

// accept consumes the current token if it has the given type.
func (p *parser) accept(tt TokenType) bool {
	if !p.is(tt) {
		return false
	}
	p.next()
	return true
}

func (p *parser) expect(tt TokenType) error {
	if p.accept(tt) {
		return nil
	}
	return p.errorExpected(tt)
}

func (p *parser) expectIdentifier() (string, error) {
	if !p.is(tokenIdent) {
		return "", p.newError(ErrExpectedIdentifier, fmt.Sprintf("expected identifier, got %s", p.tok.Type))
	}
	name := p.tok.Literal
	p.next()
	return name, nil
}

// selfDelimiting reports whether an expression's outermost form ends in a
// braced block, making a following statement separator redundant.
func selfDelimiting(expr Expression) bool {
	switch e := expr.(type) {
	case *ForExpr:
		_, ok := e.Body.(*BlockExpr)
		return ok
	case *FunctionExpr:
		_, ok := e.Body.(*BlockExpr)
		return ok
	case *IfExpr:
		if e.Alternative != nil {
			_, ok := e.Alternative.(*BlockExpr)
			return ok
		}
		_, ok := e.Consequence.(*BlockExpr)
		return ok
	default:
		return false
	}
}

func (p *parser) expression() (Expression, error) {
	switch p.tok.Type {
	case tokenFor:
		return p.forExpression()
	case tokenLBrace:
		return p.block()
	case tokenLet:
		return p.letExpression()
	case tokenFn:
		return p.functionExpression()
	case tokenIf:
		return p.ifExpression()
	case tokenReturn:
		return p.returnExpression()
	default:
		return p.assignment()
	}
}

func (p *parser) returnExpression() (Expression, error) {
	pos := p.tok.Pos
	p.next()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ReturnExpr{Value: value, position: pos}, nil
}

func (p *parser) ifExpression() (Expression, error) {
	pos := p.tok.Pos
	p.next()
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	consequence, err := p.expression()
	if err != nil {
		return nil, err
	}
	var alternative Expression
	if p.accept(tokenElse) {
		alternative, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	return &IfExpr{Condition: condition, Consequence: consequence, Alternative: alternative, position: pos}, nil
}

func (p *parser) functionExpression() (Expression, error) {
	pos := p.tok.Pos
	p.next()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenLParen); err != nil {
		return nil, err
	}

	var params []string
	if !p.is(tokenRParen) {
		param, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		for p.accept(tokenComma) {
			param, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}
	if err := p.expect(tokenRParen); err != nil {
		return nil, err
	}

	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &FunctionExpr{Name: name, Params: params, Body: body, position: pos}, nil
}

func (p *parser) letExpression() (Expression, error) {
	pos := p.tok.Pos
	p.next()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenAssign); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &LetExpr{Name: name, Value: value, position: pos}, nil
}

func (p *parser) block() (Expression, error) {
	pos := p.tok.Pos
	p.next()

	var exprs []Expression

	// An empty block and a block ending in an explicit separator both
	// evaluate to nil; the parser records that with an implicit nil literal.
	trailing := true
	for !p.is(tokenRBrace) {
		if p.is(tokenEOF) {
			return nil, p.newError(ErrUnterminatedConstruct, "unterminated block, expected }")
		}

		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		if p.accept(tokenSemicolon) {
			trailing = true
			continue
		}
		trailing = false
		if selfDelimiting(expr) {
			continue
		}
		if p.is(tokenEOF) {
			return nil, p.newError(ErrUnterminatedConstruct, "unterminated block, expected }")
		}
		if !p.is(tokenRBrace) {
			return nil, p.errorExpected(tokenSemicolon)
		}
	}

	if trailing {
		exprs = append(exprs, &NilLiteral{position: p.tok.Pos})
	}

	p.next() // consume }
	return &BlockExpr{Expressions: exprs, position: pos}, nil
}

func (p *parser) forExpression() (Expression, error) {
	pos := p.tok.Pos
	p.next()

	iterator, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenIn); err != nil {
		return nil, err
	}
	iterable, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.is(tokenLBrace) {
		return nil, p.errorExpected(tokenLBrace)
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ForExpr{Iterator: iterator, Iterable: iterable, Body: body, position: pos}, nil
}

func (p *parser) assignment() (Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.is(tokenAssign) {
		pos := p.tok.Pos
		p.next()
		value, err := p.assignment() // right-associative: a = b = c
		if err != nil {
			return nil, err
		}
		ident, ok := expr.(*Identifier)
		if !ok {
			return nil, &ParseError{
				Kind:      ErrInvalidAssignmentTarget,
				Message:   "invalid assignment target",
				Pos:       expr.Pos(),
				CodeFrame: formatCodeFrame(p.source, expr.Pos()),
			}
		}
		return &AssignExpr{Name: ident.Name, Value: value, position: pos}, nil
	}

	return expr, nil
}

func (p *parser) equality() (Expression, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.is(tokenEQ) || p.is(tokenNotEQ) {
		op := p.tok.Type
		pos := p.tok.Pos
		p.next()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right, position: pos}
	}

	return expr, nil
}

func (p *parser) comparison() (Expression, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.is(tokenLT) || p.is(tokenLTE) || p.is(tokenGT) || p.is(tokenGTE) {
		op := p.tok.Type
		pos := p.tok.Pos
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right, position: pos}
	}

	return expr, nil
}

func (p *parser) term() (Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.is(tokenPlus) || p.is(tokenMinus) {
		op := p.tok.Type
		pos := p.tok.Pos
		p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right, position: pos}
	}

	return expr, nil
}

func (p *parser) factor() (Expression, error) {
	expr, err := p.exponential()
	if err != nil {
		return nil, err
	}

	for p.is(tokenAsterisk) || p.is(tokenSlash) {
		op := p.tok.Type
		pos := p.tok.Pos
		p.next()
		right, err := p.exponential()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right, position: pos}
	}

	return expr, nil
}

func (p *parser) exponential() (Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.is(tokenCaret) {
		pos := p.tok.Pos
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: tokenCaret, Right: right, position: pos}
	}

	return expr, nil
}

func (p *parser) unary() (Expression, error) {
	if p.is(tokenMinus) || p.is(tokenBang) {
		op := p.tok.Type
		pos := p.tok.Pos
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: op, Right: right, position: pos}, nil
	}
	return p.call()
}

func (p *parser) call() (Expression, error) {
	callee, err := p.primary()
	if err != nil {
		return nil, err
	}

	if !p.accept(tokenLParen) {
		return callee, nil
	}

	var args []Expression
	if !p.is(tokenRParen) {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.accept(tokenComma) {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if p.is(tokenEOF) {
		return nil, p.newError(ErrUnterminatedConstruct, "unterminated argument list, expected )")
	}
	if err := p.expect(tokenRParen); err != nil {
		return nil, err
	}

	return &CallExpr{Callee: callee, Args: args, position: callee.Pos()}, nil
}

func (p *parser) primary() (Expression, error) {
	pos := p.tok.Pos

	if p.accept(tokenLParen) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.is(tokenEOF) {
			return nil, p.newError(ErrUnterminatedConstruct, "unterminated group, expected )")
		}
		if err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	}

	switch p.tok.Type {
	case tokenIdent:
		name := p.tok.Literal
		p.next()
		return &Identifier{Name: name, position: pos}, nil
	case tokenTrue, tokenFalse:
		lit := &BoolLiteral{Value: p.is(tokenTrue), position: pos}
		p.next()
		return lit, nil
	case tokenNil:
		p.next()
		return &NilLiteral{position: pos}, nil
	case tokenInt:
		value, err := strconv.ParseInt(p.tok.Literal, 10, 64)
		if err != nil {
			return nil, p.newError(ErrUnexpectedToken, "invalid integer literal")
		}
		p.next()
		return &IntegerLiteral{Value: value, position: pos}, nil
	case tokenFloat:
		value, err := strconv.ParseFloat(p.tok.Literal, 64)
		if err != nil {
			return nil, p.newError(ErrUnexpectedToken, "invalid float literal")
		}
		p.next()
		return &FloatLiteral{Value: value, position: pos}, nil
	case tokenString:
		lit := &StringLiteral{Value: p.tok.Literal, position: pos}
		p.next()
		return lit, nil
	case tokenIllegal:
		// Lexical failures surface as illegal tokens carrying the message.
		return nil, p.newError(ErrUnexpectedToken, p.tok.Literal)
	default:
		return nil, p.newError(ErrUnexpectedToken, fmt.Sprintf("unexpected token %s", p.tok.Type))
	}
}

func (p *parser) errorExpected(tt TokenType) error {
	return p.newError(ErrExpectedToken, fmt.Sprintf("expected %s, got %s", tt, p.tok.Type))
}

func (p *parser) newError(kind, message string) error {
	return &ParseError{
		Kind:      kind,
		Message:   message,
		Pos:       p.tok.Pos,
		CodeFrame: formatCodeFrame(p.source, p.tok.Pos),
	}
}
