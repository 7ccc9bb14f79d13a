package parser

import (
	"github.com/onyx-lang/onyxfront/internal/ast"
	"github.com/onyx-lang/onyxfront/internal/diagnostics"
	"github.com/onyx-lang/onyxfront/internal/token"
)

func errorExpr() ast.Expression { return ast.ErrorNode.(ast.Expression) }

// binaryOp describes one entry of the precedence table in spec §4.3.
type binaryOp struct {
	op   ast.BinaryOperator
	prec int
}

var binaryOps = map[token.Type]binaryOp{
	token.Percent: {ast.BinModulus, 7},
	token.Star:    {ast.BinMultiply, 6},
	token.Slash:   {ast.BinDivide, 6},
	token.Plus:    {ast.BinAdd, 5},
	token.Minus:   {ast.BinMinus, 5},
	token.Lt:      {ast.BinLess, 4},
	token.LtEq:    {ast.BinLessEqual, 4},
	token.Gt:      {ast.BinGreater, 4},
	token.GtEq:    {ast.BinGreaterEqual, 4},
	token.EqEq:    {ast.BinEqual, 3},
	token.BangEq:  {ast.BinNotEqual, 3},
}

// setChildren reassigns a BinaryOp's operands and recomputes its
// Compile-time flag from scratch (needed because the precedence-climbing
// splice below mutates a node's Right after construction).
func setChildren(b *ast.BinaryOp, left, right ast.Expression) {
	b.Left, b.Right = left, right
	flags := b.NodeFlags() &^ ast.FlagCompileTime
	if left != nil && right != nil && left.NodeFlags().Has(ast.FlagCompileTime) && right.NodeFlags().Has(ast.FlagCompileTime) {
		flags |= ast.FlagCompileTime
	}
	b.SetNodeFlags(flags)
}

// parseExpression parses a full binary expression via the explicit
// precedence stack mandated by spec §4.3: a monotonic stack of in-flight
// BinaryOp nodes whose precedence decreases from bottom to top. Seeing a
// new operator pops while the top's precedence is ≥ the new one's, then
// splices the new node in beneath the popped boundary.
func (p *Parser) parseExpression() ast.Expression {
	root := p.parseFactor()
	var stack []*ast.BinaryOp

	for {
		entry, ok := binaryOps[p.v.cur().Type]
		if !ok {
			break
		}
		tok := p.v.advance()
		right := p.parseFactor()
		node := ast.NewBinaryOp(tok, entry.op, nil, right)

		for len(stack) > 0 && binaryOps[stack[len(stack)-1].Tok().Type].prec >= entry.prec {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			setChildren(node, root, right)
			root = node
		} else {
			top := stack[len(stack)-1]
			setChildren(node, top.Right, right)
			setChildren(top, top.Left, node)
		}
		stack = append(stack, node)
	}
	return root
}

// parseFactor parses a single operand (spec §4.3): a parenthesized
// expression, a unary -/! application, a symbol (optionally called), a
// numeric literal, or a boolean literal; any factor may then be followed
// by zero or more `cast <type>` postfixes.
func (p *Parser) parseFactor() ast.Expression {
	var e ast.Expression

	switch {
	case p.v.is(token.LParen):
		p.v.advance()
		e = p.parseExpression()
		p.v.expect(token.RParen)

	case p.v.is(token.Minus):
		tok := p.v.advance()
		e = ast.NewUnaryOp(tok, ast.UnaryNegate, p.parseFactor())

	case p.v.is(token.Bang):
		tok := p.v.advance()
		e = ast.NewUnaryOp(tok, ast.UnaryNot, p.parseFactor())

	case p.v.is(token.IDENT):
		tok := p.v.advance()
		sym := ast.NewSymbol(tok)
		if p.v.is(token.LParen) {
			e = p.parseCall(sym)
		} else {
			e = sym
		}

	case p.v.is(token.INT), p.v.is(token.FLOAT):
		e = parseNumericLiteral(p.v.advance())

	case p.v.is(token.KwTrue):
		tok := p.v.advance()
		e = ast.NewLiteral(tok, ast.LiteralValue{Kind: ast.LiteralBool, Bool: true})

	case p.v.is(token.KwFalse):
		tok := p.v.advance()
		e = ast.NewLiteral(tok, ast.LiteralValue{Kind: ast.LiteralBool, Bool: false})

	default:
		return p.v.error(diagnostics.NewExpectedExpression(p.v.cur())).(ast.Expression)
	}

	for p.v.is(token.KwCast) {
		tok := p.v.advance()
		typeExpr := p.parseTypeExpression()
		u := ast.NewUnaryOp(tok, ast.UnaryCast, e)
		u.SetTypeExpr(typeExpr)
		e = u
	}
	return e
}

// parseCall parses the `(` already current as the start of a
// comma-separated argument list; a trailing comma is disallowed and a
// missing comma is diagnosed (spec §4.3).
func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	lparen := p.v.advance()
	var head, tail *ast.Argument

	for !p.v.is(token.RParen) && !p.v.is(token.EOF) {
		argTok := p.v.cur()
		arg := ast.NewArgument(argTok, p.parseExpression())
		if head == nil {
			head = arg
		} else {
			tail.SetNextNode(arg)
		}
		tail = arg

		if p.v.is(token.RParen) {
			break
		}
		if _, ok := p.v.expect(token.Comma); !ok {
			break
		}
		if p.v.is(token.RParen) {
			p.v.error(diagnostics.NewExpectedExpression(p.v.cur()))
			break
		}
	}
	p.v.expect(token.RParen)

	var args ast.Node
	if head != nil {
		args = head
	}
	return ast.NewCall(lparen, callee, args)
}
