package parser

import (
	"github.com/onyx-lang/onyxfront/internal/ast"
	"github.com/onyx-lang/onyxfront/internal/diagnostics"
	"github.com/onyx-lang/onyxfront/internal/token"
)

var compoundOps = map[token.Type]ast.BinaryOperator{
	token.PlusEq:    ast.BinAdd,
	token.MinusEq:   ast.BinMinus,
	token.StarEq:    ast.BinMultiply,
	token.SlashEq:   ast.BinDivide,
	token.PercentEq: ast.BinModulus,
}

// parseStatement dispatches on the current token's kind (spec §4.4). The
// returned Node is threaded into a Block's Body chain by the caller; it
// need not itself be an ast.Statement (a bare Call is a legal statement).
func (p *Parser) parseStatement() ast.Node {
	switch {
	case p.v.is(token.KwReturn):
		return p.parseReturn()
	case p.v.is(token.LBrace):
		return p.parseBlock()
	case p.v.is(token.KwIf):
		return p.parseIf()
	case p.v.is(token.KwWhile):
		return p.parseWhile()
	case p.v.is(token.KwBreak):
		tok := p.v.advance()
		s := ast.NewBreak(tok)
		p.expectSemicolon()
		return s
	case p.v.is(token.KwContinue):
		tok := p.v.advance()
		s := ast.NewContinue(tok)
		p.expectSemicolon()
		return s
	case p.v.is(token.IDENT):
		if s := p.tryParseSymbolStatement(); s != nil {
			return s
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Node {
	e := p.parseExpression()
	p.expectSemicolon()
	return e
}

// canStartExpression reports whether the current token could begin a
// factor, used to tell "missing expression" apart from "missing ;".
func (p *Parser) canStartExpression() bool {
	switch p.v.cur().Type {
	case token.LParen, token.Minus, token.Bang, token.IDENT, token.INT, token.FLOAT, token.KwTrue, token.KwFalse:
		return true
	}
	return false
}

// expectSemicolon requires a trailing `;`; a missing one is diagnosed once
// and the parser resynchronizes via find(';') rather than the generic
// single-token advance expect() performs (spec §4.4).
func (p *Parser) expectSemicolon() {
	if p.v.is(token.Semicolon) {
		p.v.advance()
		return
	}
	p.v.sink.Post(diagnostics.NewExpectedToken(p.v.cur(), token.Semicolon, p.v.cur().Type))
	p.v.find(token.Semicolon)
	if p.v.is(token.Semicolon) {
		p.v.advance()
	}
}

// tryParseSymbolStatement implements spec §4.5: having consumed a symbol,
// inspect the next token to disambiguate declaration, assignment, compound
// assignment, or "not mine" (rewind and let the caller parse an
// expression).
func (p *Parser) tryParseSymbolStatement() ast.Node {
	symTok := p.v.advance()

	switch {
	case p.v.is(token.Colon):
		return p.parseDeclaration(symTok)

	case p.v.is(token.Assign):
		p.v.advance()
		if !p.canStartExpression() {
			node := p.v.error(diagnostics.NewExpectedExpression(p.v.cur()))
			p.expectSemicolon()
			return node
		}
		rhs := p.parseExpression()
		lhs := ast.NewSymbol(symTok)
		lhs.SetNodeFlags(lhs.NodeFlags() | ast.FlagLValue)
		a := ast.NewAssign(symTok, lhs, rhs)
		p.expectSemicolon()
		return a

	default:
		if op, ok := compoundOps[p.v.cur().Type]; ok {
			return p.parseCompoundAssign(symTok, op)
		}
		p.v.rewind()
		return nil
	}
}

// parseDeclaration parses the remainder of `name : [type]? (= | :) expr?`
// after the name has been consumed; the current token is the ':' that
// follows it, which this function consumes first (spec §4.5).
func (p *Parser) parseDeclaration(nameTok token.Token) ast.Node {
	p.v.advance() // ':'
	local := ast.NewLocal(nameTok, nameTok.Text)

	if !p.v.is(token.Colon) && !p.v.is(token.Assign) {
		local.SetTypeExpr(p.parseTypeExpression())
	}

	if p.v.is(token.Colon) || p.v.is(token.Assign) {
		isConst := p.v.is(token.Colon)
		p.v.advance()
		if !p.canStartExpression() {
			p.v.sink.Post(diagnostics.NewExpectedExpression(p.v.cur()))
			p.expectSemicolon()
			return local
		}
		expr := p.parseExpression()
		if isConst {
			local.SetNodeFlags(local.NodeFlags() | ast.FlagConstant)
		}
		lhs := ast.NewSymbol(nameTok)
		lhs.SetNodeFlags(lhs.NodeFlags() | ast.FlagLValue)
		local.SetNextNode(ast.NewAssign(nameTok, lhs, expr))
	}

	p.expectSemicolon()
	return local
}

func (p *Parser) parseCompoundAssign(symTok token.Token, op ast.BinaryOperator) ast.Node {
	opTok := p.v.advance()
	if !p.canStartExpression() {
		node := p.v.error(diagnostics.NewExpectedExpression(p.v.cur()))
		p.expectSemicolon()
		return node
	}
	rhs := p.parseExpression()
	read := ast.NewSymbol(symTok)
	bin := ast.NewBinaryOp(opTok, op, read, rhs)
	write := ast.NewSymbol(symTok)
	write.SetNodeFlags(write.NodeFlags() | ast.FlagLValue)
	a := ast.NewAssign(symTok, write, bin)
	p.expectSemicolon()
	return a
}

func (p *Parser) parseReturn() ast.Node {
	tok := p.v.advance()
	var expr ast.Expression
	if !p.v.is(token.Semicolon) {
		if !p.canStartExpression() {
			node := p.v.error(diagnostics.NewExpectedExpression(p.v.cur()))
			p.expectSemicolon()
			return node
		}
		expr = p.parseExpression()
	}
	ret := ast.NewReturn(tok, expr)
	p.expectSemicolon()
	return ret
}

func (p *Parser) parseIf() *ast.If {
	tok := p.v.advance()
	cond := p.parseExpression()
	body := p.parseBlock()
	root := ast.NewIf(tok, cond, body, nil)

	cur := root
	for p.v.is(token.KwElseif) {
		eTok := p.v.advance()
		eCond := p.parseExpression()
		eBody := p.parseBlock()
		next := ast.NewIf(eTok, eCond, eBody, nil)
		cur.FalseBranch = next
		cur = next
	}
	if p.v.is(token.KwElse) {
		p.v.advance()
		cur.FalseBranch = p.parseBlock()
	}
	return root
}

func (p *Parser) parseWhile() *ast.While {
	tok := p.v.advance()
	cond := p.parseExpression()
	body := p.parseBlock()
	return ast.NewWhile(tok, cond, body)
}

// parseBlock parses `{ statement* }`. Locals declared directly in the
// block are also indexed by a LocalGroup for scope bookkeeping; the group
// does not duplicate the body's NextNode chain (a Local's own NextNode is
// already spoken for by its initializing Assign, per spec §4.5) — it
// simply remembers the first Local, and a caller enumerating every local
// walks Body filtering on Kind() == KindLocal.
func (p *Parser) parseBlock() *ast.Block {
	tok, _ := p.v.expect(token.LBrace)
	block := ast.NewBlock(tok)

	var bodyHead, bodyTail ast.Node
	var firstLocal *ast.Local

	for !p.v.is(token.RBrace) && !p.v.is(token.EOF) {
		stmt := p.parseStatement()
		if stmt == ast.ErrorNode {
			// The shared sentinel is never linked into a block's body.
			continue
		}
		if bodyHead == nil {
			bodyHead = stmt
		} else {
			bodyTail.SetNextNode(stmt)
		}
		bodyTail = lastInChain(stmt)
		if loc, ok := stmt.(*ast.Local); ok && firstLocal == nil {
			firstLocal = loc
		}
	}
	p.v.expect(token.RBrace)

	if firstLocal != nil {
		group := ast.NewLocalGroup(tok)
		group.Locals = firstLocal
		block.Locals = group
	}
	block.Body = bodyHead
	return block
}

func lastInChain(n ast.Node) ast.Node {
	for n.NextNode() != nil {
		n = n.NextNode()
	}
	return n
}
