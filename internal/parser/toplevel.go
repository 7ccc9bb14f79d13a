package parser

import (
	"github.com/onyx-lang/onyxfront/internal/ast"
	"github.com/onyx-lang/onyxfront/internal/diagnostics"
	"github.com/onyx-lang/onyxfront/internal/token"
)

// Results is the bundle a translation unit's parse produces (spec §3.3):
// ordered Uses, ordered top-level Bindings, and a work queue of nodes
// pending later phases. All three only ever grow during parsing.
type Results struct {
	Uses     []*ast.Use
	Bindings []*ast.Binding
	Pending  []ast.Node
}

// Parser drives a view over a token stream into a Results bundle.
type Parser struct {
	v *view
}

// New builds a Parser over tokens, posting every diagnostic to sink.
func New(tokens []token.Token, sink diagnostics.Sink) *Parser {
	return &Parser{v: newView(tokens, sink)}
}

// Parse consumes the entire token stream, never aborting early (spec §7).
func (p *Parser) Parse() *Results {
	res := &Results{}
	for !p.v.is(token.EOF) {
		p.parseTopLevel(res)
	}
	return res
}

func (p *Parser) parseTopLevel(res *Results) {
	switch {
	case p.v.is(token.KwUse):
		res.Uses = append(res.Uses, p.parseUse())
	case p.v.is(token.IDENT):
		b := p.parseBinding()
		res.Bindings = append(res.Bindings, b)
		res.Pending = append(res.Pending, b.Node)
	default:
		p.v.sink.Post(diagnostics.NewUnexpectedToken(p.v.cur()))
		p.v.advance()
	}
}

func (p *Parser) parseUse() *ast.Use {
	tok := p.v.advance() // 'use'
	strTok, _ := p.v.expect(token.STRING)
	return ast.NewUse(tok, strTok.Text)
}

// parseBinding parses `<symbol> :: <top-level-expression>` (spec §4.7). A
// Function or Global result with no explicit export name inherits the
// binding's own name as its exported name.
func (p *Parser) parseBinding() *ast.Binding {
	nameTok := p.v.advance()
	tok, _ := p.v.expect(token.ColonColon)
	node := p.parseTopLevelExpression()

	switch n := node.(type) {
	case *ast.Function:
		if n.ExportedName == "" {
			n.ExportedName = nameTok.Text
		}
	case *ast.Global:
		if n.ExportedName == "" {
			n.ExportedName = nameTok.Text
		}
	}

	return ast.NewBinding(tok, nameTok.Text, node)
}

func (p *Parser) parseTopLevelExpression() ast.Node {
	switch {
	case p.v.is(token.KwProc):
		return p.parseProc()
	case p.v.is(token.KwGlobal):
		return p.parseGlobalDecl()
	default:
		return p.parseExpression()
	}
}

// parseUnknownDirective consumes `#` plus a trailing identifier (if any)
// and posts an UnknownDirective diagnostic (spec §4.7's fallback: "the
// directive's tokens are consumed, parsing continues as if no directive
// were present").
func (p *Parser) parseUnknownDirective() {
	hashTok := p.v.advance()
	name := ""
	if p.v.is(token.IDENT) {
		name = p.v.advance().Text
	}
	p.v.sink.Post(diagnostics.NewUnknownDirective(hashTok, name))
}

// parseProc parses `proc <directive>* <params> (-> <type>)? <block>`.
func (p *Parser) parseProc() *ast.Function {
	tok := p.v.advance() // 'proc'
	fn := ast.NewFunction(tok)

	for p.v.is(token.Hash) {
		switch {
		case p.matchDirective("intrinsic"):
			fn.SetNodeFlags(fn.NodeFlags() | ast.FlagIntrinsic)
			if p.v.is(token.STRING) {
				fn.IntrinsicName = p.v.advance().Text
			}
		case p.matchDirective("inline"):
			fn.SetNodeFlags(fn.NodeFlags() | ast.FlagInline)
		case p.matchDirective("foreign"):
			fn.SetNodeFlags(fn.NodeFlags() | ast.FlagForeign)
			modTok, _ := p.v.expect(token.STRING)
			nameTok, _ := p.v.expect(token.STRING)
			fn.ForeignModule, fn.ForeignName = modTok.Text, nameTok.Text
		case p.matchDirective("export"):
			fn.SetNodeFlags(fn.NodeFlags() | ast.FlagExported)
			if p.v.is(token.STRING) {
				fn.ExportedName = p.v.advance().Text
			}
		default:
			p.parseUnknownDirective()
		}
	}

	params := p.parseParams()
	fn.Params = params

	var retType ast.Type = ast.Void()
	if p.v.is(token.Arrow) {
		p.v.advance()
		retType = p.parseTypeExpression()
	}
	fn.ReturnType = retType
	fn.Body = p.parseBlock()
	fn.Signature = synthesizeFunctionType(tok, params, retType)
	return fn
}

func (p *Parser) parseParams() ast.Node {
	p.v.expect(token.LParen)
	var head, tail *ast.Local

	for !p.v.is(token.RParen) && !p.v.is(token.EOF) {
		nameTok, _ := p.v.expect(token.IDENT)
		p.v.expect(token.Colon)
		typ := p.parseTypeExpression()
		local := ast.NewLocal(nameTok, nameTok.Text)
		local.SetTypeExpr(typ)
		if head == nil {
			head = local
		} else {
			tail.SetNextNode(local)
		}
		tail = local

		if p.v.is(token.RParen) {
			break
		}
		if _, ok := p.v.expect(token.Comma); !ok {
			break
		}
	}
	p.v.expect(token.RParen)

	if head == nil {
		return nil
	}
	return head
}

func synthesizeFunctionType(tok token.Token, params ast.Node, ret ast.Type) *ast.FunctionType {
	ft := ast.NewFunctionType(tok)
	var types []ast.Type
	for n := params; n != nil; n = n.NextNode() {
		if te := n.TypeExpr(); te != nil {
			if t, ok := te.(ast.Type); ok {
				types = append(types, t)
			}
		}
	}
	ft.Params = types
	ft.ReturnType = ret
	return ft
}

// parseGlobalDecl parses `global <directive>* <type>` (spec §4.7).
func (p *Parser) parseGlobalDecl() *ast.Global {
	tok := p.v.advance() // 'global'
	g := ast.NewGlobal(tok)

	for p.v.is(token.Hash) {
		switch {
		case p.matchDirective("foreign"):
			g.SetNodeFlags(g.NodeFlags() | ast.FlagForeign)
			modTok, _ := p.v.expect(token.STRING)
			nameTok, _ := p.v.expect(token.STRING)
			g.ForeignModule, g.ForeignName = modTok.Text, nameTok.Text
		case p.matchDirective("export"):
			g.SetNodeFlags(g.NodeFlags() | ast.FlagExported)
			if p.v.is(token.STRING) {
				g.ExportedName = p.v.advance().Text
			}
		default:
			p.parseUnknownDirective()
		}
	}

	g.SetTypeExpr(p.parseTypeExpression())
	return g
}
