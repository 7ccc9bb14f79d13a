package parser

import (
	"github.com/onyx-lang/onyxfront/internal/ast"
	"github.com/onyx-lang/onyxfront/internal/diagnostics"
	"github.com/onyx-lang/onyxfront/internal/token"
)

// parseTypeExpression parses a left-to-right chain of `^` pointer markers
// terminating in a type name (spec §4.6). The terminal is always a Symbol,
// whether it names a basic type (i32, f64, ...) or a user type; BasicType
// singletons are reserved for attaching a literal's inferred type, not for
// type-expression output.
func (p *Parser) parseTypeExpression() ast.Type {
	if p.v.is(token.Caret) {
		tok := p.v.advance()
		return ast.NewPointerType(tok, p.parseTypeExpression())
	}

	tok := p.v.cur()
	if tok.Type == token.IDENT || ast.BasicTypeFor(tok) != nil {
		p.v.advance()
		return ast.NewSymbol(tok)
	}

	p.v.error(diagnostics.NewUnexpectedToken(tok))
	p.v.advance()
	return nil
}
