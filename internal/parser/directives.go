package parser

import "github.com/onyx-lang/onyxfront/internal/token"

// matchDirective tentatively consumes `#` then an identifier; if the
// identifier's text equals name, the match succeeds and both tokens stay
// consumed. Otherwise the cursor is restored to exactly where it was, so a
// sibling matchDirective call can try the next directive name (spec §4.8 —
// the parser's only multi-token speculation).
func (p *Parser) matchDirective(name string) bool {
	if !p.v.is(token.Hash) {
		return false
	}
	mark := p.v.mark()
	p.v.advance()
	if !p.v.is(token.IDENT) || p.v.cur().Text != name {
		p.v.reset(mark)
		return false
	}
	p.v.advance()
	return true
}
