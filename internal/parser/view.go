// Package parser builds a typed AST from a pre-lexed token stream (spec
// §4). It never invents tokens and never blocks: every error is posted to
// a diagnostics.Sink and parsing continues.
package parser

import (
	"github.com/onyx-lang/onyxfront/internal/ast"
	"github.com/onyx-lang/onyxfront/internal/config"
	"github.com/onyx-lang/onyxfront/internal/diagnostics"
	"github.com/onyx-lang/onyxfront/internal/token"
)

// view is the cursor over a pre-lexed, random-access token array (spec
// §4.1). It never exposes a COMMENT token to a caller.
type view struct {
	tokens []token.Token
	pos    int
	sink   diagnostics.Sink
}

func newView(tokens []token.Token, sink diagnostics.Sink) *view {
	v := &view{tokens: tokens, sink: sink}
	v.skipComments()
	return v
}

func (v *view) skipComments() {
	for v.pos < len(v.tokens)-1 && v.tokens[v.pos].Type == token.COMMENT {
		v.pos++
	}
}

// cur returns the current non-comment token, or the trailing EOF token if
// the cursor has run past the end of the array.
func (v *view) cur() token.Token {
	if v.pos >= len(v.tokens) {
		return v.tokens[len(v.tokens)-1]
	}
	return v.tokens[v.pos]
}

// advance moves past the current token and skips any trailing comments.
func (v *view) advance() token.Token {
	t := v.cur()
	if v.pos < len(v.tokens)-1 {
		v.pos++
	}
	v.skipComments()
	return t
}

// rewind moves back by one non-comment token. It is used only to undo a
// speculative match that had no other side effect (spec §4.8).
func (v *view) rewind() {
	if v.pos > 0 {
		v.pos--
	}
	for v.pos > 0 && v.tokens[v.pos].Type == token.COMMENT {
		v.pos--
	}
}

// mark and reset support the one multi-token speculation the grammar
// needs: directive matching (spec §4.8).
func (v *view) mark() int      { return v.pos }
func (v *view) reset(pos int)  { v.pos = pos }

// is reports whether the current token has type k.
func (v *view) is(k token.Type) bool { return v.cur().Type == k }

// expect consumes the current token if it matches k; otherwise it posts
// an ExpectedToken diagnostic and still advances, returning false, so a
// persistent mismatch can never stall the parser (spec §4.1).
func (v *view) expect(k token.Type) (token.Token, bool) {
	t := v.cur()
	if t.Type != k {
		v.sink.Post(diagnostics.NewExpectedToken(t, k, t.Type))
		v.advance()
		return t, false
	}
	v.advance()
	return t, true
}

// find advances until the current token is k or a terminator, used to
// resynchronize after a statement-level error (spec §4.1).
func (v *view) find(k token.Type) {
	for !v.is(k) && !config.ResyncTokens[v.cur().Type] {
		v.advance()
	}
}

func (v *view) error(d diagnostics.Diagnostic) ast.Node {
	v.sink.Post(d)
	return ast.ErrorNode
}
