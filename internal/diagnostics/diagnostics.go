// Package diagnostics defines the parser's error taxonomy and the Sink
// interface it posts to. The diagnostic message store itself (how
// diagnostics are retained, queried, and surfaced to a user) is an external
// collaborator; this package only fixes the contract plus a couple of
// reference Sink implementations.
package diagnostics

import (
	"fmt"

	"github.com/onyx-lang/onyxfront/internal/token"
)

// Code discriminates the four diagnostic shapes the parser ever posts.
type Code string

const (
	ExpectedToken      Code = "expected-token"
	UnexpectedToken    Code = "unexpected-token"
	ExpectedExpression Code = "expected-expression"
	UnknownDirective   Code = "unknown-directive"
)

// Diagnostic is a single posted parser error.
type Diagnostic struct {
	Code  Code
	At    token.Token
	Args  []any // variant-specific arguments: expected/found token names, literal text
}

func (d Diagnostic) Error() string {
	switch d.Code {
	case ExpectedToken:
		return fmt.Sprintf("%s: expected %v, got %v", d.At.Pos, arg(d.Args, 0), arg(d.Args, 1))
	case UnexpectedToken:
		return fmt.Sprintf("%s: unexpected token %v", d.At.Pos, arg(d.Args, 0))
	case ExpectedExpression:
		return fmt.Sprintf("%s: expected expression, got %q", d.At.Pos, arg(d.Args, 0))
	case UnknownDirective:
		return fmt.Sprintf("%s: unknown directive #%v", d.At.Pos, arg(d.Args, 0))
	default:
		return fmt.Sprintf("%s: %s", d.At.Pos, d.Code)
	}
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// Sink is anything that can receive posted diagnostics. The parser never
// aborts on a post; it continues and relies on the recovery rules in
// spec §7.
type Sink interface {
	Post(Diagnostic)
}

// MemorySink is the default in-process store: an ordered, append-only
// slice of posted diagnostics.
type MemorySink struct {
	Diagnostics []Diagnostic
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Post(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// TeeSink posts every diagnostic to each of Sinks, in order, so a caller can
// keep an in-process MemorySink for immediate reporting alive alongside a
// durable sink (SQLiteSink) on the same parse run.
type TeeSink struct {
	Sinks []Sink
}

func (s TeeSink) Post(d Diagnostic) {
	for _, sink := range s.Sinks {
		sink.Post(d)
	}
}

// NewExpectedToken builds an ExpectedToken diagnostic: "expected X, got Y".
func NewExpectedToken(at token.Token, expected, got token.Type) Diagnostic {
	return Diagnostic{Code: ExpectedToken, At: at, Args: []any{expected, got}}
}

// NewUnexpectedToken builds an UnexpectedToken diagnostic.
func NewUnexpectedToken(at token.Token) Diagnostic {
	return Diagnostic{Code: UnexpectedToken, At: at, Args: []any{at.Type}}
}

// NewExpectedExpression builds an ExpectedExpression diagnostic, keeping
// the offending token's text as required by spec §4.5.
func NewExpectedExpression(at token.Token) Diagnostic {
	return Diagnostic{Code: ExpectedExpression, At: at, Args: []any{at.Text}}
}

// NewUnknownDirective builds an UnknownDirective diagnostic.
func NewUnknownDirective(at token.Token, name string) Diagnostic {
	return Diagnostic{Code: UnknownDirective, At: at, Args: []any{name}}
}
