package ast

import "github.com/onyx-lang/onyxfront/internal/token"

// Assign is `lval = expr`, including the desugared form produced for a
// compound-assignment operator (spec §4.5): in that case Expr is already a
// BinaryOp wrapping the original right-hand side.
type Assign struct {
	base
	LValue Expression
	Expr   Expression
}

func (*Assign) Kind() Kind         { return KindAssign }
func (a *Assign) Accept(v Visitor) { v.VisitAssign(a) }
func (*Assign) statementNode()     {}

// If models an if/elseif*/else? chain. FalseBranch is either a *Block, a
// further *If (the next elseif/else in the chain), or nil.
type If struct {
	base
	Cond        Expression
	TrueBranch  *Block
	FalseBranch Node
}

func (*If) Kind() Kind         { return KindIf }
func (i *If) Accept(v Visitor) { v.VisitIf(i) }
func (*If) statementNode()     {}

// While is a condition-checked loop.
type While struct {
	base
	Cond Expression
	Body *Block
}

func (*While) Kind() Kind         { return KindWhile }
func (w *While) Accept(v Visitor) { v.VisitWhile(w) }
func (*While) statementNode()     {}

// Return optionally carries a value expression.
type Return struct {
	base
	Expr Expression // nil for a bare `return;`
}

func (*Return) Kind() Kind         { return KindReturn }
func (r *Return) Accept(v Visitor) { v.VisitReturn(r) }
func (*Return) statementNode()     {}

// Break is a single-token `break` statement.
type Break struct{ base }

func (*Break) Kind() Kind         { return KindBreak }
func (b *Break) Accept(v Visitor) { v.VisitBreak(b) }
func (*Break) statementNode()     {}

// Continue is a single-token `continue` statement, kept as its own Kind
// (spec §9 Open Question, resolved in SPEC_FULL.md: given a distinct kind
// rather than folded into Break).
type Continue struct{ base }

func (*Continue) Kind() Kind         { return KindContinue }
func (c *Continue) Accept(v Visitor) { v.VisitContinue(c) }
func (*Continue) statementNode()     {}

// Block is `{ statements }`. Locals is the block's owned LocalGroup chain
// (may be nil); Body is the threaded Statement chain via NextNode.
type Block struct {
	base
	Locals *LocalGroup
	Body   Node // *statement chain
}

func NewBlock(tok token.Token) *Block { return &Block{base: base{token: tok}} }

func (*Block) Kind() Kind         { return KindBlock }
func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }
func (*Block) statementNode()     {}
func (*Block) expressionNode()    {} // a Block can stand in a top-level-expression position

// LocalGroup indexes the Local declarations of a single Block. Locals is
// the block's first Local; its NextNode is the block's statement chain
// (the Local's initializing Assign, then the following statements), not a
// chain of Locals only. No Local escapes its declaring block (spec §3.2
// invariant).
type LocalGroup struct {
	base
	Locals Node // first *Local of the block
}

func (*LocalGroup) Kind() Kind         { return KindLocalGroup }
func (g *LocalGroup) Accept(v Visitor) { v.VisitLocalGroup(g) }
func (*LocalGroup) statementNode()     {}
