// Package ast defines the typed abstract syntax tree the parser builds.
// Every node shares the common prefix described in spec §3.2: a kind tag,
// a flags bitset, the originating token, an optional type-expression
// reference, and an optional next-sibling link used to thread statements in
// a block and parameters in a list.
package ast

import "github.com/onyx-lang/onyxfront/internal/token"

// Flags is the per-node bitset.
type Flags uint16

const (
	FlagCompileTime Flags = 1 << iota // all inputs known statically
	FlagLValue                        // node is assignable (locals, params, globals)
	FlagConstant                      // :: binding rather than := / =
	FlagExported                      // has an export name
	FlagForeign                       // #foreign-bound
	FlagIntrinsic                     // #intrinsic-bound
	FlagInline                        // #inline
	FlagPointerBasic                  // the node denotes rawptr/pointer-shaped storage
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Kind discriminates a Node's concrete type without a type switch, mainly
// for diagnostics and tooling that want a cheap tag.
type Kind int

const (
	KindError Kind = iota
	KindLiteral
	KindSymbol
	KindUnaryOp
	KindBinaryOp
	KindCall
	KindArgument
	KindAssign
	KindIf
	KindWhile
	KindReturn
	KindBreak
	KindContinue
	KindBlock
	KindLocalGroup
	KindLocal
	KindFunction
	KindGlobal
	KindFunctionType
	KindUse
	KindBinding
	KindPointerType
	KindBasicType
)

// Node is the base interface every AST node implements.
type Node interface {
	Kind() Kind
	Tok() token.Token
	Accept(Visitor)

	// NodeFlags returns the node's flags bitset; SetNodeFlags replaces it.
	NodeFlags() Flags
	SetNodeFlags(Flags)

	// TypeExpr is the node's optional type-expression reference (nil if
	// none was attached, e.g. an inferred local).
	TypeExpr() Node
	SetTypeExpr(Node)

	// NextNode is the optional sibling link used to thread statements in a
	// block and parameters in a parameter list.
	NextNode() Node
	SetNextNode(Node)
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node that has no value.
type Statement interface {
	Node
	statementNode()
}

// Type is a Node used in a type-expression position.
type Type interface {
	Node
	typeNode()
}

// base is embedded by every concrete node and implements the common Node
// accessors, matching the teacher's pattern of a Token field threaded
// through every node sans a separate class hierarchy.
type base struct {
	token    token.Token
	flags    Flags
	typeExpr Node
	next     Node
}

func (b *base) Tok() token.Token      { return b.token }
func (b *base) NodeFlags() Flags      { return b.flags }
func (b *base) SetNodeFlags(f Flags)  { b.flags = f }
func (b *base) TypeExpr() Node        { return b.typeExpr }
func (b *base) SetTypeExpr(n Node)    { b.typeExpr = n }
func (b *base) NextNode() Node        { return b.next }
func (b *base) SetNextNode(n Node)    { b.next = n }

// ErrorNode is the shared sentinel used in-band to signal "no result /
// recovered error" to a caller that must know recovery occurred (spec
// §3.2, §7). It is never mutated and never linked into an owning list.
var ErrorNode Node = &errorNode{}

type errorNode struct{ base }

func (*errorNode) Kind() Kind        { return KindError }
func (*errorNode) Accept(v Visitor)  { v.VisitError() }
func (*errorNode) expressionNode()   {}
func (*errorNode) statementNode()    {}
