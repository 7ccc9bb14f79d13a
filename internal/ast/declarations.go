package ast

import "github.com/onyx-lang/onyxfront/internal/token"

// Local is both a local-variable declaration and a function Parameter
// (spec §3.2 groups them); FlagLValue is always set, FlagConstant is set
// for a `::` binding. Parameters are threaded in declaration order through
// NextNode; no parameter appears in two parents.
type Local struct {
	base
	Name string
}

func NewLocal(tok token.Token, name string) *Local {
	l := &Local{base: base{token: tok}, Name: name}
	l.flags |= FlagLValue
	return l
}

func (*Local) Kind() Kind         { return KindLocal }
func (l *Local) Accept(v Visitor) { v.VisitLocal(l) }
func (*Local) statementNode()     {}

// FunctionType is the synthesized (or user-written) signature of a proc:
// Params is the Parameter type list in order, ReturnType defaults to void
// when omitted.
type FunctionType struct {
	base
	Params     []Type
	ReturnType Type
}

func (*FunctionType) Kind() Kind         { return KindFunctionType }
func (f *FunctionType) Accept(v Visitor) { v.VisitFunctionType(f) }
func (*FunctionType) typeNode()          {}

// Function is a `proc` definition, named (via an enclosing Binding) or
// anonymous. Params is the Local/Param chain via NextNode; Signature is
// the synthesized FunctionType.
type Function struct {
	base
	Params       Node // *Local chain
	ReturnType   Type
	Signature    *FunctionType
	Body         *Block
	ExportedName string // set when #export / binding-name applies
	IntrinsicName string
	ForeignModule string
	ForeignName   string
}

func (*Function) Kind() Kind         { return KindFunction }
func (f *Function) Accept(v Visitor) { v.VisitFunction(f) }
func (*Function) statementNode()     {} // pending-node queue entries are Statements

// Global is a `global` definition; FlagLValue is always set.
type Global struct {
	base
	ExportedName  string
	ForeignModule string
	ForeignName   string
}

func NewGlobal(tok token.Token) *Global {
	g := &Global{base: base{token: tok}}
	g.flags |= FlagLValue
	return g
}

func (*Global) Kind() Kind         { return KindGlobal }
func (g *Global) Accept(v Visitor) { v.VisitGlobal(g) }
func (*Global) statementNode()     {}
