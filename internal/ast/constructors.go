package ast

import "github.com/onyx-lang/onyxfront/internal/token"

// The remaining node constructors, kept together since none of them need
// to compute a derived flag at construction time (unlike NewLiteral,
// NewUnaryOp, NewBinaryOp, NewLocal and NewGlobal, which live beside their
// struct definitions, as do NewSymbol and NewBlock).

func NewCall(tok token.Token, callee Expression, args Node) *Call {
	return &Call{base: base{token: tok}, Callee: callee, Arguments: args}
}

func NewArgument(tok token.Token, value Expression) *Argument {
	return &Argument{base: base{token: tok}, Value: value}
}

func NewAssign(tok token.Token, lvalue, expr Expression) *Assign {
	return &Assign{base: base{token: tok}, LValue: lvalue, Expr: expr}
}

func NewIf(tok token.Token, cond Expression, trueBranch *Block, falseBranch Node) *If {
	return &If{base: base{token: tok}, Cond: cond, TrueBranch: trueBranch, FalseBranch: falseBranch}
}

func NewWhile(tok token.Token, cond Expression, body *Block) *While {
	return &While{base: base{token: tok}, Cond: cond, Body: body}
}

func NewReturn(tok token.Token, expr Expression) *Return {
	return &Return{base: base{token: tok}, Expr: expr}
}

func NewBreak(tok token.Token) *Break { return &Break{base: base{token: tok}} }

func NewContinue(tok token.Token) *Continue { return &Continue{base: base{token: tok}} }

func NewLocalGroup(tok token.Token) *LocalGroup { return &LocalGroup{base: base{token: tok}} }

func NewFunction(tok token.Token) *Function { return &Function{base: base{token: tok}} }

func NewFunctionType(tok token.Token) *FunctionType { return &FunctionType{base: base{token: tok}} }

func NewPointerType(tok token.Token, elem Type) *PointerType {
	return &PointerType{base: base{token: tok}, Elem: elem}
}

func NewUse(tok token.Token, filename string) *Use {
	return &Use{base: base{token: tok}, Filename: filename}
}

func NewBinding(tok token.Token, name string, node Node) *Binding {
	return &Binding{base: base{token: tok}, Name: name, Node: node}
}
