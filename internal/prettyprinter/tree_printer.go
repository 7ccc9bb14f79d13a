// Package prettyprinter renders an AST as an indented tree, adapted from
// the teacher's visitor-based tree printer to this repository's node set
// (spec §3.2).
package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/onyx-lang/onyxfront/internal/ast"
)

// TreePrinter walks a Node via ast.Visitor and accumulates an indented
// textual tree, one line per node.
type TreePrinter struct {
	buf    strings.Builder
	indent int
}

func NewTreePrinter() *TreePrinter { return &TreePrinter{} }

func (p *TreePrinter) String() string { return p.buf.String() }

func (p *TreePrinter) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) child(n ast.Node) {
	if n == nil {
		return
	}
	p.indent++
	n.Accept(p)
	p.indent--
}

// children walks a NextNode-threaded sibling chain, each at the current
// indent level (used for block bodies, parameter lists, argument lists).
func (p *TreePrinter) children(n ast.Node) {
	p.indent++
	for ; n != nil; n = n.NextNode() {
		n.Accept(p)
	}
	p.indent--
}

// Print renders n (and everything reachable from it) as a tree string.
func Print(n ast.Node) string {
	p := NewTreePrinter()
	if n == nil {
		return "(nil)\n"
	}
	n.Accept(p)
	return p.String()
}

func (p *TreePrinter) VisitError() { p.line("Error") }

func (p *TreePrinter) VisitLiteral(n *ast.Literal) {
	switch n.Value.Kind {
	case ast.LiteralI64:
		p.line("Literal i64 %d", n.Value.I64)
	case ast.LiteralF32:
		p.line("Literal f32 %g", n.Value.F32)
	case ast.LiteralF64:
		p.line("Literal f64 %g", n.Value.F64)
	case ast.LiteralBool:
		p.line("Literal bool %v", n.Value.Bool)
	}
}

func (p *TreePrinter) VisitSymbol(n *ast.Symbol) { p.line("Symbol %s", n.Name) }

func (p *TreePrinter) VisitUnaryOp(n *ast.UnaryOp) {
	p.line("UnaryOp %s", unaryOpName(n.Op))
	p.child(n.Operand)
	if n.Op == ast.UnaryCast {
		p.child(n.TypeExpr())
	}
}

func (p *TreePrinter) VisitBinaryOp(n *ast.BinaryOp) {
	p.line("BinaryOp %s", binaryOpName(n.Op))
	p.child(n.Left)
	p.child(n.Right)
}

func (p *TreePrinter) VisitCall(n *ast.Call) {
	p.line("Call")
	p.child(n.Callee)
	if n.Arguments != nil {
		p.children(n.Arguments)
	}
}

func (p *TreePrinter) VisitArgument(n *ast.Argument) {
	p.line("Argument")
	p.child(n.Value)
}

func (p *TreePrinter) VisitAssign(n *ast.Assign) {
	p.line("Assign")
	p.child(n.LValue)
	p.child(n.Expr)
}

func (p *TreePrinter) VisitIf(n *ast.If) {
	p.line("If")
	p.child(n.Cond)
	p.child(n.TrueBranch)
	if n.FalseBranch != nil {
		p.child(n.FalseBranch)
	}
}

func (p *TreePrinter) VisitWhile(n *ast.While) {
	p.line("While")
	p.child(n.Cond)
	p.child(n.Body)
}

func (p *TreePrinter) VisitReturn(n *ast.Return) {
	p.line("Return")
	if n.Expr != nil {
		p.child(n.Expr)
	}
}

func (p *TreePrinter) VisitBreak(*ast.Break)       { p.line("Break") }
func (p *TreePrinter) VisitContinue(*ast.Continue) { p.line("Continue") }

func (p *TreePrinter) VisitBlock(n *ast.Block) {
	p.line("Block")
	if n.Locals != nil {
		p.child(n.Locals)
	}
	if n.Body != nil {
		p.children(n.Body)
	}
}

func (p *TreePrinter) VisitLocalGroup(n *ast.LocalGroup) {
	p.line("LocalGroup")
	if n.Locals != nil {
		p.children(n.Locals)
	}
}

func (p *TreePrinter) VisitLocal(n *ast.Local) {
	p.line("Local %s", n.Name)
	if te := n.TypeExpr(); te != nil {
		p.child(te)
	}
}

func (p *TreePrinter) VisitFunction(n *ast.Function) {
	p.line("Function exported=%q", n.ExportedName)
	if n.Params != nil {
		p.children(n.Params)
	}
	p.child(n.Signature)
	p.child(n.Body)
}

func (p *TreePrinter) VisitGlobal(n *ast.Global) {
	p.line("Global exported=%q", n.ExportedName)
	if te := n.TypeExpr(); te != nil {
		p.child(te)
	}
}

func (p *TreePrinter) VisitFunctionType(n *ast.FunctionType) {
	p.line("FunctionType")
	p.indent++
	for _, t := range n.Params {
		t.Accept(p)
	}
	p.indent--
	if n.ReturnType != nil {
		p.child(n.ReturnType)
	}
}

func (p *TreePrinter) VisitUse(n *ast.Use) { p.line("Use %q", n.Filename) }

func (p *TreePrinter) VisitBinding(n *ast.Binding) {
	p.line("Binding %s", n.Name)
	p.child(n.Node)
}

func (p *TreePrinter) VisitPointerType(n *ast.PointerType) {
	p.line("PointerType")
	p.child(n.Elem)
}

func (p *TreePrinter) VisitBasicType(n *ast.BasicType) {
	p.line("BasicType %s", basicKindName(n.BKind))
}

func unaryOpName(op ast.UnaryOperator) string {
	switch op {
	case ast.UnaryNegate:
		return "-"
	case ast.UnaryNot:
		return "!"
	case ast.UnaryCast:
		return "cast"
	default:
		return "?"
	}
}

func binaryOpName(op ast.BinaryOperator) string {
	switch op {
	case ast.BinAdd:
		return "+"
	case ast.BinMinus:
		return "-"
	case ast.BinMultiply:
		return "*"
	case ast.BinDivide:
		return "/"
	case ast.BinModulus:
		return "%"
	case ast.BinEqual:
		return "=="
	case ast.BinNotEqual:
		return "!="
	case ast.BinLess:
		return "<"
	case ast.BinLessEqual:
		return "<="
	case ast.BinGreater:
		return ">"
	case ast.BinGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

func basicKindName(k ast.BasicKind) string {
	switch k {
	case ast.BasicVoid:
		return "void"
	case ast.BasicBool:
		return "bool"
	case ast.BasicI8:
		return "i8"
	case ast.BasicI16:
		return "i16"
	case ast.BasicI32:
		return "i32"
	case ast.BasicI64:
		return "i64"
	case ast.BasicU8:
		return "u8"
	case ast.BasicU16:
		return "u16"
	case ast.BasicU32:
		return "u32"
	case ast.BasicU64:
		return "u64"
	case ast.BasicF32:
		return "f32"
	case ast.BasicF64:
		return "f64"
	case ast.BasicRawptr:
		return "rawptr"
	default:
		return "?"
	}
}
