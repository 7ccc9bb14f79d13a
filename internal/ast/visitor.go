package ast

// Visitor dispatches over every concrete node kind the grammar fragment
// produces, mirroring the teacher's Accept/Visit pattern.
type Visitor interface {
	VisitError()
	VisitLiteral(*Literal)
	VisitSymbol(*Symbol)
	VisitUnaryOp(*UnaryOp)
	VisitBinaryOp(*BinaryOp)
	VisitCall(*Call)
	VisitArgument(*Argument)
	VisitAssign(*Assign)
	VisitIf(*If)
	VisitWhile(*While)
	VisitReturn(*Return)
	VisitBreak(*Break)
	VisitContinue(*Continue)
	VisitBlock(*Block)
	VisitLocalGroup(*LocalGroup)
	VisitLocal(*Local)
	VisitFunction(*Function)
	VisitGlobal(*Global)
	VisitFunctionType(*FunctionType)
	VisitUse(*Use)
	VisitBinding(*Binding)
	VisitPointerType(*PointerType)
	VisitBasicType(*BasicType)
}
