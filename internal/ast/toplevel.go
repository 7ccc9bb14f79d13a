package ast

// Use is a `use "file"` import.
type Use struct {
	base
	Filename string
}

func (*Use) Kind() Kind         { return KindUse }
func (u *Use) Accept(v Visitor) { v.VisitUse(u) }
func (*Use) statementNode()     {}

// Binding is `<name> :: <expr>`. If Node is a Function or Global with no
// explicit export name, Name becomes its exported name (spec §4.7).
type Binding struct {
	base
	Name string
	Node Node
}

func (*Binding) Kind() Kind         { return KindBinding }
func (b *Binding) Accept(v Visitor) { v.VisitBinding(b) }
func (*Binding) statementNode()     {}
