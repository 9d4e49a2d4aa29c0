package compiler

// Expr is a validator expression: the structural description of a runtime
// type check, interpreted by ts-interface-checker. The set of variants is
// closed; every variant is an immutable value.
type Expr interface {
	expr()
}

// Ref names a declared type or one of the built-in primitives ("string",
// "number", "any"...).
type Ref struct {
	Name string
}

// Opt marks a property as optional.
type Opt struct {
	Inner Expr
}

// Param is one parameter of a Func.
type Param struct {
	Name     string
	Type     Expr
	Optional bool
}

// Func is a callable with a result type and ordered parameters.
type Func struct {
	Result Expr
	Params []Param
}

// Member is one named entry of an Iface.
type Member struct {
	Name string
	Type Expr
}

// Iface is an object shape with base types and members in declaration
// order.
type Iface struct {
	Extends []Expr
	Members []Member
}

// Array is a homogeneous array.
type Array struct {
	Elem Expr
}

// Tuple is a fixed sequence of element types.
type Tuple struct {
	Elems []Expr
}

// Union is a choice between alternatives, kept in source order.
type Union struct {
	Members []Expr
}

// Literal is a string, numeric or boolean literal type kept exactly as
// written.
type Literal struct {
	Raw string
}

func (Ref) expr()     {}
func (Opt) expr()     {}
func (Param) expr()   {}
func (Func) expr()    {}
func (Iface) expr()   {}
func (Array) expr()   {}
func (Tuple) expr()   {}
func (Union) expr()   {}
func (Literal) expr() {}

// refAny is the type of an untyped parameter, property or return.
var refAny = Ref{Name: "any"}
