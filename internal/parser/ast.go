// Package parser turns a canonical expression string into an abstract syntax
// tree. The grammar is the usual precedence ladder: addition and subtraction
// bind loosest, then multiplication and division, then unary minus, then the
// right-associative power operator, then primaries (numbers, parenthesized
// subexpressions and function calls).
package parser

// Node is an expression tree node
type Node interface {
	node()
}

// Number is a numeric literal
type Number struct {
	Value float64
}

// Unary is a prefix operator applied to an operand
type Unary struct {
	Op      rune
	Operand Node
}

// Binary is an infix operator with two operands
type Binary struct {
	Op    rune
	Left  Node
	Right Node
}

// Call is a function applied to a single argument
type Call struct {
	Name string
	Arg  Node
}

func (*Number) node() {}
func (*Unary) node()  {}
func (*Binary) node() {}
func (*Call) node()   {}
