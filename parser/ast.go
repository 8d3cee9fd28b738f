/*
File    : loxmix/parser/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/loxmix/value"

// Node is the base of every tree element: it always knows the line of
// the left-most token that contributed to it.
type Node interface {
	Line() int
}

// Expr is any node that produces a Value when evaluated. Accept drives
// the Visitor double-dispatch used by the pretty-printer.
type Expr interface {
	Node
	Accept(v Visitor) string
}

// Stmt is any node the Evaluator's Run executes for effect rather than value.
type Stmt interface {
	Node
	stmtNode()
}

// Visitor is implemented by anything that walks the Expr tree one node
// at a time (here, just the pretty-printer); an Evaluator instead
// type-switches directly, since it needs to unwind errors mid-walk.
type Visitor interface {
	VisitLiteral(node *Literal) string
	VisitGroup(node *Group) string
	VisitUnary(node *Unary) string
	VisitArithmetic(node *Arithmetic) string
	VisitComparison(node *Comparison) string
}

// Literal wraps a Primitive value: Boolean, Nil, Number, or String.
type Literal struct {
	LineNo int
	Value  value.Value
}

func (n *Literal) Line() int                { return n.LineNo }
func (n *Literal) Accept(v Visitor) string  { return v.VisitLiteral(n) }

// Group remembers an explicit parenthesization purely for pretty-printing:
// evaluating it is identical to evaluating Inner.
type Group struct {
	LineNo int
	Inner  Expr
}

func (n *Group) Line() int               { return n.LineNo }
func (n *Group) Accept(v Visitor) string { return v.VisitGroup(n) }

// UnaryOp is the operator of a prefix Unary node.
type UnaryOp int

const (
	Not UnaryOp = iota
	Negate
)

func (op UnaryOp) Symbol() string {
	if op == Not {
		return "!"
	}
	return "-"
}

// Unary is a prefix logical operation: `!expr` or `-expr`.
type Unary struct {
	LineNo int
	Op     UnaryOp
	Right  Expr
}

func (n *Unary) Line() int               { return n.LineNo }
func (n *Unary) Accept(v Visitor) string { return v.VisitUnary(n) }

// ArithmeticOp is the operator of an Arithmetic node.
type ArithmeticOp int

const (
	Add ArithmeticOp = iota
	Sub
	Mul
	Div
)

func (op ArithmeticOp) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	default:
		return "/"
	}
}

// Arithmetic is a binary `+ - * /` expression.
type Arithmetic struct {
	LineNo      int
	Op          ArithmeticOp
	Left, Right Expr
}

func (n *Arithmetic) Line() int               { return n.LineNo }
func (n *Arithmetic) Accept(v Visitor) string { return v.VisitArithmetic(n) }

// ComparisonOp is the operator of a Comparison node.
type ComparisonOp int

const (
	Eq ComparisonOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op ComparisonOp) Symbol() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	default:
		return ">="
	}
}

// Comparison is a binary `== != < <= > >=` expression.
type Comparison struct {
	LineNo      int
	Op          ComparisonOp
	Left, Right Expr
}

func (n *Comparison) Line() int               { return n.LineNo }
func (n *Comparison) Accept(v Visitor) string { return v.VisitComparison(n) }

// Print is the only statement form defined: `print expr;`.
type Print struct {
	LineNo int
	Expr   Expr
}

func (n *Print) Line() int { return n.LineNo }
func (n *Print) stmtNode() {}

// TreeKind distinguishes the two shapes Parse can hand back: a bare
// expression, or a program made of one-or-more statements.
type TreeKind int

const (
	ExpressionTree TreeKind = iota
	ProgramTree
)

// Tree is the parser's single output type. Exactly one of Expr/Statements
// is populated, selected by Kind.
type Tree struct {
	Kind       TreeKind
	Expr       Expr
	Statements []Stmt
}
