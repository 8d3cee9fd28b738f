/*
File    : loxmix/parser/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/loxmix/numfmt"
	"github.com/akashmaji946/loxmix/value"
)

// Printer renders a Tree as a Lisp-style form, one line per expression
// or statement: unary nodes as
// "(op expr)", binary nodes as "(op left right)", groups as
// "(group expr)", and Print statements as "(print expr)".
type Printer struct{}

// NewPrinter builds a Printer. It carries no state of its own; the
// receiver exists so printing reads as a Visitor like the rest of the
// package's node-walking code.
func NewPrinter() *Printer { return &Printer{} }

// Print renders an entire Tree. A ProgramTree prints one line per
// statement, newline-joined.
func (p *Printer) Print(tree *Tree) string {
	if tree.Kind == ExpressionTree {
		return tree.Expr.Accept(p)
	}
	lines := make([]string, len(tree.Statements))
	for i, stmt := range tree.Statements {
		lines[i] = p.printStatement(stmt)
	}
	return strings.Join(lines, "\n")
}

func (p *Printer) printStatement(stmt Stmt) string {
	switch s := stmt.(type) {
	case *Print:
		return fmt.Sprintf("(print %s)", s.Expr.Accept(p))
	default:
		return "(unknown-statement)"
	}
}

// VisitLiteral prints a Primitive. Numbers always carry a decimal point
// here (e.g. "5.0"), unlike a Value's own Display.
func (p *Printer) VisitLiteral(node *Literal) string {
	if n, ok := node.Value.(value.Number); ok {
		return numfmt.WithDecimalPoint(n.Value)
	}
	return node.Value.Display()
}

func (p *Printer) VisitGroup(node *Group) string {
	return fmt.Sprintf("(group %s)", node.Inner.Accept(p))
}

func (p *Printer) VisitUnary(node *Unary) string {
	return fmt.Sprintf("(%s %s)", node.Op.Symbol(), node.Right.Accept(p))
}

func (p *Printer) VisitArithmetic(node *Arithmetic) string {
	return fmt.Sprintf("(%s %s %s)", node.Op.Symbol(), node.Left.Accept(p), node.Right.Accept(p))
}

func (p *Printer) VisitComparison(node *Comparison) string {
	return fmt.Sprintf("(%s %s %s)", node.Op.Symbol(), node.Left.Accept(p), node.Right.Accept(p))
}
