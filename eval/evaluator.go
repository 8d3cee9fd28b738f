/*
File    : loxmix/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks a parser.Tree and produces either a single
// value.Value (for an ExpressionTree) or a sequence of side effects (for
// a ProgramTree of Print statements). It is the last stage of the
// tokenize -> parse -> evaluate pipeline.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/loxmix/parser"
	"github.com/akashmaji946/loxmix/value"
)

// Evaluator holds the output sink Print statements write to. It carries
// no variable bindings or call stack — this language has neither.
type Evaluator struct {
	Writer io.Writer
}

// New builds an Evaluator writing Print output to os.Stdout.
func New() *Evaluator {
	return &Evaluator{Writer: os.Stdout}
}

// Evaluate walks an expression tree to a single Value.
func (e *Evaluator) Evaluate(expr parser.Expr) (value.Value, *Error) {
	switch node := expr.(type) {
	case *parser.Literal:
		return node.Value, nil

	case *parser.Group:
		return e.Evaluate(node.Inner)

	case *parser.Unary:
		return e.evalUnary(node)

	case *parser.Arithmetic:
		return e.evalArithmetic(node)

	case *parser.Comparison:
		return e.evalComparison(node)

	default:
		panic(fmt.Sprintf("eval: unhandled expression node %T", expr))
	}
}

func (e *Evaluator) evalUnary(node *parser.Unary) (value.Value, *Error) {
	right, err := e.Evaluate(node.Right)
	if err != nil {
		return nil, err
	}
	switch node.Op {
	case parser.Not:
		return value.Boolean{Value: !value.Truthy(right)}, nil
	default: // Negate
		num, ok := right.(value.Number)
		if !ok {
			return nil, &Error{Kind: OperandMustBeNumber, Line: node.Line()}
		}
		return value.Number{Value: -num.Value}, nil
	}
}

func (e *Evaluator) evalArithmetic(node *parser.Arithmetic) (value.Value, *Error) {
	left, err := e.Evaluate(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(node.Right)
	if err != nil {
		return nil, err
	}

	if node.Op == parser.Add {
		if l, ok := left.(value.Number); ok {
			if r, ok := right.(value.Number); ok {
				return value.Number{Value: l.Value + r.Value}, nil
			}
		}
		if l, ok := left.(value.String); ok {
			if r, ok := right.(value.String); ok {
				return value.String{Value: l.Value + r.Value}, nil
			}
		}
		return nil, &Error{Kind: OperandsMustBeNumbersOrStrings, Line: node.Line()}
	}

	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return nil, &Error{Kind: OperandsMustBeNumbers, Line: node.Line()}
	}
	switch node.Op {
	case parser.Sub:
		return value.Number{Value: l.Value - r.Value}, nil
	case parser.Mul:
		return value.Number{Value: l.Value * r.Value}, nil
	default: // Div
		return value.Number{Value: l.Value / r.Value}, nil
	}
}

func (e *Evaluator) evalComparison(node *parser.Comparison) (value.Value, *Error) {
	left, err := e.Evaluate(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(node.Right)
	if err != nil {
		return nil, err
	}

	switch node.Op {
	case parser.Eq:
		return value.Boolean{Value: left.Equal(right)}, nil
	case parser.Ne:
		return value.Boolean{Value: !left.Equal(right)}, nil
	}

	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return nil, &Error{Kind: OperandsMustBeNumbers, Line: node.Line()}
	}
	switch node.Op {
	case parser.Lt:
		return value.Boolean{Value: l.Value < r.Value}, nil
	case parser.Le:
		return value.Boolean{Value: l.Value <= r.Value}, nil
	case parser.Gt:
		return value.Boolean{Value: l.Value > r.Value}, nil
	default: // Ge
		return value.Boolean{Value: l.Value >= r.Value}, nil
	}
}

// Run executes a Tree for effect: an ExpressionTree is evaluated and
// discarded, a ProgramTree runs each statement in order. Execution
// aborts at the first runtime error.
func (e *Evaluator) Run(tree *parser.Tree) *Error {
	if tree.Kind == parser.ExpressionTree {
		_, err := e.Evaluate(tree.Expr)
		return err
	}
	for _, stmt := range tree.Statements {
		if err := e.runStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) runStatement(stmt parser.Stmt) *Error {
	switch s := stmt.(type) {
	case *parser.Print:
		val, err := e.Evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Writer, val.Display())
		return nil
	default:
		panic(fmt.Sprintf("eval: unhandled statement node %T", stmt))
	}
}
