/*
File    : loxmix/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime Value model the Evaluator produces:
// a closed sum type over Boolean, Nil, Number, and String, with
// structural equality and a display form distinct from the token/tree
// print format. The parser stores Values in literal nodes; evaluation
// results are never written back into the tree.
package value

import (
	"fmt"

	"github.com/akashmaji946/loxmix/numfmt"
)

// Type identifies a Value's variant.
type Type string

const (
	BooleanType Type = "bool"
	NilType     Type = "nil"
	NumberType  Type = "number"
	StringType  Type = "string"
)

// Value is the interface every runtime value implements. It is a closed
// set — Boolean, Nil, Number, String below are the only variants — so
// callers switch on Type or do a Go type switch freely.
type Value interface {
	// Type reports which variant this is.
	Type() Type
	// Display renders the value the way the `print` statement and the
	// `evaluate` command do: no quotes on strings, no trailing ".0" on
	// whole numbers.
	Display() string
	// Equal implements structural, cross-variant equality for `==`/`!=`:
	// mismatched variants are always unequal.
	Equal(other Value) bool
}

// Boolean wraps a bool.
type Boolean struct{ Value bool }

func (b Boolean) Type() Type      { return BooleanType }
func (b Boolean) Display() string { return fmt.Sprintf("%t", b.Value) }
func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && o.Value == b.Value
}

// Nil is the language's single null value.
type Nil struct{}

func (Nil) Type() Type      { return NilType }
func (Nil) Display() string { return "nil" }
func (Nil) Equal(other Value) bool {
	_, ok := other.(Nil)
	return ok
}

// Number wraps a float64; there is no separate integer type.
type Number struct{ Value float64 }

func (n Number) Type() Type      { return NumberType }
func (n Number) Display() string { return numfmt.Plain(n.Value) }
func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && o.Value == n.Value
}

// String wraps a Go string.
type String struct{ Value string }

func (s String) Type() Type      { return StringType }
func (s String) Display() string { return s.Value }
func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o.Value == s.Value
}

// Truthy implements the language's truthiness rule: Nil and
// Boolean(false) are falsy, everything else — including Number(0) and
// the empty string — is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Boolean:
		return val.Value
	default:
		return true
	}
}
