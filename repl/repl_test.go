/*
File    : loxmix/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxmix/eval"
)

func TestEvalLine_ExpressionPrintsDisplayForm(t *testing.T) {
	var out bytes.Buffer
	r := New()
	ev := &eval.Evaluator{Writer: &out}
	r.evalLine(&out, "70 - 65", ev)
	assert.Contains(t, out.String(), "5")
}

func TestEvalLine_PrintStatementProducesItsOwnOutput(t *testing.T) {
	var out bytes.Buffer
	r := New()
	ev := &eval.Evaluator{Writer: &out}
	r.evalLine(&out, `print "hi";`, ev)
	assert.Contains(t, out.String(), "hi")
}

func TestEvalLine_ScanErrorIsReportedNotPanicked(t *testing.T) {
	var out bytes.Buffer
	r := New()
	ev := &eval.Evaluator{Writer: &out}
	assert.NotPanics(t, func() { r.evalLine(&out, "@", ev) })
	assert.Contains(t, out.String(), "Unexpected character: @")
}

func TestEvalLine_RuntimeErrorIsReportedNotPanicked(t *testing.T) {
	var out bytes.Buffer
	r := New()
	ev := &eval.Evaluator{Writer: &out}
	assert.NotPanics(t, func() { r.evalLine(&out, `1 + "x"`, ev) })
	assert.Contains(t, out.String(), "Operands must be two numbers or two strings.")
}
