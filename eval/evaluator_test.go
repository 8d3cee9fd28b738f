/*
File    : loxmix/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxmix/lexer"
	"github.com/akashmaji946/loxmix/parser"
)

func evalSource(t *testing.T, src string) (string, *Error) {
	t.Helper()
	tokens, scanErrs := lexer.ScanAll(src)
	require.Empty(t, scanErrs, "scanning %q", src)
	tree, parseErr := parser.New(tokens).Parse()
	require.Nil(t, parseErr, "parsing %q", src)

	ev := New()
	val, err := ev.Evaluate(tree.Expr)
	if err != nil {
		return "", err
	}
	return val.Display(), nil
}

func TestEvaluate_Arithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"70 - 65", "5"},
		{"(10.40 * 2) / 2", "10.4"},
		{"2 * 15", "30"},
		{"1 + 2 * 3", "7"},
	}
	for _, tt := range tests {
		got, err := evalSource(t, tt.input)
		require.Nil(t, err, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestEvaluate_StringConcatenation(t *testing.T) {
	got, err := evalSource(t, `"foo" + "bar"`)
	require.Nil(t, err)
	assert.Equal(t, "foobar", got)
}

func TestEvaluate_NumberPlusStringIsARuntimeError(t *testing.T) {
	_, err := evalSource(t, `17 + "bar"`)
	require.NotNil(t, err)
	assert.Equal(t, OperandsMustBeNumbersOrStrings, err.Kind)
	assert.True(t, strings.HasPrefix(err.Error(), "Operands must be two numbers or two strings."))
}

func TestEvaluate_UnaryNegateRequiresNumber(t *testing.T) {
	_, err := evalSource(t, `-"nope"`)
	require.NotNil(t, err)
	assert.Equal(t, OperandMustBeNumber, err.Kind)
}

func TestEvaluate_Comparison(t *testing.T) {
	got, err := evalSource(t, "1 < 2")
	require.Nil(t, err)
	assert.Equal(t, "true", got)
}

func TestEvaluate_EqualityIsCrossVariantSafe(t *testing.T) {
	got, err := evalSource(t, `61 == "61"`)
	require.Nil(t, err)
	assert.Equal(t, "false", got)
}

func TestEvaluate_GroupDoesNotChangeValue(t *testing.T) {
	got, err := evalSource(t, "(5)")
	require.Nil(t, err)
	assert.Equal(t, "5", got)
}

func TestEvaluate_NotOperatesOnTruthiness(t *testing.T) {
	got, err := evalSource(t, "!nil")
	require.Nil(t, err)
	assert.Equal(t, "true", got)
}

func TestRun_PrintStatementWritesDisplayForm(t *testing.T) {
	tokens, scanErrs := lexer.ScanAll(`print "hello world!";`)
	require.Empty(t, scanErrs)
	tree, parseErr := parser.New(tokens).Parse()
	require.Nil(t, parseErr)

	var out bytes.Buffer
	ev := &Evaluator{Writer: &out}
	require.Nil(t, ev.Run(tree))
	assert.Equal(t, "hello world!\n", out.String())
}

func TestRun_ProgramExecutesStatementsInOrder(t *testing.T) {
	tokens, scanErrs := lexer.ScanAll(`print 1; print 2; print 3;`)
	require.Empty(t, scanErrs)
	tree, parseErr := parser.New(tokens).Parse()
	require.Nil(t, parseErr)

	var out bytes.Buffer
	ev := &Evaluator{Writer: &out}
	require.Nil(t, ev.Run(tree))
	assert.Equal(t, "1\n2\n3\n", out.String())
}

func TestRun_AbortsAtFirstRuntimeError(t *testing.T) {
	tokens, scanErrs := lexer.ScanAll(`print 1; print 1 + "x"; print 3;`)
	require.Empty(t, scanErrs)
	tree, parseErr := parser.New(tokens).Parse()
	require.Nil(t, parseErr)

	var out bytes.Buffer
	ev := &Evaluator{Writer: &out}
	err := ev.Run(tree)
	require.NotNil(t, err)
	assert.Equal(t, "1\n", out.String())
}
