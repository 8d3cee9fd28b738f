/*
File    : loxmix/cli/pipeline_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_EmptyInput(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Tokenize(&out, &errOut, "")
	assert.Equal(t, ExitSuccess, exit)
	assert.Equal(t, "EOF  null\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestTokenize_UnknownCharactersStillExitsStatic(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Tokenize(&out, &errOut, ",.$(#")
	assert.Equal(t, ExitStaticError, exit)
	assert.Equal(t, "COMMA , null\nDOT . null\nLEFT_PAREN ( null\nEOF  null\n", out.String())
	assert.Equal(t,
		"[line 1] Error: Unexpected character: $\n[line 1] Error: Unexpected character: #\n",
		errOut.String())
}

func TestParse_PrintsLispForm(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Parse(&out, &errOut, "83 < 99 < 115")
	assert.Equal(t, ExitSuccess, exit)
	assert.Equal(t, "(< (< 83.0 99.0) 115.0)\n", out.String())
}

func TestEvaluate_StringConcatenation(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Evaluate(&out, &errOut, `"foo" + "bar"`)
	assert.Equal(t, ExitSuccess, exit)
	assert.Equal(t, "foobar\n", out.String())
}

func TestEvaluate_RuntimeErrorExitsSeventy(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Evaluate(&out, &errOut, `17 + "bar"`)
	assert.Equal(t, ExitRuntimeError, exit)
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 1]\n", errOut.String())
}

func TestEvaluate_NoTrailingZeroForWholeNumbers(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Evaluate(&out, &errOut, "70 - 65")
	assert.Equal(t, ExitSuccess, exit)
	assert.Equal(t, "5\n", out.String())
}

func TestRun_PrintStatement(t *testing.T) {
	var out, errOut bytes.Buffer
	exit := Run(&out, &errOut, `print "Hello, World!";`)
	assert.Equal(t, ExitSuccess, exit)
	assert.Equal(t, "Hello, World!\n", out.String())
}

func TestWorstExit_RuntimeBeatsStaticBeatsSuccess(t *testing.T) {
	assert.Equal(t, ExitRuntimeError, worstExit(ExitSuccess, ExitRuntimeError))
	assert.Equal(t, ExitRuntimeError, worstExit(ExitStaticError, ExitRuntimeError))
	assert.Equal(t, ExitStaticError, worstExit(ExitSuccess, ExitStaticError))
	assert.Equal(t, ExitSuccess, worstExit(ExitSuccess, ExitSuccess))
}
