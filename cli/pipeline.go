/*
File    : loxmix/cli/pipeline.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package cli wires the scan -> parse -> evaluate pipeline into the
tokenize/parse/evaluate/run subcommands, expanding each file argument
as a glob and applying the exit-code taxonomy per matched file.
*/
package cli

import (
	"fmt"
	"io"

	"github.com/akashmaji946/loxmix/eval"
	"github.com/akashmaji946/loxmix/lexer"
	"github.com/akashmaji946/loxmix/parser"
)

// Exit codes assigned by this dispatcher.
const (
	ExitSuccess      = 0
	ExitStaticError  = 65 // any scanner or parser error
	ExitRuntimeError = 70 // any runtime error
	ExitUsageError   = 1  // CLI/IO error outside the core pipeline
)

// worstExit keeps whichever of a, b ranks higher in 70 > 65 > (anything else) > 0.
func worstExit(a, b int) int {
	rank := func(code int) int {
		switch code {
		case ExitRuntimeError:
			return 3
		case ExitStaticError:
			return 2
		case ExitSuccess:
			return 0
		default:
			return 1
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}

// Tokenize runs the scanner over source and writes one PrintLine per
// token to stdout, interleaving scanner errors to stderr in encounter
// order. It returns ExitStaticError if any scanner error occurred.
func Tokenize(stdout, stderr io.Writer, source string) int {
	scanner := lexer.New(source)
	exit := ExitSuccess
	for {
		tok, scanErr, ok := scanner.Next()
		if !ok {
			break
		}
		if scanErr != nil {
			fmt.Fprintln(stderr, scanErr.Error())
			exit = ExitStaticError
			continue
		}
		fmt.Fprintln(stdout, tok.PrintLine())
		if tok.Kind == lexer.Eof {
			break
		}
	}
	return exit
}

// scanAndParse is the shared first two stages for parse/evaluate/run: it
// reports scanner errors (if any) and the first parser error (if any)
// to stderr and returns a non-nil tree only on full success.
func scanAndParse(stderr io.Writer, source string) (*parser.Tree, int) {
	tokens, scanErrs := lexer.ScanAll(source)
	if len(scanErrs) > 0 {
		for _, scanErr := range scanErrs {
			fmt.Fprintln(stderr, scanErr.Error())
		}
		return nil, ExitStaticError
	}

	tree, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		fmt.Fprintln(stderr, parseErr.Error())
		return nil, ExitStaticError
	}
	return tree, ExitSuccess
}

// Parse prints the tree's Lisp-style form to stdout.
func Parse(stdout, stderr io.Writer, source string) int {
	tree, exit := scanAndParse(stderr, source)
	if tree == nil {
		return exit
	}
	fmt.Fprintln(stdout, parser.NewPrinter().Print(tree))
	return ExitSuccess
}

// Evaluate parses source as a single expression and prints its Display form.
func Evaluate(stdout, stderr io.Writer, source string) int {
	tree, exit := scanAndParse(stderr, source)
	if tree == nil {
		return exit
	}
	if tree.Kind != parser.ExpressionTree {
		fmt.Fprintln(stderr, "evaluate: source is a statement program, not a single expression")
		return ExitUsageError
	}

	val, runErr := eval.New().Evaluate(tree.Expr)
	if runErr != nil {
		fmt.Fprintln(stderr, runErr.Error())
		return ExitRuntimeError
	}
	fmt.Fprintln(stdout, val.Display())
	return ExitSuccess
}

// Run executes source as a statement program (or bare expression),
// writing any Print output to stdout.
func Run(stdout, stderr io.Writer, source string) int {
	tree, exit := scanAndParse(stderr, source)
	if tree == nil {
		return exit
	}

	evaluator := &eval.Evaluator{Writer: stdout}
	if runErr := evaluator.Run(tree); runErr != nil {
		fmt.Fprintln(stderr, runErr.Error())
		return ExitRuntimeError
	}
	return ExitSuccess
}
