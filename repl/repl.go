/*
File    : loxmix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive Read-Eval-Print Loop. It runs
the same scan -> parse -> evaluate pipeline as file execution, one
line at a time, printing expression results in yellow and errors in
red without ever exiting the process on a bad line.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/loxmix/eval"
	"github.com/akashmaji946/loxmix/lexer"
	"github.com/akashmaji946/loxmix/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session: banner text plus the prompt readline shows.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl with loxmix's own banner and prompt.
func New() *Repl {
	return &Repl{
		Banner:  banner,
		Version: "v1.0.0",
		Author:  "akashmaji(@iisc.ac.in)",
		Line:    strings.Repeat("-", 66),
		License: "MIT",
		Prompt:  "loxmix >>> ",
	}
}

const banner = `
  _                 __  __ _  __
 | |   _____ __  __|  \/  (_)/ /
 | |__/ _ \ \ \/ /| |\/| | / /
 |____\___/_/\_\ |_|  |_|_/_/
`

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to loxmix!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression or a print statement and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type 'quit' or '.exit' to leave.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until the user exits or stdin closes.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := &eval.Evaluator{Writer: writer}

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" || line == "quit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, evaluator)
	}
}

// evalLine runs one line through the pipeline. Any scan, parse, or
// runtime error is reported and the loop continues — unlike file or run
// mode, a bad line never ends the session.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	tokens, scanErrs := lexer.ScanAll(line)
	if len(scanErrs) > 0 {
		for _, scanErr := range scanErrs {
			redColor.Fprintf(writer, "%s\n", scanErr.Error())
		}
		return
	}

	tree, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		redColor.Fprintf(writer, "%s\n", parseErr.Error())
		return
	}

	if tree.Kind == parser.ProgramTree {
		if runErr := evaluator.Run(tree); runErr != nil {
			redColor.Fprintf(writer, "%s\n", runErr.Error())
		}
		return
	}

	val, evalErr := evaluator.Evaluate(tree.Expr)
	if evalErr != nil {
		redColor.Fprintf(writer, "%s\n", evalErr.Error())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", val.Display())
}
