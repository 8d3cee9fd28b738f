/*
File    : loxmix/cli/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/loxmix/repl"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
)

var cyanColor = color.New(color.FgCyan)

// pipelineFunc is the shape shared by Tokenize/Parse/Evaluate/Run.
type pipelineFunc func(stdout, stderr io.Writer, source string) int

// NewRootCommand builds the loxmix command tree: four pipeline
// subcommands plus a bare invocation that starts the REPL.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "loxmix",
		Short:   "A tree-walking interpreter for a small Lox-family scripting language",
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			repl.New().Start(os.Stdout)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("loxmix %s | License: %s | Author: %s\n", version, license, author))

	root.AddCommand(
		newPipelineCommand("tokenize", "Print the token stream produced from the file", Tokenize),
		newPipelineCommand("parse", "Print the expression tree", Parse),
		newPipelineCommand("evaluate", "Evaluate a single expression and print its value", Evaluate),
		newPipelineCommand("run", "Execute the statement program", Run),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, license, and author information",
		Run: func(cmd *cobra.Command, args []string) {
			cyanColor.Println("loxmix - a tree-walking interpreter for a small Lox-family language")
			cyanColor.Printf("Version: %s\n", version)
			cyanColor.Printf("License: %s\n", license)
			cyanColor.Printf("Author : %s\n", author)
		},
	}
}

func newPipelineCommand(use, short string, fn pipelineFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			os.Exit(runAgainstGlob(args[0], fn))
			return nil
		},
	}
}

// runAgainstGlob expands pattern and runs fn against every matched file
// in sorted order, aggregating the worst exit code across all of them.
func runAgainstGlob(pattern string, fn pipelineFunc) int {
	files, err := resolveFiles(pattern)
	if err != nil {
		cyanColor.Fprintf(os.Stderr, "loxmix: %v\n", err)
		return ExitUsageError
	}
	if len(files) == 0 {
		cyanColor.Fprintf(os.Stderr, "loxmix: no file matches %q\n", pattern)
		return ExitUsageError
	}

	exit := ExitSuccess
	for _, path := range files {
		source, readErr := os.ReadFile(path)
		if readErr != nil {
			cyanColor.Fprintf(os.Stderr, "loxmix: %v\n", readErr)
			exit = worstExit(exit, ExitUsageError)
			continue
		}
		exit = worstExit(exit, fn(os.Stdout, os.Stderr, string(source)))
	}
	return exit
}
