/*
File    : loxmix/cmd/loxmix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Command loxmix is the interpreter's entry point: it delegates entirely
to the cli package's cobra command tree.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/loxmix/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitUsageError)
	}
}
