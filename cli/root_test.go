/*
File    : loxmix/cli/root_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand_WiresAllSubcommands(t *testing.T) {
	root := NewRootCommand()
	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"tokenize", "parse", "evaluate", "run", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
