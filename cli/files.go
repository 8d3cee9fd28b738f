/*
File    : loxmix/cli/files.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// resolveFiles expands pattern against the current working directory. A
// plain filename is a glob that matches exactly itself, so ordinary
// single-file invocations are unaffected. Results are sorted by path so
// multi-file runs are deterministic.
func resolveFiles(pattern string) ([]string, error) {
	fsys := os.DirFS(".")
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly(), doublestar.WithNoFollow())
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
