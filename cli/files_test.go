/*
File    : loxmix/cli/files_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAgainstGlob_MultipleFilesWorstExitWins(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(wd)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_ok.lox"), []byte(`print "fine";`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_bad.lox"), []byte(`print 1 + "x";`), 0o644))
	require.NoError(t, os.Chdir(dir))

	exit := runAgainstGlob("*.lox", Run)
	assert.Equal(t, ExitRuntimeError, exit)
}

func TestRunAgainstGlob_AllFilesCleanIsSuccess(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(wd)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lox"), []byte(`print "fine";`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.lox"), []byte(`print "also fine";`), 0o644))
	require.NoError(t, os.Chdir(dir))

	exit := runAgainstGlob("*.lox", Run)
	assert.Equal(t, ExitSuccess, exit)
}

func TestRunAgainstGlob_NoMatchIsUsageError(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(wd)
	require.NoError(t, os.Chdir(dir))

	exit := runAgainstGlob("*.lox", Run)
	assert.Equal(t, ExitUsageError, exit)
}
