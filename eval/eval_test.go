package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zond/blockbind/scope"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newCommand()
	cmd.SetOutput(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInput(t *testing.T) {
	out, err := execute(t, "-i", "let count = 0; count = count + 1; log(count);")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestInputDeadZone(t *testing.T) {
	_, err := execute(t, "-i", "log(x); const x = 1;")
	assert.IsType(t, scope.UninitializedAccessError{}, errors.Cause(err))
}

func TestFileAndGlobals(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "prog.js")
	require.NoError(t, os.WriteFile(src, []byte("log(PI); PI = 3;"), 0644))
	globals := filepath.Join(dir, "globals.yaml")
	require.NoError(t, os.WriteFile(globals, []byte("const:\n  PI: 3.14\n"), 0644))

	out, err := execute(t, "-f", src, "-g", globals)
	assert.IsType(t, scope.ImmutableAssignmentError{}, errors.Cause(err))
	assert.Contains(t, out, "3.14\n")
}

func TestMissingFile(t *testing.T) {
	_, err := execute(t, "-f", filepath.Join(t.TempDir(), "does-not-exist.js"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
