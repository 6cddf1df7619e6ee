package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPakefile = `
targets:
  - name: all
    virtual: true
    deps: [stamp]
  - name: stamp
    touch: true
`

func writePakefile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "Pakefile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPakefile), 0o666))
	return path
}

func TestCommand_build(t *testing.T) {
	dir := t.TempDir()
	path := writePakefile(t, dir)
	cmd := command()
	cmd.SetArgs([]string{"-f", path, "-C", dir})
	require.NoError(t, cmd.Execute())
	_, err := os.Stat(filepath.Join(dir, "stamp"))
	assert.NoError(t, err)
}

func TestCommand_clean(t *testing.T) {
	dir := t.TempDir()
	path := writePakefile(t, dir)
	stamp := filepath.Join(dir, "stamp")
	require.NoError(t, os.WriteFile(stamp, nil, 0o666))
	cmd := command()
	cmd.SetArgs([]string{"-f", path, "-C", dir, "--clean", "stamp"})
	require.NoError(t, cmd.Execute())
	_, err := os.Stat(stamp)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCommand_missingPakefile(t *testing.T) {
	cmd := command()
	cmd.SetArgs([]string{"-f", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, cmd.Execute())
}
