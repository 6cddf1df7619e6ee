package pake

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/twpayne/pake/pakore"
)

// IFind walks each of the given directories and returns the paths of all
// entries below them that are not directories, in lexical walk order. Build
// scripts use it to turn source trees into dependency lists.
func IFind(paths ...string) ([]string, error) {
	var files []string
	for _, path := range paths {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// Output runs the flattened command and returns its captured standard output,
// e.g. to seed variables from tool output while declaring targets. Unlike
// [pakore.Target.Output] it is not tied to a target and does not write files.
func Output(ctx context.Context, env *Env, args ...any) (string, error) {
	if env == nil {
		env = DefaultEnv()
	}
	argv := pakore.Flatten(args...)
	if len(argv) == 0 {
		return "", errors.New("empty command")
	}
	env.Log.Debug("output of `cmd`", `cmd`, strings.Join(argv, " "))
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if env.Vars != nil {
		cmd.Env = env.Vars.CmdEnv()
	}
	cmd.Stderr = env.Err
	out, err := cmd.Output()
	return string(out), err
}
