package pake

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"

	"github.com/twpayne/pake/pakore"
)

func TestRun_variableAssignment(t *testing.T) {
	prj := NewProject(t.TempDir())
	testerr.Shall(Edit(prj, func(p ProjectEd) { p.Virtual("all") })).BeNil(t)

	env := testEnv()
	env.Vars = pakore.NewVars()
	env.Vars.Set("FOO", "bar")
	testerr.Shall(Run(prj, env, Options{}, []string{"FOO=baz", "NEW=1", "all"})).BeNil(t)
	if v, _ := env.Vars.Get("FOO"); v != "bar" {
		t.Errorf("FOO = %q, the first write must win", v)
	}
	if v, ok := env.Vars.Get("NEW"); !ok || v != "1" {
		t.Errorf("NEW = %q, %t, unknown keys must still be accepted", v, ok)
	}
}

func TestRun_defaultTarget(t *testing.T) {
	prj := NewProject(t.TempDir())
	ran := 0
	testerr.Shall(Edit(prj, func(p ProjectEd) {
		p.Target("first", ActionFunc(func(context.Context, *Target, *Env) error {
			ran++
			return nil
		})).Phony()
		p.Virtual("other")
	})).BeNil(t)

	testerr.Shall(Run(prj, testEnv(), Options{}, nil)).BeNil(t)
	if ran != 1 {
		t.Errorf("default target built %d times", ran)
	}
}

func TestRun_noDefaultTarget(t *testing.T) {
	prj := NewProject(t.TempDir())
	if err := Run(prj, testEnv(), Options{}, nil); err == nil {
		t.Error("run without targets and default succeeded")
	}
}

func TestRun_clean(t *testing.T) {
	dir := t.TempDir()
	prj := NewProject(dir)
	testerr.Shall(os.WriteFile(filepath.Join(dir, "out"), []byte("x"), 0o666)).BeNil(t)
	testerr.Shall(Edit(prj, func(p ProjectEd) { p.Target("out", nil) })).BeNil(t)

	testerr.Shall(Run(prj, testEnv(), Options{Clean: true}, []string{"out"})).BeNil(t)
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Error("clean mode kept the artefact")
	}
}

func TestCommand_dryRun(t *testing.T) {
	prj := NewProject(t.TempDir())
	ran := 0
	testerr.Shall(Edit(prj, func(p ProjectEd) {
		p.Target("out", ActionFunc(func(context.Context, *Target, *Env) error {
			ran++
			return nil
		})).Phony()
	})).BeNil(t)

	cmd := Command(prj)
	cmd.SetArgs([]string{"--dry-run", "out"})
	testerr.Shall(cmd.Execute()).BeNil(t)
	if ran != 0 {
		t.Errorf("dry run invoked the action %d times", ran)
	}
}

func TestExecute_buildErrorStatus(t *testing.T) {
	prj := NewProject(t.TempDir())
	testerr.Shall(Edit(prj, func(p ProjectEd) {
		p.Target("broken", ActionFunc(func(_ context.Context, tg *Target, _ *Env) error {
			return tg.Errorf("no way to build this")
		})).Phony()
	})).BeNil(t)

	cmd := Command(prj)
	cmd.SetArgs([]string{"broken"})
	if got := execute(cmd); got != 1 {
		t.Errorf("build error exits with status %d, want 1", got)
	}
}
