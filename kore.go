package pake

import (
	"context"
	"errors"
	"fmt"

	"github.com/twpayne/pake/pakore"
)

type (
	Env     = pakore.Env
	Project = pakore.Project
	Target  = pakore.Target
	Vars    = pakore.Vars

	Action     = pakore.Action
	ActionFunc = pakore.ActionFunc
)

func DefaultEnv() *Env { return pakore.DefaultEnv() }

func NewProject(dir string) *Project { return pakore.NewProject(dir) }

func NewTarget(name string, action Action, deps ...any) *Target {
	return pakore.NewTarget(name, action, deps...)
}

// Act returns an Action that runs f and describes itself with desc.
func Act(desc string, f func(ctx context.Context, t *Target, env *Env) error) Action {
	return pakore.Act(desc, f)
}

// Edit calls do with wrappers of [pakore] types that allow easy editing of
// project declarations. Edit recovers from any panic and returns it as an
// error, so the idiomatic error handling within do can be skipped.
func Edit(prj *Project, do func(ProjectEd)) (err error) {
	defer func() {
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			case string:
				err = errors.New(p)
			default:
				err = fmt.Errorf("panic: %+v", p)
			}
		}
	}()
	do(ProjectEd{prj})
	return
}

// Must panics on err. It keeps the declaration part of build scripts free of
// error plumbing.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking on err.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

func mustEd(err error) {
	if err != nil {
		panic(err)
	}
}
