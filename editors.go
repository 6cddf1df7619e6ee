package pake

import "github.com/twpayne/pake/pakore"

// ProjectEd wraps a [Project] for declaration within [Edit]. All methods
// panic on error; Edit turns the panic back into an error return.
type ProjectEd struct{ prj *Project }

func (ed ProjectEd) Project() *Project { return ed.prj }

// Target declares an explicit target with an optional action and dependency
// names. Dependency arguments may be arbitrarily nested string sequences.
func (ed ProjectEd) Target(name string, action Action, deps ...any) TargetEd {
	t := pakore.NewTarget(name, action, deps...)
	mustEd(ed.prj.Add(t))
	return TargetEd{t}
}

// Virtual declares a phony target without action or artefact, e.g. an "all"
// or "test" style entry point. Clean passes skip it.
func (ed ProjectEd) Virtual(name string, deps ...any) TargetEd {
	t := pakore.NewTarget(name, nil, deps...)
	t.Phony = true
	t.NoClean = true
	mustEd(ed.prj.Add(t))
	return TargetEd{t}
}

// Rule registers an implicit-target rule, see [pakore.Project.Rule].
func (ed ProjectEd) Rule(pattern string, make pakore.TargetMaker) {
	mustEd(ed.prj.Rule(pattern, make))
}

// TargetEd wraps a just-declared [Target] for flag chaining.
type TargetEd struct{ t *Target }

func (ed TargetEd) Target() *Target { return ed.t }

// Precious excludes the target's artefact from every clean pass.
func (ed TargetEd) Precious() TargetEd {
	ed.t.Precious = true
	return ed
}

// NoClean excludes the target's artefact from plain clean passes.
func (ed TargetEd) NoClean() TargetEd {
	ed.t.NoClean = true
	return ed
}

// NoMkDirs keeps the engine from creating the artefact's parent directory.
func (ed TargetEd) NoMkDirs() TargetEd {
	ed.t.NoMkDirs = true
	return ed
}

// Phony marks the target as having no filesystem artefact.
func (ed TargetEd) Phony() TargetEd {
	ed.t.Phony = true
	return ed
}
