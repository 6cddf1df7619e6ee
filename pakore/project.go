package pakore

import (
	"os"
	"path/filepath"
	"regexp"
)

// TargetMaker synthesizes a target for a name that matched a rule pattern.
// match holds the pattern's submatches for the name as returned by
// [regexp.Regexp.FindStringSubmatch].
type TargetMaker func(name string, match []string) *Target

type rule struct {
	pattern *regexp.Regexp
	make    TargetMaker
}

// A Project is the registry of one build: it owns the target collection and
// the implicit-target rules and resolves names to targets. Artefact paths of
// non-phony targets are resolved relative to Dir.
//
// A Project is not safe for concurrent use; builds run strictly sequentially.
type Project struct {
	Dir string

	targets map[string]*Target
	rules   []rule
	deflt   *Target
}

// NewProject creates an empty project. An empty dir means the current working
// directory.
func NewProject(dir string) *Project {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return &Project{Dir: dir, targets: make(map[string]*Target)}
}

// Add registers an explicitly declared target. The first target added becomes
// the project's default target.
func (prj *Project) Add(t *Target) error {
	if _, ok := prj.targets[t.name]; ok {
		return &DuplicateTargetError{Name: t.name}
	}
	prj.register(t.name, t)
	if prj.deflt == nil {
		prj.deflt = t
	}
	return nil
}

// Get resolves name to a target. Unknown names are matched against the
// project's rules with a regexp search: exactly one matching rule synthesizes
// the target via its maker, more than one is an [AmbiguousRuleError] and
// registers nothing. With no matching rule a precious placeholder target is
// synthesized, so clean passes never remove arbitrary existing files.
// Synthesized targets are registered, repeated lookups return the identical
// instance.
func (prj *Project) Get(name string) (*Target, error) {
	if t, ok := prj.targets[name]; ok {
		return t, nil
	}
	var t *Target
	for _, r := range prj.rules {
		m := r.pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if t != nil {
			return nil, &AmbiguousRuleError{Name: name}
		}
		t = r.make(name, m)
	}
	if t == nil {
		t = &Target{name: name, Precious: true}
	}
	prj.register(name, t)
	return t, nil
}

// Find returns the registered target for name, without synthesizing one.
func (prj *Project) Find(name string) *Target { return prj.targets[name] }

// Rule registers an implicit-target rule. The pattern matches requested names
// anywhere in the string, not just as a full match. Registration order
// carries no priority: two rules matching the same name make its resolution
// fail, so patterns must be kept mutually exclusive.
func (prj *Project) Rule(pattern string, make TargetMaker) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	prj.rules = append(prj.rules, rule{pattern: re, make: make})
	return nil
}

// Default returns the first explicitly added target, or nil.
func (prj *Project) Default() *Target { return prj.deflt }

// Len returns the number of registered targets, synthesized ones included.
func (prj *Project) Len() int { return len(prj.targets) }

// Path resolves a target name to its artefact path within the project.
func (prj *Project) Path(name string) string {
	if prj.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(prj.Dir, name)
}

func (prj *Project) register(name string, t *Target) {
	if prj.targets == nil {
		prj.targets = make(map[string]*Target)
	}
	t.prj = prj
	t.id = uint(len(prj.targets))
	prj.targets[name] = t
}
