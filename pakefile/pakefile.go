// Package pakefile loads declarative YAML build files into pake projects,
// giving the incremental build engine a surface that does not require writing
// Go. A Pakefile declares variables, explicit targets and implicit-target
// rules:
//
//	vars:
//	  CC: cc
//	targets:
//	  - name: all
//	    virtual: true
//	    deps: [app]
//	  - name: app
//	    deps: [app.o]
//	    run:
//	      - [$CC, -o, app, app.o]
//	rules:
//	  - pattern: '\.o$'
//	    deps: ['${1}.c']
//	    run:
//	      - [$CC, -c, -o, '${0}', '${1}.c']
//
// Command arguments and rule dependencies expand ${N} to the Nth submatch of
// the rule pattern when the target is synthesized, and $NAME from the
// variable table when the action runs.
package pakefile

import (
	"fmt"
	"os"

	"github.com/twpayne/pake/pakore"
)

// File is the top-level Pakefile document.
type File struct {
	Vars    map[string]string `yaml:"vars"`
	Targets []TargetDef       `yaml:"targets"`
	Rules   []RuleDef         `yaml:"rules"`
}

// TargetDef declares one explicit target. At most one artefact-producing
// step kind is usually set; when several are given they run in the order
// run, output, touch.
type TargetDef struct {
	Name     string     `yaml:"name"`
	Deps     []string   `yaml:"deps"`
	Desc     string     `yaml:"desc"`
	Run      [][]string `yaml:"run"`
	Output   []string   `yaml:"output"`
	Touch    bool       `yaml:"touch"`
	Virtual  bool       `yaml:"virtual"`
	Phony    bool       `yaml:"phony"`
	Precious bool       `yaml:"precious"`
	NoClean  bool       `yaml:"no-clean"`
	NoMkDirs bool       `yaml:"no-mkdirs"`
}

// RuleDef declares one implicit-target rule.
type RuleDef struct {
	Pattern  string     `yaml:"pattern"`
	Deps     []string   `yaml:"deps"`
	Desc     string     `yaml:"desc"`
	Run      [][]string `yaml:"run"`
	Output   []string   `yaml:"output"`
	Touch    bool       `yaml:"touch"`
	Precious bool       `yaml:"precious"`
	NoClean  bool       `yaml:"no-clean"`
	NoMkDirs bool       `yaml:"no-mkdirs"`
}

// Load reads and parses a Pakefile. Unknown document fields are an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a Pakefile document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := unmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse pakefile: %w", err)
	}
	return &f, nil
}

// Project builds a project from the declarations in f. Artefact paths are
// resolved relative to dir.
func (f *File) Project(dir string) (*pakore.Project, error) {
	prj := pakore.NewProject(dir)
	for i, td := range f.Targets {
		if td.Name == "" {
			return nil, fmt.Errorf("target %d has no name", i)
		}
		t, err := td.target()
		if err != nil {
			return nil, err
		}
		if err := prj.Add(t); err != nil {
			return nil, err
		}
	}
	for i, rd := range f.Rules {
		if rd.Pattern == "" {
			return nil, fmt.Errorf("rule %d has no pattern", i)
		}
		if err := prj.Rule(rd.Pattern, rd.maker()); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return prj, nil
}

func (d TargetDef) target() (*pakore.Target, error) {
	act := action(d.Desc, d.Run, d.Output, d.Touch)
	if d.Virtual {
		if act != nil {
			return nil, fmt.Errorf("virtual target %s declares an action", d.Name)
		}
		t := pakore.NewTarget(d.Name, nil, d.Deps)
		t.Phony = true
		t.NoClean = true
		t.Precious = d.Precious
		return t, nil
	}
	t := pakore.NewTarget(d.Name, act, d.Deps)
	t.Phony = d.Phony
	t.Precious = d.Precious
	t.NoClean = d.NoClean
	t.NoMkDirs = d.NoMkDirs
	return t, nil
}

func (d RuleDef) maker() pakore.TargetMaker {
	return func(name string, match []string) *pakore.Target {
		deps := make([]string, len(d.Deps))
		for i, dep := range d.Deps {
			deps[i] = expandMatch(dep, match)
		}
		runs := make([][]string, len(d.Run))
		for i, argv := range d.Run {
			runs[i] = expandMatchArgv(argv, match)
		}
		t := pakore.NewTarget(name,
			action(expandMatch(d.Desc, match), runs, expandMatchArgv(d.Output, match), d.Touch),
			deps,
		)
		t.Precious = d.Precious
		t.NoClean = d.NoClean
		t.NoMkDirs = d.NoMkDirs
		return t
	}
}
