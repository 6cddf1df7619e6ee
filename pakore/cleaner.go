package pakore

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// A Cleaner removes the artefact of a target and, recursively, the artefacts
// of its dependencies. Each target is visited at most once per cleaner, no
// matter how often it is shared between dependents. Really forces removal of
// no-clean artefacts; precious targets are always kept. With DryRun the
// cleaner only reports what it would remove.
type Cleaner struct {
	Env    *Env
	Really bool
	DryRun bool

	visited *bitset.BitSet
}

// Target cleans t and all of its transitive dependencies.
func (cl *Cleaner) Target(t *Target) error {
	if t.prj == nil {
		return fmt.Errorf("target %q does not belong to a project", t.name)
	}
	if cl.Env == nil {
		cl.Env = DefaultEnv()
	}
	if cl.visited == nil {
		cl.visited = bitset.New(uint(t.prj.Len()))
	}
	return cl.clean(t)
}

func (cl *Cleaner) clean(t *Target) error {
	if cl.visited.Test(t.id) {
		return nil
	}
	cl.visited.Set(t.id)
	if cl.DryRun {
		if t.removable(cl.Really) {
			cl.Env.logger().Info("would clean `target`", `target`, t.name)
		}
	} else if err := t.Clean(cl.Env, cl.Really); err != nil {
		return err
	}
	for _, name := range t.deps {
		dep, err := t.prj.Get(name)
		if err != nil {
			return err
		}
		if err := cl.clean(dep); err != nil {
			return err
		}
	}
	return nil
}
