package pakore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// tsMissing is the effective timestamp of an absent or phony artefact before
// its action has run. It sorts below 0, the floor for dependency aggregation,
// so such a target is always judged stale once it has a dependency or an
// action.
const tsMissing int64 = -1

// A Target is a node in the build dependency graph. Non-phony targets name a
// filesystem artefact, resolved relative to their project's directory; phony
// targets exist only logically. The flag fields may be set freely between
// construction and registration with [Project.Add].
type Target struct {
	// Phony marks a target without a filesystem artefact.
	Phony bool

	// Precious protects the artefact from every clean pass, forced or not.
	Precious bool

	// NoClean exempts the artefact from a plain clean pass. A forced clean
	// still removes it unless the target is precious.
	NoClean bool

	// NoMkDirs suppresses creation of the artefact's parent directory before
	// the action runs.
	NoMkDirs bool

	// Action runs when the target is stale relative to its dependencies.
	Action Action

	name string
	deps []string
	prj  *Project
	id   uint

	// stamp is the memoized effective timestamp in Unix nanoseconds. Once
	// stamped, a target is neither re-stated nor re-run for the lifetime of
	// its project.
	stamp   int64
	stamped bool
}

// NewTarget creates a target with the given name, optional action and
// dependency names. The dependency arguments may be arbitrarily nested string
// sequences, see [Flatten].
func NewTarget(name string, action Action, deps ...any) *Target {
	return &Target{name: name, Action: action, deps: Flatten(deps...)}
}

func (t *Target) Name() string { return t.name }

func (t *Target) Dependencies() []string { return t.deps }

func (t *Target) Project() *Project { return t.prj }

// Path returns the artefact path of t, resolved within its project.
func (t *Target) Path() string {
	if t.prj == nil {
		return t.name
	}
	return t.prj.Path(t.name)
}

func (t *Target) String() string { return t.name }

// Build is [Target.BuildContext] with the background context.
func (t *Target) Build(env *Env, dryRun bool) (int64, error) {
	return t.BuildContext(context.Background(), env, dryRun)
}

// BuildContext brings t up to date and returns its effective timestamp in
// Unix nanoseconds. All dependencies are built first, recursively, through
// the project's target collection; t's own action runs only if some
// dependency turns out newer than t's artefact. With dryRun the action is
// described but not run and no directories are created.
//
// The timestamp is memoized: within the lifetime of the project each target
// is stated and built at most once, no matter how many dependents share it.
// A stale target without an action still advances its timestamp to the
// maximum dependency timestamp so that downstream comparisons stay correct.
func (t *Target) BuildContext(ctx context.Context, env *Env, dryRun bool) (int64, error) {
	if t.prj == nil {
		return 0, fmt.Errorf("target %q does not belong to a project", t.name)
	}
	if env == nil {
		env = DefaultEnv()
	}
	var depMax int64
	for _, name := range t.deps {
		dep, err := t.prj.Get(name)
		if err != nil {
			return 0, err
		}
		ts, err := dep.BuildContext(ctx, env, dryRun)
		if err != nil {
			return 0, err
		}
		if ts > depMax {
			depMax = ts
		}
	}
	env.logger().Debug("build `target`", `target`, t.name)
	if !t.stamped {
		t.stamp = tsMissing
		if !t.Phony {
			if st, err := os.Stat(t.Path()); err == nil {
				t.stamp = st.ModTime().UnixNano()
			}
		}
		t.stamped = true
	}
	if t.stamp < depMax {
		env.logger().Debug("`target` is stale", `target`, t.name)
		if !t.NoMkDirs && !dryRun {
			if dir := filepath.Dir(t.Path()); dir != "" {
				if err := os.MkdirAll(dir, 0o777); err != nil {
					return 0, err
				}
			}
		}
		if t.Action != nil {
			if desc := t.Action.Describe(t); desc != "" {
				env.logger().Info(desc, `target`, t.name)
			}
			if !dryRun {
				if err := t.Action.Do(ctx, t, env); err != nil {
					return 0, err
				}
			}
		}
		if depMax != 0 {
			t.stamp = depMax
		} else {
			// A leaf target must still advance monotonically on each rebuild
			// without relying on filesystem mtime resolution.
			t.stamp = time.Now().UnixNano()
		}
	}
	return t.stamp, nil
}

func (t *Target) removable(really bool) bool {
	return (!t.NoClean || really) && !t.Precious
}

// Clean removes t's own artefact unless its flags forbid it. An already
// absent artefact is not a failure. Dependencies are not touched; use
// [Cleaner] for a recursive clean.
func (t *Target) Clean(env *Env, really bool) error {
	if !t.removable(really) {
		return nil
	}
	env.logger().Info("clean `target`", `target`, t.name)
	if err := os.Remove(t.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Run spawns the command given by the flattened args and waits for it. The
// command runs in the project directory with its environment taken from the
// variable table. On non-zero exit t's own artefact is removed again, so a
// partial file cannot pass as up to date on the next run, and a [BuildError]
// is returned.
func (t *Target) Run(ctx context.Context, env *Env, args ...any) error {
	if env == nil {
		env = DefaultEnv()
	}
	cmd, err := t.command(ctx, env, args)
	if err != nil {
		return err
	}
	cmd.Stdout = env.Out
	if err := cmd.Run(); err != nil {
		return t.actionFailed(env, err)
	}
	return nil
}

// Output spawns the command like [Target.Run] but writes its captured
// standard output verbatim to t's artefact file.
func (t *Target) Output(ctx context.Context, env *Env, args ...any) error {
	if env == nil {
		env = DefaultEnv()
	}
	cmd, err := t.command(ctx, env, args)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return t.actionFailed(env, err)
	}
	if err := os.WriteFile(t.Path(), out.Bytes(), 0o666); err != nil {
		return t.actionFailed(env, err)
	}
	return nil
}

func (t *Target) command(ctx context.Context, env *Env, args []any) (*exec.Cmd, error) {
	argv := Flatten(args...)
	if len(argv) == 0 {
		return nil, t.Errorf("empty command")
	}
	env.logger().Info("run `cmd`", `cmd`, strings.Join(argv, " "))
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if t.prj != nil {
		cmd.Dir = t.prj.Dir
	}
	if env.Vars != nil {
		cmd.Env = env.Vars.CmdEnv()
	}
	cmd.Stdin = env.In
	cmd.Stderr = env.Err
	return cmd, nil
}

// actionFailed removes the just-attempted artefact, non-recursively, before
// reporting err as a build error for t.
func (t *Target) actionFailed(env *Env, err error) error {
	if cerr := t.Clean(env, false); cerr != nil {
		err = errors.Join(err, cerr)
	}
	return &BuildError{Target: t, Err: err}
}

// Cp copies every argument path but the last to the path given by the last
// argument. A directory destination receives the sources under their base
// names. Relative paths are resolved within t's project.
func (t *Target) Cp(env *Env, args ...any) error {
	paths := Flatten(args...)
	if len(paths) < 2 {
		return t.Errorf("cp needs at least one source and a destination")
	}
	dest := t.path(paths[len(paths)-1])
	destDir := false
	if st, err := os.Stat(dest); err == nil && st.IsDir() {
		destDir = true
	}
	for _, src := range paths[:len(paths)-1] {
		src = t.path(src)
		dst := dest
		if destDir {
			dst = filepath.Join(dest, filepath.Base(src))
		}
		env.logger().Debug("cp `src` to `dst`", `src`, src, `dst`, dst)
		if err := copyFile(dst, src); err != nil {
			return fmt.Errorf("cp %s: %w", src, err)
		}
	}
	return nil
}

func copyFile(dst, src string) error {
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

// Touch updates the artefact's modification time to now, creating an empty
// file if it does not exist yet.
func (t *Target) Touch() error {
	now := time.Now()
	err := os.Chtimes(t.Path(), now, now)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	f, err := os.OpenFile(t.Path(), os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return err
	}
	return f.Close()
}

// Errorf returns the canonical [BuildError] with which an action reports
// unrecoverable failure for its target.
func (t *Target) Errorf(format string, args ...any) *BuildError {
	return &BuildError{Target: t, Msg: fmt.Sprintf(format, args...)}
}

func (t *Target) path(p string) string {
	if t.prj == nil || filepath.IsAbs(p) {
		return p
	}
	return t.prj.Path(p)
}
