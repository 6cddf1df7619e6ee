package pakore

import "context"

// An Action is the unit of work that brings a [Target] up to date. It runs
// with the owning target as its execution context, which gives it access to
// the target's Run, Output, Cp, Touch and Errorf helpers. A target without an
// action is a pure dependency node.
type Action interface {
	// Describe returns a one-line description that is surfaced before the
	// action runs. An empty description is not logged.
	Describe(t *Target) string

	Do(ctx context.Context, t *Target, env *Env) error
}

// ActionFunc adapts a plain function to an undescribed [Action].
type ActionFunc func(ctx context.Context, t *Target, env *Env) error

var _ Action = ActionFunc(nil)

func (f ActionFunc) Describe(*Target) string { return "" }

func (f ActionFunc) Do(ctx context.Context, t *Target, env *Env) error {
	return f(ctx, t, env)
}

// Act returns an Action that runs f and describes itself with desc.
func Act(desc string, f func(ctx context.Context, t *Target, env *Env) error) Action {
	return describedAct{desc: desc, f: f}
}

type describedAct struct {
	desc string
	f    func(context.Context, *Target, *Env) error
}

func (a describedAct) Describe(*Target) string { return a.desc }

func (a describedAct) Do(ctx context.Context, t *Target, env *Env) error {
	return a.f(ctx, t, env)
}
