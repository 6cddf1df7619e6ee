package pakore

import "fmt"

// BuildError reports that a target could not be built, either because an
// action explicitly failed or because an external process exited non-zero.
// It propagates unchanged through the recursive build call chain and is the
// only error kind the driver maps to a regular non-zero exit status.
type BuildError struct {
	Target *Target
	Msg    string
	Err    error
}

func (e *BuildError) Error() string {
	switch {
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Target.Name(), e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s", e.Target.Name(), e.Err)
	}
	return e.Target.Name() + ": build failed"
}

func (e *BuildError) Unwrap() error { return e.Err }

// AmbiguousRuleError reports a name for which more than one rule pattern
// matched. Rule patterns must be kept mutually exclusive.
type AmbiguousRuleError struct {
	Name string
}

func (e *AmbiguousRuleError) Error() string {
	return fmt.Sprintf("%q matches multiple rules", e.Name)
}

// DuplicateTargetError reports an explicit registration that collides with an
// already registered target name.
type DuplicateTargetError struct {
	Name string
}

func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("duplicate target %q", e.Name)
}
