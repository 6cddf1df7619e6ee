package pakefile

import (
	"bytes"
	"context"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/twpayne/pake/pakore"
)

func unmarshalStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// action composes the declared steps into a single target action. It returns
// nil when no step is declared.
func action(desc string, runs [][]string, output []string, touch bool) pakore.Action {
	if len(runs) == 0 && len(output) == 0 && !touch {
		return nil
	}
	return pakore.Act(desc, func(ctx context.Context, t *pakore.Target, env *pakore.Env) error {
		for _, argv := range runs {
			if err := t.Run(ctx, env, expandVarsArgv(argv, env)); err != nil {
				return err
			}
		}
		if len(output) > 0 {
			if err := t.Output(ctx, env, expandVarsArgv(output, env)); err != nil {
				return err
			}
		}
		if touch {
			if err := t.Touch(); err != nil {
				return t.Errorf("touch: %s", err)
			}
		}
		return nil
	})
}

// expandMatch replaces ${N} references with pattern submatches. Out-of-range
// indices expand to the empty string. Non-numeric references are kept for the
// variable expansion that happens when the action runs.
func expandMatch(s string, match []string) string {
	return os.Expand(s, func(name string) string {
		if i, err := strconv.Atoi(name); err == nil {
			if i < 0 || i >= len(match) {
				return ""
			}
			return match[i]
		}
		return "${" + name + "}"
	})
}

func expandMatchArgv(argv []string, match []string) []string {
	if argv == nil {
		return nil
	}
	res := make([]string, len(argv))
	for i, a := range argv {
		res[i] = expandMatch(a, match)
	}
	return res
}

// expandVarsArgv resolves $NAME references against the environment's variable
// table. Unknown names expand to the empty string.
func expandVarsArgv(argv []string, env *pakore.Env) []string {
	res := make([]string, len(argv))
	for i, a := range argv {
		res[i] = os.Expand(a, func(name string) string {
			v, _ := env.Vars.Get(name)
			return v
		})
	}
	return res
}
