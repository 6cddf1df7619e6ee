package pakore

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Vars is the build's variable table. A key, once set, is never overwritten
// through [Vars.Set]: the first write wins. The table is normally seeded from
// the process environment, so environment entries take precedence over both
// build-script defaults and command line assignments.
type Vars struct {
	kvm map[string]string
}

func NewVars() *Vars { return &Vars{kvm: make(map[string]string)} }

// OSVars returns a variable table seeded from the process environment.
func OSVars() *Vars {
	v := NewVars()
	v.SetAll(os.Environ()...)
	return v
}

// SetAll folds entries of the form "key=value" into v, first write wins.
// An entry without '=' sets its key to the empty string; entries with an
// empty key are ignored.
func (v *Vars) SetAll(entries ...string) {
	for _, e := range entries {
		kv := strings.SplitN(e, "=", 2)
		if kv[0] == "" {
			continue
		}
		if len(kv) == 1 {
			v.Set(kv[0], "")
		} else {
			v.Set(kv[0], kv[1])
		}
	}
}

// Set assigns value to key unless key is already present and reports whether
// the assignment took effect.
func (v *Vars) Set(key, value string) bool {
	if _, ok := v.kvm[key]; ok {
		return false
	}
	if v.kvm == nil {
		v.kvm = make(map[string]string)
	}
	v.kvm[key] = value
	return true
}

func (v *Vars) Get(key string) (string, bool) {
	val, ok := v.kvm[key]
	return val, ok
}

func (v *Vars) Has(key string) bool {
	_, ok := v.kvm[key]
	return ok
}

func (v *Vars) Len() int { return len(v.kvm) }

// CmdEnv renders v in the form expected by [os/exec.Cmd].Env, sorted by key.
func (v *Vars) CmdEnv() []string {
	if len(v.kvm) == 0 {
		return nil
	}
	env := make([]string, 0, len(v.kvm))
	for k, val := range v.kvm {
		env = append(env, fmt.Sprintf("%s=%s", k, val))
	}
	sort.Strings(env)
	return env
}
