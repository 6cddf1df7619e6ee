package pakore

import (
	"fmt"
	"testing"
)

func TestVars_firstWriteWins(t *testing.T) {
	v := NewVars()
	if !v.Set("FOO", "bar") {
		t.Error("first write of FOO did not take effect")
	}
	if v.Set("FOO", "baz") {
		t.Error("second write of FOO took effect")
	}
	if val, _ := v.Get("FOO"); val != "bar" {
		t.Errorf("FOO has value %q, want %q", val, "bar")
	}
}

func TestVars_SetAll(t *testing.T) {
	v := NewVars()
	v.SetAll("FOO=bar", "EMPTY", "=dropped", "FOO=baz")
	if val, ok := v.Get("FOO"); !ok || val != "bar" {
		t.Errorf("FOO = %q, %t", val, ok)
	}
	if val, ok := v.Get("EMPTY"); !ok || val != "" {
		t.Errorf("EMPTY = %q, %t", val, ok)
	}
	if v.Len() != 2 {
		t.Errorf("table holds %d entries, want 2", v.Len())
	}
}

func ExampleVars() {
	var v Vars
	v.Set("KEY1", "Just a value")
	fmt.Println(v.CmdEnv())
	v.Set("KEY2", "Yet another value")
	fmt.Println(v.CmdEnv())
	v.Set("KEY1", "Ignored value")
	fmt.Println(v.CmdEnv())
	// Output:
	// [KEY1=Just a value]
	// [KEY1=Just a value KEY2=Yet another value]
	// [KEY1=Just a value KEY2=Yet another value]
}

func TestOSVars(t *testing.T) {
	t.Setenv("PAKE_TEST_VAR", "from-env")
	v := OSVars()
	if val, ok := v.Get("PAKE_TEST_VAR"); !ok || val != "from-env" {
		t.Errorf("PAKE_TEST_VAR = %q, %t", val, ok)
	}
}
