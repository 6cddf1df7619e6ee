package pake

import (
	"errors"
	"testing"

	"github.com/twpayne/pake/pakore"
)

func TestEdit_recoversDeclarationErrors(t *testing.T) {
	prj := NewProject(t.TempDir())
	err := Edit(prj, func(p ProjectEd) {
		p.Target("app", nil)
		p.Target("app", nil)
	})
	var dup *pakore.DuplicateTargetError
	if !errors.As(err, &dup) {
		t.Fatalf("Edit returns %v", err)
	}
	if dup.Name != "app" {
		t.Errorf("duplicate error names %q", dup.Name)
	}
}

func TestEdit_virtualFlags(t *testing.T) {
	prj := NewProject(t.TempDir())
	if err := Edit(prj, func(p ProjectEd) {
		p.Virtual("all", "app")
	}); err != nil {
		t.Fatal(err)
	}
	all := prj.Find("all")
	if all == nil {
		t.Fatal("virtual target not registered")
	}
	if !all.Phony || !all.NoClean {
		t.Errorf("virtual target flags: phony=%t noClean=%t", all.Phony, all.NoClean)
	}
	if all.Action != nil {
		t.Error("virtual target has an action")
	}
}

func TestEdit_targetFlagChain(t *testing.T) {
	prj := NewProject(t.TempDir())
	if err := Edit(prj, func(p ProjectEd) {
		p.Target("cfg", nil).Precious().NoMkDirs()
	}); err != nil {
		t.Fatal(err)
	}
	cfg := prj.Find("cfg")
	if !cfg.Precious || !cfg.NoMkDirs {
		t.Errorf("flag chain: precious=%t noMkDirs=%t", cfg.Precious, cfg.NoMkDirs)
	}
}
