package symtab

import (
	"testing"

	"symck/internal/source"
	"symck/internal/symtype"
)

func TestLayerOrderingPolicies(t *testing.T) {
	table := NewTable(symtype.NewInterner())

	bottom := table.NewLayer("bottom", PolicyBottom)
	top := table.NewLayer("top", PolicyTop)
	forceTop := table.NewLayer("force-top", PolicyForceTop)
	forceBottom := table.NewLayer("force-bottom", PolicyForceBottom)
	mid := table.NewLayer("mid", PolicyDefault)

	order := table.Layers()
	if order[0] != forceTop {
		t.Fatalf("force-top must be first, got %q", order[0].Name)
	}
	if order[len(order)-1] != forceBottom {
		t.Fatalf("force-bottom must be last, got %q", order[len(order)-1].Name)
	}
	_, _, _ = bottom, top, mid
}

func TestTwoForceTopLayersPanics(t *testing.T) {
	table := NewTable(symtype.NewInterner())
	table.NewLayer("a", PolicyForceTop)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inserting a second force-top layer")
		}
	}()
	table.NewLayer("b", PolicyForceTop)
}

func TestCommitGatesRemoval(t *testing.T) {
	table := NewTable(symtype.NewInterner())
	strs := source.NewInterner()
	in := table.Interner

	layer := table.NewLayer("main", PolicyDefault)
	name := strs.Intern("v")
	if err := layer.DeclareStateVar(name, in.Builtins().Boolean); err != nil {
		t.Fatalf("declare: %v", err)
	}

	tok := table.BeginCommit(layer)
	layer.Commit(tok)

	if err := layer.Remove(name, KindStateVar); err == nil {
		t.Fatal("expected remove to fail while committed")
	}

	layer.Uncommit(tok)
	if err := layer.Remove(name, KindStateVar); err != nil {
		t.Fatalf("remove after uncommit: %v", err)
	}
}

func TestRemoveLayerRequiresZeroCommits(t *testing.T) {
	table := NewTable(symtype.NewInterner())
	layer := table.NewLayer("main", PolicyDefault)
	tok := table.BeginCommit(layer)
	layer.Commit(tok)

	if err := table.RemoveLayer(layer); err == nil {
		t.Fatal("expected RemoveLayer to fail while committed")
	}
	layer.Uncommit(tok)
	if err := table.RemoveLayer(layer); err != nil {
		t.Fatalf("RemoveLayer after uncommit: %v", err)
	}
}

func TestRedeclareStateAsFrozenRecounts(t *testing.T) {
	table := NewTable(symtype.NewInterner())
	strs := source.NewInterner()
	in := table.Interner

	layer := table.NewLayer("main", PolicyDefault)
	name := strs.Intern("s")
	if err := layer.DeclareStateVar(name, in.Builtins().Boolean); err != nil {
		t.Fatalf("declare: %v", err)
	}

	if table.Cache().Count(KindStateVar) != 1 || table.Cache().Count(KindFrozenVar) != 0 {
		t.Fatalf("precondition: state=%d frozen=%d", table.Cache().Count(KindStateVar), table.Cache().Count(KindFrozenVar))
	}

	if err := table.RedeclareStateAsFrozen(name); err != nil {
		t.Fatalf("RedeclareStateAsFrozen: %v", err)
	}

	if table.Cache().Count(KindStateVar) != 0 || table.Cache().Count(KindFrozenVar) != 1 {
		t.Fatalf("after redeclare: state=%d frozen=%d", table.Cache().Count(KindStateVar), table.Cache().Count(KindFrozenVar))
	}
	if !table.IsFrozenVar(name) {
		t.Fatal("expected IsFrozenVar true")
	}
	if layer.Count(KindFrozenVar) != 1 || layer.BooleanFrozenVars() != 1 {
		t.Fatalf("layer counters not updated: frozen=%d boolFrozen=%d", layer.Count(KindFrozenVar), layer.BooleanFrozenVars())
	}
}

func TestRedeclareReportsActualKind(t *testing.T) {
	table := NewTable(symtype.NewInterner())
	strs := source.NewInterner()
	in := table.Interner

	layer := table.NewLayer("main", PolicyDefault)
	name := strs.Intern("s")
	if err := layer.DeclareStateVar(name, in.Builtins().Boolean); err != nil {
		t.Fatalf("declare: %v", err)
	}

	err := layer.DeclareStateVar(name, in.Builtins().Boolean)
	if err == nil {
		t.Fatal("expected redeclaring the same name to fail")
	}
	var already *AlreadyDeclaredError
	if !asAlreadyDeclared(err, &already) {
		t.Fatalf("expected *AlreadyDeclaredError, got %T: %v", err, err)
	}
	if already.Kind != KindStateVar {
		t.Fatalf("expected Kind=%s, got %s", KindStateVar, already.Kind)
	}
}

func asAlreadyDeclared(err error, target **AlreadyDeclaredError) bool {
	e, ok := err.(*AlreadyDeclaredError)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestConstantSharedAcrossLayers(t *testing.T) {
	table := NewTable(symtype.NewInterner())
	strs := source.NewInterner()
	name := strs.Intern("red")

	l1 := table.NewLayer("l1", PolicyDefault)
	l2 := table.NewLayer("l2", PolicyDefault)

	if err := l1.DeclareConstant(name); err != nil {
		t.Fatalf("l1 declare: %v", err)
	}
	if err := l2.DeclareConstant(name); err != nil {
		t.Fatalf("l2 declare: %v", err)
	}

	if err := l1.Remove(name, KindConstant); err != nil {
		t.Fatalf("l1 remove: %v", err)
	}
	if !table.Cache().IsDeclared(name) {
		t.Fatal("constant should survive l1's remove while l2 still holds it")
	}
	if err := l2.Remove(name, KindConstant); err != nil {
		t.Fatalf("l2 remove: %v", err)
	}
	if table.Cache().IsDeclared(name) {
		t.Fatal("constant should be gone once both layers removed it")
	}
}
