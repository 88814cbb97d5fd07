package symtab

import (
	"testing"

	"symck/internal/ast"
	"symck/internal/source"
	"symck/internal/symtype"
)

func newTestCache() (*Cache, *source.Interner) {
	return NewCache(0), source.NewInterner()
}

func TestCacheNewAndGetVarType(t *testing.T) {
	c, strs := newTestCache()
	in := symtype.NewInterner()
	name := strs.Intern("x")

	if err := c.NewStateVar(name, in.Builtins().Boolean); err != nil {
		t.Fatalf("NewStateVar: %v", err)
	}
	if got := c.GetVarType(name); got != in.Builtins().Boolean {
		t.Fatalf("GetVarType = %v, want Boolean", got)
	}
	if c.Count(KindStateVar) != 1 {
		t.Fatalf("Count(StateVar) = %d, want 1", c.Count(KindStateVar))
	}
	if err := c.invariantCheck(); err != nil {
		t.Fatalf("invariantCheck: %v", err)
	}
}

func TestCacheDuplicateDeclarationFails(t *testing.T) {
	c, strs := newTestCache()
	in := symtype.NewInterner()
	name := strs.Intern("x")

	if err := c.NewStateVar(name, in.Builtins().Boolean); err != nil {
		t.Fatalf("first declare: %v", err)
	}
	if err := c.NewStateVar(name, in.Builtins().Integer); err == nil {
		t.Fatal("expected duplicate declaration to fail")
	}
}

func TestCacheConstantRefCounting(t *testing.T) {
	c, strs := newTestCache()
	name := strs.Intern("red")

	if err := c.NewConstant(name); err != nil {
		t.Fatalf("first NewConstant: %v", err)
	}
	if err := c.NewConstant(name); err != nil {
		t.Fatalf("second NewConstant: %v", err)
	}
	if err := c.Remove(name, KindConstant); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if !c.IsDeclared(name) {
		t.Fatal("constant should still be live after one of two removes")
	}
	if err := c.Remove(name, KindConstant); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if c.IsDeclared(name) {
		t.Fatal("constant should be gone after matching removes")
	}
}

func TestCacheRemoveThenRedeclareFiresRedeclareTrigger(t *testing.T) {
	c, strs := newTestCache()
	in := symtype.NewInterner()
	name := strs.Intern("x")

	var added, removed, redeclared int
	c.OnAdd(func(source.StringID) { added++ })
	c.OnRemove(func(source.StringID) { removed++ })
	c.OnRedeclare(func(source.StringID) { redeclared++ })

	if err := c.NewStateVar(name, in.Builtins().Boolean); err != nil {
		t.Fatalf("declare: %v", err)
	}
	if err := c.Remove(name, KindStateVar); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := c.NewStateVar(name, in.Builtins().Integer); err != nil {
		t.Fatalf("redeclare: %v", err)
	}

	if added != 1 || removed != 1 || redeclared != 1 {
		t.Fatalf("added=%d removed=%d redeclared=%d, want 1/1/1", added, removed, redeclared)
	}
	if got := c.GetVarType(name); got != in.Builtins().Integer {
		t.Fatalf("GetVarType after redeclare = %v, want Integer", got)
	}
}

func TestCacheRemoveWrongKindFails(t *testing.T) {
	c, strs := newTestCache()
	in := symtype.NewInterner()
	name := strs.Intern("x")

	if err := c.NewStateVar(name, in.Builtins().Boolean); err != nil {
		t.Fatalf("declare: %v", err)
	}
	if err := c.Remove(name, KindFrozenVar); err == nil {
		t.Fatal("expected kind-mismatch remove to fail")
	}
}

func TestCacheCompactionPreservesOrderAndPositions(t *testing.T) {
	c, strs := newTestCache()
	in := symtype.NewInterner()

	var names []source.StringID
	for i := range 40 {
		n := strs.Intern(string(rune('a' + i%26)) + string(rune('0'+i/26)))
		names = append(names, n)
		if err := c.NewStateVar(n, in.Builtins().Boolean); err != nil {
			t.Fatalf("declare %d: %v", i, err)
		}
	}
	// Remove enough to cross the compaction ratio.
	for i := 0; i < 35; i++ {
		if err := c.Remove(names[i], KindStateVar); err != nil {
			t.Fatalf("remove %d: %v", i, err)
		}
	}
	if err := c.invariantCheck(); err != nil {
		t.Fatalf("invariantCheck after compaction: %v", err)
	}
	for i := 35; i < 40; i++ {
		if !c.IsDeclared(names[i]) {
			t.Fatalf("survivor %d missing after compaction", i)
		}
	}
}

func TestCacheFlattenDefineBodyMemoizes(t *testing.T) {
	c, strs := newTestCache()
	name := strs.Intern("d")
	pool := ast.NewPool(0)
	ctx := ast.NoExprID
	body := pool.Number(42, source.Span{})

	if err := c.NewDefine(name, ctx, body); err != nil {
		t.Fatalf("NewDefine: %v", err)
	}

	calls := 0
	flatten := func(ctx, expr ast.ExprID) ast.ExprID {
		calls++
		return expr
	}
	first := c.GetFlattenDefineBody(name, flatten)
	second := c.GetFlattenDefineBody(name, flatten)
	if first != second || first != body {
		t.Fatalf("flattened body not stable: %v, %v", first, second)
	}
	if calls != 1 {
		t.Fatalf("flatten called %d times, want 1 (memoised)", calls)
	}
}

func TestCacheGetterPanicsOnKindMismatch(t *testing.T) {
	c, strs := newTestCache()
	name := strs.Intern("f")
	if err := c.NewConstant(name); err != nil {
		t.Fatalf("NewConstant: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected GetVarType on a constant to panic")
		}
	}()
	c.GetVarType(name)
}
