package check

import (
	"testing"

	"symck/internal/ast"
	"symck/internal/source"
)

// TestReplPropBinderResolvesUnderContext exercises REPLPROP (forall id in
// set: body) nested under an outer CONTEXT, where the body refers to the
// bound identifier by its bare name. The binder must be declared under the
// same ctx-qualified name that the body's lookup computes, not the bare
// name (i.e. resolveIdentifier and checkReplProp must agree).
func TestReplPropBinderResolvesUnderContext(t *testing.T) {
	h := newHarness()

	trueLeaf := h.pool.Leaf(ast.KindTrue, source.Span{})
	falseLeaf := h.pool.Leaf(ast.KindFalse, source.Span{})
	set := h.pool.Cons(trueLeaf, h.pool.Cons(falseLeaf, ast.NoExprID, source.Span{}), source.Span{})

	binder := h.pool.Binary(ast.KindCons, h.atom("i"), set, source.Span{})
	body := h.atom("i")
	replProp := h.pool.Binary(ast.KindReplProp, binder, body, source.Span{})
	wrapped := h.pool.Context(h.atom("inst"), replProp, source.Span{})

	got := h.c.ExprType(ast.NoExprID, wrapped)
	if got != h.table.Interner.Builtins().Boolean {
		t.Fatalf("forall body under CONTEXT: got %s, want boolean", h.table.Interner.Display(got))
	}
	if h.bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", h.bag.Items())
	}
}
