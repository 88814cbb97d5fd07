package check

import (
	"symck/internal/ast"
	"symck/internal/diag"
	"symck/internal/symtab"
	"symck/internal/symtype"
	"symck/internal/walk"
)

// pslWalker owns the PSL-specific opcode block: SERE and temporal forms
// beyond the CTL/LTL core, plus the three constructs (REPLPROP, WSELECT,
// PSL ITE) that mirror a core-language rule under PSL's own syntax.
type pslWalker struct{ c *Checker }

func (w pslWalker) Range() (ast.Kind, ast.Kind) { return ast.KindPSLLo, ast.KindPSLHi }

func (w pslWalker) CheckExpr(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	return w.c.checkPSL(d, ctx, node)
}

func (c *Checker) checkPSL(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	n := c.pool.Get(node)
	switch n.Kind {
	case ast.KindReplProp:
		return c.checkReplProp(d, ctx, n)
	case ast.KindWSelect:
		return c.checkBitSelection(d, ctx, n)
	case ast.KindPSLIfThenElse:
		return c.checkPSLIfThenElse(d, ctx, n)
	default:
		return c.checkPSLTemporal(d, ctx, n)
	}
}

// checkPSLTemporal covers every SERE/temporal PSL operator that is not
// one of the three mirrored forms: ALWAYS/NEVER/EVENTUALLY!/UNTIL/
// WITHIN/BEFORE/NEXT[_EVENT][_A|_E][!]/WHILENOT/PIPEMINUSGT/PIPEEQGT all
// return Boolean over boolean operand(s), with a constant non-negative
// range validated wherever the node attaches one via its Right child.
func (c *Checker) checkPSLTemporal(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	if l != b.Boolean {
		return c.violation(diag.CheckMandatoryType, n.Span, "PSL operator requires a boolean operand")
	}

	bounds := c.pool.Get(n.Right)
	switch {
	case bounds == nil:
		return b.Boolean
	case bounds.Kind == ast.KindTwoDots:
		if !c.checkNonNegativeRange(n.Right, n.Span) {
			return c.types.Builtins().Error
		}
		return b.Boolean
	default:
		r := d.ExprType(ctx, n.Right)
		if c.isError(r) {
			return r
		}
		if r != b.Boolean {
			return c.violation(diag.CheckMandatoryType, n.Span, "PSL operator requires boolean operands")
		}
		return b.Boolean
	}
}

// checkReplProp implements REPLPROP (forall id in set: body): n.Left is
// a CONS cell pairing the binder ATOM with the set expression, n.Right
// is the body checked once per element. Per spec.md §4.5, each
// iteration re-checks body under a temporary define bound to that
// element, with memoisation disabled so one iteration's inferred types
// never leak into the next, and the temporary define is dropped
// afterward.
func (c *Checker) checkReplProp(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	binder := c.pool.Get(n.Left)
	if binder == nil || binder.Kind != ast.KindCons {
		return c.violation(diag.CheckMandatoryType, n.Span, "forall requires a binder and a set")
	}
	idNode := c.pool.Get(binder.Left)
	if idNode == nil || idNode.Kind != ast.KindAtom {
		return c.violation(diag.CheckMandatoryType, n.Span, "forall binder must be a plain identifier")
	}

	setType := d.ExprType(ctx, binder.Right)
	if c.isError(setType) {
		return setType
	}
	if _, ok := c.types.LiftSet(setType); !ok {
		return c.violation(diag.CheckMandatoryType, n.Span, "forall requires a set-valued range")
	}

	elems := c.pool.ListSlice(binder.Right)
	if len(elems) == 0 {
		elems = []ast.ExprID{binder.Right}
	}

	// The binder must be declared under the same qualified name that
	// resolveIdentifier will look it up with from inside n.Right, which
	// is ctx's own path prefixed onto the bare binder name whenever ctx
	// is not NoExprID.
	boundName, ok := c.qualifiedName(ctx, binder.Left)
	if !ok {
		return c.violation(diag.CheckMandatoryType, n.Span, "forall binder must be a plain identifier")
	}

	cache := c.table.Cache()
	result := b.Boolean
	for i, elem := range elems {
		if err := cache.NewDefine(boundName, ctx, elem); err != nil {
			return c.violation(diag.CheckAmbiguousIdentifier, n.Span, "forall binder shadows an existing declaration")
		}

		if i > 0 {
			c.disableMemo()
		}
		t := d.ExprType(ctx, n.Right)
		if i > 0 {
			c.enableMemo()
		}

		_ = cache.Remove(boundName, symtab.KindDefine)

		if c.isError(t) {
			return t
		}
		if t != b.Boolean {
			return c.violation(diag.CheckMandatoryType, n.Span, "forall body must be boolean")
		}
		result = t
	}
	return result
}

func (c *Checker) checkPSLIfThenElse(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	cond := d.ExprType(ctx, n.Left)
	if c.isError(cond) {
		return cond
	}
	if cond != b.Boolean {
		return c.violation(diag.CheckMandatoryType, n.Span, "PSL if-then-else condition must be boolean")
	}
	branches := c.pool.Get(n.Right)
	if branches == nil || branches.Kind != ast.KindCons {
		return c.violation(diag.CheckMandatoryType, n.Span, "PSL if-then-else requires both branches")
	}
	return c.branchLUB(d, ctx, branches.Left, branches.Right, n.Span)
}
