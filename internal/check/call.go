package check

import (
	"symck/internal/ast"
	"symck/internal/diag"
	"symck/internal/symtab"
	"symck/internal/symtype"
	"symck/internal/walk"
)

// callWalker owns NFUNCTION: the sole call-block opcode.
type callWalker struct{ c *Checker }

func (w callWalker) Range() (ast.Kind, ast.Kind) { return ast.KindCallLo, ast.KindCallHi }

func (w callWalker) CheckExpr(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	return w.c.checkCall(d, ctx, node)
}

// checkCall implements the NFUNCTION rule of spec.md §4.5: n.Left names
// the declared function, n.Right is the CONS list of actual arguments.
func (c *Checker) checkCall(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	n := c.pool.Get(node)
	name, ok := c.qualifiedName(ctx, n.Left)
	if !ok || c.table.Cache().KindOf(name) != symtab.KindFunction {
		return c.violation(diag.CheckUndefinedIdentifier, n.Span, "call to an undeclared function")
	}
	fn := c.table.Cache().GetFunction(name)

	actuals := c.pool.ListSlice(n.Right)
	if len(actuals) != len(fn.ArgTypes) {
		return c.violation(diag.CheckParamsCount, n.Span, "actual argument count does not match the function's formals")
	}

	actualTypes := make([]symtype.ID, len(actuals))
	for i, a := range actuals {
		t := d.ExprType(ctx, a)
		if c.isError(t) {
			return c.types.Builtins().Error
		}
		actualTypes[i] = t
	}

	for i, t := range actualTypes {
		if _, ok := c.types.Greater(t, fn.ArgTypes[i]); !ok {
			return c.violation(diag.CheckParamsType, n.Span, "actual argument type does not convert to its formal type")
		}
	}

	fam, ok := c.family(fn.Return)
	if !ok {
		return c.violation(diag.CheckParamsFamilyMix, n.Span, "function return type belongs to no bit-vector/real-int-bool family")
	}
	for _, t := range fn.ArgTypes {
		tfam, ok := c.family(t)
		if !ok || tfam != fam {
			return c.violation(diag.CheckParamsFamilyMix, n.Span, "function parameter and return types mix the bit-vector and real-int-bool families")
		}
	}

	return fn.Return
}

type typeFamily int

const (
	familyBitVector typeFamily = iota
	familyRealIntBool
)

// family classifies t per the NFUNCTION family rule: every Word is
// bit-vector; Real/Integer/Boolean/a pure-int enum is real-int-bool;
// anything else belongs to neither family.
func (c *Checker) family(t symtype.ID) (typeFamily, bool) {
	b := c.types.Builtins()
	switch {
	case c.types.IsWord(t):
		return familyBitVector, true
	case t == b.Real, t == b.Integer, t == b.Boolean:
		return familyRealIntBool, true
	case c.types.IsEnum(t):
		info, ok := c.types.EnumInfo(t)
		if ok && info.Category == symtype.EnumPureInt {
			return familyRealIntBool, true
		}
		return 0, false
	default:
		return 0, false
	}
}
