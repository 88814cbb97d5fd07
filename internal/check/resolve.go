package check

import (
	"symck/internal/ast"
	"symck/internal/diag"
	"symck/internal/source"
	"symck/internal/symtab"
	"symck/internal/symtype"
	"symck/internal/walk"
)

// localPath renders an ATOM/BIT/ARRAY/DOT node into its dotted textual
// name, without regard to any outer walker context. DOT with a NoExprID
// left operand is a bare name wrapped for uniformity by the front end.
func (c *Checker) localPath(node ast.ExprID) (string, bool) {
	n := c.pool.Get(node)
	if n == nil {
		return "", false
	}
	switch n.Kind {
	case ast.KindAtom, ast.KindBit, ast.KindArray:
		return c.strs.Lookup(n.Name)
	case ast.KindDot:
		if n.Left == ast.NoExprID {
			return c.localPath(n.Right)
		}
		left, ok := c.localPath(n.Left)
		if !ok {
			return "", false
		}
		right, ok := c.localPath(n.Right)
		if !ok {
			return "", false
		}
		return left + "." + right, true
	default:
		return "", false
	}
}

// qualifiedName combines ctx's own path (if any) with node's, the way
// resolve(name, ctx) does per spec.md §6.
func (c *Checker) qualifiedName(ctx walk.Context, node ast.ExprID) (source.StringID, bool) {
	local, ok := c.localPath(node)
	if !ok {
		return source.NoStringID, false
	}
	if ctx == ast.NoExprID {
		return c.strs.Intern(local), true
	}
	prefix, ok := c.localPath(ctx)
	if !ok {
		return source.NoStringID, false
	}
	return c.strs.Intern(prefix + "." + local), true
}

// resolveIdentifier implements the leaf rule for ATOM/DOT/ARRAY: look the
// qualified name up in the shared cache and type it per its declared
// kind. Returns Error (with a violation already reported) for an
// unresolvable or undeclared name.
func (c *Checker) resolveIdentifier(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	n := c.pool.Get(node)
	name, ok := c.qualifiedName(ctx, node)
	if !ok {
		return c.violation(diag.CheckUndefinedIdentifier, n.Span, "identifier is not well-formed")
	}

	cache := c.table.Cache()
	switch cache.KindOf(name) {
	case symtab.KindConstant:
		return c.types.Builtins().AbstractPureSymbolic
	case symtab.KindParameter:
		actualCtx, actual := cache.GetParameterActual(name)
		return d.ExprType(actualCtx, actual)
	case symtab.KindDefine:
		defCtx, body := cache.GetDefineContext(name), cache.GetDefineBody(name)
		return d.ExprType(defCtx, body)
	case symtab.KindArrayDefine:
		defCtx, body := cache.GetArrayDefineContext(name), cache.GetArrayDefineBody(name)
		return d.ExprType(defCtx, body)
	case symtab.KindVariableArray:
		return cache.GetVariableArrayType(name)
	case symtab.KindStateVar, symtab.KindFrozenVar, symtab.KindInputVar:
		return cache.GetVarType(name)
	case 0:
		return c.violation(diag.CheckUndefinedIdentifier, n.Span, "undefined identifier")
	default:
		return c.violation(diag.CheckAmbiguousIdentifier, n.Span, "identifier resolves to an unexpected kind")
	}
}
