package check

import (
	"symck/internal/ast"
	"symck/internal/source"
	"symck/internal/symtab"
)

// CheckLayer implements check_layer(L): validates every variable's
// declared type and every define's body declared through l, returning
// overall ok/fail. Per spec.md §4.5; the symbol cache carries no span
// per declaration, so diagnostics raised here use a zero Span.
func (c *Checker) CheckLayer(l *symtab.Layer) bool {
	ok := true
	cache := c.table.Cache()
	for _, name := range l.Names() {
		text, _ := c.strs.Lookup(name)
		switch cache.KindOf(name) {
		case symtab.KindStateVar, symtab.KindFrozenVar, symtab.KindInputVar:
			if !c.TypeIsWellFormed(cache.GetVarType(name), text, source.Span{}) {
				ok = false
			}
		case symtab.KindVariableArray:
			if !c.TypeIsWellFormed(cache.GetVariableArrayType(name), text, source.Span{}) {
				ok = false
			}
		case symtab.KindDefine:
			ctx, body := cache.GetDefineContext(name), cache.GetDefineBody(name)
			if !c.ExprIsWellFormed(ctx, body) {
				ok = false
			}
		case symtab.KindArrayDefine:
			ctx, body := cache.GetArrayDefineContext(name), cache.GetArrayDefineBody(name)
			if !c.ExprIsWellFormed(ctx, body) {
				ok = false
			}
		}
	}
	return ok
}

// checkConstraintList wraps every leaf of a CONS-joined list in the
// section tag kind and type-checks each, per check_constraints's rule.
func (c *Checker) checkConstraintList(kind ast.Kind, head ast.ExprID) bool {
	if head == ast.NoExprID {
		return true
	}
	ok := true
	c.pool.List(head, func(elem ast.ExprID) {
		wrapped := c.pool.Unary(kind, elem, source.Span{})
		if c.isError(c.ExprType(ast.NoExprID, wrapped)) {
			ok = false
		}
	})
	return ok
}

// CheckConstraints implements check_constraints: init/trans/invar/
// assign/justice/compassion are each an AND/CONS-joined list; every
// leaf is wrapped in its enclosing section tag and checked, and the
// overall result is their conjunction.
func (c *Checker) CheckConstraints(initSection, trans, invar, assign, justice, compassion ast.ExprID) bool {
	ok := c.checkConstraintList(ast.KindInit, initSection)
	ok = c.checkConstraintList(ast.KindTrans, trans) && ok
	ok = c.checkConstraintList(ast.KindInvar, invar) && ok
	ok = c.checkConstraintList(ast.KindAssign, assign) && ok
	ok = c.checkConstraintList(ast.KindJustice, justice) && ok
	ok = c.checkConstraintList(ast.KindCompassion, compassion) && ok
	return ok
}

// PropertyKind selects which top-level tag CheckProperty wraps a
// property body in, per check_property(p)'s "tags the body by property
// kind" rule.
type PropertyKind int

const (
	PropertyCTL PropertyKind = iota
	PropertyLTL
	PropertyPSL
	PropertyInvar
	PropertyCompute
)

func (k PropertyKind) tag() ast.Kind {
	switch k {
	case PropertyCTL:
		return ast.KindSpec
	case PropertyLTL:
		return ast.KindLTLSpec
	case PropertyPSL:
		return ast.KindPSLSpec
	case PropertyInvar:
		return ast.KindInvarSpec
	case PropertyCompute:
		return ast.KindCompute
	default:
		panic("check: unknown property kind")
	}
}

// CheckProperty implements check_property(p): tags body by kind and
// type-checks the tagged form.
func (c *Checker) CheckProperty(kind PropertyKind, body ast.ExprID) bool {
	wrapped := c.pool.Unary(kind.tag(), body, source.Span{})
	return !c.isError(c.ExprType(ast.NoExprID, wrapped))
}
