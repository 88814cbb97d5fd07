// Package check implements the type checker (C5): a memoising recursive
// walk over the expression tree that assigns every sub-expression its
// SymbType, reporting violations through a diag.Reporter.
package check

import (
	"symck/internal/ast"
	"symck/internal/diag"
	"symck/internal/source"
	"symck/internal/symtab"
	"symck/internal/symtype"
	"symck/internal/walk"
)

// MemoKey identifies one memoised inference: an expression under a
// context. ctx is ast.NoExprID when the expression carries no context.
type MemoKey struct {
	Ctx  ast.ExprID
	Node ast.ExprID
}

// Checker is the C5 type checker: a walk.Dispatcher that wraps a
// walk.Master with memoisation, flushed on error or on the cache's
// redeclare trigger, per spec.md §4.5.
type Checker struct {
	pool     *ast.Pool
	table    *symtab.Table
	types    *symtype.Interner
	strs     *source.Interner
	reporter diag.Reporter
	master   *walk.Master

	memo        map[MemoKey]symtype.ID
	memoDisable int

	// BackwardCompat demotes Back-compat-type and Duplicate-constants
	// violations from fatal to warning, per spec.md §7.
	BackwardCompat bool

	atimeDepth int
}

// NewChecker builds a Checker over pool, resolving identifiers against
// table and rendering qualified names through strs. Diagnostics are sent
// to reporter (diag.NopReporter{} is a valid no-op sink).
func NewChecker(pool *ast.Pool, table *symtab.Table, strs *source.Interner, reporter diag.Reporter) *Checker {
	c := &Checker{
		pool:     pool,
		table:    table,
		types:    table.Interner,
		strs:     strs,
		reporter: reporter,
		memo:     make(map[MemoKey]symtype.ID),
	}
	c.master = walk.NewMaster(pool)
	for _, w := range []walk.Walker{
		exprWalker{c: c},
		callWalker{c: c},
		stmtWalker{c: c},
		pslWalker{c: c},
	} {
		if err := c.master.Register(w); err != nil {
			panic("check: " + err.Error())
		}
	}
	table.Cache().OnRedeclare(func(source.StringID) { c.Flush() })
	return c
}

// ExprType implements walk.Dispatcher: the memoising entry point every
// walker recurses through (directly, or via whatever Dispatcher it was
// handed — in this package that is always the Checker itself).
func (c *Checker) ExprType(ctx walk.Context, node ast.ExprID) symtype.ID {
	if node == ast.NoExprID {
		return c.types.Builtins().None
	}
	key := MemoKey{Ctx: ctx, Node: node}
	if c.memoDisable == 0 {
		if t, ok := c.memo[key]; ok {
			return t
		}
	}
	t := c.master.Dispatch(c, ctx, node)
	if c.memoDisable == 0 {
		c.memo[key] = t
	}
	return t
}

// Flush discards every memoised inference: spec.md §4.5 requires this on
// any detected error and whenever the symbol cache fires its redeclare
// trigger, so a retry after the underlying declarations change sees a
// clean state.
func (c *Checker) Flush() {
	c.memo = make(map[MemoKey]symtype.ID)
}

// disableMemo and enableMemo implement the reentrant counter PSL
// REPLPROP's forall uses to re-check a bound body once per element
// without earlier iterations' types leaking into later ones.
func (c *Checker) disableMemo() { c.memoDisable++ }
func (c *Checker) enableMemo() {
	if c.memoDisable == 0 {
		panic("check: enableMemo without matching disableMemo")
	}
	c.memoDisable--
}

func (c *Checker) isError(t symtype.ID) bool {
	return t == c.types.Builtins().Error
}

// violation reports a fatal diagnostic, flushes the memo, and returns
// Error — the fallback for inference rules with no sensible best-effort
// result to continue with.
func (c *Checker) violation(code diag.Code, span source.Span, msg string) symtype.ID {
	return c.violationFallback(code, span, msg, c.types.Builtins().Error)
}

// violationFallback implements the §4.5 failure policy: a Downgradable
// code under BackwardCompat mode is reported as a warning and the rule's
// best-effort fallback type is returned without flushing the memo;
// otherwise the violation is fatal, the memo is flushed, and Error is
// returned regardless of fallback.
func (c *Checker) violationFallback(code diag.Code, span source.Span, msg string, fallback symtype.ID) symtype.ID {
	if code.Downgradable() && c.BackwardCompat {
		if c.reporter != nil {
			diag.ReportWarning(c.reporter, code, span, msg).Emit()
		}
		return fallback
	}
	if c.reporter != nil {
		diag.ReportError(c.reporter, code, span, msg).Emit()
	}
	c.Flush()
	return c.types.Builtins().Error
}

// warn reports a non-fatal diagnostic without touching the memo or
// forcing Error, for constructs the §4.5 "warning" severity covers
// (e.g. CheckWarningType).
func (c *Checker) warn(code diag.Code, span source.Span, msg string) {
	if c.reporter != nil {
		diag.ReportWarning(c.reporter, code, span, msg).Emit()
	}
}

// ExprIsWellFormed reports whether expr's inferred type (under ctx) is
// not Error.
func (c *Checker) ExprIsWellFormed(ctx walk.Context, expr ast.ExprID) bool {
	return !c.isError(c.ExprType(ctx, expr))
}

// TypeIsWellFormed implements spec.md §4.5's well-formedness rules for a
// declared type: Boolean is always ok; Enum requires no duplicate
// constants (demotable under BackwardCompat); Word/WordArray widths must
// lie in (0, MaxWordWidth]; Array recurses on its element type.
func (c *Checker) TypeIsWellFormed(t symtype.ID, varName string, span source.Span) bool {
	typ, ok := c.types.Lookup(t)
	if !ok {
		return false
	}
	switch typ.Kind {
	case symtype.KindBoolean, symtype.KindInteger, symtype.KindReal, symtype.KindString, symtype.KindNone:
		return true
	case symtype.KindEnum:
		info, _ := c.types.EnumInfo(t)
		dups := symtype.DuplicateEnumConsts(info.Consts)
		if len(dups) == 0 {
			return true
		}
		result := c.violationFallback(diag.CheckDuplicateConstants, span,
			"enumeration for "+varName+" repeats constant "+dups[0], c.types.Builtins().Boolean)
		return !c.isError(result)
	case symtype.KindSignedWord, symtype.KindUnsignedWord:
		if symtype.ValidWordWidth(int(typ.Width)) {
			return true
		}
		c.violation(diag.CheckIncorrectWordWidth, span, "word width for "+varName+" is out of range")
		return false
	case symtype.KindWordArray:
		if symtype.ValidWordWidth(int(typ.Width)) && symtype.ValidWordWidth(int(typ.ValWidth)) {
			return true
		}
		c.violation(diag.CheckIncorrectWordArrayWidth, span, "word-array width for "+varName+" is out of range")
		return false
	case symtype.KindArray:
		return c.TypeIsWellFormed(typ.Elem, varName, span)
	default:
		return true
	}
}
