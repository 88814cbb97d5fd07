package check

import (
	"symck/internal/ast"
	"symck/internal/diag"
	"symck/internal/symtype"
	"symck/internal/walk"
)

// stmtWalker owns the statement/section block: the top-level constructs
// check_constraints and check_property wrap expressions in before
// delegating to the expression walkers.
type stmtWalker struct{ c *Checker }

func (w stmtWalker) Range() (ast.Kind, ast.Kind) { return ast.KindStmtLo, ast.KindStmtHi }

func (w stmtWalker) CheckExpr(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	return w.c.checkStmt(d, ctx, node)
}

func (c *Checker) checkStmt(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	n := c.pool.Get(node)
	switch n.Kind {
	case ast.KindDefine:
		return d.ExprType(ctx, n.Left)
	case ast.KindAssign:
		return c.checkAssignStmt(d, ctx, n)
	case ast.KindCompute:
		return c.checkComputeStmt(d, ctx, n)
	case ast.KindATime:
		return c.checkATime(d, ctx, n)
	default:
		return c.checkSectionTag(d, ctx, n)
	}
}

// checkSectionTag implements spec.md §4.5's uniform rule for
// TRANS/INIT/INVAR/FAIRNESS/JUSTICE/COMPASSION/SPEC/LTLSPEC/PSLSPEC/
// INVARSPEC/ISA/CONSTRAINT/MODULE/PROCESS/MODTYPE/LAMBDA: the operand
// must be Boolean or Statement, and the section tag passes its type
// straight through.
func (c *Checker) checkSectionTag(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	t := d.ExprType(ctx, n.Left)
	if c.isError(t) {
		return t
	}
	if t == b.Boolean || t == b.Statement {
		return t
	}
	return c.violation(diag.CheckMandatoryType, n.Span, "section body must be boolean or a list of constraints")
}

func (c *Checker) checkAssignStmt(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	body := c.pool.Get(n.Left)
	if body == nil || body.Kind != ast.KindEqDef {
		return c.violation(diag.CheckMandatoryType, n.Span, "assign body must be an assignment")
	}
	return d.ExprType(ctx, n.Left)
}

func (c *Checker) checkComputeStmt(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	body := c.pool.Get(n.Left)
	if body == nil || (body.Kind != ast.KindMinU && body.Kind != ast.KindMaxU) {
		return c.violation(diag.CheckMandatoryType, n.Span, "COMPUTE body must be MIN or MAX")
	}
	return d.ExprType(ctx, n.Left)
}

// checkATime implements ATTIME(e,n): n.Left is the boolean expression,
// n.Right the NUMBER constant. ATTIME may not nest, tracked by the
// Checker's atimeDepth counter.
func (c *Checker) checkATime(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	if c.atimeDepth > 0 {
		return c.violation(diag.CheckATimeNested, n.Span, "ATTIME cannot nest inside another ATTIME")
	}
	if _, ok := c.constIntValue(n.Right); !ok {
		return c.violation(diag.CheckATimeNumberRequired, n.Span, "ATTIME requires a constant NUMBER argument")
	}

	c.atimeDepth++
	e := d.ExprType(ctx, n.Left)
	c.atimeDepth--

	if c.isError(e) {
		return e
	}
	if e != b.Boolean {
		return c.violation(diag.CheckMandatoryType, n.Span, "ATTIME expression must be boolean")
	}
	return b.Boolean
}
