package check

import (
	"symck/internal/ast"
	"symck/internal/diag"
	"symck/internal/source"
	"symck/internal/symtype"
	"symck/internal/walk"
)

// exprWalker owns every opcode from the leaf block through the temporal
// block: literals, identifiers, casts, arithmetic, shifts, comparisons,
// assignment, logic, bit/word-array operators, set operators,
// conditionals, and init/next/CTL/LTL forms.
type exprWalker struct{ c *Checker }

func (w exprWalker) Range() (ast.Kind, ast.Kind) { return ast.KindLeafLo, ast.KindTemporalHi }

func (w exprWalker) CheckExpr(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	return w.c.checkExpr(d, ctx, node)
}

func (c *Checker) checkExpr(d walk.Dispatcher, ctx walk.Context, node ast.ExprID) symtype.ID {
	n := c.pool.Get(node)
	switch {
	case n.Kind.InRange(ast.KindLeafLo, ast.KindLeafHi):
		return c.checkLeaf(d, ctx, node, n)
	case n.Kind.InRange(ast.KindContainerLo, ast.KindContainerHi):
		return c.checkContainer(d, ctx, node, n)
	case n.Kind.InRange(ast.KindCastLo, ast.KindCastHi):
		return c.checkCast(d, ctx, node, n)
	case n.Kind.InRange(ast.KindArithLo, ast.KindArithHi):
		return c.checkArith(d, ctx, node, n)
	case n.Kind.InRange(ast.KindShiftLo, ast.KindShiftHi):
		return c.checkShift(d, ctx, node, n)
	case n.Kind.InRange(ast.KindCompareLo, ast.KindCompareHi):
		return c.checkCompare(d, ctx, node, n)
	case n.Kind.InRange(ast.KindAssignLo, ast.KindAssignHi):
		return c.checkAssign(d, ctx, node, n)
	case n.Kind.InRange(ast.KindLogicLo, ast.KindLogicHi):
		return c.checkLogic(d, ctx, node, n)
	case n.Kind.InRange(ast.KindBitopLo, ast.KindBitopHi):
		return c.checkBitop(d, ctx, node, n)
	case n.Kind.InRange(ast.KindSetopLo, ast.KindSetopHi):
		return c.checkSetop(d, ctx, node, n)
	case n.Kind.InRange(ast.KindCondLo, ast.KindCondHi):
		return c.checkCond(d, ctx, node, n)
	case n.Kind.InRange(ast.KindTemporalLo, ast.KindTemporalHi):
		return c.checkTemporal(d, ctx, node, n)
	default:
		panic("check: unclaimed expr opcode " + n.Kind.String())
	}
}

func (c *Checker) checkLeaf(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	switch n.Kind {
	case ast.KindTrue, ast.KindFalse:
		return b.Boolean
	case ast.KindNumber:
		return b.Integer
	case ast.KindNumberUnsignedWord:
		return c.types.MakeWord(false, n.Width)
	case ast.KindNumberSignedWord:
		return c.types.MakeWord(true, n.Width)
	case ast.KindNumberReal, ast.KindNumberFrac, ast.KindNumberExp:
		return b.Real
	case ast.KindTwoDots:
		return c.types.Intern(symtype.Type{Kind: symtype.KindSetInt})
	case ast.KindBit:
		return b.Boolean
	case ast.KindAtom, ast.KindDot, ast.KindArray:
		return c.resolveIdentifier(d, ctx, node)
	case ast.KindContext:
		return d.ExprType(n.Left, n.Right)
	default:
		panic("check: unhandled leaf opcode " + n.Kind.String())
	}
}

func (c *Checker) checkContainer(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	switch n.Kind {
	case ast.KindCons:
		return c.listLUB(d, ctx, node, n.Span)
	case ast.KindArrayDef:
		return c.checkArrayDef(d, ctx, node, n)
	default:
		panic("check: unhandled container opcode " + n.Kind.String())
	}
}

// listLUB computes the least upper bound of a CONS-built list's element
// types, per the CONS rule of spec.md §4.5.
func (c *Checker) listLUB(d walk.Dispatcher, ctx walk.Context, head ast.ExprID, span source.Span) symtype.ID {
	var result symtype.ID
	first, bad := true, false
	c.pool.List(head, func(elem ast.ExprID) {
		if bad {
			return
		}
		t := d.ExprType(ctx, elem)
		if c.isError(t) {
			bad = true
			return
		}
		if first {
			result, first = t, false
			return
		}
		lub, ok := c.types.LUB(result, t)
		if !ok {
			bad = true
			return
		}
		result = lub
	})
	if bad {
		return c.violation(diag.CheckMandatoryType, span, "list elements have no common type")
	}
	if first {
		return c.types.Builtins().None
	}
	return result
}

func (c *Checker) checkArrayDef(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	elem := c.listLUB(d, ctx, node, n.Span)
	if c.isError(elem) {
		return elem
	}
	count := c.pool.ListLen(node)
	if count == 0 {
		return c.violation(diag.CheckMandatoryType, n.Span, "array definition has no elements")
	}
	return c.types.MakeArray(elem, 0, int64(count-1))
}

func (c *Checker) checkCast(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	if n.Kind == ast.KindCount {
		return c.checkCount(d, ctx, n)
	}
	arg := d.ExprType(ctx, n.Left)
	if c.isError(arg) {
		return arg
	}
	switch n.Kind {
	case ast.KindCastBool:
		if (c.types.IsUnsignedWord(arg) && c.types.SizeInBits(arg) == 1) || arg == b.Integer {
			return b.Boolean
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "bool() requires an unsigned word[1] or an integer")
	case ast.KindCastWord1:
		if arg == b.Boolean {
			return c.types.MakeWord(false, 1)
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "word1() requires a boolean")
	case ast.KindCastSigned:
		if c.types.IsUnsignedWord(arg) {
			return c.types.MakeWord(true, uint8(c.types.SizeInBits(arg)))
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "signed() requires an unsigned word")
	case ast.KindCastUnsigned:
		if c.types.IsSignedWord(arg) {
			return c.types.MakeWord(false, uint8(c.types.SizeInBits(arg)))
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "unsigned() requires a signed word")
	case ast.KindWSizeof:
		if c.types.IsWord(arg) {
			return b.Integer
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "sizeof() requires a word")
	case ast.KindCastToInt:
		if c.types.IsWord(arg) || arg == b.Boolean || arg == b.Integer {
			return b.Integer
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "toint() requires a word, boolean, or integer")
	case ast.KindExtend:
		return c.checkExtendOrResize(n, arg, true)
	case ast.KindWResize:
		return c.checkExtendOrResize(n, arg, false)
	default:
		panic("check: unhandled cast opcode " + n.Kind.String())
	}
}

func (c *Checker) checkExtendOrResize(n *ast.Node, arg symtype.ID, extend bool) symtype.ID {
	if !c.types.IsWord(arg) {
		return c.violation(diag.CheckMandatoryType, n.Span, "extend/resize requires a word operand")
	}
	amount, ok := c.constIntValue(n.Right)
	if !ok {
		return c.violation(diag.CheckNonConstantExpression, n.Span, "extend/resize width must be a constant")
	}
	w := int64(c.types.SizeInBits(arg))
	signed := c.types.IsSignedWord(arg)
	var width int64
	if extend {
		if amount < 0 {
			return c.violation(diag.CheckOutOfWordWidth, n.Span, "extend amount must be non-negative")
		}
		width = w + amount
	} else {
		if amount <= 0 {
			return c.violation(diag.CheckOutOfWordWidth, n.Span, "resize width must be positive")
		}
		width = amount
	}
	if width <= 0 || width > symtype.MaxWordWidth {
		return c.violation(diag.CheckOutOfWordWidth, n.Span, "resulting word width is out of range")
	}
	return c.types.MakeWord(signed, uint8(width))
}

func (c *Checker) checkCount(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	ok := true
	c.pool.List(n.Left, func(elem ast.ExprID) {
		if !ok {
			return
		}
		t := d.ExprType(ctx, elem)
		if c.isError(t) || t != b.Boolean {
			ok = false
		}
	})
	if !ok {
		return c.violation(diag.CheckMandatoryType, n.Span, "count() requires a list of boolean operands")
	}
	return b.Integer
}

// constIntValue evaluates the handful of AST shapes the checker accepts
// as a "statically-known constant" per spec.md §4.5: bare NUMBER
// literals and their unary negation.
func (c *Checker) constIntValue(node ast.ExprID) (int64, bool) {
	n := c.pool.Get(node)
	if n == nil {
		return 0, false
	}
	switch n.Kind {
	case ast.KindNumber:
		return n.IntVal, true
	case ast.KindUMinus:
		v, ok := c.constIntValue(n.Left)
		if !ok {
			return 0, false
		}
		return -v, true
	default:
		return 0, false
	}
}

func (c *Checker) checkArith(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	if n.Kind == ast.KindUMinus {
		if l == b.Integer || l == b.Real || c.types.IsWord(l) {
			return l
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "unary minus requires a numeric or word operand")
	}
	r := d.ExprType(ctx, n.Right)
	if c.isError(r) {
		return r
	}
	if n.Kind == ast.KindMod {
		if l != r {
			return c.violation(diag.CheckMandatoryType, n.Span, "mod requires operands of the same type")
		}
		if l == b.Integer || c.types.IsWord(l) {
			return l
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "mod requires integer or word operands")
	}
	g, ok := c.types.Greater(l, r)
	if !ok || !(g == b.Integer || g == b.Real || c.types.IsWord(g)) {
		return c.violation(diag.CheckMandatoryType, n.Span, "arithmetic operand types do not agree")
	}
	return g
}

func (c *Checker) checkShift(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	if !c.types.IsWord(l) {
		return c.violation(diag.CheckMandatoryType, n.Span, "shift/rotate requires a word operand")
	}
	r := d.ExprType(ctx, n.Right)
	if c.isError(r) {
		return r
	}
	if r != b.Integer && !c.types.IsUnsignedWord(r) {
		return c.violation(diag.CheckMandatoryType, n.Span, "shift amount must be integer or unsigned word")
	}
	if amount, ok := c.constIntValue(n.Right); ok {
		if amount > int64(c.types.SizeInBits(l)) {
			return c.violation(diag.CheckOutOfWordWidth, n.Span, "shift amount exceeds word width")
		}
	}
	return l
}

func (c *Checker) checkCompare(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	r := d.ExprType(ctx, n.Right)
	if c.isError(r) {
		return r
	}
	g, ok := c.types.Greater(l, r)
	if !ok {
		return c.violation(diag.CheckMandatoryType, n.Span, "comparison operand types do not agree")
	}
	if n.Kind != ast.KindEqual && n.Kind != ast.KindNotEqual {
		if !(g == b.Integer || g == b.Real || c.types.IsWord(g)) {
			return c.violation(diag.CheckMandatoryType, n.Span, "relational comparison requires integer, real, or word operands")
		}
	}
	return b.Boolean
}

func (c *Checker) checkAssign(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	r := d.ExprType(ctx, n.Right)
	if c.isError(r) {
		return r
	}
	rr := c.types.UnliftSet(r)
	if _, ok := c.types.ConvertRightToLeft(l, rr); !ok {
		return c.violation(diag.CheckMandatoryType, n.Span, "assignment right-hand side does not convert to the left-hand side's type")
	}
	return c.types.Builtins().Boolean
}

func (c *Checker) checkLogic(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	if n.Kind == ast.KindNot {
		arg := d.ExprType(ctx, n.Left)
		if c.isError(arg) {
			return arg
		}
		if arg == b.Boolean || c.types.IsWord(arg) {
			return arg
		}
		return c.violation(diag.CheckMandatoryType, n.Span, "not requires a boolean or word operand")
	}

	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	r := d.ExprType(ctx, n.Right)
	if c.isError(r) {
		return r
	}

	if n.Kind == ast.KindAnd {
		return c.checkAndConnective(n, l, r)
	}
	if l == b.Boolean && r == b.Boolean {
		return l
	}
	if c.types.IsWord(l) && l == r {
		return l
	}
	return c.violation(diag.CheckMandatoryType, n.Span, "logical operator requires matching boolean or word operands")
}

// checkAndConnective implements AND's dual role: a plain logical
// connective and the list-joiner for Statement-typed sections.
func (c *Checker) checkAndConnective(n *ast.Node, l, r symtype.ID) symtype.ID {
	b := c.types.Builtins()
	switch {
	case l == b.None:
		return r
	case r == b.None:
		return l
	case l == b.Statement && r == b.Statement:
		return b.Statement
	case l == b.Statement && r == b.Boolean, l == b.Boolean && r == b.Statement:
		return b.Boolean
	case l == b.Boolean && r == b.Boolean:
		return b.Boolean
	case c.types.IsWord(l) && l == r:
		return l
	default:
		return c.violation(diag.CheckMandatoryType, n.Span, "and requires matching boolean/statement or word operands")
	}
}

func (c *Checker) checkBitop(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	switch n.Kind {
	case ast.KindConcatenation:
		return c.checkConcatenation(d, ctx, n)
	case ast.KindBitSelection:
		return c.checkBitSelection(d, ctx, n)
	case ast.KindWAWrite:
		return c.checkWAWrite(d, ctx, n)
	case ast.KindWARead:
		return c.checkWARead(d, ctx, n)
	default:
		panic("check: unhandled bitop opcode " + n.Kind.String())
	}
}

func (c *Checker) checkConcatenation(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	r := d.ExprType(ctx, n.Right)
	if c.isError(r) {
		return r
	}
	if !c.types.IsWord(l) || !c.types.IsWord(r) {
		return c.violation(diag.CheckMandatoryType, n.Span, "concatenation requires two word operands")
	}
	total := c.types.SizeInBits(l) + c.types.SizeInBits(r)
	if total > symtype.MaxWordWidth {
		return c.violation(diag.CheckOutOfWordWidth, n.Span, "concatenation result exceeds the maximum word width")
	}
	return c.types.MakeWord(false, uint8(total))
}

// checkBitSelection expects n.Right to point at a TWODOTS node whose own
// Left/Right hold the constant high/low bounds, matching how the front
// end packs a t[h:l] selector.
func (c *Checker) checkBitSelection(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	base := d.ExprType(ctx, n.Left)
	if c.isError(base) {
		return base
	}
	if !c.types.IsWord(base) {
		return c.violation(diag.CheckMandatoryType, n.Span, "bit selection requires a word operand")
	}
	bounds := c.pool.Get(n.Right)
	if bounds == nil || bounds.Kind != ast.KindTwoDots {
		return c.violation(diag.CheckInvalidRange, n.Span, "bit selection requires a h:l range")
	}
	h, hok := c.constIntValue(bounds.Left)
	l, lok := c.constIntValue(bounds.Right)
	if !hok || !lok {
		return c.violation(diag.CheckNonConstantExpression, n.Span, "bit selection bounds must be constant")
	}
	w := int64(c.types.SizeInBits(base))
	if !(0 <= l && l <= h && h < w) {
		return c.violation(diag.CheckInvalidRange, n.Span, "bit selection bounds are out of range")
	}
	return c.types.MakeWord(false, uint8(h-l+1))
}

// checkWAWrite expects n.Right to point at a two-element CONS list
// holding the index and the value to store.
func (c *Checker) checkWAWrite(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	arr := d.ExprType(ctx, n.Left)
	if c.isError(arr) {
		return arr
	}
	if !c.types.IsWordArray(arr) {
		return c.violation(diag.CheckMandatoryType, n.Span, "wawrite requires a word-array operand")
	}
	args := c.pool.ListSlice(n.Right)
	if len(args) != 2 {
		return c.violation(diag.CheckParamsCount, n.Span, "wawrite requires an index and a value")
	}
	idx := d.ExprType(ctx, args[0])
	val := d.ExprType(ctx, args[1])
	if c.isError(idx) || c.isError(val) {
		return c.types.Builtins().Error
	}
	arrType := c.types.MustLookup(arr)
	if !c.types.IsUnsignedWord(idx) || c.types.SizeInBits(idx) != int(arrType.Width) {
		return c.violation(diag.CheckOutOfWordArrayWidth, n.Span, "wawrite index width does not match the array's address width")
	}
	if !c.types.IsUnsignedWord(val) || c.types.SizeInBits(val) != int(arrType.ValWidth) {
		return c.violation(diag.CheckOutOfWordArrayWidth, n.Span, "wawrite value width does not match the array's value width")
	}
	return arr
}

func (c *Checker) checkWARead(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	arr := d.ExprType(ctx, n.Left)
	if c.isError(arr) {
		return arr
	}
	if !c.types.IsWordArray(arr) {
		return c.violation(diag.CheckMandatoryType, n.Span, "waread requires a word-array operand")
	}
	idx := d.ExprType(ctx, n.Right)
	if c.isError(idx) {
		return idx
	}
	arrType := c.types.MustLookup(arr)
	if !c.types.IsUnsignedWord(idx) || c.types.SizeInBits(idx) != int(arrType.Width) {
		return c.violation(diag.CheckOutOfWordArrayWidth, n.Span, "waread index width does not match the array's address width")
	}
	return c.types.MakeWord(false, arrType.ValWidth)
}

func (c *Checker) checkSetop(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	r := d.ExprType(ctx, n.Right)
	if c.isError(r) {
		return r
	}
	ls, lok := c.types.LiftSet(l)
	rs, rok := c.types.LiftSet(r)
	if !lok || !rok {
		return c.violation(diag.CheckMandatoryType, n.Span, "operand cannot be lifted to a set type")
	}
	switch n.Kind {
	case ast.KindUnion:
		lub, ok := c.types.LUB(ls, rs)
		if !ok {
			return c.violation(diag.CheckMandatoryType, n.Span, "union operands have no common set type")
		}
		return lub
	case ast.KindSetIn:
		if _, ok := c.types.Greater(ls, rs); !ok {
			return c.violation(diag.CheckMandatoryType, n.Span, "in requires comparable set operands")
		}
		return c.types.Builtins().Boolean
	default:
		panic("check: unhandled setop opcode " + n.Kind.String())
	}
}

func (c *Checker) checkCond(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	switch n.Kind {
	case ast.KindFailure:
		return b.Boolean
	case ast.KindIfThenElse:
		cond := d.ExprType(ctx, n.Left)
		if c.isError(cond) {
			return cond
		}
		if cond != b.Boolean {
			return c.violation(diag.CheckMandatoryType, n.Span, "if-then-else condition must be boolean")
		}
		branches := c.pool.Get(n.Right)
		if branches == nil || branches.Kind != ast.KindCons {
			return c.violation(diag.CheckMandatoryType, n.Span, "if-then-else requires both branches")
		}
		return c.branchLUB(d, ctx, branches.Left, branches.Right, n.Span)
	case ast.KindCase:
		return c.checkCase(d, ctx, n)
	default:
		panic("check: unhandled conditional opcode " + n.Kind.String())
	}
}

func (c *Checker) branchLUB(d walk.Dispatcher, ctx walk.Context, a, other ast.ExprID, span source.Span) symtype.ID {
	ta := d.ExprType(ctx, a)
	if c.isError(ta) {
		return ta
	}
	tb := d.ExprType(ctx, other)
	if c.isError(tb) {
		return tb
	}
	ta, tb = c.crossLiftSets(ta, tb)
	lub, ok := c.types.LUB(ta, tb)
	if !ok {
		return c.violation(diag.CheckMandatoryType, span, "branches have no common type")
	}
	return lub
}

// crossLiftSets lifts whichever of a, b is scalar to the other's set
// family when exactly one side is already a set, per the CASE/ITE rule.
func (c *Checker) crossLiftSets(a, b symtype.ID) (symtype.ID, symtype.ID) {
	switch {
	case c.types.IsSet(a) && !c.types.IsSet(b):
		if lifted, ok := c.types.LiftSet(b); ok {
			b = lifted
		}
	case c.types.IsSet(b) && !c.types.IsSet(a):
		if lifted, ok := c.types.LiftSet(a); ok {
			a = lifted
		}
	}
	return a, b
}

// checkCase walks n.Left as a CONS list of (condition . result) arm
// pairs, per the CASE rule of spec.md §4.5.
func (c *Checker) checkCase(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	var result symtype.ID
	first, bad := true, false
	c.pool.List(n.Left, func(arm ast.ExprID) {
		if bad {
			return
		}
		pair := c.pool.Get(arm)
		if pair == nil || pair.Kind != ast.KindCons {
			bad = true
			return
		}
		cond := d.ExprType(ctx, pair.Left)
		if c.isError(cond) {
			bad = true
			return
		}
		if cond != b.Boolean {
			c.violation(diag.CheckMandatoryType, pair.Span, "case condition must be boolean")
			bad = true
			return
		}
		res := d.ExprType(ctx, pair.Right)
		if c.isError(res) {
			bad = true
			return
		}
		if first {
			result, first = res, false
			return
		}
		result, res = c.crossLiftSets(result, res)
		lub, ok := c.types.LUB(result, res)
		if !ok {
			bad = true
			return
		}
		result = lub
	})
	if bad {
		return c.types.Builtins().Error
	}
	if first {
		return c.violation(diag.CheckMandatoryType, n.Span, "case has no arms")
	}
	return result
}

func (c *Checker) checkTemporal(d walk.Dispatcher, ctx walk.Context, node ast.ExprID, n *ast.Node) symtype.ID {
	switch {
	case n.Kind == ast.KindSmallInit || n.Kind == ast.KindNext:
		return d.ExprType(ctx, n.Left)
	case n.Kind.InRange(ast.KindEX, ast.KindABG+1):
		return c.checkTemporalUnary(d, ctx, n)
	case n.Kind.InRange(ast.KindAU, ast.KindMaxU+1):
		return c.checkTemporalBinary(d, ctx, n)
	default:
		panic("check: unhandled temporal opcode " + n.Kind.String())
	}
}

func (c *Checker) checkTemporalUnary(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	arg := d.ExprType(ctx, n.Left)
	if c.isError(arg) {
		return arg
	}
	if arg != b.Boolean {
		return c.violation(diag.CheckMandatoryType, n.Span, "temporal operator requires a boolean operand")
	}
	switch n.Kind {
	case ast.KindEBF, ast.KindABF, ast.KindEBG, ast.KindABG:
		if !c.checkNonNegativeRange(n.Right, n.Span) {
			return c.types.Builtins().Error
		}
	}
	return b.Boolean
}

func (c *Checker) checkNonNegativeRange(rangeNode ast.ExprID, span source.Span) bool {
	bounds := c.pool.Get(rangeNode)
	if bounds == nil || bounds.Kind != ast.KindTwoDots {
		c.violation(diag.CheckInvalidRange, span, "bounded temporal operator requires a constant range")
		return false
	}
	lo, lok := c.constIntValue(bounds.Left)
	hi, hok := c.constIntValue(bounds.Right)
	if !lok || !hok {
		c.violation(diag.CheckNonConstantExpression, span, "bounded temporal operator range must be constant")
		return false
	}
	if lo < 0 || hi < lo {
		c.violation(diag.CheckInvalidRange, span, "bounded temporal operator range must be non-negative and non-decreasing")
		return false
	}
	return true
}

// checkTemporalBinary covers AU/EU/UNTIL/SINCE/ABU/EBU/MINU/MAXU: every
// one of them requires two boolean operands and returns Boolean. ABU/EBU
// are checked exactly like AU/EU: no bounded range is read or validated
// for them.
func (c *Checker) checkTemporalBinary(d walk.Dispatcher, ctx walk.Context, n *ast.Node) symtype.ID {
	b := c.types.Builtins()
	l := d.ExprType(ctx, n.Left)
	if c.isError(l) {
		return l
	}
	r := d.ExprType(ctx, n.Right)
	if c.isError(r) {
		return r
	}
	if l != b.Boolean || r != b.Boolean {
		return c.violation(diag.CheckMandatoryType, n.Span, "temporal binary operator requires boolean operands")
	}
	return b.Boolean
}
