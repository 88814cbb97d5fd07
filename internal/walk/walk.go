// Package walk implements the walker dispatch table (C4): a registry of
// opcode-range-owning Walkers and a Master that routes each expression
// node to the walker whose range contains its opcode.
package walk

import (
	"fmt"

	"symck/internal/ast"
	"symck/internal/symtype"
)

// Context identifies the CONTEXT an expression is evaluated under.
// ast.NoExprID stands for "no context" (spec.md's Nil context).
type Context = ast.ExprID

// Dispatcher lets a Walker recurse into sub-expressions through whichever
// orchestration owns the current check: the raw Master (no memoisation),
// or a memoising checker that wraps one. A Walker never calls a sibling
// Walker directly — it always recurses through its Dispatcher, which is
// how cross-range recursion (spec.md §4.4's "throw back to the master")
// and shared memoisation (§4.5) both happen.
type Dispatcher interface {
	ExprType(ctx Context, node ast.ExprID) symtype.ID
}

// Walker owns a contiguous half-open opcode range and knows how to
// type-check any node whose Kind falls inside it.
type Walker interface {
	Range() (low, high ast.Kind)
	CheckExpr(d Dispatcher, ctx Context, node ast.ExprID) symtype.ID
}

// Master is the ordered registry of Walkers plus the Pool their nodes
// live in. It implements Dispatcher itself (with no memoisation), so it
// can be driven standalone in tests; internal/check wraps a Master to
// add memoisation while reusing its range-routing.
type Master struct {
	pool    *ast.Pool
	walkers []Walker
}

// NewMaster creates an empty registry over pool.
func NewMaster(pool *ast.Pool) *Master {
	return &Master{pool: pool}
}

// Pool returns the expression pool the master routes nodes from.
func (m *Master) Pool() *ast.Pool { return m.pool }

// Register adds w to the registry. Fails if w's range overlaps any
// already-registered walker's range.
func (m *Master) Register(w Walker) error {
	lo, hi := w.Range()
	if lo >= hi {
		return fmt.Errorf("walk: empty or inverted range [%d,%d)", lo, hi)
	}
	for _, existing := range m.walkers {
		elo, ehi := existing.Range()
		if lo < ehi && elo < hi {
			return fmt.Errorf("walk: range [%d,%d) overlaps existing [%d,%d)", lo, hi, elo, ehi)
		}
	}
	m.walkers = append(m.walkers, w)
	return nil
}

func (m *Master) find(k ast.Kind) Walker {
	for _, w := range m.walkers {
		lo, hi := w.Range()
		if k.InRange(lo, hi) {
			return w
		}
	}
	return nil
}

// Dispatch routes node to its owning walker, passing d through so the
// walker's own recursive sub-checks go through d (not necessarily m).
// Panics if no walker claims node's opcode: per spec.md §4.4, an
// unclaimed opcode is a programming error, not a user-facing violation.
func (m *Master) Dispatch(d Dispatcher, ctx Context, node ast.ExprID) symtype.ID {
	n := m.pool.Get(node)
	if n == nil {
		panic("walk: dispatch on a nil node")
	}
	w := m.find(n.Kind)
	if w == nil {
		panic(fmt.Sprintf("walk: no walker registered for opcode %s", n.Kind))
	}
	return w.CheckExpr(d, ctx, node)
}

// ExprType implements Dispatcher directly on the Master, with no
// memoisation — useful for exercising individual walkers in isolation.
func (m *Master) ExprType(ctx Context, node ast.ExprID) symtype.ID {
	return m.Dispatch(m, ctx, node)
}
