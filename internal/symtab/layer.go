package symtab

import (
	"fmt"

	"symck/internal/ast"
	"symck/internal/source"
	"symck/internal/symtype"
)

// InsertPolicy governs where a layer is positioned relative to its
// table's other layers. See mustInsertBefore for the total order.
type InsertPolicy uint8

const (
	PolicyDefault InsertPolicy = iota
	PolicyTop
	PolicyBottom
	PolicyForceTop
	PolicyForceBottom
)

func (p InsertPolicy) String() string {
	switch p {
	case PolicyTop:
		return "top"
	case PolicyBottom:
		return "bottom"
	case PolicyForceTop:
		return "force-top"
	case PolicyForceBottom:
		return "force-bottom"
	default:
		return "default"
	}
}

// mustInsertBefore implements spec.md §4.3's total relation: does a new
// layer with policy newP have to precede an existing layer with policy
// existingP?
func mustInsertBefore(newP, existingP InsertPolicy) bool {
	switch newP {
	case PolicyForceTop:
		return true
	case PolicyTop:
		return existingP != PolicyForceTop
	case PolicyForceBottom:
		return false
	default: // Default, Bottom
		return existingP == PolicyForceBottom
	}
}

// Layer is a named view into a shared Cache: it owns the ordered set of
// names declared through it, while the Cache owns the records themselves.
type Layer struct {
	Name   string
	Policy InsertPolicy

	cache *Cache
	table *Table

	names []source.StringID
	index map[source.StringID]int
	counts [numSymbolKindBits]uint32

	boolStateVars  uint32
	boolFrozenVars uint32
	boolInputVars  uint32

	commitCount uint32
}

// CommitCount reports the number of encoders currently holding this layer
// committed.
func (l *Layer) CommitCount() uint32 { return l.commitCount }

// CommitToken proves the bearer went through Table.BeginCommit for a
// specific layer; only a token minted for l authorizes l.Commit/Uncommit.
type CommitToken struct{ layer *Layer }

// BeginCommit mints a token authorizing commit bookkeeping on l.
func (t *Table) BeginCommit(l *Layer) CommitToken { return CommitToken{layer: l} }

// Commit increments l's commit count. Panics if tok was not minted for l.
func (l *Layer) Commit(tok CommitToken) {
	if tok.layer != l {
		panic("symtab: commit token does not authorize this layer")
	}
	l.commitCount++
}

// Uncommit decrements l's commit count. Panics if tok was not minted for
// l, or if the count is already zero.
func (l *Layer) Uncommit(tok CommitToken) {
	if tok.layer != l {
		panic("symtab: commit token does not authorize this layer")
	}
	if l.commitCount == 0 {
		panic("symtab: uncommit without a matching commit")
	}
	l.commitCount--
}

func (l *Layer) isBoolean(t symtype.ID) bool {
	return t == l.table.Interner.Builtins().Boolean
}

func (l *Layer) track(name source.StringID, kind SymbolKind, isBool bool) {
	if _, ok := l.index[name]; ok {
		return
	}
	l.index[name] = len(l.names)
	l.names = append(l.names, name)
	l.counts[kindIndex(kind)]++
	if isBool {
		switch kind {
		case KindStateVar:
			l.boolStateVars++
		case KindFrozenVar:
			l.boolFrozenVars++
		case KindInputVar:
			l.boolInputVars++
		}
	}
}

func (l *Layer) untrack(name source.StringID, kind SymbolKind, isBool bool) {
	idx, ok := l.index[name]
	if !ok {
		return
	}
	delete(l.index, name)
	l.names = append(l.names[:idx], l.names[idx+1:]...)
	for n, i := range l.index {
		if i > idx {
			l.index[n] = i - 1
		}
	}
	l.counts[kindIndex(kind)]--
	if isBool {
		switch kind {
		case KindStateVar:
			l.boolStateVars--
		case KindFrozenVar:
			l.boolFrozenVars--
		case KindInputVar:
			l.boolInputVars--
		}
	}
}

func (l *Layer) canDeclare(name source.StringID) error {
	if _, ok := l.index[name]; ok {
		return &AlreadyDeclaredError{Name: name, Kind: l.cache.KindOf(name)}
	}
	return nil
}

func (l *Layer) requireUncommitted(op string) error {
	if l.commitCount > 0 {
		return fmt.Errorf("symtab: cannot %s in layer %q: commit count %d", op, l.Name, l.commitCount)
	}
	return nil
}

func (l *Layer) DeclareStateVar(name source.StringID, t symtype.ID) error {
	if err := l.canDeclare(name); err != nil {
		return err
	}
	if err := l.cache.NewStateVar(name, t); err != nil {
		return err
	}
	l.track(name, KindStateVar, l.isBoolean(t))
	return nil
}

func (l *Layer) DeclareFrozenVar(name source.StringID, t symtype.ID) error {
	if err := l.canDeclare(name); err != nil {
		return err
	}
	if err := l.cache.NewFrozenVar(name, t); err != nil {
		return err
	}
	l.track(name, KindFrozenVar, l.isBoolean(t))
	return nil
}

func (l *Layer) DeclareInputVar(name source.StringID, t symtype.ID) error {
	if err := l.canDeclare(name); err != nil {
		return err
	}
	if err := l.cache.NewInputVar(name, t); err != nil {
		return err
	}
	l.track(name, KindInputVar, l.isBoolean(t))
	return nil
}

func (l *Layer) DeclareVariableArray(name source.StringID, t symtype.ID) error {
	if err := l.canDeclare(name); err != nil {
		return err
	}
	if err := l.cache.NewVariableArray(name, t); err != nil {
		return err
	}
	l.track(name, KindVariableArray, false)
	return nil
}

// DeclareConstant is idempotent at the layer level: redeclaring the same
// constant name through the same layer does not duplicate layer
// bookkeeping, but still bumps the cache's shared reference count.
func (l *Layer) DeclareConstant(name source.StringID) error {
	if err := l.cache.NewConstant(name); err != nil {
		return err
	}
	l.track(name, KindConstant, false)
	return nil
}

func (l *Layer) DeclareDefine(name source.StringID, ctx, body ast.ExprID) error {
	if err := l.canDeclare(name); err != nil {
		return err
	}
	if err := l.cache.NewDefine(name, ctx, body); err != nil {
		return err
	}
	l.track(name, KindDefine, false)
	return nil
}

func (l *Layer) DeclareArrayDefine(name source.StringID, ctx, body ast.ExprID) error {
	if err := l.canDeclare(name); err != nil {
		return err
	}
	if err := l.cache.NewArrayDefine(name, ctx, body); err != nil {
		return err
	}
	l.track(name, KindArrayDefine, false)
	return nil
}

func (l *Layer) DeclareParameter(name source.StringID, ctx, actual ast.ExprID) error {
	if err := l.canDeclare(name); err != nil {
		return err
	}
	if err := l.cache.NewParameter(name, ctx, actual); err != nil {
		return err
	}
	l.track(name, KindParameter, false)
	return nil
}

func (l *Layer) DeclareFunction(name source.StringID, ctx ast.ExprID, fn *FunctionDescriptor) error {
	if err := l.canDeclare(name); err != nil {
		return err
	}
	if err := l.cache.NewFunction(name, ctx, fn); err != nil {
		return err
	}
	l.track(name, KindFunction, false)
	return nil
}

// Remove deletes name from both the layer and, when the cache's
// reference count reaches zero, the cache. Asserts the layer is
// uncommitted.
func (l *Layer) Remove(name source.StringID, kind SymbolKind) error {
	if err := l.requireUncommitted("remove " + kind.String()); err != nil {
		return err
	}
	r, ok := l.cache.byName[name]
	isBool := ok && !r.Tombstone && r.Kind == kind && (kind == KindStateVar || kind == KindFrozenVar || kind == KindInputVar) && l.isBoolean(r.Type)
	if err := l.cache.Remove(name, kind); err != nil {
		return err
	}
	l.untrack(name, kind, isBool)
	return nil
}

// Names returns the layer's own declared names in insertion order.
func (l *Layer) Names() []source.StringID {
	return append([]source.StringID(nil), l.names...)
}

// Count returns the number of names of kind declared through this layer.
func (l *Layer) Count(kind SymbolKind) uint32 { return l.counts[kindIndex(kind)] }

// BooleanStateVars, BooleanFrozenVars, BooleanInputVars report the
// boolean-typed subset of this layer's variable counters.
func (l *Layer) BooleanStateVars() uint32  { return l.boolStateVars }
func (l *Layer) BooleanFrozenVars() uint32 { return l.boolFrozenVars }
func (l *Layer) BooleanInputVars() uint32  { return l.boolInputVars }
