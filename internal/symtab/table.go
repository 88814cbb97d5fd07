package symtab

import (
	"fmt"

	"symck/internal/source"
	"symck/internal/symtype"
)

// Table owns the shared Cache and the ordered list of Layers built on
// top of it, per spec.md §4.3.
type Table struct {
	cache    *Cache
	Interner *symtype.Interner
	layers   []*Layer
}

// NewTable creates an empty table backed by a fresh Cache, against the
// given type interner (shared across every layer of the table).
func NewTable(interner *symtype.Interner) *Table {
	return &Table{cache: NewCache(0), Interner: interner}
}

// Cache exposes the table's shared symbol cache.
func (t *Table) Cache() *Cache { return t.cache }

// NewLayer inserts a freshly created, empty layer at the position its
// policy requires relative to the table's existing layers. Two layers
// sharing the same forced policy (ForceTop or ForceBottom) is a
// programming error.
func (t *Table) NewLayer(name string, policy InsertPolicy) *Layer {
	if policy == PolicyForceTop || policy == PolicyForceBottom {
		for _, existing := range t.layers {
			if existing.Policy == policy {
				panic(fmt.Sprintf("symtab: two layers with forced policy %s", policy))
			}
		}
	}

	layer := &Layer{
		Name:   name,
		Policy: policy,
		cache:  t.cache,
		table:  t,
		index:  make(map[source.StringID]int),
	}

	insertAt := len(t.layers)
	for i, existing := range t.layers {
		if mustInsertBefore(policy, existing.Policy) {
			insertAt = i
			break
		}
	}
	t.layers = append(t.layers, nil)
	copy(t.layers[insertAt+1:], t.layers[insertAt:])
	t.layers[insertAt] = layer
	return layer
}

// RemoveLayer detaches l from the table. Asserts l's commit count is
// zero and that l actually belongs to this table.
func (t *Table) RemoveLayer(l *Layer) error {
	if l.commitCount > 0 {
		return fmt.Errorf("symtab: cannot destroy layer %q: commit count %d", l.Name, l.commitCount)
	}
	for i, existing := range t.layers {
		if existing == l {
			t.layers = append(t.layers[:i], t.layers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("symtab: layer %q does not belong to this table", l.Name)
}

// Layers returns the table's layers in their current (policy-ordered)
// sequence.
func (t *Table) Layers() []*Layer {
	return append([]*Layer(nil), t.layers...)
}

// LayerOf returns the layer that owns name, or nil if no layer of this
// table declared it.
func (t *Table) LayerOf(name source.StringID) *Layer {
	for _, l := range t.layers {
		if _, ok := l.index[name]; ok {
			return l
		}
	}
	return nil
}

// RedeclareStateAsFrozen atomically flips a state variable to a frozen
// variable, recounting both the cache's and the owning layer's
// state/frozen (and boolean) counters. Per spec.md §8 scenario 4.
func (t *Table) RedeclareStateAsFrozen(name source.StringID) error {
	r, ok := t.cache.byName[name]
	if !ok || r.Tombstone {
		return &NotDeclaredError{Name: name}
	}
	if r.Kind != KindStateVar {
		return &KindMismatchError{Name: name, Want: KindStateVar, Have: r.Kind}
	}
	layer := t.LayerOf(name)
	if layer == nil {
		return fmt.Errorf("symtab: %d has no owning layer", name)
	}

	isBool := layer.isBoolean(r.Type)

	r.Kind = KindFrozenVar
	t.cache.counts[kindIndex(KindStateVar)]--
	t.cache.counts[kindIndex(KindFrozenVar)]++

	layer.counts[kindIndex(KindStateVar)]--
	layer.counts[kindIndex(KindFrozenVar)]++
	if isBool {
		layer.boolStateVars--
		layer.boolFrozenVars++
	}
	return nil
}

// IsFrozenVar reports whether name is currently declared as a frozen
// variable.
func (t *Table) IsFrozenVar(name source.StringID) bool {
	return t.cache.KindOf(name) == KindFrozenVar
}
