// Package extern defines the contracts the type checker calls out
// across, per spec.md §6: resolving a name to the symbol that declared
// it, and flattening a Sexp-level width/range expression to a constant.
// Module instantiation and general flattening stay out of scope (§1);
// what's here is just enough surface for the core to be exercised
// without the real NuSMV front end.
package extern

import (
	"symck/internal/source"
	"symck/internal/symtab"
)

// Resolver implements ResolveSymbol: given a qualified name, report
// which layer (if any) declared it and under what symbol kind.
type Resolver interface {
	ResolveSymbol(name source.StringID) (kind symtab.SymbolKind, found bool)
}

// Flattener implements Compile_FlattenSexp: reduce a width/range
// argument expression to its constant integer value, the way the cast
// and bit-selection rules of §4.5 require before they can validate a
// width. Returning ok=false leaves the caller to report its own
// violation; Flattener never reports diagnostics itself.
type Flattener interface {
	Compile_FlattenSexp(expr source.StringID) (value int, ok bool)
}

// TableResolver is the default Resolver: a thin, read-only view over a
// symtab.Table's shared cache. It does no module instantiation and no
// flattening — just the lookup the checker needs to decide whether a
// name is visible at all before consulting the table directly for its
// type.
type TableResolver struct {
	table *symtab.Table
}

// NewTableResolver wraps table as a Resolver.
func NewTableResolver(table *symtab.Table) *TableResolver {
	return &TableResolver{table: table}
}

func (r *TableResolver) ResolveSymbol(name source.StringID) (symtab.SymbolKind, bool) {
	kind := r.table.Cache().KindOf(name)
	if kind == 0 {
		return 0, false
	}
	return kind, true
}
