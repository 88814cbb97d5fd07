// Package diag defines the core diagnostic model shared by every phase of
// the symbol table and type-checking core.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     by symbol-table declaration (C2/C3), the ordering/id-list readers,
//     and the type checker (C5).
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity — tri-level enum (Info, Warning, Error), severity.go.
//   - Code — compact numeric identifier (codes.go) with a stable string form.
//   - Message — human oriented text.
//   - Primary span — the source.Span pointing at the offending construct.
//   - Notes — optional secondary spans/messages for context.
//
// # Emitting diagnostics
//
// Callers use a diag.Reporter to decouple emission from storage: construct
// a ReportBuilder via NewReportBuilder (or ReportError/ReportWarning/
// ReportInfo) and chain WithNote before calling Emit. diag.BagReporter
// aggregates diagnostics into a Bag, which supports sorting, deduplication,
// and filtering.
package diag
