// Package ordering implements the ordering-file and id-list surfaces of
// spec.md §6: a one-pass lexer/parser over newline-separated qualified
// names, and the OrdGroups structure the encoder builds from the
// resulting list.
package ordering

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"symck/internal/diag"
	"symck/internal/source"
)

// Name is one qualified name accepted by the parser: dotted path
// segments, each optionally carrying an array index or bit-selector
// suffix, kept as the raw text the lexer scanned.
type Name struct {
	Text source.StringID
	Span source.Span
}

// NodeList is the parser's output: names in file order.
type NodeList []Name

// parseLines splits src into trimmed, non-blank, non-comment lines. The
// ordering file and the id list share this much of their lexing: only
// the duplicate-handling policy differs between the two parsers below.
func parseLines(r io.Reader) []string {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseOrderFile implements the ordering-file parser: one qualified name
// per line, duplicates reported as a warning (not fatal) through
// reporter and otherwise kept in the returned list in file order.
func ParseOrderFile(r io.Reader, strs *source.Interner, reporter diag.Reporter) NodeList {
	seen := make(map[source.StringID]bool)
	var list NodeList
	for _, line := range parseLines(r) {
		id := strs.Intern(line)
		if seen[id] && reporter != nil {
			diag.ReportWarning(reporter, diag.OrderDuplicateName, source.Span{},
				fmt.Sprintf("%q appears more than once in the ordering file", line)).Emit()
		}
		seen[id] = true
		list = append(list, Name{Text: id})
	}
	return list
}

// ParseIdList implements the id-list parser: the same lexical surface as
// ParseOrderFile, but duplicates are silently kept rather than reported
// — spec.md §6 names it as a sibling surface with that one difference.
func ParseIdList(r io.Reader, strs *source.Interner) NodeList {
	var list NodeList
	for _, line := range parseLines(r) {
		list = append(list, Name{Text: strs.Intern(line)})
	}
	return list
}

// OrdGroups is a list of disjoint groups of Boolean variables, built
// from a NodeList by an encoder that already knows each name's type.
type OrdGroups struct {
	groups [][]source.StringID
	index  map[source.StringID]int // name -> group
}

// NewOrdGroups returns an empty group set.
func NewOrdGroups() *OrdGroups {
	return &OrdGroups{index: make(map[source.StringID]int)}
}

// CreateGroup starts a new, empty group and returns its index.
func (g *OrdGroups) CreateGroup() int {
	g.groups = append(g.groups, nil)
	return len(g.groups) - 1
}

// AddVariable assigns name to group. Reassigning an already-grouped name
// moves it out of its previous group.
func (g *OrdGroups) AddVariable(group int, name source.StringID) {
	if old, ok := g.index[name]; ok {
		g.removeFrom(old, name)
	}
	g.groups[group] = append(g.groups[group], name)
	g.index[name] = group
}

func (g *OrdGroups) removeFrom(group int, name source.StringID) {
	members := g.groups[group]
	for i, m := range members {
		if m == name {
			g.groups[group] = append(members[:i], members[i+1:]...)
			return
		}
	}
}

// GetGroupOf returns the group name belongs to, or ok=false if it has
// not been assigned to any group.
func (g *OrdGroups) GetGroupOf(name source.StringID) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// GetVarsInGroup returns group's members in insertion order.
func (g *OrdGroups) GetVarsInGroup(group int) []source.StringID {
	return append([]source.StringID(nil), g.groups[group]...)
}

// Size returns the number of groups.
func (g *OrdGroups) Size() int {
	return len(g.groups)
}

// groupSnapshot is the wire shape for a --dump-ordering debug snapshot:
// group membership by resolved variable name, since a source.StringID
// is only meaningful against the Interner that minted it and would not
// survive a round trip through a fresh process.
type groupSnapshot struct {
	Groups [][]string `msgpack:"groups"`
}

// Dump encodes g as a msgpack snapshot, resolving every member name
// through strs. This is a debug artifact of the derived groups, not a
// persisted symbol table.
func (g *OrdGroups) Dump(w io.Writer, strs *source.Interner) error {
	snap := groupSnapshot{Groups: make([][]string, len(g.groups))}
	for i, members := range g.groups {
		names := make([]string, len(members))
		for j, id := range members {
			name, _ := strs.Lookup(id)
			names[j] = name
		}
		snap.Groups[i] = names
	}
	return msgpack.NewEncoder(w).Encode(&snap)
}

// LoadGroups decodes a snapshot written by Dump, interning each member
// name against strs and rebuilding the group structure in its original
// order.
func LoadGroups(r io.Reader, strs *source.Interner) (*OrdGroups, error) {
	var snap groupSnapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("ordering: decoding snapshot: %w", err)
	}
	g := NewOrdGroups()
	for _, names := range snap.Groups {
		gi := g.CreateGroup()
		for _, name := range names {
			g.AddVariable(gi, strs.Intern(name))
		}
	}
	return g, nil
}
