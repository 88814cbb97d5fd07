package ordering

import (
	"bytes"
	"strings"
	"testing"

	"symck/internal/diag"
	"symck/internal/source"
)

func TestParseOrderFileWarnsOnDuplicate(t *testing.T) {
	strs := source.NewInterner()
	bag := diag.NewBag(8)
	src := "a.b\nc[0]\na.b\n"

	list := ParseOrderFile(strings.NewReader(src), strs, diag.BagReporter{Bag: bag})
	if len(list) != 3 {
		t.Fatalf("expected 3 names (duplicates kept), got %d", len(list))
	}
	if bag.Len() != 1 || bag.Items()[0].Severity != diag.SevWarning {
		t.Fatalf("expected one warning diagnostic, got %+v", bag.Items())
	}
}

func TestParseIdListKeepsDuplicatesSilently(t *testing.T) {
	strs := source.NewInterner()
	src := "x\nx\ny\n"

	list := ParseIdList(strings.NewReader(src), strs)
	if len(list) != 3 {
		t.Fatalf("expected 3 names, got %d", len(list))
	}
}

func TestOrdGroups(t *testing.T) {
	strs := source.NewInterner()
	g := NewOrdGroups()
	grp := g.CreateGroup()
	x, y := strs.Intern("x"), strs.Intern("y")
	g.AddVariable(grp, x)
	g.AddVariable(grp, y)

	if g.Size() != 1 {
		t.Fatalf("expected 1 group, got %d", g.Size())
	}
	if got, ok := g.GetGroupOf(x); !ok || got != grp {
		t.Fatalf("GetGroupOf(x) = (%d, %v), want (%d, true)", got, ok, grp)
	}
	members := g.GetVarsInGroup(grp)
	if len(members) != 2 || members[0] != x || members[1] != y {
		t.Fatalf("unexpected members %v", members)
	}

	other := g.CreateGroup()
	g.AddVariable(other, x)
	if got, _ := g.GetGroupOf(x); got != other {
		t.Fatalf("expected x moved to group %d, got %d", other, got)
	}
	if members := g.GetVarsInGroup(grp); len(members) != 1 || members[0] != y {
		t.Fatalf("expected x removed from original group, got %v", members)
	}
}

func TestOrdGroupsDumpLoadRoundTrip(t *testing.T) {
	strs := source.NewInterner()
	g := NewOrdGroups()
	g1 := g.CreateGroup()
	g2 := g.CreateGroup()
	g.AddVariable(g1, strs.Intern("a"))
	g.AddVariable(g1, strs.Intern("b"))
	g.AddVariable(g2, strs.Intern("c"))

	var buf bytes.Buffer
	if err := g.Dump(&buf, strs); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	otherStrs := source.NewInterner()
	got, err := LoadGroups(&buf, otherStrs)
	if err != nil {
		t.Fatalf("LoadGroups: %v", err)
	}
	if got.Size() != 2 {
		t.Fatalf("expected 2 groups, got %d", got.Size())
	}
	members := got.GetVarsInGroup(0)
	if len(members) != 2 {
		t.Fatalf("expected 2 members in group 0, got %d", len(members))
	}
	nameA, _ := otherStrs.Lookup(members[0])
	nameB, _ := otherStrs.Lookup(members[1])
	if nameA != "a" || nameB != "b" {
		t.Fatalf("expected [a b] in group 0, got [%s %s]", nameA, nameB)
	}
	if members := got.GetVarsInGroup(1); len(members) != 1 {
		t.Fatalf("expected 1 member in group 1, got %d", len(members))
	}
}
