package fixture

import (
	"strings"
	"testing"

	"symck/internal/ast"
	"symck/internal/source"
	"symck/internal/symtab"
	"symck/internal/symtype"
)

func TestLoadDeclaresVarsAndSections(t *testing.T) {
	pool := ast.NewPool(0)
	strs := source.NewInterner()
	table := symtab.NewTable(symtype.NewInterner())
	layer := table.NewLayer("main", symtab.PolicyDefault)

	src := `
# a tiny fixture
var x : boolean
var w : word[8]
define d := x & w = w8'0
trans next(x) = !x
init x = TRUE
invar w < w8'10
spec EF x
`
	doc, err := Load(strings.NewReader(src), layer, table.Interner, pool, strs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if table.Cache().KindOf(strs.Intern("x")) != symtab.KindStateVar {
		t.Fatal("expected x declared as a state var")
	}
	if table.Cache().KindOf(strs.Intern("d")) != symtab.KindDefine {
		t.Fatal("expected d declared as a define")
	}
	if doc.Sections.Trans == ast.NoExprID || doc.Sections.Init == ast.NoExprID || doc.Sections.Invar == ast.NoExprID {
		t.Fatal("expected trans/init/invar sections to be populated")
	}
	if len(doc.Properties) != 1 || doc.Properties[0].Kind != "spec" {
		t.Fatalf("expected one spec property, got %+v", doc.Properties)
	}
}

func TestParseExprWordLiteralAndOperators(t *testing.T) {
	pool := ast.NewPool(0)
	strs := source.NewInterner()

	expr, err := ParseExpr("w8'5 + w8'3 = w8'8", pool, strs)
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	n := pool.Get(expr)
	if n.Kind != ast.KindEqual {
		t.Fatalf("expected top-level EQUAL, got %v", n.Kind)
	}
}

func TestParseTypeWordVariants(t *testing.T) {
	in := symtype.NewInterner()
	got, err := parseType("signed word[4]", in)
	if err != nil {
		t.Fatalf("parseType: %v", err)
	}
	want := in.MakeWord(true, 4)
	if got != want {
		t.Fatalf("parseType(signed word[4]) = %v, want %v", got, want)
	}
}

func TestAssignRequiresEqDef(t *testing.T) {
	pool := ast.NewPool(0)
	strs := source.NewInterner()
	table := symtab.NewTable(symtype.NewInterner())
	layer := table.NewLayer("main", symtab.PolicyDefault)

	src := "var x : boolean\nassign x := TRUE\n"
	doc, err := Load(strings.NewReader(src), layer, table.Interner, pool, strs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	n := pool.Get(doc.Sections.Assign)
	elem := pool.Get(n.Left)
	if elem.Kind != ast.KindEqDef {
		t.Fatalf("expected ASSIGN body to wrap an EQDEF, got %v", elem.Kind)
	}
}
