package fixture

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"symck/internal/ast"
	"symck/internal/source"
	"symck/internal/symtab"
	"symck/internal/symtype"
)

// Sections is the document's constraint sections, each a CONS-linked
// list of expressions (NoExprID for an empty section), ready to pass to
// check.CheckConstraints.
type Sections struct {
	Init, Trans, Invar, Assign, Justice, Compassion ast.ExprID
}

// Property is one top-level SPEC/LTLSPEC/INVARSPEC/PSLSPEC/COMPUTE
// declaration, tagged by its kind string (matched against check.PropertyKind
// by the caller, kept as a plain string here so this package stays
// independent of internal/check).
type Property struct {
	Kind string // "spec", "ltlspec", "invarspec", "pslspec", "compute"
	Body ast.ExprID
}

// Document is a parsed fixture: every declaration made into layer plus
// the constraint sections and properties collected along the way.
type Document struct {
	Sections   Sections
	Properties []Property
}

// Load parses r line by line into layer (declaring vars/defines
// directly) and returns the constraint sections and properties it
// collected. Blank lines and lines starting with '#' are skipped.
func Load(r io.Reader, layer *symtab.Layer, types *symtype.Interner, pool *ast.Pool, strs *source.Interner) (*Document, error) {
	doc := &Document{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := doc.applyLine(line, layer, types, pool, strs); err != nil {
			return nil, fmt.Errorf("fixture: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (doc *Document) applyLine(line string, layer *symtab.Layer, types *symtype.Interner, pool *ast.Pool, strs *source.Interner) error {
	kw, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch kw {
	case "var", "frozenvar", "inputvar":
		return declareVar(kw, rest, layer, types, strs)
	case "define":
		return declareDefine(rest, layer, pool, strs)
	case "trans":
		return doc.appendSection(&doc.Sections.Trans, rest, pool, strs)
	case "init":
		return doc.appendSection(&doc.Sections.Init, rest, pool, strs)
	case "invar":
		return doc.appendSection(&doc.Sections.Invar, rest, pool, strs)
	case "justice":
		return doc.appendSection(&doc.Sections.Justice, rest, pool, strs)
	case "compassion":
		return doc.appendSection(&doc.Sections.Compassion, rest, pool, strs)
	case "assign":
		return doc.appendAssign(rest, pool, strs)
	case "spec", "ltlspec", "invarspec", "pslspec", "compute":
		return doc.appendProperty(kw, rest, pool, strs)
	default:
		return fmt.Errorf("unknown declaration keyword %q", kw)
	}
}

func (doc *Document) appendSection(head *ast.ExprID, exprText string, pool *ast.Pool, strs *source.Interner) error {
	expr, err := ParseExpr(exprText, pool, strs)
	if err != nil {
		return err
	}
	*head = pool.Cons(expr, *head, source.Span{})
	return nil
}

func (doc *Document) appendAssign(rest string, pool *ast.Pool, strs *source.Interner) error {
	target, value, ok := strings.Cut(rest, ":=")
	if !ok {
		return fmt.Errorf("assign requires ':=', got %q", rest)
	}
	lhs, err := ParseExpr(strings.TrimSpace(target), pool, strs)
	if err != nil {
		return err
	}
	rhs, err := ParseExpr(strings.TrimSpace(value), pool, strs)
	if err != nil {
		return err
	}
	eqdef := pool.Binary(ast.KindEqDef, lhs, rhs, source.Span{})
	doc.Sections.Assign = pool.Cons(eqdef, doc.Sections.Assign, source.Span{})
	return nil
}

func (doc *Document) appendProperty(kw, rest string, pool *ast.Pool, strs *source.Interner) error {
	body, err := ParseExpr(rest, pool, strs)
	if err != nil {
		return err
	}
	doc.Properties = append(doc.Properties, Property{Kind: kw, Body: body})
	return nil
}

func declareDefine(rest string, layer *symtab.Layer, pool *ast.Pool, strs *source.Interner) error {
	name, body, ok := strings.Cut(rest, ":=")
	if !ok {
		return fmt.Errorf("define requires ':=', got %q", rest)
	}
	expr, err := ParseExpr(strings.TrimSpace(body), pool, strs)
	if err != nil {
		return err
	}
	return layer.DeclareDefine(strs.Intern(strings.TrimSpace(name)), ast.NoExprID, expr)
}

func declareVar(kw, rest string, layer *symtab.Layer, types *symtype.Interner, strs *source.Interner) error {
	name, typeText, ok := strings.Cut(rest, ":")
	if !ok {
		return fmt.Errorf("%s requires ': <type>', got %q", kw, rest)
	}
	t, err := parseType(strings.TrimSpace(typeText), types)
	if err != nil {
		return err
	}
	id := strs.Intern(strings.TrimSpace(name))
	switch kw {
	case "var":
		return layer.DeclareStateVar(id, t)
	case "frozenvar":
		return layer.DeclareFrozenVar(id, t)
	default:
		return layer.DeclareInputVar(id, t)
	}
}

// parseType accepts "boolean", "integer", "real", "word[N]", and
// "signed word[N]"/"unsigned word[N]".
func parseType(text string, types *symtype.Interner) (symtype.ID, error) {
	b := types.Builtins()
	switch {
	case text == "boolean":
		return b.Boolean, nil
	case text == "integer":
		return b.Integer, nil
	case text == "real":
		return b.Real, nil
	case strings.HasPrefix(text, "word["):
		return parseWordType(types, false, text)
	case strings.HasPrefix(text, "unsigned word["):
		return parseWordType(types, false, strings.TrimPrefix(text, "unsigned "))
	case strings.HasPrefix(text, "signed word["):
		return parseWordType(types, true, strings.TrimPrefix(text, "signed "))
	default:
		return 0, fmt.Errorf("unrecognised type %q", text)
	}
}

func parseWordType(types *symtype.Interner, signed bool, text string) (symtype.ID, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "word["), "]")
	w, err := strconv.ParseUint(inner, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("bad word width in %q: %w", text, err)
	}
	return types.MakeWord(signed, uint8(w)), nil
}
