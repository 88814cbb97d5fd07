package symtype

import "testing"

func TestConvertRightToLeftReflexive(t *testing.T) {
	in := NewInterner()
	boolID := in.builtins.Boolean
	if got, ok := in.ConvertRightToLeft(boolID, boolID); !ok || got != boolID {
		t.Fatalf("convert_right_to_left must be reflexive")
	}
}

func TestConvertRealAcceptsInteger(t *testing.T) {
	in := NewInterner()
	real, integer := in.builtins.Real, in.builtins.Integer
	got, ok := in.ConvertRightToLeft(real, integer)
	if !ok || got != real {
		t.Fatalf("Real should accept Integer on the right")
	}
	if _, ok := in.ConvertRightToLeft(integer, real); ok {
		t.Fatalf("Integer must not accept Real on the right")
	}
}

func TestConvertArrayRecursesOnSubtype(t *testing.T) {
	in := NewInterner()
	real, integer := in.builtins.Real, in.builtins.Integer
	lArr := in.MakeArray(real, 0, 2)
	rArr := in.MakeArray(integer, 0, 2)
	got, ok := in.ConvertRightToLeft(lArr, rArr)
	if !ok || got != lArr {
		t.Fatalf("Array(Real) should accept Array(Integer) with matching bounds")
	}
	rArrBad := in.MakeArray(integer, 0, 3)
	if _, ok := in.ConvertRightToLeft(lArr, rArrBad); ok {
		t.Fatalf("mismatched bounds must not convert")
	}
}

func TestLUBIntRealIsReal(t *testing.T) {
	in := NewInterner()
	got, ok := in.LUB(in.builtins.Integer, in.builtins.Real)
	if !ok || got != in.builtins.Real {
		t.Fatalf("lub(Int,Real) must be Real")
	}
	got2, ok := in.LUB(in.builtins.Real, in.builtins.Integer)
	if !ok || got2 != in.builtins.Real {
		t.Fatalf("lub must be commutative for Int/Real")
	}
}

func TestLUBSymbolicFamilyCollapsesToIntSymbolic(t *testing.T) {
	in := NewInterner()
	sym := in.NewEnum(EnumPureSymbolic, []EnumConst{{Name: "a"}})
	got, ok := in.LUB(in.builtins.Integer, sym)
	if !ok || got != in.builtins.AbstractIntSymbolic {
		t.Fatalf("lub(Int, PureSymbolicEnum) must be the abstract IntSymbolicEnum")
	}
}

func TestLUBSetsCollapseToSetIntSymb(t *testing.T) {
	in := NewInterner()
	setBool, _ := in.LiftSet(in.builtins.Boolean)
	setInt, _ := in.LiftSet(in.builtins.Integer)
	got, ok := in.LUB(setBool, setInt)
	if !ok {
		t.Fatalf("lub of two sets must succeed")
	}
	wantKind := KindSetIntSymb
	tt, _ := in.Lookup(got)
	if tt.Kind != wantKind {
		t.Fatalf("lub of sets = %v, want %v", tt.Kind, wantKind)
	}
}

func TestGreaterMatchesConvertRightToLeftInvariant(t *testing.T) {
	in := NewInterner()
	real, integer := in.builtins.Real, in.builtins.Integer
	got, ok := in.Greater(real, integer)
	if !ok || got != real {
		t.Fatalf("greater(Real,Integer) must be Real")
	}
	got2, ok2 := in.Greater(integer, real)
	if !ok2 || got2 != real {
		t.Fatalf("greater(Integer,Real) must still settle on Real")
	}
}

func TestSetLiftRoundTrip(t *testing.T) {
	in := NewInterner()
	for _, base := range []ID{in.builtins.Boolean, in.builtins.Integer} {
		lifted, ok := in.LiftSet(base)
		if !ok {
			t.Fatalf("LiftSet(%v) failed", base)
		}
		back := in.UnliftSet(lifted)
		if back != base {
			t.Fatalf("UnliftSet(LiftSet(%v)) = %v, want %v", base, back, base)
		}
	}
}

func TestSetLiftIdempotentOnSets(t *testing.T) {
	in := NewInterner()
	s, _ := in.LiftSet(in.builtins.Boolean)
	again, ok := in.LiftSet(s)
	if !ok || again != s {
		t.Fatalf("lifting an already-set type must be identity")
	}
}

func TestUnliftSetIdentityOnScalars(t *testing.T) {
	in := NewInterner()
	if got := in.UnliftSet(in.builtins.Integer); got != in.builtins.Integer {
		t.Fatalf("unlift on a non-set type must be identity")
	}
}
