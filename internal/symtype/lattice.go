package symtype

// ConvertRightToLeft implements spec.md §4.1's convert_right_to_left: can a
// value of type R be used where L is expected, keeping L as the result
// type? Returns (L, true) on success.
func (in *Interner) ConvertRightToLeft(l, r ID) (ID, bool) {
	if l == r {
		return l, true
	}
	lt, lok := in.Lookup(l)
	rt, rok := in.Lookup(r)
	if !lok || !rok {
		return NoID, false
	}

	if lt.Kind == KindReal && rt.Kind == KindInteger {
		return l, true
	}
	if in.isIntSymbolicEnum(l) && (rt.Kind == KindInteger || in.isPureSymbolicEnum(r)) {
		return l, true
	}
	if lt.Kind == KindSetIntSymb && in.IsSet(r) {
		return l, true
	}
	if lt.Kind == KindArray && rt.Kind == KindArray && lt.Lo == rt.Lo && lt.Hi == rt.Hi {
		if _, ok := in.ConvertRightToLeft(lt.Elem, rt.Elem); ok {
			return l, true
		}
	}
	return NoID, false
}

// LUB implements spec.md §4.1's lub: the minimal common supertype of a and
// b, or (NoID, false) if none exists.
func (in *Interner) LUB(a, b ID) (ID, bool) {
	if a == b {
		return a, true
	}
	at, aok := in.Lookup(a)
	bt, bok := in.Lookup(b)
	if !aok || !bok {
		return NoID, false
	}

	if isIntReal(at.Kind, bt.Kind) {
		return in.builtins.Real, true
	}
	if in.isIntOrSymbolicFamily(a) && in.isIntOrSymbolicFamily(b) {
		return in.builtins.AbstractIntSymbolic, true
	}
	if at.Kind == KindArray && bt.Kind == KindArray && at.Lo == bt.Lo && at.Hi == bt.Hi {
		if sub, ok := in.LUB(at.Elem, bt.Elem); ok {
			return in.MakeArray(sub, at.Lo, at.Hi), true
		}
		return NoID, false
	}
	if in.IsSet(a) && in.IsSet(b) {
		return in.setIntSymbID(), true
	}
	return NoID, false
}

func (in *Interner) setIntSymbID() ID {
	return in.Intern(Type{Kind: KindSetIntSymb})
}

func isIntReal(a, b Kind) bool {
	return (a == KindInteger && b == KindReal) || (a == KindReal && b == KindInteger)
}

// isIntOrSymbolicFamily reports whether id is Integer, a pure-symbolic
// enum, or an int-symbolic enum — the three members of the family lub()
// collapses to IntSymbolicEnum.
func (in *Interner) isIntOrSymbolicFamily(id ID) bool {
	t, ok := in.Lookup(id)
	if !ok {
		return false
	}
	if t.Kind == KindInteger {
		return true
	}
	return in.isPureSymbolicEnum(id) || in.isIntSymbolicEnum(id)
}

// Greater returns the wider of a and b under the implicit-conversion
// lattice: whichever type the other converts into. Matches spec.md §8's
// invariant greater(a,b) = a ⇔ convert_right_to_left(a,b)=Some(a) ∨ a=b.
func (in *Interner) Greater(a, b ID) (ID, bool) {
	if a == b {
		return a, true
	}
	if _, ok := in.ConvertRightToLeft(a, b); ok {
		return a, true
	}
	if _, ok := in.ConvertRightToLeft(b, a); ok {
		return b, true
	}
	return NoID, false
}

// LiftSet implements spec.md §4.1's set lifting: Boolean→SetBool,
// Integer→SetInt, PureSymbolicEnum→SetSymb, IntSymbolicEnum→SetIntSymb, any
// set→itself, otherwise (NoID,false).
func (in *Interner) LiftSet(id ID) (ID, bool) {
	t, ok := in.Lookup(id)
	if !ok {
		return NoID, false
	}
	switch {
	case t.Kind == KindBoolean:
		return in.Intern(Type{Kind: KindSetBool}), true
	case t.Kind == KindInteger:
		return in.Intern(Type{Kind: KindSetInt}), true
	case in.isPureSymbolicEnum(id):
		return in.Intern(Type{Kind: KindSetSymb}), true
	case in.isIntSymbolicEnum(id):
		return in.setIntSymbID(), true
	case in.IsSet(id):
		return id, true
	default:
		return NoID, false
	}
}

// UnliftSet is the inverse of LiftSet, with identity on non-set types.
func (in *Interner) UnliftSet(id ID) ID {
	t, ok := in.Lookup(id)
	if !ok {
		return id
	}
	switch t.Kind {
	case KindSetBool:
		return in.builtins.Boolean
	case KindSetInt:
		return in.builtins.Integer
	case KindSetSymb:
		return in.builtins.AbstractPureSymbolic
	case KindSetIntSymb:
		return in.builtins.AbstractIntSymbolic
	default:
		return id
	}
}
