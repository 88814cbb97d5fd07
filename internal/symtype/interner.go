package symtype

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins holds the interned IDs of the singleton and primitive types every
// Interner seeds itself with.
type Builtins struct {
	None      ID
	Error     ID
	Statement ID
	Boolean   ID
	Integer   ID
	Real      ID
	String    ID

	// Abstract enum singletons: interned, memory-shared representatives used
	// by the lattice operations (lub/greater/set-lifting) when only the
	// *category* of an enum matters, not its concrete constant list. Real
	// declared enums (NewEnum) are separate, non-shared instances.
	AbstractPureSymbolic ID
	AbstractPureInt      ID
	AbstractIntSymbolic  ID
}

// Interner is the canonicalising arena for Type values. Interned instances
// are uniquely identified by tag+payload: Intern(a) == Intern(b) iff a and b
// are structurally equal. Non-interned Types (parser bodies, scratch
// results) are plain Type values the caller owns directly and never passes
// through Intern.
type Interner struct {
	arena    []Type
	index    map[typeKey]ID
	enums    []EnumInfo
	builtins Builtins
}

// typeKey is the canonicalisation key. Array keys require the subtype to
// already be interned, per the construction rule in spec.md §4.1.
type typeKey struct {
	Kind     Kind
	Width    uint8
	ValWidth uint8
	Elem     ID
	Lo, Hi   int64
	Enum     uint32
}

func keyOf(t Type) typeKey {
	return typeKey{Kind: t.Kind, Width: t.Width, ValWidth: t.ValWidth, Elem: t.Elem, Lo: t.Lo, Hi: t.Hi, Enum: t.Enum}
}

// NewInterner builds an Interner pre-seeded with the None, Error, and
// scalar built-in singletons.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]ID, 64),
	}
	// Slot 0 is reserved so NoID never aliases a real type.
	in.arena = append(in.arena, Type{})
	in.enums = append(in.enums, EnumInfo{})

	in.builtins.None = in.internRaw(Type{Kind: KindNone})
	in.builtins.Error = in.internRaw(Type{Kind: KindError})
	in.builtins.Statement = in.Intern(Type{Kind: KindStatement})
	in.builtins.Boolean = in.Intern(Type{Kind: KindBoolean})
	in.builtins.Integer = in.Intern(Type{Kind: KindInteger})
	in.builtins.Real = in.Intern(Type{Kind: KindReal})
	in.builtins.String = in.Intern(Type{Kind: KindString})

	in.builtins.AbstractPureSymbolic = in.NewEnum(EnumPureSymbolic, nil)
	in.builtins.AbstractPureInt = in.NewEnum(EnumPureInt, nil)
	in.builtins.AbstractIntSymbolic = in.NewEnum(EnumIntSymbolic, nil)
	return in
}

// Builtins returns the primitive singleton IDs.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern returns the canonical ID for t, allocating a fresh slot on first
// sight. Array types require Elem to already be an interned ID.
func (in *Interner) Intern(t Type) ID {
	key := keyOf(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) ID {
	n, err := safecast.Conv[uint32](len(in.arena))
	if err != nil {
		panic(fmt.Errorf("symtype: arena overflow: %w", err))
	}
	id := ID(n)
	in.arena = append(in.arena, t)
	in.index[keyOf(t)] = id
	return id
}

// Lookup returns the descriptor for id, or false if id is out of range.
func (in *Interner) Lookup(id ID) (Type, bool) {
	if id == NoID || int(id) >= len(in.arena) {
		return Type{}, false
	}
	return in.arena[id], true
}

// MustLookup panics on an invalid id; used where the caller has already
// validated the id came from this Interner.
func (in *Interner) MustLookup(id ID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("symtype: invalid ID %d", id))
	}
	return t
}

// MakeWord interns a signed or unsigned Word of the given width. Width must
// be validated by the caller (§4.5 well-formedness); MakeWord does not
// re-validate it.
func (in *Interner) MakeWord(signed bool, width uint8) ID {
	k := KindUnsignedWord
	if signed {
		k = KindSignedWord
	}
	return in.Intern(Type{Kind: k, Width: width})
}

// MakeWordArray interns a WordArray(addrWidth, valWidth).
func (in *Interner) MakeWordArray(addrWidth, valWidth uint8) ID {
	return in.Intern(Type{Kind: KindWordArray, Width: addrWidth, ValWidth: valWidth})
}

// MakeArray interns Array(sub, lo, hi). sub must already be interned.
func (in *Interner) MakeArray(sub ID, lo, hi int64) ID {
	return in.Intern(Type{Kind: KindArray, Elem: sub, Lo: lo, Hi: hi})
}

// NewEnum allocates (non-interned, since enum identity is per-declaration)
// an Enum Type carrying the given category and constant list.
func (in *Interner) NewEnum(category EnumCategory, consts []EnumConst) ID {
	n, err := safecast.Conv[uint32](len(in.enums))
	if err != nil {
		panic(fmt.Errorf("symtype: enum table overflow: %w", err))
	}
	in.enums = append(in.enums, EnumInfo{Category: category, Consts: append([]EnumConst(nil), consts...)})
	return in.internRaw(Type{Kind: KindEnum, Enum: n})
}

// EnumInfo returns the category/constants backing an Enum type id.
func (in *Interner) EnumInfo(id ID) (EnumInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindEnum || int(t.Enum) >= len(in.enums) {
		return EnumInfo{}, false
	}
	return in.enums[t.Enum], true
}

// Display renders the canonical textual form of a type, used by
// diagnostics; replaces the source's growable-buffer string builder per
// DESIGN NOTES §9.
func (in *Interner) Display(id ID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch t.Kind {
	case KindNone:
		return "none"
	case KindStatement:
		return "statement"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindError:
		return "error"
	case KindSignedWord:
		return fmt.Sprintf("signed word[%d]", t.Width)
	case KindUnsignedWord:
		return fmt.Sprintf("unsigned word[%d]", t.Width)
	case KindWordArray:
		return fmt.Sprintf("array word[%d] of word[%d]", t.Width, t.ValWidth)
	case KindArray:
		return fmt.Sprintf("array %d..%d of %s", t.Lo, t.Hi, in.Display(t.Elem))
	case KindEnum:
		info, _ := in.EnumInfo(id)
		return fmt.Sprintf("enum(%s)", info.Category)
	case KindSetBool:
		return "{boolean}"
	case KindSetInt:
		return "{integer}"
	case KindSetSymb:
		return "{symbolic}"
	case KindSetIntSymb:
		return "{integer,symbolic}"
	default:
		return t.Kind.String()
	}
}
