package symtype

import "math/bits"

// SizeInBits implements spec.md §4.1's size_in_bits. Calling it on a Kind
// that carries no well-defined bit size is a programming error (the
// checker never asks for the size of, say, a Real or a set type).
func (in *Interner) SizeInBits(id ID) int {
	t, ok := in.Lookup(id)
	if !ok {
		panic("symtype: SizeInBits on invalid ID")
	}
	switch t.Kind {
	case KindBoolean:
		return 1
	case KindEnum:
		info, _ := in.EnumInfo(id)
		n := len(info.Consts)
		if n <= 1 {
			return 1
		}
		return max(1, bits.Len(uint(n-1)))
	case KindSignedWord, KindUnsignedWord:
		return int(t.Width)
	default:
		panic("symtype: SizeInBits: not a sized type: " + t.Kind.String())
	}
}

func (in *Interner) kindOf(id ID) Kind {
	t, ok := in.Lookup(id)
	if !ok {
		return KindNone
	}
	return t.Kind
}

func (in *Interner) IsEnum(id ID) bool    { return in.kindOf(id) == KindEnum }
func (in *Interner) IsBoolean(id ID) bool { return in.kindOf(id) == KindBoolean }

func (in *Interner) IsWord(id ID) bool {
	k := in.kindOf(id)
	return k == KindSignedWord || k == KindUnsignedWord
}
func (in *Interner) IsSignedWord(id ID) bool   { return in.kindOf(id) == KindSignedWord }
func (in *Interner) IsUnsignedWord(id ID) bool { return in.kindOf(id) == KindUnsignedWord }

func (in *Interner) IsSet(id ID) bool {
	switch in.kindOf(id) {
	case KindSetBool, KindSetInt, KindSetSymb, KindSetIntSymb:
		return true
	default:
		return false
	}
}

func (in *Interner) IsArray(id ID) bool     { return in.kindOf(id) == KindArray }
func (in *Interner) IsWordArray(id ID) bool { return in.kindOf(id) == KindWordArray }

// IsInfinitePrecision reports Integer or Real.
func (in *Interner) IsInfinitePrecision(id ID) bool {
	k := in.kindOf(id)
	return k == KindInteger || k == KindReal
}

// IsBackCompat reports Boolean, Enum, or Integer — the three "classic"
// NuSMV 1.x types retained for the backward-compatibility mode.
func (in *Interner) IsBackCompat(id ID) bool {
	k := in.kindOf(id)
	return k == KindBoolean || k == KindEnum || k == KindInteger
}

// enumCategory returns the category of an Enum type, or a sentinel value
// for non-enums (callers only call this after confirming IsEnum).
func (in *Interner) enumCategory(id ID) EnumCategory {
	info, ok := in.EnumInfo(id)
	if !ok {
		return EnumPureSymbolic
	}
	return info.Category
}

func (in *Interner) isPureSymbolicEnum(id ID) bool {
	return in.IsEnum(id) && in.enumCategory(id) == EnumPureSymbolic
}
func (in *Interner) isPureIntEnum(id ID) bool {
	return in.IsEnum(id) && in.enumCategory(id) == EnumPureInt
}
func (in *Interner) isIntSymbolicEnum(id ID) bool {
	return in.IsEnum(id) && in.enumCategory(id) == EnumIntSymbolic
}

// ValidWordWidth reports 0 < w <= MaxWordWidth.
func ValidWordWidth(w int) bool { return w > 0 && w <= MaxWordWidth }

// DuplicateEnumConsts returns the names that occur more than once in
// consts, preserving first-seen order. Used by type_is_well_formed (§4.5).
func DuplicateEnumConsts(consts []EnumConst) []string {
	seen := make(map[string]int, len(consts))
	var dups []string
	for _, c := range consts {
		seen[c.Name]++
		if seen[c.Name] == 2 {
			dups = append(dups, c.Name)
		}
	}
	return dups
}
