package ast

// Kind is the opcode tag of an expression node. Opcodes are grouped into
// contiguous, fixed-width blocks by category so that walker dispatch
// (internal/walk) can register a half-open range per block in O(1) and
// find the owning walker by a single comparison instead of a switch over
// every individual opcode.
type Kind uint16

// KindInvalid is the zero value; never the tag of a constructed node.
const KindInvalid Kind = 0

const blockWidth = 100

// Block boundaries, one pair per category. Each block reserves blockWidth
// opcodes; only a handful are assigned today, leaving room to grow a
// category without reshuffling its neighbours.
const (
	KindLeafLo Kind = 100
	KindLeafHi Kind = KindLeafLo + blockWidth

	KindContainerLo Kind = 200
	KindContainerHi Kind = KindContainerLo + blockWidth

	KindCastLo Kind = 300
	KindCastHi Kind = KindCastLo + blockWidth

	KindArithLo Kind = 400
	KindArithHi Kind = KindArithLo + blockWidth

	KindShiftLo Kind = 500
	KindShiftHi Kind = KindShiftLo + blockWidth

	KindCompareLo Kind = 600
	KindCompareHi Kind = KindCompareLo + blockWidth

	KindAssignLo Kind = 700
	KindAssignHi Kind = KindAssignLo + blockWidth

	KindLogicLo Kind = 800
	KindLogicHi Kind = KindLogicLo + blockWidth

	KindBitopLo Kind = 900
	KindBitopHi Kind = KindBitopLo + blockWidth

	KindSetopLo Kind = 1000
	KindSetopHi Kind = KindSetopLo + blockWidth

	KindCondLo Kind = 1100
	KindCondHi Kind = KindCondLo + blockWidth

	KindTemporalLo Kind = 1200
	KindTemporalHi Kind = KindTemporalLo + 300 // unary + binary + init/next share this span

	KindCallLo Kind = 1500
	KindCallHi Kind = KindCallLo + blockWidth

	KindStmtLo Kind = 1600
	KindStmtHi Kind = KindStmtLo + blockWidth

	KindPSLLo Kind = 1700
	KindPSLHi Kind = KindPSLLo + blockWidth
)

const (
	// Leaves: literals and identifiers.
	KindTrue Kind = KindLeafLo + iota
	KindFalse
	KindNumber
	KindNumberUnsignedWord
	KindNumberSignedWord
	KindNumberReal
	KindNumberFrac
	KindNumberExp
	KindAtom
	KindDot
	KindBit
	KindArray
	KindContext
	KindTwoDots
)

const (
	// Containers: lists built by CONS cells and array literals.
	KindCons Kind = KindContainerLo + iota
	KindArrayDef
)

const (
	// Casts.
	KindCastBool Kind = KindCastLo + iota
	KindCastWord1
	KindCastSigned
	KindCastUnsigned
	KindWSizeof
	KindCastToInt
	KindExtend
	KindWResize
	KindCount
)

const (
	// Arithmetic.
	KindPlus Kind = KindArithLo + iota
	KindUMinus
	KindMinus
	KindTimes
	KindDivide
	KindMod
)

const (
	// Shifts and rotates.
	KindLShift Kind = KindShiftLo + iota
	KindRShift
	KindLRotate
	KindRRotate
)

const (
	// Comparisons.
	KindEqual Kind = KindCompareLo + iota
	KindNotEqual
	KindLT
	KindLE
	KindGT
	KindGE
)

const (
	// Assignment.
	KindEqDef Kind = KindAssignLo + iota
)

const (
	// Logical connectives.
	KindOr Kind = KindLogicLo + iota
	KindXor
	KindXnor
	KindImplies
	KindIff
	KindAnd
	KindNot
)

const (
	// Bit/word-array operators.
	KindConcatenation Kind = KindBitopLo + iota
	KindBitSelection
	KindWAWrite
	KindWARead
)

const (
	// Set operators.
	KindUnion Kind = KindSetopLo + iota
	KindSetIn
)

const (
	// Conditionals.
	KindCase Kind = KindCondLo + iota
	KindIfThenElse
	KindFailure
)

const (
	// init/next wrappers.
	KindSmallInit Kind = KindTemporalLo + iota
	KindNext
)

const (
	// CTL/LTL unary temporal operators.
	KindEX Kind = KindTemporalLo + 20 + iota
	KindAX
	KindEF
	KindAF
	KindEG
	KindAG
	KindOpGlobal
	KindOpNext
	KindOpPrec
	KindOpNotPrecNot
	KindOpHistorical
	KindOpOnce
	KindOpFuture
	KindEBF
	KindABF
	KindEBG
	KindABG
)

const (
	// CTL/LTL binary temporal operators.
	KindAU Kind = KindTemporalLo + 60 + iota
	KindEU
	KindUntil
	KindSince
	KindABU
	KindEBU
	KindMinU
	KindMaxU
)

const (
	// Function calls.
	KindNFunction Kind = KindCallLo + iota
)

const (
	// Statements and top-level sections.
	KindTrans Kind = KindStmtLo + iota
	KindInit
	KindInvar
	KindFairness
	KindJustice
	KindCompassion
	KindSpec
	KindLTLSpec
	KindPSLSpec
	KindInvarSpec
	KindIsa
	KindConstraint
	KindModule
	KindProcess
	KindModType
	KindLambda
	KindDefine
	KindAssign
	KindCompute
	KindATime
)

const (
	// PSL-specific forms.
	KindAlways Kind = KindPSLLo + iota
	KindNever
	KindEventuallyBang
	KindPSLUntil
	KindWithin
	KindBefore
	KindNextEvent
	KindNextEventA
	KindNextEventE
	KindNextEventBang
	KindNextEventABang
	KindNextEventEBang
	KindWhileNot
	KindPipeMinusGT
	KindPipeEqGT
	KindReplProp
	KindWSelect
	KindPSLIfThenElse
)

var kindNames = map[Kind]string{
	KindTrue: "TRUE", KindFalse: "FALSE", KindNumber: "NUMBER",
	KindNumberUnsignedWord: "NUMBER_UNSIGNED_WORD", KindNumberSignedWord: "NUMBER_SIGNED_WORD",
	KindNumberReal: "NUMBER_REAL", KindNumberFrac: "NUMBER_FRAC", KindNumberExp: "NUMBER_EXP",
	KindAtom: "ATOM", KindDot: "DOT", KindBit: "BIT", KindArray: "ARRAY",
	KindContext: "CONTEXT", KindTwoDots: "TWODOTS",
	KindCons: "CONS", KindArrayDef: "ARRAY_DEF",
	KindCastBool: "CAST_BOOL", KindCastWord1: "CAST_WORD1", KindCastSigned: "CAST_SIGNED",
	KindCastUnsigned: "CAST_UNSIGNED", KindWSizeof: "WSIZEOF", KindCastToInt: "CAST_TOINT",
	KindExtend: "EXTEND", KindWResize: "WRESIZE", KindCount: "COUNT",
	KindPlus: "PLUS", KindUMinus: "UMINUS", KindMinus: "MINUS", KindTimes: "TIMES",
	KindDivide: "DIVIDE", KindMod: "MOD",
	KindLShift: "LSHIFT", KindRShift: "RSHIFT", KindLRotate: "LROTATE", KindRRotate: "RROTATE",
	KindEqual: "EQUAL", KindNotEqual: "NOTEQUAL", KindLT: "LT", KindLE: "LE", KindGT: "GT", KindGE: "GE",
	KindEqDef: "EQDEF",
	KindOr: "OR", KindXor: "XOR", KindXnor: "XNOR", KindImplies: "IMPLIES", KindIff: "IFF",
	KindAnd: "AND", KindNot: "NOT",
	KindConcatenation: "CONCATENATION", KindBitSelection: "BIT_SELECTION",
	KindWAWrite: "WAWRITE", KindWARead: "WAREAD",
	KindUnion: "UNION", KindSetIn: "SETIN",
	KindCase: "CASE", KindIfThenElse: "IFTHENELSE", KindFailure: "FAILURE",
	KindSmallInit: "SMALLINIT", KindNext: "NEXT",
	KindEX: "EX", KindAX: "AX", KindEF: "EF", KindAF: "AF", KindEG: "EG", KindAG: "AG",
	KindOpGlobal: "OP_GLOBAL", KindOpNext: "OP_NEXT", KindOpPrec: "OP_PREC",
	KindOpNotPrecNot: "OP_NOTPRECNOT", KindOpHistorical: "OP_HISTORICAL",
	KindOpOnce: "OP_ONCE", KindOpFuture: "OP_FUTURE",
	KindEBF: "EBF", KindABF: "ABF", KindEBG: "EBG", KindABG: "ABG",
	KindAU: "AU", KindEU: "EU", KindUntil: "UNTIL", KindSince: "SINCE",
	KindABU: "ABU", KindEBU: "EBU", KindMinU: "MINU", KindMaxU: "MAXU",
	KindNFunction: "NFUNCTION",
	KindTrans:     "TRANS", KindInit: "INIT", KindInvar: "INVAR", KindFairness: "FAIRNESS",
	KindJustice: "JUSTICE", KindCompassion: "COMPASSION", KindSpec: "SPEC",
	KindLTLSpec: "LTLSPEC", KindPSLSpec: "PSLSPEC", KindInvarSpec: "INVARSPEC",
	KindIsa: "ISA", KindConstraint: "CONSTRAINT", KindModule: "MODULE",
	KindProcess: "PROCESS", KindModType: "MODTYPE", KindLambda: "LAMBDA",
	KindDefine: "DEFINE", KindAssign: "ASSIGN", KindCompute: "COMPUTE", KindATime: "ATTIME",
	KindAlways: "ALWAYS", KindNever: "NEVER", KindEventuallyBang: "EVENTUALLY!",
	KindPSLUntil: "UNTIL", KindWithin: "WITHIN", KindBefore: "BEFORE",
	KindNextEvent: "NEXT_EVENT", KindNextEventA: "NEXT_EVENT_A", KindNextEventE: "NEXT_EVENT_E",
	KindNextEventBang: "NEXT_EVENT!", KindNextEventABang: "NEXT_EVENT_A!", KindNextEventEBang: "NEXT_EVENT_E!",
	KindWhileNot: "WHILENOT", KindPipeMinusGT: "PIPEMINUSGT", KindPipeEqGT: "PIPEEQGT",
	KindReplProp: "REPLPROP", KindWSelect: "WSELECT", KindPSLIfThenElse: "ITE",
}

// String renders the opcode's NuSMV-facing mnemonic, or the fixed
// placeholder "KIND?" for an opcode that was never registered.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "KIND?"
}

// InRange reports whether k lies in the half-open range [lo, hi).
func (k Kind) InRange(lo, hi Kind) bool {
	return k >= lo && k < hi
}
