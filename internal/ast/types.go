package ast

import "github.com/onyx-lang/onyxfront/internal/token"

// PointerType is `^elem`; chains of `^` are represented as nested
// PointerType nodes (spec §4.6).
type PointerType struct {
	base
	Elem Type
}

func (*PointerType) Kind() Kind         { return KindPointerType }
func (p *PointerType) Accept(v Visitor) { v.VisitPointerType(p) }
func (*PointerType) typeNode()          {}

// BasicKind enumerates the built-in scalar type singletons.
type BasicKind int

const (
	BasicVoid BasicKind = iota
	BasicBool
	BasicI8
	BasicI16
	BasicI32
	BasicI64
	BasicU8
	BasicU16
	BasicU32
	BasicU64
	BasicF32
	BasicF64
	BasicRawptr
)

// BasicType is a singleton built-in type node; basicSingletons holds one
// shared instance per BasicKind so type-expression equality can be a
// pointer comparison where useful.
type BasicType struct {
	base
	BKind BasicKind
}

func (*BasicType) Kind() Kind         { return KindBasicType }
func (b *BasicType) Accept(v Visitor) { v.VisitBasicType(b) }
func (*BasicType) typeNode()          {}

var basicSingletons = map[BasicKind]*BasicType{
	BasicVoid:   {BKind: BasicVoid},
	BasicBool:   {BKind: BasicBool},
	BasicI8:     {BKind: BasicI8},
	BasicI16:    {BKind: BasicI16},
	BasicI32:    {BKind: BasicI32},
	BasicI64:    {BKind: BasicI64},
	BasicU8:     {BKind: BasicU8},
	BasicU16:    {BKind: BasicU16},
	BasicU32:    {BKind: BasicU32},
	BasicU64:    {BKind: BasicU64},
	BasicF32:    {BKind: BasicF32},
	BasicF64:    {BKind: BasicF64},
	BasicRawptr: {BKind: BasicRawptr},
}

// basicKeywords maps a basic-type keyword's token text to its BasicKind.
var basicKeywords = map[string]BasicKind{
	"void": BasicVoid, "bool": BasicBool,
	"i8": BasicI8, "i16": BasicI16, "i32": BasicI32, "i64": BasicI64,
	"u8": BasicU8, "u16": BasicU16, "u32": BasicU32, "u64": BasicU64,
	"f32": BasicF32, "f64": BasicF64, "rawptr": BasicRawptr,
}

// BasicTypeFor returns the singleton BasicType node for tok's text, or nil
// if tok does not name a basic type. The returned node is shared across
// every occurrence of that basic type in the program, so its originating
// token reflects whichever use first interned it, not necessarily the
// caller's tok; basic types never need per-occurrence diagnostics.
func BasicTypeFor(tok token.Token) *BasicType {
	k, ok := basicKeywords[tok.Text]
	if !ok {
		return nil
	}
	s := basicSingletons[k]
	if s.token.IsZero() {
		s.token = tok
	}
	return s
}

// Void is the canonical void BasicType used when a return type is omitted.
func Void() *BasicType {
	return basicSingletons[BasicVoid]
}
