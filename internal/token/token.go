// Package token defines the token contract the parser consumes. Tokens
// themselves are produced by a lexer that lives outside this module; the
// parser only ever sees a finite, immutable, random-access slice of Token
// terminated by an EOF token.
package token

import "fmt"

// Type discriminates a token. Punctuators use their literal single-character
// text ("(", "{", ";", ...); everything else (keywords, multi-character
// operators, literal classes, comments, end-of-stream) uses a named
// constant.
type Type string

// Position locates a token in the original source buffer.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Token is a single lexical unit: a type tag, a source position, and the
// original text slice it was scanned from.
type Token struct {
	Type Type
	Text string
	Pos  Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @ %s", t.Type, t.Text, t.Pos)
}

// IsZero reports whether t is the zero Token (never a valid token from a
// real stream; used as a sentinel return value).
func (t Token) IsZero() bool { return t.Type == "" }

const (
	EOF     Type = "EOF"
	COMMENT Type = "COMMENT" // skippable; the cursor never exposes these

	IDENT  Type = "IDENT"
	INT    Type = "INT"
	FLOAT  Type = "FLOAT"
	STRING Type = "STRING"

	// Keywords
	KwUse      Type = "use"
	KwProc     Type = "proc"
	KwGlobal   Type = "global"
	KwReturn   Type = "return"
	KwIf       Type = "if"
	KwElseif   Type = "elseif"
	KwElse     Type = "else"
	KwWhile    Type = "while"
	KwBreak    Type = "break"
	KwContinue Type = "continue"
	KwCast     Type = "cast"
	KwTrue     Type = "true"
	KwFalse    Type = "false"

	// Basic type keywords
	KwVoid   Type = "void"
	KwBool   Type = "bool"
	KwI8     Type = "i8"
	KwI16    Type = "i16"
	KwI32    Type = "i32"
	KwI64    Type = "i64"
	KwU8     Type = "u8"
	KwU16    Type = "u16"
	KwU32    Type = "u32"
	KwU64    Type = "u64"
	KwF32    Type = "f32"
	KwF64    Type = "f64"
	KwRawptr Type = "rawptr"

	// Multi-character operators/punctuators
	ColonColon Type = "::"
	Arrow      Type = "->"
	PlusEq     Type = "+="
	MinusEq    Type = "-="
	StarEq     Type = "*="
	SlashEq    Type = "/="
	PercentEq  Type = "%="
	EqEq       Type = "=="
	BangEq     Type = "!="
	LtEq       Type = "<="
	GtEq       Type = ">="
	Hash       Type = "#"
)

// Keywords maps identifier text to its keyword Type, for the lexer's use
// (and for tests that hand-build token streams).
var Keywords = map[string]Type{
	"use":      KwUse,
	"proc":     KwProc,
	"global":   KwGlobal,
	"return":   KwReturn,
	"if":       KwIf,
	"elseif":   KwElseif,
	"else":     KwElse,
	"while":    KwWhile,
	"break":    KwBreak,
	"continue": KwContinue,
	"cast":     KwCast,
	"true":     KwTrue,
	"false":    KwFalse,
	"void":     KwVoid,
	"bool":     KwBool,
	"i8":       KwI8,
	"i16":      KwI16,
	"i32":      KwI32,
	"i64":      KwI64,
	"u8":       KwU8,
	"u16":      KwU16,
	"u32":      KwU32,
	"u64":      KwU64,
	"f32":      KwF32,
	"f64":      KwF64,
	"rawptr":   KwRawptr,
}

// Single-character punctuators use their own text as the Type, so callers
// can write token.Type("(") directly; these named aliases exist for
// readability at call sites.
const (
	LParen    Type = "("
	RParen    Type = ")"
	LBrace    Type = "{"
	RBrace    Type = "}"
	Semicolon Type = ";"
	Comma     Type = ","
	Colon     Type = ":"
	Assign    Type = "="
	Plus      Type = "+"
	Minus     Type = "-"
	Star      Type = "*"
	Slash     Type = "/"
	Percent   Type = "%"
	Bang      Type = "!"
	Lt        Type = "<"
	Gt        Type = ">"
	Caret     Type = "^"
)
