package parser

import (
	"strconv"
	"strings"

	"github.com/onyx-lang/onyxfront/internal/ast"
	"github.com/onyx-lang/onyxfront/internal/config"
	"github.com/onyx-lang/onyxfront/internal/token"
)

// parseNumericLiteral turns tok's text into a Literal node (spec §4.2).
// A '.' makes it floating-point, with a trailing 'f' forcing 32-bit;
// otherwise it is a signed 64-bit integer in Go's auto-base notation,
// typed i32 when its magnitude fits below 2^32, else i64. The inferred
// basic type is attached to the node's TypeExpr, matching the original
// parser setting lit_node->base.type_node at literal-parse time.
func parseNumericLiteral(tok token.Token) *ast.Literal {
	text := tok.Text
	if strings.ContainsRune(text, '.') {
		if strings.HasSuffix(text, "f") {
			f, _ := strconv.ParseFloat(strings.TrimSuffix(text, "f"), 32)
			lit := ast.NewLiteral(tok, ast.LiteralValue{Kind: ast.LiteralF32, F32: float32(f)})
			lit.SetTypeExpr(ast.BasicTypeFor(token.Token{Type: token.KwF32, Text: "f32"}))
			return lit
		}
		f, _ := strconv.ParseFloat(text, 64)
		lit := ast.NewLiteral(tok, ast.LiteralValue{Kind: ast.LiteralF64, F64: f})
		lit.SetTypeExpr(ast.BasicTypeFor(token.Token{Type: token.KwF64, Text: "f64"}))
		return lit
	}

	n, _ := strconv.ParseInt(text, 0, 64)
	lit := ast.NewLiteral(tok, ast.LiteralValue{Kind: ast.LiteralI64, I64: n})
	lit.SetTypeExpr(ast.BasicTypeFor(typeForInt(n)))
	return lit
}

// typeForInt reports the inferred basic-type keyword token for n per spec
// §4.2's |value| < 2^32 rule (§9: 0xFFFFFFFF-class values are i64, matching
// a signed interpretation of the threshold).
func typeForInt(n int64) token.Token {
	mag := n
	if mag < 0 {
		mag = -mag
	}
	if mag < config.IntWidthThreshold {
		return token.Token{Type: token.KwI32, Text: "i32"}
	}
	return token.Token{Type: token.KwI64, Text: "i64"}
}
