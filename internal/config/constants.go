// Package config centralizes the small tunable constants that would
// otherwise be magic numbers scattered across the parser and value walker.
package config

import "github.com/onyx-lang/onyxfront/internal/token"

// MaxAliasDepth bounds recursion through Alias/transparent-Modifier chains
// in the debug type model (spec §9: the debug-info producer is an external
// collaborator and cannot be trusted to hand us an acyclic graph).
const MaxAliasDepth = 64

// ResyncTokens are the token kinds the parser's cursor treats as a safe
// place to stop resynchronizing after a statement-level parse error (spec
// §4.1: `{`, `}`, `;`, end-of-stream).
var ResyncTokens = map[token.Type]bool{
	token.LBrace:    true,
	token.RBrace:    true,
	token.Semicolon: true,
	token.EOF:       true,
}

// IntWidthThreshold is the boundary spec §4.2 uses to choose between i32
// and i64 for an integer literal with no explicit suffix: values whose
// absolute value is strictly less than this get i32, everything else
// (including exactly 2^32, per the spec's stated pending interpretation)
// gets i64.
const IntWidthThreshold = int64(1) << 32
