package walker

import (
	"github.com/onyx-lang/onyxfront/internal/config"
	"github.com/onyx-lang/onyxfront/internal/debugtype"
)

// resolveType transparently unwraps Alias and non-pointer Modifier links,
// bounded by config.MaxAliasDepth since the debug-info producer's
// acyclicity is not guaranteed (spec §9).
func resolveType(types *debugtype.Table, id debugtype.ID) (debugtype.Type, bool) {
	for depth := 0; depth < config.MaxAliasDepth; depth++ {
		typ, ok := types.Get(id)
		if !ok {
			return nil, false
		}
		switch t := typ.(type) {
		case debugtype.Alias:
			id = t.Aliased
			continue
		case debugtype.Modifier:
			if t.ModKind != debugtype.Pointer {
				id = t.Modified
				continue
			}
		}
		return typ, true
	}
	return nil, false
}

// sizeOf reports typ's storage size in bytes, following the same
// transparent unwrapping as resolveType, for computing array element
// strides (spec §4.9).
func sizeOf(types *debugtype.Table, typ debugtype.Type) int {
	switch t := typ.(type) {
	case debugtype.Primitive:
		return t.Size
	case debugtype.Modifier:
		if t.ModKind == debugtype.Pointer {
			return t.Size
		}
		inner, ok := types.Get(t.Modified)
		if !ok {
			return 0
		}
		return sizeOf(types, inner)
	case debugtype.Alias:
		inner, ok := types.Get(t.Aliased)
		if !ok {
			return 0
		}
		return sizeOf(types, inner)
	case debugtype.Function:
		return 4
	default:
		return 0
	}
}
