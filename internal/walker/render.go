package walker

import (
	"fmt"

	"github.com/funvibe/funbit/pkg/funbit"
	"github.com/onyx-lang/onyxfront/internal/debugtype"
	"github.com/onyx-lang/onyxfront/internal/outbuf"
	"github.com/onyx-lang/onyxfront/internal/ovm"
)

// decodeUint reads an unsigned little-endian integer of size bytes out of
// data using a funbit matcher, the same scalar-decode mechanism the rest
// of the walker uses for every fixed-width read.
func decodeUint(data []byte, size int) (uint64, bool) {
	var v uint64
	m := funbit.NewMatcher()
	funbit.Integer(m, &v, funbit.WithSize(uint(size*8)), funbit.WithSigned(false), funbit.WithEndianness("little"))
	if _, err := funbit.Match(m, funbit.NewBitStringFromBytes(data)); err != nil {
		return 0, false
	}
	return v, true
}

func decodeInt(data []byte, size int) (int64, bool) {
	var v int64
	m := funbit.NewMatcher()
	funbit.Integer(m, &v, funbit.WithSize(uint(size*8)), funbit.WithSigned(true), funbit.WithEndianness("little"))
	if _, err := funbit.Match(m, funbit.NewBitStringFromBytes(data)); err != nil {
		return 0, false
	}
	return v, true
}

func decodeFloat(data []byte, size int) (float64, bool) {
	m := funbit.NewMatcher()
	switch size {
	case 4:
		var f float32
		funbit.Float(m, &f, funbit.WithSize(32), funbit.WithEndianness("little"))
		if _, err := funbit.Match(m, funbit.NewBitStringFromBytes(data)); err != nil {
			return 0, false
		}
		return float64(f), true
	case 8:
		var f float64
		funbit.Float(m, &f, funbit.WithSize(64), funbit.WithEndianness("little"))
		if _, err := funbit.Match(m, funbit.NewBitStringFromBytes(data)); err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// render writes typeID's value at loc into buf, following every rule in
// spec §4.9. It never panics: unreadable bytes, a missing type id and an
// alias chain deeper than config.MaxAliasDepth render as "(err)", a void
// primitive as "(unknown)", and an unresolved location as
// "(location unknown)".
func (c *Cursor) render(buf *outbuf.Buffer, loc ovm.Location, typeID debugtype.ID) {
	if loc.Kind == ovm.LocationUnknown {
		buf.WriteString("(location unknown)")
		return
	}
	typ, ok := c.resolve(typeID)
	if !ok {
		buf.WriteString("(err)")
		return
	}
	if typ == nil {
		buf.WriteString("(unknown)")
		return
	}

	switch t := typ.(type) {
	case debugtype.Primitive:
		c.renderPrimitive(buf, loc, t)
	case debugtype.Modifier:
		c.renderPointer(buf, loc, t)
	case debugtype.Function:
		c.renderFunction(buf, loc)
	case debugtype.Structure:
		c.renderStructure(buf, loc, t)
	case debugtype.Array:
		c.renderArray(buf, loc, t)
	default:
		buf.WriteString("(unknown)")
	}
}

func (c *Cursor) renderPrimitive(buf *outbuf.Buffer, loc ovm.Location, p debugtype.Primitive) {
	switch p.Kind {
	case debugtype.Boolean:
		data, ok := c.readWindow(loc, 1)
		if !ok {
			buf.WriteString("(err)")
			return
		}
		if data[0] != 0 {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case debugtype.Float:
		if p.Size != 4 && p.Size != 8 {
			buf.WriteString("(err)")
			return
		}
		data, ok := c.readWindow(loc, p.Size)
		if !ok {
			buf.WriteString("(err)")
			return
		}
		f, ok := decodeFloat(data, p.Size)
		if !ok {
			buf.WriteString("(err)")
			return
		}
		buf.WriteString(fmt.Sprintf("%f", f))

	case debugtype.SignedInt:
		if p.Size != 1 && p.Size != 2 && p.Size != 4 && p.Size != 8 {
			buf.WriteString("(err)")
			return
		}
		data, ok := c.readWindow(loc, p.Size)
		if !ok {
			buf.WriteString("(err)")
			return
		}
		n, ok := decodeInt(data, p.Size)
		if !ok {
			buf.WriteString("(err)")
			return
		}
		buf.WriteString(fmt.Sprintf("%d", n))

	case debugtype.UnsignedInt:
		if p.Size != 1 && p.Size != 2 && p.Size != 4 && p.Size != 8 {
			buf.WriteString("(err)")
			return
		}
		data, ok := c.readWindow(loc, p.Size)
		if !ok {
			buf.WriteString("(err)")
			return
		}
		n, ok := decodeUint(data, p.Size)
		if !ok {
			buf.WriteString("(err)")
			return
		}
		buf.WriteString(fmt.Sprintf("%d", n))

	default: // Void
		buf.WriteString("(unknown)")
	}
}

func (c *Cursor) renderPointer(buf *outbuf.Buffer, loc ovm.Location, m debugtype.Modifier) {
	if m.Size != 4 && m.Size != 8 {
		buf.WriteString("(err)")
		return
	}
	v, ok := c.readPointerValue(loc, m.Size)
	if !ok {
		buf.WriteString("(err)")
		return
	}
	buf.WriteString(fmt.Sprintf("0x%x", v))
}

func (c *Cursor) renderFunction(buf *outbuf.Buffer, loc ovm.Location) {
	data, ok := c.readWindow(loc, 4)
	if !ok {
		buf.WriteString("(err)")
		return
	}
	v, ok := decodeUint(data, 4)
	if !ok {
		buf.WriteString("(err)")
		return
	}
	buf.WriteString(fmt.Sprintf("func[%d]", v))
}

// renderStructure renders `{ name=val, ... }` in declaration order. The
// same formula computes each member's sub-location whether the aggregate
// is held in memory (byte offset) or packed across registers (one
// register per member), so in-memory and in-register structures share
// this single rendering path (spec §4.9).
func (c *Cursor) renderStructure(buf *outbuf.Buffer, loc ovm.Location, s debugtype.Structure) {
	buf.WriteString("{ ")
	for i, m := range s.Members {
		if i > 0 {
			buf.WriteString(", ")
		}
		memberLoc := loc
		if loc.Kind == ovm.LocationRegister {
			memberLoc.Off = loc.Off + int64(i)
		} else {
			memberLoc.Off = loc.Off + int64(m.Offset)
		}
		buf.WriteString(m.Name)
		buf.WriteByte('=')
		c.render(buf, memberLoc, m.Type)
	}
	buf.WriteString(" }")
}

// renderArray renders `[v, v, ...]`. A register-held array value is
// reinterpreted as a linear-memory address and rendered via the in-memory
// path (spec §4.9).
func (c *Cursor) renderArray(buf *outbuf.Buffer, loc ovm.Location, a debugtype.Array) {
	elemTyp, ok := resolveType(c.types, a.Element)
	if !ok {
		buf.WriteString("(err)")
		return
	}
	stride := sizeOf(c.types, elemTyp)
	if stride <= 0 {
		buf.WriteString("(err)")
		return
	}

	base := loc
	if loc.Kind == ovm.LocationRegister {
		addr, ok := c.readPointerValue(loc, 4)
		if !ok {
			buf.WriteString("(err)")
			return
		}
		base = ovm.Location{Kind: ovm.LocationGlobal, Off: int64(addr)}
	}

	buf.WriteByte('[')
	for i := 0; i < a.Count; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		elemLoc := base
		elemLoc.Off = base.Off + int64(i)*int64(stride)
		c.render(buf, elemLoc, a.Element)
	}
	buf.WriteByte(']')
}
