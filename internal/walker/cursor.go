// Package walker renders live OVM values from a symbolic location and a
// debug-type descriptor (spec §4.9, §4.10). A Cursor never mutates the
// engine it reads from; it only appends to its own output buffer.
package walker

import (
	"github.com/onyx-lang/onyxfront/internal/debugtype"
	"github.com/onyx-lang/onyxfront/internal/outbuf"
	"github.com/onyx-lang/onyxfront/internal/ovm"
)

// Cursor is the stateful builder the walker exposes: a base (the value
// last located by SetLocation or Descend) and an iteration (the subvalue
// currently selected for rendering, advanced by Step).
type Cursor struct {
	types  *debugtype.Table
	engine *ovm.Engine
	frame  ovm.Frame
	buf    *outbuf.Buffer

	baseLoc  ovm.Location
	baseType debugtype.ID
	baseName string

	itName        string
	itLoc         ovm.Location
	itType        debugtype.ID
	itHasChildren bool
	itIndex       int
	itMaxIndex    int
}

// New allocates a Cursor's output buffer (spec §4.9 init).
func New(types *debugtype.Table, engine *ovm.Engine, frame ovm.Frame) *Cursor {
	return &Cursor{types: types, engine: engine, frame: frame, buf: outbuf.New()}
}

// SetLocation seeds the base cursor and initializes iteration state
// describing the value itself: HasChildren iff MaxIndex > 0.
func (c *Cursor) SetLocation(kind ovm.LocationKind, loc int64, typeID debugtype.ID, name string) {
	c.baseLoc = ovm.Location{Kind: kind, Off: loc}
	c.baseType = typeID
	c.baseName = name
	c.resetIterationToBase()
}

func (c *Cursor) resetIterationToBase() {
	c.itName = c.baseName
	c.itLoc = c.baseLoc
	c.itType = c.baseType
	c.itIndex = 0
	c.itMaxIndex = c.maxIndexFor(c.baseType)
	c.itHasChildren = c.itMaxIndex > 0
}

// Name, Location, TypeID, HasChildren, Index, MaxIndex expose the current
// iteration entry for a host UI to display.
func (c *Cursor) Name() string                { return c.itName }
func (c *Cursor) Location() ovm.Location      { return c.itLoc }
func (c *Cursor) TypeID() debugtype.ID        { return c.itType }
func (c *Cursor) HasChildren() bool           { return c.itHasChildren }
func (c *Cursor) Index() int                  { return c.itIndex }
func (c *Cursor) MaxIndex() int               { return c.itMaxIndex }

// resolve transparently unwraps Alias links and non-pointer Modifier
// wrappers (spec §3.4, §4.9) up to config.MaxAliasDepth hops, returning
// the first "active" type it finds: a Primitive, a pointer Modifier, a
// Function, a Structure, or an Array. ok is false if id is unresolvable or
// the chain exceeds the depth bound (an acyclicity failure, spec §9).
func (c *Cursor) resolve(id debugtype.ID) (debugtype.Type, bool) {
	return resolveType(c.types, id)
}

// maxIndexFor computes the drill-in bound for id (spec §3.4): 0 for
// primitive/function/array/non-pointer-modifier, 1 for a pointer, the
// member count for a structure, and (via resolve) the aliased type's own
// count for an alias.
func (c *Cursor) maxIndexFor(id debugtype.ID) int {
	typ, ok := c.resolve(id)
	if !ok || typ == nil {
		return 0
	}
	switch t := typ.(type) {
	case debugtype.Modifier:
		return 1 // resolve already filtered out non-pointer modifiers
	case debugtype.Structure:
		return t.MemberCount()
	default:
		return 0
	}
}

// Descend drills the base into subvalue index (spec §4.9). Any
// out-of-range or type-mismatched index transitions the base to
// LocationUnknown rather than erroring.
func (c *Cursor) Descend(index int) {
	typ, ok := c.resolve(c.baseType)
	if !ok || typ == nil {
		c.baseLoc.Kind = ovm.LocationUnknown
		c.resetIterationToBase()
		return
	}

	switch t := typ.(type) {
	case debugtype.Modifier:
		if index != 0 {
			c.baseLoc.Kind = ovm.LocationUnknown
			break
		}
		addr, ok := c.readPointerValue(c.baseLoc, t.Size)
		if !ok {
			c.baseLoc.Kind = ovm.LocationUnknown
			break
		}
		c.baseLoc = ovm.Location{Kind: ovm.LocationGlobal, Off: int64(addr)}
		c.baseType = t.Modified
		c.baseName = "*" + c.baseName

	case debugtype.Structure:
		if index < 0 || index >= len(t.Members) {
			c.baseLoc.Kind = ovm.LocationUnknown
			break
		}
		m := t.Members[index]
		if c.baseLoc.Kind == ovm.LocationRegister {
			c.baseLoc.Off += int64(index)
		} else {
			c.baseLoc.Off += int64(m.Offset)
		}
		c.baseType = m.Type
		c.baseName = m.Name

	default:
		c.baseLoc.Kind = ovm.LocationUnknown
	}

	c.resetIterationToBase()
}

// Step advances the iteration cursor by one subvalue without touching the
// base (spec §4.9). It returns false once ItIndex reaches MaxIndex, and is
// idempotent thereafter until SetLocation or Descend runs again.
func (c *Cursor) Step() bool {
	if c.itIndex >= c.itMaxIndex {
		return false
	}
	typ, ok := c.resolve(c.baseType)
	if !ok || typ == nil {
		return false
	}

	i := c.itIndex
	switch t := typ.(type) {
	case debugtype.Modifier:
		// The actual pointer-follow is deferred to render time; the child
		// shares the parent's own location.
		c.itName = "*" + c.baseName
		c.itLoc = c.baseLoc
		c.itType = t.Modified

	case debugtype.Structure:
		m := t.Members[i]
		loc := c.baseLoc
		if loc.Kind == ovm.LocationRegister {
			loc.Off += int64(i)
		} else {
			loc.Off += int64(m.Offset)
		}
		c.itName = m.Name
		c.itLoc = loc
		c.itType = m.Type

	default:
		return false
	}

	c.itIndex++
	return true
}

// BuildString renders the current iteration value into the output buffer.
func (c *Cursor) BuildString() {
	c.render(c.buf, c.itLoc, c.itType)
}

// Bytes returns the buffer's current contents.
func (c *Cursor) Bytes() []byte { return c.buf.Bytes() }

// String returns the buffer's current contents.
func (c *Cursor) String() string { return c.buf.String() }

// Clear empties the output buffer without freeing it.
func (c *Cursor) Clear() { c.buf.Clear() }

// Free releases the output buffer's storage.
func (c *Cursor) Free() { c.buf.Free() }
