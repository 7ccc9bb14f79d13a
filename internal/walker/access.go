package walker

import "github.com/onyx-lang/onyxfront/internal/ovm"

// readWindow resolves loc to a byte window of length n, dispatching on
// location kind (spec §4.10): a register read pulls ceil(n/4) consecutive
// register slots and truncates, a stack read is relative to the frame's
// stack pointer, a global read is an absolute memory address.
func (c *Cursor) readWindow(loc ovm.Location, n int) ([]byte, bool) {
	switch loc.Kind {
	case ovm.LocationRegister:
		return c.readRegisterWindow(int(loc.Off), n)
	case ovm.LocationStack:
		addr, ok := c.engine.StackAddress(c.frame, loc.Off)
		if !ok {
			return nil, false
		}
		return c.readMemoryWindow(addr, n)
	case ovm.LocationGlobal:
		return c.readMemoryWindow(loc.Off, n)
	default:
		return nil, false
	}
}

func (c *Cursor) readMemoryWindow(addr int64, n int) ([]byte, bool) {
	if addr < 0 || n < 0 || addr+int64(n) > int64(len(c.engine.Memory)) {
		return nil, false
	}
	return c.engine.Memory[addr : addr+int64(n)], true
}

func (c *Cursor) readRegisterWindow(reg, n int) ([]byte, bool) {
	regs := (n + 3) / 4
	out := make([]byte, 0, regs*4)
	for i := 0; i < regs; i++ {
		v, ok := c.engine.LookupRegister(c.frame, reg+i)
		if !ok {
			return nil, false
		}
		out = append(out, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return out[:n], true
}

// readPointerValue reads the raw pointer value out of loc per spec §4.9's
// descend rule: register -> its own u32; stack -> stack_ptr + base_loc
// reinterpreted as u32; global -> base_loc reinterpreted as u32. size
// selects the 4- or 8-byte pointer width.
func (c *Cursor) readPointerValue(loc ovm.Location, size int) (uint64, bool) {
	if size != 4 && size != 8 {
		return 0, false
	}
	data, ok := c.readWindow(loc, size)
	if !ok {
		return 0, false
	}
	return decodeUint(data, size)
}
