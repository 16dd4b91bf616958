package types

// IOHandler services reads and writes of a single I/O register.
// A nil Read returns 0xFF, a nil Write drops the value.
type IOHandler struct {
	Read  func() uint8
	Write func(v uint8)
}

// IOTable maps the I/O register window 0xFF00 - 0xFF7F onto the
// components that own each register. The table is indexed by the
// address ANDed with 0x007F. Each machine owns its own table.
type IOTable [0x80]*IOHandler

// Register installs the read and write functions for the given
// address, replacing any previous handler.
func (t *IOTable) Register(address HardwareAddress, read func() uint8, write func(v uint8)) {
	t[address&0x007F] = &IOHandler{Read: read, Write: write}
}

// Lookup returns the handler for the given address, or nil if no
// component has claimed it.
func (t *IOTable) Lookup(address HardwareAddress) *IOHandler {
	return t[address&0x007F]
}

// read calls the handler, treating a nil Read as open bus.
func (h *IOHandler) read() uint8 {
	if h.Read == nil {
		return 0xFF
	}
	return h.Read()
}

// Read returns the value of the register at address and whether a
// component has claimed it.
func (t *IOTable) Read(address HardwareAddress) (uint8, bool) {
	h := t.Lookup(address)
	if h == nil {
		return 0, false
	}
	return h.read(), true
}

// Write writes the register at address and reports whether a
// component has claimed it.
func (t *IOTable) Write(address HardwareAddress, value uint8) bool {
	h := t.Lookup(address)
	if h == nil {
		return false
	}
	if h.Write != nil {
		h.Write(value)
	}
	return true
}

// NoRead is a read function for write-only registers.
func NoRead() uint8 {
	return 0xFF
}

// NoWrite is a write function for read-only registers.
func NoWrite(uint8) {}
