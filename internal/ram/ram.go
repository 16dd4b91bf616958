// Package ram provides fixed-size blocks of RAM.
package ram

// RAM represents a fixed-size block of RAM, addressed from 0.
type RAM struct {
	data []uint8
}

// NewRAM returns a new zeroed RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given offset.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given offset.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Size returns the size of the RAM in bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// Reset zeroes the RAM.
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}
