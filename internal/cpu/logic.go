package cpu

import "fmt"

// and performs a bitwise AND on A and the given value.
//
//	AND n
//	n = A, B, C, D, E, H, L, (HL), #
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(value uint8) {
	c.A &= value
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR on A and the given value.
//
//	OR n
//	n = A, B, C, D, E, H, L, (HL), #
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(value uint8) {
	c.A |= value
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR on A and the given value.
//
//	XOR n
//	n = A, B, C, D, E, H, L, (HL), #
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.setFlags(c.A == 0, false, false, false)
}

// compare subtracts the given value from A, keeping only the flags.
//
//	CP n
//	n = A, B, C, D, E, H, L, (HL), #
//
// Flags affected:
//
//	Z - Set if result is zero. (Set if A = n.)
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set for no borrow. (Set if A < n.)
func (c *CPU) compare(value uint8) {
	c.sub(c.A, value, false)
}

func init() {
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := 4
		if index == registerHLIndirect {
			cycles = 8
		}
		name := registerNames[index]

		DefineInstruction(0xA0+index, fmt.Sprintf("AND %s", name), func(c *CPU, bus Bus) { c.and(c.readRegister(bus, index)) }, cycles)
		DefineInstruction(0xA8+index, fmt.Sprintf("XOR %s", name), func(c *CPU, bus Bus) { c.xor(c.readRegister(bus, index)) }, cycles)
		DefineInstruction(0xB0+index, fmt.Sprintf("OR %s", name), func(c *CPU, bus Bus) { c.or(c.readRegister(bus, index)) }, cycles)
		DefineInstruction(0xB8+index, fmt.Sprintf("CP %s", name), func(c *CPU, bus Bus) { c.compare(c.readRegister(bus, index)) }, cycles)
	}

	DefineInstruction(0xE6, "AND d8", func(c *CPU, bus Bus) { c.and(c.readOperand(bus)) }, 8)
	DefineInstruction(0xEE, "XOR d8", func(c *CPU, bus Bus) { c.xor(c.readOperand(bus)) }, 8)
	DefineInstruction(0xF6, "OR d8", func(c *CPU, bus Bus) { c.or(c.readOperand(bus)) }, 8)
	DefineInstruction(0xFE, "CP d8", func(c *CPU, bus Bus) { c.compare(c.readOperand(bus)) }, 8)
}
