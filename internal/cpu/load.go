package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// registerHLIndirect is the register index that addresses memory at
// HL rather than a register.
const registerHLIndirect = 6

// registerNames are indexed the way opcodes encode registers.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// pairNames are indexed the way opcodes encode register pairs for
// 16-bit loads and arithmetic.
var pairNames = [4]string{"BC", "DE", "HL", "SP"}

// register returns the register encoded by index. (HL) has no
// register, and returns nil.
func (c *CPU) register(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// readRegister reads the register encoded by index, or the memory
// at HL for (HL).
func (c *CPU) readRegister(bus Bus, index uint8) uint8 {
	if index == registerHLIndirect {
		return bus.Read(c.HL.Uint16())
	}
	return *c.register(index)
}

// writeRegister writes the register encoded by index, or the memory
// at HL for (HL).
func (c *CPU) writeRegister(bus Bus, index uint8, value uint8) {
	if index == registerHLIndirect {
		bus.Write(c.HL.Uint16(), value)
		return
	}
	*c.register(index) = value
}

// readPair reads the register pair encoded by index, where 3 is SP.
func (c *CPU) readPair(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	}
	return c.SP
}

// writePair writes the register pair encoded by index, where 3 is SP.
func (c *CPU) writePair(index uint8, value uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}

// stackPair returns the register pair encoded by index for PUSH and
// POP, where 3 is AF.
func (c *CPU) stackPair(index uint8) *types.RegisterPair {
	switch index {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	}
	return c.AF
}

// loadHLIncrement returns HL and increments it.
func (c *CPU) loadHLIncrement() uint16 {
	hl := c.HL.Uint16()
	c.HL.SetUint16(hl + 1)
	return hl
}

// loadHLDecrement returns HL and decrements it.
func (c *CPU) loadHLDecrement() uint16 {
	hl := c.HL.Uint16()
	c.HL.SetUint16(hl - 1)
	return hl
}

func init() {
	// 0x40 - 0x7F LD r, r' with 0x76 left to HALT
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == registerHLIndirect && src == registerHLIndirect {
				continue
			}
			d, s := dst, src
			cycles := 4
			if d == registerHLIndirect || s == registerHLIndirect {
				cycles = 8
			}
			DefineInstruction(0x40+d<<3+s, fmt.Sprintf("LD %s, %s", registerNames[d], registerNames[s]), func(c *CPU, bus Bus) {
				c.writeRegister(bus, d, c.readRegister(bus, s))
			}, cycles)
		}
	}

	// LD r, d8
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := 8
		if index == registerHLIndirect {
			cycles = 12
		}
		DefineInstruction(0x06+index<<3, fmt.Sprintf("LD %s, d8", registerNames[index]), func(c *CPU, bus Bus) {
			c.writeRegister(bus, index, c.readOperand(bus))
		}, cycles)
	}

	// LD rr, d16 and the stack pairs
	for i := uint8(0); i < 4; i++ {
		index := i
		DefineInstruction(0x01+index<<4, fmt.Sprintf("LD %s, d16", pairNames[index]), func(c *CPU, bus Bus) {
			c.writePair(index, c.readOperand16(bus))
		}, 12)

		stackName := pairNames[index]
		if index == 3 {
			stackName = "AF"
		}
		DefineInstruction(0xC5+index<<4, fmt.Sprintf("PUSH %s", stackName), func(c *CPU, bus Bus) {
			c.push(bus, c.stackPair(index).Uint16())
		}, 16)
		DefineInstruction(0xC1+index<<4, fmt.Sprintf("POP %s", stackName), func(c *CPU, bus Bus) {
			c.stackPair(index).SetUint16(c.pop(bus))
		}, 12)
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, bus Bus) { bus.Write(c.BC.Uint16(), c.A) }, 8)
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, bus Bus) { bus.Write(c.DE.Uint16(), c.A) }, 8)
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, bus Bus) { bus.Write(c.loadHLIncrement(), c.A) }, 8)
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, bus Bus) { bus.Write(c.loadHLDecrement(), c.A) }, 8)
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, bus Bus) { c.A = bus.Read(c.BC.Uint16()) }, 8)
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, bus Bus) { c.A = bus.Read(c.DE.Uint16()) }, 8)
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, bus Bus) { c.A = bus.Read(c.loadHLIncrement()) }, 8)
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, bus Bus) { c.A = bus.Read(c.loadHLDecrement()) }, 8)

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, bus Bus) { bus.Write16(c.readOperand16(bus), c.SP) }, 20)
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, bus Bus) { bus.Write(c.readOperand16(bus), c.A) }, 16)
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, bus Bus) { c.A = bus.Read(c.readOperand16(bus)) }, 16)

	// the high page, 0xFF00 - 0xFFFF
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, bus Bus) { bus.Write(0xFF00|uint16(c.readOperand(bus)), c.A) }, 12)
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, bus Bus) { c.A = bus.Read(0xFF00 | uint16(c.readOperand(bus))) }, 12)
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, bus Bus) { bus.Write(0xFF00|uint16(c.C), c.A) }, 8)
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, bus Bus) { c.A = bus.Read(0xFF00 | uint16(c.C)) }, 8)

	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU, bus Bus) { c.HL.SetUint16(c.addSPSigned(c.readOperand(bus))) }, 12)
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, bus Bus) { c.SP = c.HL.Uint16() }, 8)
}
