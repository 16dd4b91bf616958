package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// increment increments the given value by 1.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 1
	c.setFlags(incremented == 0, false, bits.HalfCarryAdd(value, 1, false), c.isFlagSet(FlagCarry))
	return incremented
}

// decrement decrements the given value by 1.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 1
	c.setFlags(decremented == 0, true, bits.HalfCarrySub(value, 1, false), c.isFlagSet(FlagCarry))
	return decremented
}

// add adds b to a, plus the carry flag if shouldCarry is set, and
// sets the flags accordingly.
//
//	ADD A, n
//	ADC A, n
//	n = A, B, C, D, E, H, L, (HL), #
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, shouldCarry bool) uint8 {
	carry := shouldCarry && c.isFlagSet(FlagCarry)
	sum := int(a) + int(b)
	if carry {
		sum++
	}
	result := bits.ToByte(sum)
	c.setFlags(result == 0, false, bits.HalfCarryAdd(a, b, carry), bits.CarryAdd(a, b, carry))
	return result
}

// sub subtracts b from a, plus the carry flag if shouldCarry is set,
// and sets the flags accordingly.
//
//	SUB n
//	SBC A, n
//	n = A, B, C, D, E, H, L, (HL), #
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func (c *CPU) sub(a, b uint8, shouldCarry bool) uint8 {
	carry := shouldCarry && c.isFlagSet(FlagCarry)
	difference := int(a) - int(b)
	if carry {
		difference--
	}
	result := bits.ToByte(difference)
	c.setFlags(result == 0, true, bits.HalfCarrySub(a, b, carry), bits.CarrySub(a, b, carry))
	return result
}

// addHLRR adds the given register pair's value to HL.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRR(value uint16) {
	hl := c.HL.Uint16()
	c.setFlags(c.isFlagSet(FlagZero), false, bits.HalfCarryAdd16(hl, value), bits.CarryAdd16(hl, value))
	c.HL.SetUint16(bits.ToWord(uint32(hl) + uint32(value)))
}

// addSPSigned returns SP offset by the signed immediate value. The
// flags are computed from an unsigned add of the low byte of SP.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	low := uint8(c.SP)
	c.setFlags(false, false, bits.HalfCarryAdd(low, offset, false), bits.CarryAdd(low, offset, false))
	return bits.ToWord(int32(c.SP) + int32(bits.SignExtend(offset)))
}

// push decrements SP by 2 and writes value to the new top of the
// stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) push(bus Bus, value uint16) {
	c.SP -= 2
	bus.Write16(c.SP, value)
}

// pop reads the value at the top of the stack and increments SP by 2.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) pop(bus Bus) uint16 {
	value := bus.Read16(c.SP)
	c.SP += 2
	return value
}

func init() {
	// 0x80 - 0xBF, the 8-bit ALU on A and a register or (HL)
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := 4
		if index == registerHLIndirect {
			cycles = 8
		}
		name := registerNames[index]

		DefineInstruction(0x80+index, fmt.Sprintf("ADD A, %s", name), func(c *CPU, bus Bus) {
			c.A = c.add(c.A, c.readRegister(bus, index), false)
		}, cycles)
		DefineInstruction(0x88+index, fmt.Sprintf("ADC A, %s", name), func(c *CPU, bus Bus) {
			c.A = c.add(c.A, c.readRegister(bus, index), true)
		}, cycles)
		DefineInstruction(0x90+index, fmt.Sprintf("SUB %s", name), func(c *CPU, bus Bus) {
			c.A = c.sub(c.A, c.readRegister(bus, index), false)
		}, cycles)
		DefineInstruction(0x98+index, fmt.Sprintf("SBC A, %s", name), func(c *CPU, bus Bus) {
			c.A = c.sub(c.A, c.readRegister(bus, index), true)
		}, cycles)

		// INC r and DEC r live at 0x04 + 8*r and 0x05 + 8*r
		incDecCycles := 4
		if index == registerHLIndirect {
			incDecCycles = 12
		}
		DefineInstruction(0x04+index<<3, fmt.Sprintf("INC %s", name), func(c *CPU, bus Bus) {
			c.writeRegister(bus, index, c.increment(c.readRegister(bus, index)))
		}, incDecCycles)
		DefineInstruction(0x05+index<<3, fmt.Sprintf("DEC %s", name), func(c *CPU, bus Bus) {
			c.writeRegister(bus, index, c.decrement(c.readRegister(bus, index)))
		}, incDecCycles)
	}

	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU, bus Bus) { c.A = c.add(c.A, c.readOperand(bus), false) }, 8)
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU, bus Bus) { c.A = c.add(c.A, c.readOperand(bus), true) }, 8)
	DefineInstruction(0xD6, "SUB d8", func(c *CPU, bus Bus) { c.A = c.sub(c.A, c.readOperand(bus), false) }, 8)
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU, bus Bus) { c.A = c.sub(c.A, c.readOperand(bus), true) }, 8)

	// 16-bit increments and decrements don't touch the flags
	for i := uint8(0); i < 4; i++ {
		index := i
		name := pairNames[index]

		DefineInstruction(0x03+index<<4, fmt.Sprintf("INC %s", name), func(c *CPU, bus Bus) {
			c.writePair(index, c.readPair(index)+1)
		}, 8)
		DefineInstruction(0x0B+index<<4, fmt.Sprintf("DEC %s", name), func(c *CPU, bus Bus) {
			c.writePair(index, c.readPair(index)-1)
		}, 8)
		DefineInstruction(0x09+index<<4, fmt.Sprintf("ADD HL, %s", name), func(c *CPU, bus Bus) {
			c.addHLRR(c.readPair(index))
		}, 8)
	}

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, bus Bus) { c.SP = c.addSPSigned(c.readOperand(bus)) }, 16)
}
