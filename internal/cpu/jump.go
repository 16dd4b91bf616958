package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// condition is a flag test gating a conditional branch.
type condition struct {
	name string
	test func(c *CPU) bool
}

// conditions are indexed the way opcodes encode them.
var conditions = [4]condition{
	{"NZ", func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
	{"Z", func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
	{"NC", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
	{"C", func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
}

// call pushes the address of the next instruction onto the stack and
// jumps to the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(bus Bus, address uint16) {
	c.push(bus, c.PC)
	c.PC = address
}

// jumpRelative jumps to the address relative to the current PC.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = bits.ToWord(int32(c.PC) + int32(bits.SignExtend(offset)))
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret(bus Bus) {
	c.PC = c.pop(bus)
}

// retInterrupt returns like RET, and sets the IME immediately.
//
//	RETI
func (c *CPU) retInterrupt(bus Bus) {
	c.ret(bus)
	c.irq.SetGloballyEnabled(true)
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, bus Bus) { c.jumpRelative(c.readOperand(bus)) }, 12)
	DefineInstruction(0xC3, "JP a16", func(c *CPU, bus Bus) { c.PC = c.readOperand16(bus) }, 16)
	DefineInstruction(0xE9, "JP (HL)", func(c *CPU, bus Bus) { c.PC = c.HL.Uint16() }, 4)
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, bus Bus) { c.call(bus, c.readOperand16(bus)) }, 24)
	DefineInstruction(0xC9, "RET", func(c *CPU, bus Bus) { c.ret(bus) }, 16)
	DefineInstruction(0xD9, "RETI", func(c *CPU, bus Bus) { c.retInterrupt(bus) }, 16)

	// the operands are always consumed, taken or not
	for i := uint8(0); i < 4; i++ {
		cond := conditions[i]

		DefineBranchInstruction(0x20+i<<3, fmt.Sprintf("JR %s, r8", cond.name), func(c *CPU, bus Bus) bool {
			offset := c.readOperand(bus)
			if !cond.test(c) {
				return false
			}
			c.jumpRelative(offset)
			return true
		}, 12, 8)
		DefineBranchInstruction(0xC2+i<<3, fmt.Sprintf("JP %s, a16", cond.name), func(c *CPU, bus Bus) bool {
			address := c.readOperand16(bus)
			if !cond.test(c) {
				return false
			}
			c.PC = address
			return true
		}, 16, 12)
		DefineBranchInstruction(0xC4+i<<3, fmt.Sprintf("CALL %s, a16", cond.name), func(c *CPU, bus Bus) bool {
			address := c.readOperand16(bus)
			if !cond.test(c) {
				return false
			}
			c.call(bus, address)
			return true
		}, 24, 12)
		DefineBranchInstruction(0xC0+i<<3, fmt.Sprintf("RET %s", cond.name), func(c *CPU, bus Bus) bool {
			if !cond.test(c) {
				return false
			}
			c.ret(bus)
			return true
		}, 20, 8)
	}

	// RST n calls one of the 8 fixed vectors at 0x00 - 0x38
	for i := uint8(0); i < 8; i++ {
		address := uint16(i) << 3
		DefineInstruction(0xC7+i<<3, fmt.Sprintf("RST %02Xh", address), func(c *CPU, bus Bus) {
			c.call(bus, address)
		}, 16)
	}
}
