package cpu

import "fmt"

// Instruction is a single entry of an opcode table.
//
// A fixed instruction always costs cycles. A branch instruction
// reports whether its branch was taken, and costs cycles if it was
// and notTakenCycles if it was not.
type Instruction struct {
	name string

	fn     func(c *CPU, bus Bus)
	branch func(c *CPU, bus Bus) bool

	cycles         int
	notTakenCycles int
	illegal        bool
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the cycles the instruction costs, and for branch
// instructions the cost when the branch is not taken.
func (i Instruction) Cycles() (taken, notTaken int) {
	if i.branch == nil {
		return i.cycles, i.cycles
	}
	return i.cycles, i.notTakenCycles
}

func (i Instruction) execute(c *CPU, bus Bus) int {
	if i.branch != nil {
		if i.branch(c, bus) {
			return i.cycles
		}
		return i.notTakenCycles
	}
	i.fn(c, bus)
	return i.cycles
}

// InstructionSet holds the primary opcode table.
var InstructionSet [256]Instruction

// InstructionSetCB holds the table of opcodes prefixed by 0xCB.
var InstructionSetCB [256]Instruction

// DefineInstruction defines an instruction with a fixed cost.
func DefineInstruction(opcode uint8, name string, fn func(c *CPU, bus Bus), cycles int) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn, cycles: cycles}
}

// DefineBranchInstruction defines an instruction whose cost depends
// on whether fn reports the branch as taken.
func DefineBranchInstruction(opcode uint8, name string, fn func(c *CPU, bus Bus) bool, taken, notTaken int) {
	InstructionSet[opcode] = Instruction{name: name, branch: fn, cycles: taken, notTakenCycles: notTaken}
}

// DefineInstructionCB defines an instruction in the 0xCB table. The
// cost includes fetching the prefix.
func DefineInstructionCB(opcode uint8, name string, fn func(c *CPU, bus Bus), cycles int) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn, cycles: cycles}
}

// illegalOpcodes have no defined behaviour, and stop execution.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// decimalAdjust adjusts A to a binary coded decimal after an addition
// or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	a := c.A
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.A = a
	c.setFlags(a == 0, c.isFlagSet(FlagSubtract), false, carry)
}

// complement flips every bit of A.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// setCarryFlag sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarryFlag() {
	c.setFlags(c.isFlagSet(FlagZero), false, false, true)
}

// complementCarryFlag flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarryFlag() {
	c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
}

// halt suspends execution until an enabled interrupt is pending.
//
//	HALT
func (c *CPU) halt() {
	c.mode = ModeHalt
}

// stop halts the CPU the same way HALT does, and skips the padding
// byte that follows the opcode.
//
//	STOP
func (c *CPU) stop() {
	c.mode = ModeHalt
	c.PC++
}

// disableInterrupts clears the IME immediately, and cancels a
// pending EI.
//
//	DI
func (c *CPU) disableInterrupts() {
	c.irq.SetGloballyEnabled(false)
	c.imeDelay = 0
}

// enableInterrupts sets the IME once the instruction following EI
// has executed.
//
//	EI
func (c *CPU) enableInterrupts() {
	if !c.irq.GloballyEnabled() {
		c.imeDelay = 2
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, bus Bus) {}, 4)
	DefineInstruction(0x10, "STOP", func(c *CPU, bus Bus) { c.stop() }, 4)
	DefineInstruction(0x27, "DAA", func(c *CPU, bus Bus) { c.decimalAdjust() }, 4)
	DefineInstruction(0x2F, "CPL", func(c *CPU, bus Bus) { c.complement() }, 4)
	DefineInstruction(0x37, "SCF", func(c *CPU, bus Bus) { c.setCarryFlag() }, 4)
	DefineInstruction(0x3F, "CCF", func(c *CPU, bus Bus) { c.complementCarryFlag() }, 4)
	DefineInstruction(0x76, "HALT", func(c *CPU, bus Bus) { c.halt() }, 4)
	DefineInstruction(0xF3, "DI", func(c *CPU, bus Bus) { c.disableInterrupts() }, 4)
	DefineInstruction(0xFB, "EI", func(c *CPU, bus Bus) { c.enableInterrupts() }, 4)

	// never executed, Step dispatches 0xCB through InstructionSetCB
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU, bus Bus) {}, 4)

	for _, opcode := range illegalOpcodes {
		InstructionSet[opcode] = Instruction{name: fmt.Sprintf("ILLEGAL %02Xh", opcode), illegal: true}
	}
}
