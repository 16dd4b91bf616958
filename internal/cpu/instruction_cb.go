package cpu

import "fmt"

// cbOperations are the rotate, shift and swap operations of the
// first quarter of the CB table, in opcode order.
var cbOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	// every CB opcode is laid out as oo bbb rrr, with rrr the
	// register index
	for reg := uint8(0); reg < 8; reg++ {
		r := reg
		name := registerNames[r]

		// read-modify-write of (HL) costs 16, BIT n, (HL) 12
		cycles, bitCycles := 8, 8
		if r == registerHLIndirect {
			cycles, bitCycles = 16, 12
		}

		for op := uint8(0); op < 8; op++ {
			operation := cbOperations[op]
			DefineInstructionCB(op<<3|r, fmt.Sprintf("%s %s", operation.name, name), func(c *CPU, bus Bus) {
				c.writeRegister(bus, r, operation.fn(c, c.readRegister(bus, r)))
			}, cycles)
		}

		for bit := uint8(0); bit < 8; bit++ {
			b := bit
			DefineInstructionCB(0x40|b<<3|r, fmt.Sprintf("BIT %d, %s", b, name), func(c *CPU, bus Bus) {
				c.testBit(c.readRegister(bus, r), b)
			}, bitCycles)
			DefineInstructionCB(0x80|b<<3|r, fmt.Sprintf("RES %d, %s", b, name), func(c *CPU, bus Bus) {
				c.writeRegister(bus, r, c.resetBit(c.readRegister(bus, r), b))
			}, cycles)
			DefineInstructionCB(0xC0|b<<3|r, fmt.Sprintf("SET %d, %s", b, name), func(c *CPU, bus Bus) {
				c.writeRegister(bus, r, c.setBit(c.readRegister(bus, r), b))
			}, cycles)
		}
	}
}
