package cpu

import (
	"fmt"
	"testing"
)

// testInstruction checks the mnemonic of opcode and runs fn against a
// fresh CPU with the opcode and operands loaded at 0x0100.
func testInstruction(t *testing.T, name string, program []uint8, fn func(t *testing.T, c *CPU, bus *testBus)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		instruction := InstructionSet[program[0]]
		if program[0] == 0xCB {
			instruction = InstructionSetCB[program[1]]
		}
		if instruction.Name() != name {
			t.Fatalf("Expected 0x%02X to be %s, got %s", program[0], name, instruction.Name())
		}
		c, bus, _ := newTestCPU(program...)
		fn(t, c, bus)
	})
}

func TestInstructionSet_Complete(t *testing.T) {
	illegal := map[uint8]bool{}
	for _, opcode := range illegalOpcodes {
		illegal[opcode] = true
	}
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		instruction := InstructionSet[opcode]
		if illegal[opcode] != instruction.illegal {
			t.Errorf("Expected 0x%02X illegal to be %v", opcode, illegal[opcode])
		}
		if !instruction.illegal && instruction.fn == nil && instruction.branch == nil {
			t.Errorf("Expected 0x%02X to be defined", opcode)
		}
		if InstructionSetCB[opcode].fn == nil {
			t.Errorf("Expected CB 0x%02X to be defined", opcode)
		}
	}
}

func TestInstruction_Cycles(t *testing.T) {
	tests := []struct {
		opcode   uint8
		cb       bool
		taken    int
		notTaken int
	}{
		{0x00, false, 4, 4},
		{0x20, false, 12, 8},
		{0xC2, false, 16, 12},
		{0xC4, false, 24, 12},
		{0xC0, false, 20, 8},
		{0x46, false, 8, 8},
		{0x36, false, 12, 12},
		{0x34, false, 12, 12},
		{0xCD, false, 24, 24},
		{0x00, true, 8, 8},
		{0x06, true, 16, 16},
		{0x46, true, 12, 12},
		{0xC6, true, 16, 16},
	}
	for _, tt := range tests {
		instruction := InstructionSet[tt.opcode]
		if tt.cb {
			instruction = InstructionSetCB[tt.opcode]
		}
		t.Run(instruction.Name(), func(t *testing.T) {
			taken, notTaken := instruction.Cycles()
			if taken != tt.taken || notTaken != tt.notTaken {
				t.Errorf("Expected %d/%d cycles, got %d/%d", tt.taken, tt.notTaken, taken, notTaken)
			}
		})
	}
}

func TestInstruction_Control(t *testing.T) {
	testInstruction(t, "NOP", []uint8{0x00}, func(t *testing.T, c *CPU, bus *testBus) {
		if cycles := step(t, c); cycles != 4 {
			t.Errorf("Expected 4 cycles, got %d", cycles)
		}
		if c.PC != 0x0101 {
			t.Errorf("Expected PC to be 0x0101, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "CPL", []uint8{0x2F}, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x35
		step(t, c)
		if c.A != 0xCA {
			t.Errorf("Expected A to be 0xCA, got 0x%02X", c.A)
		}
		if !c.isFlagsSet(FlagSubtract, FlagHalfCarry) {
			t.Errorf("Expected N and H to be set")
		}
	})
	testInstruction(t, "SCF", []uint8{0x37}, func(t *testing.T, c *CPU, bus *testBus) {
		c.F = 0xE0
		step(t, c)
		if c.F != 0x90 {
			t.Errorf("Expected F to be 0x90, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "CCF", []uint8{0x3F}, func(t *testing.T, c *CPU, bus *testBus) {
		c.F = 0x70
		step(t, c)
		if c.F != 0x00 {
			t.Errorf("Expected F to be 0x00, got 0x%02X", c.F)
		}
	})
}

func TestInstruction_DecimalAdjust(t *testing.T) {
	tests := []struct {
		name     string
		program  []uint8
		a, b     uint8
		expected uint8
		zero     bool
		carry    bool
	}{
		{"ADD 45 38", []uint8{0x80, 0x27}, 0x45, 0x38, 0x83, false, false},
		{"ADD 99 01", []uint8{0x80, 0x27}, 0x99, 0x01, 0x00, true, true},
		{"ADD 90 90", []uint8{0x80, 0x27}, 0x90, 0x90, 0x80, false, true},
		{"ADD 09 01", []uint8{0x80, 0x27}, 0x09, 0x01, 0x10, false, false},
		{"SUB 83 38", []uint8{0x90, 0x27}, 0x83, 0x38, 0x45, false, false},
		{"SUB 10 20", []uint8{0x90, 0x27}, 0x10, 0x20, 0x90, false, true},
		{"SUB 42 42", []uint8{0x90, 0x27}, 0x42, 0x42, 0x00, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU(tt.program...)
			c.A, c.B = tt.a, tt.b
			step(t, c)
			step(t, c)

			if c.A != tt.expected {
				t.Errorf("Expected A to be 0x%02X, got 0x%02X", tt.expected, c.A)
			}
			if c.isFlagSet(FlagZero) != tt.zero {
				t.Errorf("Expected Z to be %v", tt.zero)
			}
			if c.isFlagSet(FlagCarry) != tt.carry {
				t.Errorf("Expected C to be %v", tt.carry)
			}
			if c.isFlagSet(FlagHalfCarry) {
				t.Errorf("Expected H to be reset")
			}
		})
	}
}

func TestInstruction_Load(t *testing.T) {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == registerHLIndirect || src == registerHLIndirect {
				continue
			}
			opcode := 0x40 + dst<<3 + src
			testInstruction(t, fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), []uint8{opcode}, func(t *testing.T, c *CPU, bus *testBus) {
				*c.register(src) = 0x5A
				step(t, c)
				if *c.register(dst) != 0x5A {
					t.Errorf("Expected %s to be 0x5A, got 0x%02X", registerNames[dst], *c.register(dst))
				}
			})
		}
	}
	testInstruction(t, "LD (HL), d8", []uint8{0x36, 0x99}, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0xC123)
		if cycles := step(t, c); cycles != 12 {
			t.Errorf("Expected 12 cycles, got %d", cycles)
		}
		if bus.mem[0xC123] != 0x99 {
			t.Errorf("Expected (HL) to be 0x99, got 0x%02X", bus.mem[0xC123])
		}
	})
	testInstruction(t, "LD (HL+), A", []uint8{0x22}, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x11
		c.HL.SetUint16(0xC0FF)
		step(t, c)
		if bus.mem[0xC0FF] != 0x11 || c.HL.Uint16() != 0xC100 {
			t.Errorf("Expected a store then increment, got HL 0x%04X", c.HL.Uint16())
		}
	})
	testInstruction(t, "LD A, (HL-)", []uint8{0x3A}, func(t *testing.T, c *CPU, bus *testBus) {
		bus.mem[0xC000] = 0x22
		c.HL.SetUint16(0xC000)
		step(t, c)
		if c.A != 0x22 || c.HL.Uint16() != 0xBFFF {
			t.Errorf("Expected a load then decrement, got A 0x%02X HL 0x%04X", c.A, c.HL.Uint16())
		}
	})
	testInstruction(t, "LD BC, d16", []uint8{0x01, 0x34, 0x12}, func(t *testing.T, c *CPU, bus *testBus) {
		step(t, c)
		if c.BC.Uint16() != 0x1234 {
			t.Errorf("Expected BC to be 0x1234, got 0x%04X", c.BC.Uint16())
		}
		if c.PC != 0x0103 {
			t.Errorf("Expected PC to be 0x0103, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "LD (a16), SP", []uint8{0x08, 0x00, 0xC0}, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xBEEF
		step(t, c)
		if bus.mem[0xC000] != 0xEF || bus.mem[0xC001] != 0xBE {
			t.Errorf("Expected SP stored little-endian, got 0x%02X 0x%02X", bus.mem[0xC000], bus.mem[0xC001])
		}
	})
	testInstruction(t, "LDH (a8), A", []uint8{0xE0, 0x80}, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x77
		step(t, c)
		if bus.mem[0xFF80] != 0x77 {
			t.Errorf("Expected 0xFF80 to be 0x77, got 0x%02X", bus.mem[0xFF80])
		}
	})
	testInstruction(t, "LD A, (C)", []uint8{0xF2}, func(t *testing.T, c *CPU, bus *testBus) {
		bus.mem[0xFF44] = 0x90
		c.C = 0x44
		step(t, c)
		if c.A != 0x90 {
			t.Errorf("Expected A to be 0x90, got 0x%02X", c.A)
		}
	})
	testInstruction(t, "LD HL, SP+r8", []uint8{0xF8, 0xFF}, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0x0001
		step(t, c)
		if c.HL.Uint16() != 0x0000 {
			t.Errorf("Expected HL to be 0x0000, got 0x%04X", c.HL.Uint16())
		}
		if c.F != 0x30 {
			t.Errorf("Expected H and C from the low byte, got F 0x%02X", c.F)
		}
	})
}

func TestInstruction_Stack(t *testing.T) {
	testInstruction(t, "PUSH BC", []uint8{0xC5, 0xD1}, func(t *testing.T, c *CPU, bus *testBus) {
		c.BC.SetUint16(0xABCD)
		step(t, c)
		if c.SP != 0xFFFC {
			t.Errorf("Expected SP to be 0xFFFC, got 0x%04X", c.SP)
		}
		if bus.mem[0xFFFD] != 0xAB || bus.mem[0xFFFC] != 0xCD {
			t.Errorf("Expected BC pushed high byte first")
		}

		// POP DE
		step(t, c)
		if c.DE.Uint16() != 0xABCD || c.SP != 0xFFFE {
			t.Errorf("Expected DE to be 0xABCD, got 0x%04X", c.DE.Uint16())
		}
	})
	testInstruction(t, "POP AF", []uint8{0xF1}, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xC000
		bus.mem[0xC000] = 0xFF
		bus.mem[0xC001] = 0x12
		step(t, c)
		if c.A != 0x12 || c.F != 0xF0 {
			t.Errorf("Expected AF to be 0x12F0, got 0x%04X", c.AF.Uint16())
		}
	})
}
