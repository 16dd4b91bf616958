package cpu

import "testing"

func TestFlag_RoundTrip(t *testing.T) {
	c, _, _ := newTestCPU()

	c.setFlags(true, false, false, false)
	if low := uint8(c.AF.Uint16()); low != 0x80 {
		t.Errorf("Expected F to be 0x80, got 0x%02X", low)
	}

	c.setFlags(false, false, false, false)
	if low := uint8(c.AF.Uint16()); low != 0x00 {
		t.Errorf("Expected F to be 0x00, got 0x%02X", low)
	}

	for flag, expected := range map[Flag]uint8{FlagZero: 0x80, FlagSubtract: 0x40, FlagHalfCarry: 0x20, FlagCarry: 0x10} {
		c.F = 0
		c.setFlag(flag)
		if c.F != expected {
			t.Errorf("Expected flag %d to be 0x%02X, got 0x%02X", flag, expected, c.F)
		}
		c.clearFlag(flag)
		if !c.isFlagsNotSet(FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry) {
			t.Errorf("Expected flag %d to be cleared", flag)
		}
	}

	// the low nibble of F never holds a value
	c.AF.SetUint16(0x12FF)
	if c.F != 0xF0 {
		t.Errorf("Expected F to be 0xF0, got 0x%02X", c.F)
	}
}

func TestInstruction_Add(t *testing.T) {
	tests := []struct {
		name      string
		opcode    uint8
		a, b      uint8
		carryIn   bool
		expected  uint8
		halfCarry bool
		carry     bool
	}{
		{"ADD A, B", 0x80, 0x3E, 0x22, false, 0x60, true, false},
		{"ADD A, B", 0x80, 0x3D, 0x22, false, 0x5F, false, false},
		{"ADD A, B", 0x80, 0xF0, 0x20, false, 0x10, false, true},
		{"ADC A, B", 0x88, 0x0F, 0x00, true, 0x10, true, false},
		{"ADC A, B", 0x88, 0xFF, 0x00, true, 0x00, true, true},
		{"SUB B", 0x90, 0x0B, 0x0F, false, 0xFC, true, true},
		{"SUB B", 0x90, 0x0B, 0x09, false, 0x02, false, false},
		{"SBC A, B", 0x98, 0x10, 0x0F, true, 0x00, true, false},
	}
	for _, tt := range tests {
		testInstruction(t, tt.name, []uint8{tt.opcode}, func(t *testing.T, c *CPU, bus *testBus) {
			c.A, c.B = tt.a, tt.b
			if tt.carryIn {
				c.setFlag(FlagCarry)
			}
			step(t, c)

			if c.A != tt.expected {
				t.Errorf("Expected A to be 0x%02X, got 0x%02X", tt.expected, c.A)
			}
			if c.isFlagSet(FlagHalfCarry) != tt.halfCarry {
				t.Errorf("Expected H to be %v", tt.halfCarry)
			}
			if c.isFlagSet(FlagCarry) != tt.carry {
				t.Errorf("Expected C to be %v", tt.carry)
			}
			if c.isFlagSet(FlagZero) != (tt.expected == 0) {
				t.Errorf("Expected Z to follow the result")
			}
		})
	}
}

func TestInstruction_IncrementDecrement(t *testing.T) {
	testInstruction(t, "INC B", []uint8{0x04}, func(t *testing.T, c *CPU, bus *testBus) {
		c.B = 0x0F
		c.setFlag(FlagCarry)
		step(t, c)
		if c.B != 0x10 {
			t.Errorf("Expected B to be 0x10, got 0x%02X", c.B)
		}
		if !c.isFlagsSet(FlagHalfCarry, FlagCarry) {
			t.Errorf("Expected H set and C untouched, got F 0x%02X", c.F)
		}
	})
	testInstruction(t, "DEC C", []uint8{0x0D}, func(t *testing.T, c *CPU, bus *testBus) {
		c.C = 0x01
		step(t, c)
		if c.C != 0x00 || !c.isFlagsSet(FlagZero, FlagSubtract) {
			t.Errorf("Expected C to be 0 with Z and N set, got 0x%02X F 0x%02X", c.C, c.F)
		}
	})
	testInstruction(t, "INC (HL)", []uint8{0x34}, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0xC000)
		bus.mem[0xC000] = 0xFF
		step(t, c)
		if bus.mem[0xC000] != 0x00 || !c.isFlagSet(FlagZero) {
			t.Errorf("Expected (HL) to wrap to 0, got 0x%02X", bus.mem[0xC000])
		}
	})
	testInstruction(t, "DEC SP", []uint8{0x3B}, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0x0000
		step(t, c)
		if c.SP != 0xFFFF || c.F != 0 {
			t.Errorf("Expected SP to wrap to 0xFFFF without flags, got 0x%04X", c.SP)
		}
	})
	testInstruction(t, "INC HL", []uint8{0x23}, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0x00FF)
		step(t, c)
		if c.HL.Uint16() != 0x0100 {
			t.Errorf("Expected HL to be 0x0100, got 0x%04X", c.HL.Uint16())
		}
	})
}

func TestInstruction_Add16(t *testing.T) {
	testInstruction(t, "ADD HL, DE", []uint8{0x19}, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0x8FFF)
		c.DE.SetUint16(0x8001)
		c.setFlag(FlagZero)
		step(t, c)
		if c.HL.Uint16() != 0x1000 {
			t.Errorf("Expected HL to be 0x1000, got 0x%04X", c.HL.Uint16())
		}
		if !c.isFlagsSet(FlagZero, FlagHalfCarry, FlagCarry) || c.isFlagSet(FlagSubtract) {
			t.Errorf("Expected Z kept with H and C set, got F 0x%02X", c.F)
		}
	})
	testInstruction(t, "ADD SP, r8", []uint8{0xE8, 0xFE}, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xFFF8
		step(t, c)
		if c.SP != 0xFFF6 {
			t.Errorf("Expected SP to be 0xFFF6, got 0x%04X", c.SP)
		}
		if !c.isFlagsSet(FlagHalfCarry, FlagCarry) || c.isFlagSet(FlagZero) {
			t.Errorf("Expected H and C from the low byte, got F 0x%02X", c.F)
		}
	})
}

func TestInstruction_Logic(t *testing.T) {
	testInstruction(t, "AND B", []uint8{0xA0}, func(t *testing.T, c *CPU, bus *testBus) {
		c.A, c.B = 0xF0, 0x0F
		step(t, c)
		if c.A != 0 || c.F != 0xA0 {
			t.Errorf("Expected A 0x00 F 0xA0, got A 0x%02X F 0x%02X", c.A, c.F)
		}
	})
	testInstruction(t, "XOR A", []uint8{0xAF}, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x5A
		c.F = 0x70
		step(t, c)
		if c.A != 0 || c.F != 0x80 {
			t.Errorf("Expected A 0x00 F 0x80, got A 0x%02X F 0x%02X", c.A, c.F)
		}
	})
	testInstruction(t, "OR d8", []uint8{0xF6, 0x81}, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x02
		step(t, c)
		if c.A != 0x83 || c.F != 0 {
			t.Errorf("Expected A 0x83 F 0x00, got A 0x%02X F 0x%02X", c.A, c.F)
		}
	})
	testInstruction(t, "CP (HL)", []uint8{0xBE}, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x10
		c.HL.SetUint16(0xC000)
		bus.mem[0xC000] = 0x20
		step(t, c)
		if c.A != 0x10 {
			t.Errorf("Expected A to be unchanged, got 0x%02X", c.A)
		}
		if !c.isFlagsSet(FlagSubtract, FlagCarry) || c.isFlagSet(FlagZero) {
			t.Errorf("Expected N and C set, got F 0x%02X", c.F)
		}
	})
}
