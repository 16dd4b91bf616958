package cpu

import "testing"

func TestInstruction_Jump(t *testing.T) {
	testInstruction(t, "JR r8", []uint8{0x18, 0xFE}, func(t *testing.T, c *CPU, bus *testBus) {
		step(t, c)
		if c.PC != 0x0100 {
			t.Errorf("Expected a jump back to 0x0100, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "JR NZ, r8", []uint8{0x20, 0x10}, func(t *testing.T, c *CPU, bus *testBus) {
		if cycles := step(t, c); cycles != 12 {
			t.Errorf("Expected 12 cycles when taken, got %d", cycles)
		}
		if c.PC != 0x0112 {
			t.Errorf("Expected PC to be 0x0112, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "JR Z, r8", []uint8{0x28, 0x10}, func(t *testing.T, c *CPU, bus *testBus) {
		if cycles := step(t, c); cycles != 8 {
			t.Errorf("Expected 8 cycles when not taken, got %d", cycles)
		}
		if c.PC != 0x0102 {
			t.Errorf("Expected PC to skip the operand, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "JP C, a16", []uint8{0xDA, 0x00, 0x20}, func(t *testing.T, c *CPU, bus *testBus) {
		c.setFlag(FlagCarry)
		if cycles := step(t, c); cycles != 16 {
			t.Errorf("Expected 16 cycles when taken, got %d", cycles)
		}
		if c.PC != 0x2000 {
			t.Errorf("Expected PC to be 0x2000, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "JP NC, a16", []uint8{0xD2, 0x00, 0x20}, func(t *testing.T, c *CPU, bus *testBus) {
		c.setFlag(FlagCarry)
		if cycles := step(t, c); cycles != 12 {
			t.Errorf("Expected 12 cycles when not taken, got %d", cycles)
		}
		if c.PC != 0x0103 {
			t.Errorf("Expected PC to skip the operands, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "JP (HL)", []uint8{0xE9}, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0x4000)
		step(t, c)
		if c.PC != 0x4000 {
			t.Errorf("Expected PC to be 0x4000, got 0x%04X", c.PC)
		}
	})
}

func TestInstruction_CallReturn(t *testing.T) {
	testInstruction(t, "CALL a16", []uint8{0xCD, 0x00, 0x02}, func(t *testing.T, c *CPU, bus *testBus) {
		bus.mem[0x0200] = 0xC9 // RET

		if cycles := step(t, c); cycles != 24 {
			t.Errorf("Expected 24 cycles, got %d", cycles)
		}
		if c.PC != 0x0200 || c.SP != 0xFFFC {
			t.Errorf("Expected PC 0x0200 SP 0xFFFC, got PC 0x%04X SP 0x%04X", c.PC, c.SP)
		}
		if bus.Read16(0xFFFC) != 0x0103 {
			t.Errorf("Expected return address 0x0103, got 0x%04X", bus.Read16(0xFFFC))
		}

		if cycles := step(t, c); cycles != 16 {
			t.Errorf("Expected 16 cycles, got %d", cycles)
		}
		if c.PC != 0x0103 || c.SP != 0xFFFE {
			t.Errorf("Expected PC 0x0103 SP 0xFFFE, got PC 0x%04X SP 0x%04X", c.PC, c.SP)
		}
	})
	testInstruction(t, "CALL Z, a16", []uint8{0xCC, 0x00, 0x02}, func(t *testing.T, c *CPU, bus *testBus) {
		if cycles := step(t, c); cycles != 12 {
			t.Errorf("Expected 12 cycles when not taken, got %d", cycles)
		}
		if c.PC != 0x0103 || c.SP != 0xFFFE {
			t.Errorf("Expected nothing pushed, got PC 0x%04X SP 0x%04X", c.PC, c.SP)
		}
	})
	testInstruction(t, "RET NC", []uint8{0xD0}, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xFFFC
		bus.Write16(0xFFFC, 0x1234)
		if cycles := step(t, c); cycles != 20 {
			t.Errorf("Expected 20 cycles when taken, got %d", cycles)
		}
		if c.PC != 0x1234 {
			t.Errorf("Expected PC to be 0x1234, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "RET C", []uint8{0xD8}, func(t *testing.T, c *CPU, bus *testBus) {
		if cycles := step(t, c); cycles != 8 {
			t.Errorf("Expected 8 cycles when not taken, got %d", cycles)
		}
	})
	testInstruction(t, "RETI", []uint8{0xD9}, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xFFFC
		bus.Write16(0xFFFC, 0x0150)
		step(t, c)
		if c.PC != 0x0150 {
			t.Errorf("Expected PC to be 0x0150, got 0x%04X", c.PC)
		}
		if !c.irq.GloballyEnabled() {
			t.Errorf("Expected RETI to set the IME")
		}
	})
	testInstruction(t, "RST 38h", []uint8{0xFF}, func(t *testing.T, c *CPU, bus *testBus) {
		step(t, c)
		if c.PC != 0x0038 || bus.Read16(c.SP) != 0x0101 {
			t.Errorf("Expected a call to 0x0038 returning to 0x0101, got PC 0x%04X", c.PC)
		}
	})
}
