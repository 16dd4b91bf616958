package lcd

import (
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// Status represents the LCD status register (types.STAT):
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag                             (Read Only)
type Status struct {
	CoincidenceInterrupt bool
	OAMInterrupt         bool
	VBlankInterrupt      bool
	HBlankInterrupt      bool

	// Coincidence mirrors LY == LYC.
	Coincidence bool
	// Mode is the current mode of the timing unit.
	Mode Mode
}

// Write writes the interrupt enable bits. The coincidence flag and
// the mode are read only.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = bits.Test(value, 6)
	s.OAMInterrupt = bits.Test(value, 5)
	s.VBlankInterrupt = bits.Test(value, 4)
	s.HBlankInterrupt = bits.Test(value, 3)
}

// Read returns the value of the status register.
func (s *Status) Read() uint8 {
	value := uint8(0x80) // bit 7 is always set
	if s.CoincidenceInterrupt {
		value = bits.Set(value, 6)
	}
	if s.OAMInterrupt {
		value = bits.Set(value, 5)
	}
	if s.VBlankInterrupt {
		value = bits.Set(value, 4)
	}
	if s.HBlankInterrupt {
		value = bits.Set(value, 3)
	}
	if s.Coincidence {
		value = bits.Set(value, 2)
	}
	return value | s.Mode&0x03
}

// ModeInterrupt reports whether entering mode m should raise the
// LCD interrupt.
func (s *Status) ModeInterrupt(m Mode) bool {
	switch m {
	case HBlank:
		return s.HBlankInterrupt
	case VBlank:
		return s.VBlankInterrupt
	case OAM:
		return s.OAMInterrupt
	}
	return false
}
