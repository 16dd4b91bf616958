// Package interrupts provides the interrupt controller: the IF and IE
// registers, the global interrupt master enable (IME) latch, and the
// fixed-priority resolution of pending interrupts.
package interrupts

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0), requested
	// every time the PPU enters VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), requested on a
	// rising edge of any enabled STAT source.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested
	// when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3), requested
	// when a serial transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4), requested
	// when a button is pressed.
	JoypadFlag = types.Bit4
)

const (
	VBlankVector uint16 = 0x0040
	LCDVector    uint16 = 0x0048
	TimerVector  uint16 = 0x0050
	SerialVector uint16 = 0x0058
	JoypadVector uint16 = 0x0060
)

// vectors is indexed by flag bit, which is also the priority order.
var vectors = [5]uint16{VBlankVector, LCDVector, TimerVector, SerialVector, JoypadVector}

// Service is the interrupt controller.
//
// When an interrupt is requested, the corresponding bit in the Flag
// register is set. When an interrupt is enabled, the corresponding
// bit in the Enable register is set. An interrupt is only delivered
// when it is both requested and enabled, and the IME is set.
// Simultaneous requests are resolved by bit order alone, with VBlank
// the highest priority.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)

	ime bool
}

// NewService returns a new Service, with IF mapped into the given
// I/O table. IE lives outside the I/O window and is routed by the
// bus directly.
func NewService(io *types.IOTable) *Service {
	s := &Service{}
	io.Register(
		types.IF,
		func() uint8 {
			return s.Flag | 0xE0 // the upper 3 bits are always set
		}, func(v uint8) {
			s.Flag = v & 0x1F // only the first 5 bits are used
		},
	)
	return s
}

// Reset clears every request, every enable and the IME.
func (s *Service) Reset() {
	s.Flag = 0
	s.Enable = 0
	s.ime = false
}

// GloballyEnabled reports whether the IME is set.
func (s *Service) GloballyEnabled() bool {
	return s.ime
}

// SetGloballyEnabled sets or clears the IME.
func (s *Service) SetGloballyEnabled(enabled bool) {
	s.ime = enabled
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled, regardless of the IME.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// Vector resolves the highest priority interrupt that is both
// requested and enabled, clears its bit in the Flag register and
// returns its vector. It returns 0 if nothing is pending. The IME
// is not consulted.
func (s *Service) Vector() uint16 {
	if !s.HasInterrupts() {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)

		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag &^= flag
			return vectors[i]
		}
	}

	return 0
}
