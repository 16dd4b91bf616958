// Package joypad provides the joypad register. The joypad is used to
// read the state of the buttons and the direction keys.
package joypad

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// pressed holds a 1 for every held button, the action
	// buttons in the lower nibble and the directions in the upper.
	pressed uint8
	// selection holds bits 4-5 of the last write
	selection uint8

	irq *interrupts.Service
}

// New returns a new joypad with P1 mapped into io.
func New(io *types.IOTable, irq *interrupts.Service) *State {
	s := &State{irq: irq}
	s.Reset()
	io.Register(types.P1, s.read, func(v uint8) {
		s.selection = v & 0x30
	})
	return s
}

// Reset releases every button and deselects both groups.
func (s *State) Reset() {
	s.pressed = 0
	s.selection = 0x30
}

func (s *State) read() uint8 {
	held := uint8(0)
	if s.selection&types.Bit4 == 0 {
		held |= s.pressed >> 4 & 0xF
	}
	if s.selection&types.Bit5 == 0 {
		held |= s.pressed & 0xF
	}
	return 0xC0 | s.selection | ^held&0xF
}

// Press presses a button, requesting the joypad interrupt.
func (s *State) Press(button Button) {
	s.pressed = bits.Set(s.pressed, button)
	s.irq.Request(interrupts.JoypadFlag)
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.pressed = bits.Reset(s.pressed, button)
}
