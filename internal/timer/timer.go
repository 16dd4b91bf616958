// Package timer provides the divider and timer unit. DIV counts up at
// 16384Hz, and TIMA counts at the rate selected by TAC, requesting the
// timer interrupt when it overflows.
package timer

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// Controller is the timer unit. TIMA increments on the falling edge of
// a bit of the internal 16-bit divider, selected by types.TAC:
//
//	00 = bit 9 (4096Hz)
//	01 = bit 3 (262144Hz)
//	10 = bit 5 (65536Hz)
//	11 = bit 7 (16384Hz)
type Controller struct {
	div  uint16 // internal divider, DIV is its upper byte
	tima uint8
	tma  uint8
	tac  uint8

	Enabled    bool
	currentBit uint16
	lastBit    bool

	irq *interrupts.Service
}

var bits = [4]uint16{512, 8, 32, 128}

// NewController returns a new timer controller with its registers
// mapped into io.
func NewController(io *types.IOTable, irq *interrupts.Service) *Controller {
	c := &Controller{irq: irq}
	c.Reset()

	io.Register(types.DIV, func() uint8 {
		return uint8(c.div >> 8)
	}, func(uint8) {
		c.div = 0
		c.edge()
	})
	io.Register(types.TIMA, func() uint8 {
		return c.tima
	}, func(v uint8) {
		c.tima = v
	})
	io.Register(types.TMA, func() uint8 {
		return c.tma
	}, func(v uint8) {
		c.tma = v
	})
	io.Register(types.TAC, func() uint8 {
		return c.tac | 0b11111000
	}, func(v uint8) {
		c.tac = v & 0b111
		c.currentBit = bits[v&0b11]
		c.Enabled = v&0x4 == 0x4
		c.edge()
	})

	return c
}

// Reset stops the timer and clears every register.
func (c *Controller) Reset() {
	c.div = 0
	c.tima, c.tma, c.tac = 0, 0, 0
	c.Enabled = false
	c.currentBit = bits[0]
	c.lastBit = false
}

// Tick advances the timer by the given number of cycles.
func (c *Controller) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		c.div++
		c.edge()
	}
}

// edge increments TIMA when the selected divider bit, gated by the
// enable bit, falls from 1 to 0.
func (c *Controller) edge() {
	newBit := c.Enabled && c.div&c.currentBit != 0
	if c.lastBit && !newBit {
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}
	c.lastBit = newBit
}
