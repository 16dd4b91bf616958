// Package serial provides the serial port registers and interrupt. A
// transfer started with the internal clock completes at once, with no
// link cable timing emulated.
package serial

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// Controller is the serial controller.
type Controller struct {
	data            uint8 // types.SB
	InternalClock   bool  // if true, this controller is the master.
	TransferRequest bool  // if true, a transfer has been requested.

	AttachedDevice Device // the device that is attached to this controller.

	irq *interrupts.Service
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	if d == nil {
		d = nullDevice{}
	}
	c.AttachedDevice = d
}

// NewController creates a new Controller with its registers mapped
// into io. By default it is attached to a nullDevice, as if nothing
// were plugged in.
func NewController(io *types.IOTable, irq *interrupts.Service) *Controller {
	c := &Controller{
		AttachedDevice: nullDevice{},
		irq:            irq,
	}
	io.Register(types.SB, func() uint8 {
		return c.data
	}, func(v uint8) {
		c.data = v
	})
	io.Register(types.SC, func() uint8 {
		v := uint8(0x7E) // bits 1-6 are unused
		if c.TransferRequest {
			v |= types.Bit7
		}
		if c.InternalClock {
			v |= types.Bit0
		}
		return v
	}, func(v uint8) {
		c.InternalClock = v&types.Bit0 == types.Bit0
		c.TransferRequest = v&types.Bit7 == types.Bit7
		if c.TransferRequest && c.InternalClock {
			c.transfer()
		}
	})
	return c
}

// Reset clears the registers, keeping the attached device.
func (c *Controller) Reset() {
	c.data = 0
	c.InternalClock = false
	c.TransferRequest = false
}

func (c *Controller) transfer() {
	c.data = c.AttachedDevice.Exchange(c.data)
	c.TransferRequest = false
	c.irq.Request(interrupts.SerialFlag)
}
