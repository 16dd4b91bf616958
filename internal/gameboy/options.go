package gameboy

import (
	"io"

	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger shared by the machine and its components.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		if l != nil {
			gb.Logger = l
		}
	}
}

// WithBootROM sets the boot ROM used when Load is not given one. The
// machine then starts at 0x0000 with every register zeroed, and the
// boot ROM hands over at 0x0100.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.defaultBoot = rom
	}
}

// WithRenderer sets the collaborator the PPU requests scanlines from.
func WithRenderer(r ppu.Renderer) Opt {
	return func(gb *GameBoy) {
		gb.renderer = r
	}
}

// WithSerialWriter sends every byte the machine transfers over the
// serial port to w.
func WithSerialWriter(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialWriter = w
	}
}

// WithSpeed sets the speed multiplier for Run. 0 runs unpaced.
func WithSpeed(speed float64) Opt {
	return func(gb *GameBoy) {
		if speed >= 0 {
			gb.speed = speed
		}
	}
}
