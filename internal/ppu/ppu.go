// Package ppu provides the display timing unit. It steps the LCD
// through its four modes on exact cycle boundaries, maintains LY and
// the STAT register, raises the VBlank and LCD interrupts, and asks a
// Renderer to draw scanlines. Pixel generation itself is left to the
// Renderer.
package ppu

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels, and the
	// scanline at which VBlank starts.
	ScreenHeight = 144
	// ScanlinesPerFrame is the number of scanlines including VBlank.
	ScanlinesPerFrame = 154
)

// Cycles spent in each mode.
const (
	oamCycles      = 80
	vramCycles     = 172
	hblankCycles   = 204
	scanlineCycles = oamCycles + vramCycles + hblankCycles
)

// Renderer draws scanlines on request. It is called on every tick
// spent in lcd.VRAM, so the same line may be requested repeatedly.
type Renderer interface {
	DrawScanline(line uint8)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(line uint8)

// DrawScanline calls f(line).
func (f RendererFunc) DrawScanline(line uint8) {
	f(line)
}

type nullRenderer struct{}

func (nullRenderer) DrawScanline(uint8) {}

// PPU is the display timing unit.
type PPU struct {
	Controller *lcd.Controller
	Status     *lcd.Status

	LY   uint8 // current scanline (0-153)
	LYC  uint8 // scanline compare
	SCY  uint8
	SCX  uint8
	BGP  uint8
	OBP0 uint8
	OBP1 uint8
	WY   uint8
	WX   uint8

	// cycles accumulated in the current mode
	clock int

	irq      *interrupts.Service
	renderer Renderer
}

// New returns a new PPU with its registers mapped into io. A nil
// renderer discards scanline requests.
func New(io *types.IOTable, irq *interrupts.Service, renderer Renderer) *PPU {
	if renderer == nil {
		renderer = nullRenderer{}
	}
	p := &PPU{
		Controller: &lcd.Controller{},
		Status:     &lcd.Status{},
		irq:        irq,
		renderer:   renderer,
	}

	io.Register(types.LCDC, p.Controller.Read, p.writeLCDC)
	io.Register(types.STAT, p.Status.Read, p.Status.Write)
	io.Register(types.SCY, func() uint8 { return p.SCY }, func(v uint8) { p.SCY = v })
	io.Register(types.SCX, func() uint8 { return p.SCX }, func(v uint8) { p.SCX = v })
	io.Register(types.LY, func() uint8 { return p.LY }, func(uint8) { p.setLY(0) })
	io.Register(types.LYC, func() uint8 { return p.LYC }, func(v uint8) {
		p.LYC = v
		p.updateCoincidence()
	})
	io.Register(types.BGP, func() uint8 { return p.BGP }, func(v uint8) { p.BGP = v })
	io.Register(types.OBP0, func() uint8 { return p.OBP0 }, func(v uint8) { p.OBP0 = v })
	io.Register(types.OBP1, func() uint8 { return p.OBP1 }, func(v uint8) { p.OBP1 = v })
	io.Register(types.WY, func() uint8 { return p.WY }, func(v uint8) { p.WY = v })
	io.Register(types.WX, func() uint8 { return p.WX }, func(v uint8) { p.WX = v })

	p.Reset()
	return p
}

// Reset returns the PPU to its power on state, with the LCD off.
func (p *PPU) Reset() {
	*p.Controller = lcd.Controller{}
	*p.Status = lcd.Status{}
	p.LY, p.LYC = 0, 0
	p.SCY, p.SCX, p.WY, p.WX = 0, 0, 0, 0
	p.BGP, p.OBP0, p.OBP1 = 0, 0, 0
	p.clock = 0
	p.updateCoincidence()
}

// Mode returns the current mode.
func (p *PPU) Mode() lcd.Mode {
	return p.Status.Mode
}

// Tick advances the timing unit by the given number of cycles. Nothing
// happens while the LCD is disabled.
func (p *PPU) Tick(cycles int) {
	if !p.Controller.Enabled {
		return
	}

	p.clock += cycles
	for p.step() {
	}
}

// step performs at most one mode transition, and reports whether one
// happened. The threshold is subtracted from the clock so that any
// surplus carries into the next mode.
func (p *PPU) step() bool {
	switch p.Status.Mode {
	case lcd.OAM:
		if p.clock < oamCycles {
			return false
		}
		p.clock -= oamCycles
		p.setMode(lcd.VRAM)
	case lcd.VRAM:
		p.renderer.DrawScanline(p.LY)
		if p.clock < vramCycles {
			return false
		}
		p.clock -= vramCycles
		p.setMode(lcd.HBlank)
	case lcd.HBlank:
		if p.clock < hblankCycles {
			return false
		}
		p.clock -= hblankCycles
		p.setLY(p.LY + 1)
		if p.LY == ScreenHeight {
			p.setMode(lcd.VBlank)
			p.irq.Request(interrupts.VBlankFlag)
		} else {
			p.setMode(lcd.OAM)
		}
	case lcd.VBlank:
		if p.clock < scanlineCycles {
			return false
		}
		p.clock -= scanlineCycles
		if p.LY+1 == ScanlinesPerFrame {
			p.setLY(0)
			p.setMode(lcd.OAM)
		} else {
			p.setLY(p.LY + 1)
		}
	}
	return true
}

// setMode changes the mode, raising the LCD interrupt on entry if the
// matching STAT source is enabled.
func (p *PPU) setMode(mode lcd.Mode) {
	if p.Status.Mode == mode {
		return
	}
	p.Status.Mode = mode
	if p.Status.ModeInterrupt(mode) {
		p.irq.Request(interrupts.LCDFlag)
	}
}

func (p *PPU) setLY(ly uint8) {
	p.LY = ly
	p.updateCoincidence()
}

// updateCoincidence refreshes the coincidence flag, raising the LCD
// interrupt only when LY == LYC starts to hold.
func (p *PPU) updateCoincidence() {
	coincident := p.LY == p.LYC
	if coincident && !p.Status.Coincidence && p.Status.CoincidenceInterrupt {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.Status.Coincidence = coincident
}

func (p *PPU) writeLCDC(v uint8) {
	wasEnabled := p.Controller.Enabled
	p.Controller.Write(v)

	switch {
	case wasEnabled && !p.Controller.Enabled:
		// the LCD idles at the top of the screen while off
		p.clock = 0
		p.Status.Mode = lcd.HBlank
		p.setLY(0)
	case !wasEnabled && p.Controller.Enabled:
		p.clock = 0
		p.Status.Mode = lcd.OAM
	}
}
