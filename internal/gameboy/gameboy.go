// Package gameboy provides an emulation of a Nintendo Game Boy.
//
// A GameBoy owns every component of the machine. Load attaches a
// cartridge and an optional boot image, after which the machine can
// be driven one instruction at a time with Step, a frame at a time
// with Frame, or continuously with Run.
package gameboy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/joypad"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/serial"
	"github.com/thelolagemann/gomeboy-core/internal/timer"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224
	// FrameTime is the time a frame takes on hardware, roughly 59.7 Hz.
	FrameTime = time.Second * CyclesPerFrame / ClockSpeed
)

var (
	// ErrNotLoaded is returned when the machine is driven before a
	// cartridge has been loaded.
	ErrNotLoaded = errors.New("gameboy: no cartridge loaded")
	// ErrRunning is returned by Run if the machine is already running.
	ErrRunning = errors.New("gameboy: already running")
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	PPU        *ppu.PPU
	Cartridge  *cartridge.Cartridge
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller
	Joypad     *joypad.State

	log.Logger

	renderer     ppu.Renderer
	serialWriter io.Writer
	speed        float64

	defaultBoot []byte // from WithBootROM
	bootImage   []byte // last loaded, reused by Reset
	romImage    []byte

	// frameCycles carries the cycles run past the end of the last
	// frame into the next.
	frameCycles int

	// loadMu serialises Load, Reset and the start of Run, so that a
	// Run is either seen and stopped by a Load, or starts after it.
	loadMu sync.Mutex
	mu     sync.Mutex // guards cancel and done
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a new GameBoy with nothing loaded.
func New(opts ...Opt) *GameBoy {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
		speed:  1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Load stops any in-flight Run, and reinitialises the whole machine
// with the given images. A nil boot image falls back to the one given
// by WithBootROM. Without any boot image the machine starts at 0x0100
// in the state the boot ROM would have left it in.
func (g *GameBoy) Load(bootImage, romImage []byte) error {
	g.loadMu.Lock()
	defer g.loadMu.Unlock()

	if bootImage == nil {
		bootImage = g.defaultBoot
	}
	return g.load(bootImage, romImage)
}

// load does the work of Load and Reset. The caller holds loadMu.
func (g *GameBoy) load(bootImage, romImage []byte) error {
	g.stop()

	cart, err := cartridge.New(romImage)
	if err != nil {
		return fmt.Errorf("gameboy: loading cartridge: %w", err)
	}
	var bootROM *boot.ROM
	if len(bootImage) > 0 {
		if bootROM, err = boot.Load(bootImage); err != nil {
			return fmt.Errorf("gameboy: loading boot rom: %w", err)
		}
	}

	g.Infof("loaded %s (xxhash %016x)", cart.Header(), cart.Fingerprint())
	if err := cart.Header().Validate(); err != nil {
		g.Infof("cartridge header: %v", err)
	}
	if bootROM != nil {
		g.Infof("boot rom: %s (md5 %s)", bootROM.Model(), bootROM.Checksum())
	}

	g.attach(cart, bootROM)
	g.bootImage, g.romImage = bootImage, romImage
	return nil
}

// Reset stops any in-flight Run, and reinitialises the machine with
// the images it was last loaded with.
func (g *GameBoy) Reset() error {
	g.loadMu.Lock()
	defer g.loadMu.Unlock()

	if g.romImage == nil {
		return ErrNotLoaded
	}
	return g.load(g.bootImage, g.romImage)
}

// attach builds a fresh set of components around cart.
func (g *GameBoy) attach(cart *cartridge.Cartridge, bootROM *boot.ROM) {
	table := &types.IOTable{}
	irq := interrupts.NewService(table)
	bus := mmu.NewMMU(table, irq, g.Logger)
	bus.Load(cart, bootROM)

	g.Cartridge = cart
	g.Interrupts = irq
	g.MMU = bus
	g.PPU = ppu.New(table, irq, g.renderer)
	g.Timer = timer.NewController(table, irq)
	g.Serial = serial.NewController(table, irq)
	g.Joypad = joypad.New(table, irq)
	g.CPU = cpu.NewCPU(bus, irq, g.Logger)
	g.frameCycles = 0

	if g.serialWriter != nil {
		g.Serial.Attach(serial.WriterDevice{W: g.serialWriter, Log: g.Logger})
	}
	if bootROM == nil {
		g.CPU.SkipBoot()
	}
}

// ExecuteInstruction runs a single instruction and advances the PPU
// and timer by the cycles it took.
func (g *GameBoy) ExecuteInstruction() (int, error) {
	if g.CPU == nil {
		return 0, ErrNotLoaded
	}
	cycles, err := g.CPU.Step()
	g.tick(cycles)
	return cycles, err
}

// CheckInterrupts services the highest priority pending interrupt if
// the IME is set, advancing the PPU and timer by the entry cost.
func (g *GameBoy) CheckInterrupts() (int, error) {
	if g.CPU == nil {
		return 0, ErrNotLoaded
	}
	cycles, err := g.CPU.CheckInterrupts()
	g.tick(cycles)
	return cycles, err
}

// Step runs a single instruction followed by an interrupt check, and
// returns the total cycles taken.
func (g *GameBoy) Step() (int, error) {
	cycles, err := g.ExecuteInstruction()
	if err != nil {
		return cycles, err
	}
	interruptCycles, err := g.CheckInterrupts()
	return cycles + interruptCycles, err
}

func (g *GameBoy) tick(cycles int) {
	g.PPU.Tick(cycles)
	g.Timer.Tick(cycles)
}

// Frame steps the machine until a frame's worth of cycles has run.
func (g *GameBoy) Frame() error {
	for g.frameCycles < CyclesPerFrame {
		cycles, err := g.Step()
		if err != nil {
			return err
		}
		g.frameCycles += cycles
	}
	g.frameCycles -= CyclesPerFrame
	return nil
}

// Run runs frames until ctx is cancelled, Load or Reset is called, or
// the machine faults. Frames are paced to FrameTime divided by the
// speed, or run back to back when the speed is 0.
func (g *GameBoy) Run(ctx context.Context) error {
	ctx, cancel, done, err := g.start(ctx)
	if err != nil {
		return err
	}

	defer func() {
		g.mu.Lock()
		cancel()
		g.cancel, g.done = nil, nil
		g.mu.Unlock()
		close(done)
	}()

	var pace <-chan time.Time
	if g.speed > 0 {
		ticker := time.NewTicker(time.Duration(float64(FrameTime) / g.speed))
		defer ticker.Stop()
		pace = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := g.Frame(); err != nil {
			g.Errorf("gameboy: %v", err)
			return err
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		}
	}
}

// start registers a Run. Holding loadMu means no Load can be halfway
// through rebuilding the machine.
func (g *GameBoy) start(ctx context.Context) (context.Context, context.CancelFunc, chan struct{}, error) {
	g.loadMu.Lock()
	defer g.loadMu.Unlock()
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.CPU == nil {
		return nil, nil, nil, ErrNotLoaded
	}
	if g.done != nil {
		return nil, nil, nil, ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	g.cancel, g.done = cancel, done
	return ctx, cancel, done, nil
}

// stop cancels an in-flight Run and waits for it to return.
func (g *GameBoy) stop() {
	g.mu.Lock()
	cancel, done := g.cancel, g.done
	g.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
