package cpu

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// HistorySize is the number of opcodes kept by History.
	HistorySize = 100

	// BootExitAddress is the address at which the boot ROM hands
	// control to the cartridge.
	BootExitAddress uint16 = 0x0100
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode, entered by HALT and STOP and
	// left when an enabled interrupt becomes pending.
	ModeHalt
)

// Bus is the memory bus as seen by the CPU. Words are little-endian.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Read16(address uint16) uint16
	Write16(address uint16, value uint16)
}

// BootOverlay is implemented by a Bus that can map a boot ROM over
// the start of the cartridge.
type BootOverlay interface {
	Booting() bool
	DisableBootROM()
}

// ErrIllegalOpcode is wrapped by every IllegalOpcodeError.
var ErrIllegalOpcode = errors.New("illegal opcode")

// IllegalOpcodeError is returned by Step when the CPU fetches an
// opcode that has no defined behaviour.
type IllegalOpcodeError struct {
	Opcode  uint8
	Address uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: %v 0x%02X at 0x%04X", ErrIllegalOpcode, e.Opcode, e.Address)
}

func (e *IllegalOpcodeError) Unwrap() error {
	return ErrIllegalOpcode
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	*types.Registers

	bus     Bus
	overlay BootOverlay
	irq     *interrupts.Service
	log     log.Logger

	mode mode
	// imeDelay counts the instructions left until a pending EI
	// takes effect.
	imeDelay uint8
	postBoot bool

	history      [HistorySize]uint8
	historyStart int
	historyLen   int
}

// NewCPU creates a new CPU attached to the given bus and interrupt
// controller.
func NewCPU(bus Bus, irq *interrupts.Service, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	c := &CPU{
		Registers: types.NewRegisters(),
		bus:       bus,
		irq:       irq,
		log:       logger,
	}
	c.overlay, _ = bus.(BootOverlay)
	return c
}

// Reset zeroes every register and clears the halt state, the pending
// EI and the instruction history.
func (c *CPU) Reset() {
	c.PC, c.SP = 0, 0
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0, 0
	c.mode = ModeNormal
	c.imeDelay = 0
	c.postBoot = false
	c.historyStart, c.historyLen = 0, 0
}

// Halted returns true if the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt
}

// Step executes the next instruction and returns the number of
// cycles it took. A halted CPU idles for 4 cycles unless an enabled
// interrupt is pending, in which case it resumes first.
//
// Faults raised by the bus and illegal opcodes are returned as
// errors, with any effects up to the fault left in place.
func (c *CPU) Step() (cycles int, err error) {
	defer c.recoverFault(&err)

	if c.mode == ModeHalt {
		if !c.irq.HasInterrupts() {
			return 4, nil
		}
		c.mode = ModeNormal
	}

	booting := c.overlay != nil && c.overlay.Booting()

	address := c.PC
	opcode := c.readOperand(c.bus)
	c.record(opcode)

	var instruction Instruction
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.readOperand(c.bus)]
	} else {
		instruction = InstructionSet[opcode]
	}
	if instruction.illegal {
		return 0, &IllegalOpcodeError{Opcode: opcode, Address: address}
	}
	cycles = instruction.execute(c, c.bus)

	if c.imeDelay > 0 {
		c.imeDelay--
		if c.imeDelay == 0 {
			c.irq.SetGloballyEnabled(true)
		}
	}

	if booting {
		if c.overlay.Booting() && c.PC == BootExitAddress {
			c.overlay.DisableBootROM()
		}
		if !c.overlay.Booting() {
			c.initializePostBoot()
		}
	}

	return cycles, nil
}

// CheckInterrupts performs the interrupt entry protocol for the
// highest priority pending interrupt, if the IME is set. It returns
// the cycles spent, which is 0 when nothing was serviced.
func (c *CPU) CheckInterrupts() (cycles int, err error) {
	defer c.recoverFault(&err)

	if !c.irq.GloballyEnabled() {
		return 0, nil
	}
	vector := c.irq.Vector()
	if vector == 0 {
		return 0, nil
	}

	c.mode = ModeNormal
	c.irq.SetGloballyEnabled(false)
	c.imeDelay = 0
	c.push(c.bus, c.PC)
	c.PC = vector

	return 20, nil
}

// SkipBoot places the CPU in the state the boot ROM leaves it in,
// for when no boot ROM is mapped.
func (c *CPU) SkipBoot() {
	c.PC = BootExitAddress
	c.initializePostBoot()
}

// History returns the most recently fetched opcodes, oldest first.
func (c *CPU) History() []uint8 {
	h := make([]uint8, c.historyLen)
	for i := range h {
		h[i] = c.history[(c.historyStart+i)%HistorySize]
	}
	return h
}

func (c *CPU) record(opcode uint8) {
	if c.historyLen < HistorySize {
		c.history[(c.historyStart+c.historyLen)%HistorySize] = opcode
		c.historyLen++
		return
	}
	c.history[c.historyStart] = opcode
	c.historyStart = (c.historyStart + 1) % HistorySize
}

// recoverFault turns a panicking error raised beneath the CPU into a
// returned error. Runtime errors and non-error values are genuine
// bugs and keep panicking.
func (c *CPU) recoverFault(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	if _, runtimeErr := e.(runtime.Error); runtimeErr {
		panic(r)
	}
	c.log.Errorf("cpu fault at 0x%04X: %v", c.PC, e)
	*err = e
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand(bus Bus) uint8 {
	value := bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the little-endian word at PC and advances PC
// past it.
func (c *CPU) readOperand16(bus Bus) uint16 {
	low := c.readOperand(bus)
	high := c.readOperand(bus)
	return utils.BytesToUint16(high, low)
}

// postBootIO are the I/O register values the boot ROM leaves behind.
var postBootIO = []struct {
	address uint16
	value   uint8
}{
	{types.TIMA, 0x00}, {types.TMA, 0x00}, {types.TAC, 0x00},
	{types.NR10, 0x80}, {types.NR11, 0xBF}, {types.NR12, 0xF3}, {types.NR14, 0xBF},
	{types.NR21, 0x3F}, {types.NR22, 0x00}, {types.NR24, 0xBF},
	{types.NR30, 0x7F}, {types.NR31, 0xFF}, {types.NR32, 0x9F}, {types.NR34, 0xBF},
	{types.NR41, 0xFF}, {types.NR42, 0x00}, {types.NR43, 0x00}, {types.NR44, 0xBF},
	{types.NR50, 0x77}, {types.NR51, 0xF3}, {types.NR52, 0xF1},
	{types.LCDC, 0x91}, {types.SCY, 0x00}, {types.SCX, 0x00}, {types.LYC, 0x00},
	{types.BGP, 0xFC}, {types.OBP0, 0xFF}, {types.OBP1, 0xFF},
	{types.WY, 0x00}, {types.WX, 0x00}, {types.IE, 0x00},
}

// initializePostBoot applies the register and I/O state the boot ROM
// leaves behind. It runs at most once per boot.
func (c *CPU) initializePostBoot() {
	if c.postBoot {
		return
	}
	c.postBoot = true

	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE

	for _, r := range postBootIO {
		c.bus.Write(r.address, r.value)
	}

	c.log.Debugf("boot complete, handing over at 0x%04X", c.PC)
}
