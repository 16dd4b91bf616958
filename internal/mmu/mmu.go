// Package mmu provides the memory bus. The MMU routes every read and
// write of the 64kB address space to the component that owns it, and
// overlays the boot ROM while the machine is booting.
package mmu

import (
	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// MMU is the memory bus.
type MMU struct {
	// 0x0000 - 0x00FF - BOOT ROM (256B), while booting
	bootROM *boot.ROM
	booting bool

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM *ram.RAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB), read only
	wRAM *ram.RAM

	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam *ram.RAM

	// 0xFF00 - 0xFF7F - I/O Registers, routed through io, with
	// registers no component claims kept in ioRAM
	io    *types.IOTable
	ioRAM *ram.RAM
	dma   uint8

	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM *ram.RAM

	// 0xFFFF - interrupt enable register
	irq *interrupts.Service

	Log log.Logger
}

// NewMMU returns a new MMU, routing the I/O window through io and the
// interrupt enable register to irq. The DMA and boot disable
// registers are claimed in io.
func NewMMU(io *types.IOTable, irq *interrupts.Service, logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	m := &MMU{
		vRAM:  ram.NewRAM(0x2000),
		wRAM:  ram.NewRAM(0x2000),
		oam:   ram.NewRAM(0xA0),
		ioRAM: ram.NewRAM(0x80),
		hRAM:  ram.NewRAM(0x7F),
		io:    io,
		irq:   irq,
		Log:   logger,
	}

	io.Register(types.DMA, func() uint8 {
		return m.dma
	}, func(v uint8) {
		m.dma = v
		m.DMATransfer(v)
	})
	io.Register(types.BDIS, types.NoRead, func(uint8) {
		// it's assumed any write to this register will disable the boot rom
		m.DisableBootROM()
	})

	return m
}

// Load attaches a cartridge and, optionally, a boot ROM. With a boot
// ROM the overlay is active until DisableBootROM is called.
func (m *MMU) Load(cart *cartridge.Cartridge, bootROM *boot.ROM) {
	m.Cart = cart
	m.bootROM = bootROM
	m.booting = bootROM != nil
}

// Reset zeroes every memory region and restores the boot overlay if a
// boot ROM is attached.
func (m *MMU) Reset() {
	m.vRAM.Reset()
	m.wRAM.Reset()
	m.oam.Reset()
	m.ioRAM.Reset()
	m.hRAM.Reset()
	m.dma = 0
	m.booting = m.bootROM != nil
}

// Booting reports whether the boot ROM is mapped over 0x0000 - 0x00FF.
func (m *MMU) Booting() bool {
	return m.booting
}

// DisableBootROM unmaps the boot ROM. It cannot be mapped again
// until the next Reset.
func (m *MMU) DisableBootROM() {
	if m.booting {
		m.booting = false
		m.Log.Debugf("mmu: boot rom disabled")
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x0100 && m.booting:
		return m.bootROM.Read(address)
	case address < 0x8000:
		return m.Cart.ReadROM(address)
	case address < 0xA000:
		return m.vRAM.Read(address - 0x8000)
	case address < 0xC000:
		return m.Cart.ReadRAM(address)
	case address < 0xE000:
		return m.wRAM.Read(address - 0xC000)
	case address < 0xFE00:
		return m.wRAM.Read(address - 0xE000)
	case address < 0xFEA0:
		return m.oam.Read(address - 0xFE00)
	case address < 0xFF00:
		fault("read", address, ErrProhibited)
	case address < 0xFF80:
		if v, ok := m.io.Read(address); ok {
			return v
		}
		return m.ioRAM.Read(address - 0xFF00)
	case address < 0xFFFF:
		return m.hRAM.Read(address - 0xFF80)
	}
	return m.irq.Enable
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		if address < 0x0100 && m.booting {
			m.DisableBootROM()
		}
		m.Cart.HandleRegisterChanges(address, value)
	case address < 0xA000:
		m.vRAM.Write(address-0x8000, value)
	case address < 0xC000:
		m.Cart.HandleRegisterChanges(address, value)
	case address < 0xE000:
		m.wRAM.Write(address-0xC000, value)
	case address < 0xFE00:
		fault("write", address, ErrEchoWrite)
	case address < 0xFEA0:
		m.oam.Write(address-0xFE00, value)
	case address < 0xFF00:
		fault("write", address, ErrProhibited)
	case address < 0xFF80:
		if m.io.Write(address, value) {
			return
		}
		if address == types.LY {
			value = 0
		}
		m.ioRAM.Write(address-0xFF00, value)
	case address < 0xFFFF:
		m.hRAM.Write(address-0xFF80, value)
	default:
		m.irq.Enable = value
	}
}

// Read16 reads a little endian word, the low byte from address and
// the high byte from address+1.
func (m *MMU) Read16(address uint16) uint16 {
	if address == 0xFFFF {
		fault("read", address, ErrOutOfRange)
	}
	lower := m.Read(address)
	return utils.BytesToUint16(m.Read(address+1), lower)
}

// Write16 writes a little endian word, the low byte to address and
// the high byte to address+1.
func (m *MMU) Write16(address uint16, value uint16) {
	if address == 0xFFFF {
		fault("write", address, ErrOutOfRange)
	}
	upper, lower := utils.Uint16ToBytes(value)
	m.Write(address, lower)
	m.Write(address+1, upper)
}

// DMATransfer copies 0xA0 bytes from value*0x100 into OAM, through
// the same read path as the CPU.
func (m *MMU) DMATransfer(value uint8) {
	source := uint16(value) << 8
	m.Log.Debugf("mmu: dma transfer from 0x%04X", source)
	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0xFE00+i, m.Read(source+i))
	}
}
