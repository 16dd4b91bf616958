// Package cartridge provides the cartridge image and its memory bank
// controller. Two controllers are supported: a fixed bank controller
// for plain ROM cartridges, and a switchable (MBC1) controller.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// ErrUnsupportedType is returned for a cartridge type code with no
// implemented controller.
var ErrUnsupportedType = errors.New("cartridge: unsupported cartridge type")

// Kind selects the bank controller behaviour of a Cartridge.
type Kind uint8

const (
	// FixedBank cartridges map a single ROM bank at 0x4000 and never
	// switch.
	FixedBank Kind = iota
	// Switchable cartridges select their ROM and RAM banks through
	// writes to the ROM address space.
	Switchable
)

func (k Kind) String() string {
	switch k {
	case FixedBank:
		return "fixed"
	case Switchable:
		return "switchable"
	}
	return "unknown"
}

// BankingMode selects what the secondary bank register drives.
type BankingMode uint8

const (
	// SimpleBanking routes the secondary register into ROM bank bits 5-6.
	SimpleBanking BankingMode = iota
	// AdvancedBanking routes the secondary register into the RAM bank
	// on cartridges with 4 RAM banks.
	AdvancedBanking
)

// switchable holds the selector state of a Switchable cartridge.
type switchable struct {
	romBank    uint8
	ramBank    uint8
	ramEnabled bool
	mode       BankingMode
}

// Cartridge is a loaded cartridge image with its bank storage and
// controller state.
type Cartridge struct {
	kind   Kind
	header Header
	rom    []byte

	// romBanks[i] holds bank i+1, bank 0 is read from rom
	romBanks [][]byte
	ramBanks [][]byte

	mbc switchable
}

// New parses the header of rom, selects the controller for its
// cartridge type and allocates its banks.
func New(rom []byte) (*Cartridge, error) {
	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	c := &Cartridge{header: header, rom: rom}
	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		c.kind = FixedBank
	case MBC1, MBC1RAM, MBC1RAMBATT:
		c.kind = Switchable
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, header.CartridgeType)
	}

	if err := c.InitializeBanks(); err != nil {
		return nil, err
	}
	return c, nil
}

// InitializeBanks allocates the ROM and RAM banks from the size codes
// in the header and resets the bank selectors. Any RAM contents are
// lost.
func (c *Cartridge) InitializeBanks() error {
	romBanks, ramBanks := 2, 1
	ramSize := ramBankSize
	if c.kind == Switchable {
		romSize, ok := c.header.ROMSize()
		if !ok {
			return fmt.Errorf("%w: 0x%02X", ErrUnknownROMSize, c.header.ROMSizeCode)
		}
		size, ok := c.header.RAMSize()
		if !ok {
			return fmt.Errorf("%w: 0x%02X", ErrUnknownRAMSize, c.header.RAMSizeCode)
		}
		romBanks = romSize.Banks
		if size.Banks > 0 {
			ramBanks = size.Banks
			ramSize = size.Bytes / size.Banks
		}
	}

	c.romBanks = make([][]byte, romBanks-1)
	for i := range c.romBanks {
		bank := make([]byte, romBankSize)
		// images shorter than declared read as zero in the missing banks
		if start := (i + 1) * romBankSize; start < len(c.rom) {
			copy(bank, c.rom[start:])
		}
		c.romBanks[i] = bank
	}

	// a cartridge without RAM still gets a bank to read from
	c.ramBanks = make([][]byte, ramBanks)
	for i := range c.ramBanks {
		c.ramBanks[i] = make([]byte, ramSize)
	}

	c.mbc = switchable{romBank: 1}
	return nil
}

// HandleRegisterChanges applies a write that fell within the
// cartridge's address space: 0x0000-0x7FFF and 0xA000-0xBFFF.
func (c *Cartridge) HandleRegisterChanges(address uint16, data uint8) {
	switch c.kind {
	case FixedBank:
		// no bank switching, and the RAM bank is read only
	case Switchable:
		c.handleSwitchable(address, data)
	}
}

func (c *Cartridge) handleSwitchable(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		c.mbc.ramEnabled = data&0x0F == 0x0A
	case address < 0x4000:
		// the low 5 bits are replaced, bits 5-6 keep whatever the
		// secondary register last routed into them
		c.mbc.romBank = c.mbc.romBank&0x60 | utils.ZeroAdjust8(data&0x1F)
	case address < 0x6000:
		secondary := data & 0x03
		if c.mbc.mode == AdvancedBanking && c.header.RAMSizeCode == 0x03 {
			c.mbc.ramBank = utils.Clamp(0, secondary, uint8(len(c.ramBanks)-1))
		} else {
			c.mbc.romBank = c.mbc.romBank&0x1F | secondary<<5
		}
	case address < 0x8000:
		c.mbc.mode = BankingMode(data & 0x01)
	case address >= 0xA000 && address < 0xC000:
		if !c.mbc.ramEnabled {
			return
		}
		bank := c.ramBanks[c.mbc.ramBank]
		if offset := int(address - 0xA000); offset < len(bank) {
			bank[offset] = data
		}
	}
}

// ReadROM reads from the ROM address space 0x0000-0x7FFF.
func (c *Cartridge) ReadROM(address uint16) uint8 {
	if address < romBankSize {
		if int(address) < len(c.rom) {
			return c.rom[address]
		}
		return 0xFF
	}
	bank := c.romBankIndex()
	if bank == 0 {
		// a selection that wraps onto bank 0 mirrors the fixed bank
		return c.ReadROM(address - romBankSize)
	}
	return c.romBanks[bank-1][address-romBankSize]
}

// ReadRAM reads from the RAM address space 0xA000-0xBFFF.
func (c *Cartridge) ReadRAM(address uint16) uint8 {
	bank := c.ramBanks[0]
	if c.kind == Switchable {
		if !c.mbc.ramEnabled {
			return 0xFF
		}
		bank = c.ramBanks[c.mbc.ramBank]
	}
	if offset := int(address - 0xA000); offset < len(bank) {
		return bank[offset]
	}
	return 0xFF
}

// romBankIndex returns the bank mapped at 0x4000-0x7FFF. Selections
// beyond the end of the image wrap modulo the bank count, as the
// unused upper bank lines are not connected.
func (c *Cartridge) romBankIndex() int {
	if c.kind == FixedBank {
		return 1
	}
	return int(c.mbc.romBank) % (len(c.romBanks) + 1)
}

// Kind returns the controller kind.
func (c *Cartridge) Kind() Kind {
	return c.kind
}

// Header returns the parsed header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the title from the header.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// ROMBank returns the selected switchable ROM bank.
func (c *Cartridge) ROMBank() uint8 {
	if c.kind == FixedBank {
		return 1
	}
	return c.mbc.romBank
}

// RAMBank returns the selected RAM bank.
func (c *Cartridge) RAMBank() uint8 {
	return c.mbc.ramBank
}

// RAMEnabled reports whether the RAM enable latch is set.
func (c *Cartridge) RAMEnabled() bool {
	return c.mbc.ramEnabled
}

// BankingMode returns the banking mode selected through 0x6000-0x7FFF.
func (c *Cartridge) BankingMode() BankingMode {
	return c.mbc.mode
}

// Fingerprint returns a hash of the ROM image, used to identify it
// across loads.
func (c *Cartridge) Fingerprint() uint64 {
	return xxhash.Sum64(c.rom)
}
