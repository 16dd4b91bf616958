package cartridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Type is the cartridge type code found at 0x0147.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	POCKETCAMERA      Type = 0x1F
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM ONLY",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
}

// Size describes the total size and bank count selected by a
// ROM or RAM size code.
type Size struct {
	Bytes int
	Banks int
}

// ROMSizes maps the ROM size code at 0x0148 to its size.
var ROMSizes = map[uint8]Size{
	0x00: {32 * 1024, 2},
	0x01: {64 * 1024, 4},
	0x02: {128 * 1024, 8},
	0x03: {256 * 1024, 16},
	0x04: {512 * 1024, 32},
	0x05: {1024 * 1024, 64},
}

// RAMSizes maps the RAM size code at 0x0149 to its size.
var RAMSizes = map[uint8]Size{
	0x00: {0, 0},
	0x01: {2 * 1024, 1},
	0x02: {8 * 1024, 1},
	0x03: {32 * 1024, 4},
	0x04: {128 * 1024, 16},
	0x05: {64 * 1024, 8},
}

var (
	// ErrHeaderTooShort is returned when an image does not reach the end
	// of the header at 0x014F.
	ErrHeaderTooShort = errors.New("cartridge: image too short to hold a header")
	// ErrUnknownROMSize is returned for a ROM size code with no entry in ROMSizes.
	ErrUnknownROMSize = errors.New("cartridge: unknown ROM size code")
	// ErrUnknownRAMSize is returned for a RAM size code with no entry in RAMSizes.
	ErrUnknownRAMSize = errors.New("cartridge: unknown RAM size code")
	// ErrHeaderChecksum is returned when the header checksum at 0x014D
	// does not match the header contents.
	ErrHeaderChecksum = errors.New("cartridge: header checksum mismatch")
	// ErrTruncated is returned when the image is shorter than its
	// ROM size code declares.
	ErrTruncated = errors.New("cartridge: image shorter than declared ROM size")
)

// Header represents the header of a cartridge, located at the address
// space 0x0100-0x014F.
type Header struct {
	// 0x0134-0x0143 - Title of the game, upper case ASCII padded with zeros.
	Title string

	CartridgeType  Type
	ROMSizeCode    uint8
	RAMSizeCode    uint8
	HeaderChecksum uint8
	GlobalChecksum uint16

	// computed from the bytes 0x0134-0x014C
	computedChecksum uint8
	// length of the image the header was parsed from
	imageLength int
}

// ParseHeader parses the header of the given ROM image.
func ParseHeader(rom []byte) (Header, error) {
	if len(rom) < 0x150 {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrHeaderTooShort, len(rom))
	}
	header := rom[0x100:0x150]

	h := Header{
		Title:          strings.TrimRight(string(header[0x34:0x44]), "\x00"),
		CartridgeType:  Type(header[0x47]),
		ROMSizeCode:    header[0x48],
		RAMSizeCode:    header[0x49],
		HeaderChecksum: header[0x4D],
		GlobalChecksum: uint16(header[0x4E])<<8 | uint16(header[0x4F]),
		imageLength:    len(rom),
	}

	// x = x - rom[i] - 1 over 0x0134-0x014C
	for _, b := range header[0x34:0x4D] {
		h.computedChecksum = h.computedChecksum - b - 1
	}

	return h, nil
}

// ROMSize returns the ROM size selected by the ROM size code.
func (h Header) ROMSize() (Size, bool) {
	s, ok := ROMSizes[h.ROMSizeCode]
	return s, ok
}

// RAMSize returns the RAM size selected by the RAM size code.
func (h Header) RAMSize() (Size, bool) {
	s, ok := RAMSizes[h.RAMSizeCode]
	return s, ok
}

// Validate reports every problem found in the header at once.
func (h Header) Validate() error {
	var result *multierror.Error

	romSize, ok := h.ROMSize()
	if !ok {
		result = multierror.Append(result, fmt.Errorf("%w: 0x%02X", ErrUnknownROMSize, h.ROMSizeCode))
	} else if h.imageLength < romSize.Bytes {
		result = multierror.Append(result, fmt.Errorf("%w: %d < %d", ErrTruncated, h.imageLength, romSize.Bytes))
	}
	if _, ok := h.RAMSize(); !ok {
		result = multierror.Append(result, fmt.Errorf("%w: 0x%02X", ErrUnknownRAMSize, h.RAMSizeCode))
	}
	if h.computedChecksum != h.HeaderChecksum {
		result = multierror.Append(result, fmt.Errorf("%w: expected 0x%02X, got 0x%02X", ErrHeaderChecksum, h.HeaderChecksum, h.computedChecksum))
	}

	return result.ErrorOrNil()
}

func (h Header) String() string {
	romSize, _ := h.ROMSize()
	ramSize, _ := h.RAMSize()
	return fmt.Sprintf("%s | %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.CartridgeType, romSize.Bytes/1024, ramSize.Bytes/1024)
}
