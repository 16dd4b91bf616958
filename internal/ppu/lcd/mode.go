package lcd

// Mode represents a mode of the LCD, as reported in STAT bits 0-1.
type Mode = uint8

const (
	// HBlank is the horizontal blanking mode (mode 0). The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode (mode 1). The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM search mode (mode 2). The CPU can access the display RAM but not OAM.
	OAM
	// VRAM is the pixel transfer mode (mode 3). The CPU can access neither.
	VRAM
)

// ModeName returns a readable name for the mode.
func ModeName(m Mode) string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAM:
		return "OAM"
	case VRAM:
		return "VRAM"
	}
	return "unknown"
}
