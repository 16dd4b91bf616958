package types

// HardwareAddress represents the address of a hardware register.
// The registers are mapped to 0xFF00 - 0xFF7F and 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 selects the joypad button group and reads back its state.
	P1 HardwareAddress = 0xFF00
	// SB holds the byte to be shifted out of the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	//
	//	Bit 7 - Transfer start (1=Requested)
	//	Bit 0 - Clock select   (1=Internal)
	SC HardwareAddress = 0xFF02
	// DIV is the upper byte of the free-running divider. Any
	// write resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the timer counter. It counts at the rate selected
	// by TAC, and reloads from TMA on overflow.
	TIMA HardwareAddress = 0xFF05
	// TMA is the value TIMA reloads from.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	//
	//	Bit 2   - Timer enable
	//	Bit 1-0 - Clock select (00=4096Hz 01=262144Hz 10=65536Hz 11=16384Hz)
	TAC HardwareAddress = 0xFF07
	// IF requests interrupts, one bit per source.
	//
	//	Bit 0: V-Blank  (INT 40h)
	//	Bit 1: LCD STAT (INT 48h)
	//	Bit 2: Timer    (INT 50h)
	//	Bit 3: Serial   (INT 58h)
	//	Bit 4: Joypad   (INT 60h)
	IF HardwareAddress = 0xFF0F

	// sound registers are stored but not interpreted.

	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26

	// LCDC is the LCD control register.
	//
	//	Bit 7 - LCD Display Enable             (0=Off, 1=On)
	//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 5 - Window Display Enable          (0=Off, 1=On)
	//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//	Bit 0 - BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register. See lcd.Status.
	STAT HardwareAddress = 0xFF41
	// SCY is the background scroll Y position.
	SCY HardwareAddress = 0xFF42
	// SCX is the background scroll X position.
	SCX HardwareAddress = 0xFF43
	// LY is the scanline currently being timed, 0 - 153. Writing
	// any value resets it to 0.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY to drive the coincidence flag.
	LYC HardwareAddress = 0xFF45
	// DMA starts a 160 byte copy from value*0x100 into OAM.
	DMA HardwareAddress = 0xFF46
	// BGP is the background palette.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the first object palette.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the second object palette.
	OBP1 HardwareAddress = 0xFF49
	// WY is the window Y position.
	WY HardwareAddress = 0xFF4A
	// WX is the window X position plus 7.
	WX HardwareAddress = 0xFF4B
	// BDIS unmaps the boot ROM when written with a non-zero value.
	BDIS HardwareAddress = 0xFF50
	// IE enables interrupts, with the same layout as IF.
	IE HardwareAddress = 0xFFFF
)
