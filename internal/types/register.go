package types

// Register represents an 8-bit CPU register. The CPU has 8 of them:
// A, B, C, D, E, F, H and L, where F holds the flags.
type Register = uint8

// RegisterPair represents a pair of Registers addressed as a single
// 16-bit value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register

	lowMask uint8
}

// NewRegisterPair returns a RegisterPair over the given registers. Every
// write through the pair keeps only the bits of lowMask in the low
// register.
func NewRegisterPair(high, low *Register, lowMask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: lowMask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}

// Registers represents the CPU register file.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// NewRegisters returns a zeroed register file with its pairs wired
// up. The low nibble of F always reads as zero.
func NewRegisters() *Registers {
	r := &Registers{}
	r.BC = NewRegisterPair(&r.B, &r.C, 0xFF)
	r.DE = NewRegisterPair(&r.D, &r.E, 0xFF)
	r.HL = NewRegisterPair(&r.H, &r.L, 0xFF)
	r.AF = NewRegisterPair(&r.A, &r.F, 0xF0)
	return r
}
