package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// testBit tests the bit at the given position in the given value.
//
//	BIT b, r
//	b = 0 - 7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.setFlags(!bits.Test(value, position), false, true, c.isFlagSet(FlagCarry))
}

// resetBit clears the bit at the given position. No flags are affected.
//
//	RES b, r
func (c *CPU) resetBit(value uint8, position uint8) uint8 {
	return bits.Reset(value, position)
}

// setBit sets the bit at the given position. No flags are affected.
//
//	SET b, r
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	return bits.Set(value, position)
}
