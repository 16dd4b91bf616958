// Package bits provides the bit-level and wrap-around arithmetic helpers
// shared by the CPU and the memory bus.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// ToByte wraps v into the range of a byte, so that
// ToByte(v) == v mod 256 for any v, negative values included.
func ToByte[T constraints.Integer](v T) uint8 {
	return uint8(v)
}

// ToWord wraps v into the range of a word, so that
// ToWord(v) == v mod 65536 for any v, negative values included.
func ToWord[T constraints.Integer](v T) uint16 {
	return uint16(v)
}

// HalfCarryAdd reports whether adding b (and the carry, if set)
// to a carries out of bit 3.
func HalfCarryAdd(a, b uint8, carry bool) bool {
	return (a&0xF)+(b&0xF)+boolToUint8(carry) > 0xF
}

// HalfCarrySub reports whether subtracting b (and the carry, if set)
// from a borrows from bit 4.
func HalfCarrySub(a, b uint8, carry bool) bool {
	return int(a&0xF)-int(b&0xF)-int(boolToUint8(carry)) < 0
}

// CarryAdd reports whether adding b (and the carry, if set) to a
// overflows 0xFF.
func CarryAdd(a, b uint8, carry bool) bool {
	return uint16(a)+uint16(b)+uint16(boolToUint8(carry)) > 0xFF
}

// CarrySub reports whether subtracting b (and the carry, if set)
// from a goes negative.
func CarrySub(a, b uint8, carry bool) bool {
	return int(a)-int(b)-int(boolToUint8(carry)) < 0
}

// HalfCarryAdd16 reports whether a 16-bit addition carries out of bit 11.
func HalfCarryAdd16(a, b uint16) bool {
	return (a&0xFFF)+(b&0xFFF) > 0xFFF
}

// CarryAdd16 reports whether a 16-bit addition overflows 0xFFFF.
func CarryAdd16(a, b uint16) bool {
	return uint32(a)+uint32(b) > 0xFFFF
}

// SignExtend interprets v as a two's-complement displacement, so that
// values >= 128 are negative.
func SignExtend(v uint8) int8 {
	return int8(v)
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
