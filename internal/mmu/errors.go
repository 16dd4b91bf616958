package mmu

import (
	"errors"
	"fmt"
)

var (
	// ErrProhibited is the cause of an access to 0xFEA0 - 0xFEFF.
	ErrProhibited = errors.New("prohibited memory region")
	// ErrEchoWrite is the cause of a write to the echo of work RAM at
	// 0xE000 - 0xFDFF.
	ErrEchoWrite = errors.New("write to echo RAM")
	// ErrOutOfRange is the cause of a word access whose high byte
	// falls past 0xFFFF.
	ErrOutOfRange = errors.New("address out of range")
)

// AccessError describes a memory access the bus refuses to perform.
// The bus raises it as a panic value, so that it unwinds the
// instruction being executed, and the CPU returns it as an error.
type AccessError struct {
	Op      string // "read" or "write"
	Address uint16
	Err     error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("mmu: %s 0x%04X: %v", e.Op, e.Address, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

func fault(op string, address uint16, err error) {
	panic(&AccessError{Op: op, Address: address, Err: err})
}
