package key

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedKeyStart is the first packed child number that denotes a hardened
// child. Indexes of both variants must stay below it.
const HardenedKeyStart uint32 = 0x80000000

// ChildNumber is the position of a key below its parent. It is either a
// normal index, derivable from the parent public key, or a hardened index,
// which needs the parent private key.
type ChildNumber struct {
	index    uint32
	hardened bool
}

// NewChildNumber returns the child number for index, or ErrInvalidChildIndex
// when index does not fit in 31 bits.
func NewChildNumber(index uint32, hardened bool) (ChildNumber, error) {
	if index >= HardenedKeyStart {
		return ChildNumber{}, fmt.Errorf("%w: %d", ErrInvalidChildIndex,
			index)
	}

	return ChildNumber{index: index, hardened: hardened}, nil
}

// Normal returns the normal child number for index. It panics if index does
// not fit in 31 bits; use NewChildNumber for untrusted input.
func Normal(index uint32) ChildNumber {
	c, err := NewChildNumber(index, false)
	if err != nil {
		panic(err)
	}
	return c
}

// Hardened returns the hardened child number for index. It panics if index
// does not fit in 31 bits; use NewChildNumber for untrusted input.
func Hardened(index uint32) ChildNumber {
	c, err := NewChildNumber(index, true)
	if err != nil {
		panic(err)
	}
	return c
}

// ChildNumberFromUint32 unpacks the serialized form, where the high bit marks
// a hardened child.
func ChildNumberFromUint32(n uint32) ChildNumber {
	if n >= HardenedKeyStart {
		return ChildNumber{index: n - HardenedKeyStart, hardened: true}
	}
	return ChildNumber{index: n}
}

// Uint32 packs the child number into its serialized form.
func (c ChildNumber) Uint32() uint32 {
	if c.hardened {
		return c.index | HardenedKeyStart
	}
	return c.index
}

// Index returns the 31 bit index without the hardened marker.
func (c ChildNumber) Index() uint32 {
	return c.index
}

// IsHardened reports whether c is a hardened child number.
func (c ChildNumber) IsHardened() bool {
	return c.hardened
}

// String formats c the way derivation paths write it, e.g. "0" or "44'".
func (c ChildNumber) String() string {
	s := strconv.FormatUint(uint64(c.index), 10)
	if c.hardened {
		return s + "'"
	}
	return s
}

// ParseChildNumber parses one derivation path element. A trailing ', h or H
// marks a hardened index.
func ParseChildNumber(s string) (ChildNumber, error) {
	hardened := false
	if n := len(s); n > 0 && strings.ContainsRune("'hH", rune(s[n-1])) {
		hardened = true
		s = s[:n-1]
	}

	index, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return ChildNumber{}, fmt.Errorf("%w: %q", ErrInvalidPath, s)
	}

	return NewChildNumber(uint32(index), hardened)
}
