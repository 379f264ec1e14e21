package base58check

import "fmt"

// InvalidCharacterError is returned when the input holds a character outside
// the Base58 alphabet. Character is the decoded rune, utf8.RuneError for
// malformed UTF-8, and Position its 0-based byte offset into the input.
type InvalidCharacterError struct {
	Character rune
	Position  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("base58check: invalid character %q at position %d",
		e.Character, e.Position)
}

// InvalidLengthError is returned when the decoded data is too short to carry
// a checksum.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("base58check: decoded length %d is shorter than "+
		"the checksum", e.Length)
}

// InvalidChecksumError is returned when the checksum carried by the input
// (Expected) does not match the one computed over the payload (Actual).
type InvalidChecksumError struct {
	Expected [4]byte
	Actual   [4]byte
}

func (e *InvalidChecksumError) Error() string {
	return fmt.Sprintf("base58check: invalid checksum, expected %x got %x",
		e.Expected[:], e.Actual[:])
}
