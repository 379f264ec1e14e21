// Package base58check implements the checksummed Base58 text encoding used
// for addresses and serialized extended keys.
package base58check

import (
	"bytes"
	"unicode/utf8"

	"hdkeytree/digest"
)

// Encode appends the 4 byte double-hash checksum to payload and returns the
// Base58 text of the result. Every leading zero byte of payload becomes a
// leading '1'.
func Encode(payload []byte) string {
	checksum := digest.Checksum(payload)

	data := make([]byte, 0, len(payload)+len(checksum))
	data = append(data, payload...)
	data = append(data, checksum[:]...)

	zeros := countLeading(data, 0)
	digits := toBase58(data[zeros:])

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = alphabet[0]
	}
	for i, d := range digits {
		out[zeros+i] = alphabet[d]
	}
	return string(out)
}

// Decode parses Base58Check text and returns the payload with the checksum
// stripped.
func Decode(s string) ([]byte, error) {
	digits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		idx := indexes[s[i]]
		if idx == invalidIndex {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, &InvalidCharacterError{
				Character: r,
				Position:  i,
			}
		}
		digits[i] = idx
	}

	zeros := countLeading(digits, 0)
	tail := toBase256(digits[zeros:])

	data := make([]byte, zeros, zeros+len(tail))
	data = append(data, tail...)

	if len(data) < digest.ChecksumLength {
		return nil, &InvalidLengthError{Length: len(data)}
	}

	split := len(data) - digest.ChecksumLength
	payload := data[:split]

	var expected [digest.ChecksumLength]byte
	copy(expected[:], data[split:])
	actual := digest.Checksum(payload)

	if !bytes.Equal(expected[:], actual[:]) {
		return nil, &InvalidChecksumError{
			Expected: expected,
			Actual:   actual,
		}
	}
	return payload, nil
}

func countLeading(b []byte, v byte) int {
	n := 0
	for n < len(b) && b[n] == v {
		n++
	}
	return n
}

// toBase58 converts big-endian bytes into big-endian base-58 digits.
func toBase58(data []byte) []byte {
	// log(256) / log(58) is about 138 / 100.
	buf := make([]byte, len(data)*138/100+1)
	return convert(buf, data, 256, 58)
}

// toBase256 converts big-endian base-58 digits into big-endian bytes.
func toBase256(digits []byte) []byte {
	// log(58) / log(256) is about 733 / 1000.
	buf := make([]byte, len(digits)*733/1000+1)
	return convert(buf, digits, 58, 256)
}

// convert runs the schoolbook multiply-and-carry conversion of in from base
// `from` to base `to`. buf receives the output digits least significant first
// and must be large enough for the result.
func convert(buf, in []byte, from, to uint32) []byte {
	end := 0
	for _, word := range in {
		carry := uint32(word)
		cursor := 0
		for carry != 0 || cursor < end {
			carry += from * uint32(buf[cursor])
			buf[cursor] = byte(carry % to)
			carry /= to
			cursor++
		}
		end = cursor
	}

	out := make([]byte, end)
	for i := 0; i < end; i++ {
		out[i] = buf[end-1-i]
	}
	return out
}
