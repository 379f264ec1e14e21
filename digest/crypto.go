// Package digest holds the hash primitives used by the codec and the key
// derivation engine.
package digest

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

const (
	// ChecksumLength is the number of double-hash bytes appended by
	// Base58Check.
	ChecksumLength = 4

	// ShortHashLength is the size of a Hash160 digest.
	ShortHashLength = ripemd160.Size
)

// HashSha256 returns SHA-256(data).
func HashSha256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// DoubleHash returns SHA-256(SHA-256(data)).
func DoubleHash(data []byte) []byte {
	return chainhash.DoubleHashB(data)
}

// HashRipeMD160 returns RIPEMD-160(data).
func HashRipeMD160(data []byte) []byte {
	h := ripemd160.New()
	// hash.Hash never returns an error from Write.
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// Hash160 returns RIPEMD-160(SHA-256(data)), the short hash used for key
// fingerprints and addresses.
func Hash160(data []byte) []byte {
	return HashRipeMD160(HashSha256(data))
}

// Checksum returns the first four bytes of the double hash of data.
func Checksum(data []byte) [ChecksumLength]byte {
	var sum [ChecksumLength]byte
	copy(sum[:], DoubleHash(data))
	return sum
}
