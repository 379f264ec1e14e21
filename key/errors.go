package key

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChildIndex is returned for an index that does not fit in
	// 31 bits.
	ErrInvalidChildIndex = errors.New("child index out of range")

	// ErrImpossibleDerivation is returned when a hardened child is
	// requested from a public key.
	ErrImpossibleDerivation = errors.New("cannot derive a hardened " +
		"child from a public key")

	// ErrInvalidChild is returned when the HMAC output at the requested
	// index yields an unusable key: a tweak not below the curve order, a
	// zero private scalar or the point at infinity. The caller should
	// move on to the next index.
	ErrInvalidChild = errors.New("derived key is invalid for this index")

	// ErrDepthOverflow is returned when deriving below a depth 255 key.
	ErrDepthOverflow = errors.New("cannot derive beyond depth 255")

	// ErrInvalidPrivateKey is returned for a private scalar that is zero
	// or not below the curve order.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned for key material that does not
	// decode to a compressed curve point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPadding is returned when the byte before a serialized
	// private key is not zero.
	ErrInvalidPadding = errors.New("private key padding byte is not zero")

	// ErrInvalidSeedLength is returned by NewMaster for seeds outside
	// MinSeedBytes..MaxSeedBytes.
	ErrInvalidSeedLength = fmt.Errorf("seed length must be between %d "+
		"and %d bytes", MinSeedBytes, MaxSeedBytes)

	// ErrInvalidPath is returned for a malformed derivation path.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrInvalidWIF is returned for a malformed WIF private key.
	ErrInvalidWIF = errors.New("invalid WIF private key")
)

// LengthError is returned when decoded key data is not exactly
// SerializedKeyLen bytes.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("extended key is %d bytes, want %d", e.Length,
		SerializedKeyLen)
}

// InvalidVersionError is returned when the version tag does not match the
// expected network and key kind.
type InvalidVersionError struct {
	Version [4]byte
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("unknown extended key version %x", e.Version[:])
}

// EncodingError wraps a Base58Check failure met while parsing a key.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return "extended key encoding: " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
