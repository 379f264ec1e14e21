package key

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// privateKeyFromBytes returns the private key for a 32 byte big-endian scalar
// after checking that it is nonzero and below the curve order.
func privateKeyFromBytes(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != secp256k1.PrivKeyBytesLen {
		return nil, ErrInvalidPrivateKey
	}

	var scalar secp256k1.ModNScalar
	defer scalar.Zero()

	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return nil, ErrInvalidPrivateKey
	}

	return secp256k1.NewPrivateKey(&scalar), nil
}

// publicKeyFromBytes parses a 33 byte compressed point.
func publicKeyFromBytes(b []byte) (*secp256k1.PublicKey, error) {
	if len(b) != secp256k1.PubKeyBytesLenCompressed {
		return nil, ErrInvalidPublicKey
	}

	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return pub, nil
}
