package key

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"hdkeytree/base58check"
)

// compressMagic follows the scalar in a WIF payload when the matching public
// key is used in compressed form.
const compressMagic = 0x01

// WIF is a private key in wallet import format.
type WIF struct {
	NetID          byte
	PrivateKey     *secp256k1.PrivateKey
	CompressPubKey bool
}

// WIF exports the private key of k for the given network. Derived public keys
// are always compressed, so the compression flag is set.
func (k *ExtendedPrivateKey) WIF(params *chaincfg.Params) base58check.String {
	payload := make([]byte, 0, 1+secp256k1.PrivKeyBytesLen+1)
	defer zero(payload[:cap(payload)])

	secret := k.PrivateKey.Key.Bytes()
	defer zero(secret[:])

	payload = append(payload, params.PrivateKeyID)
	payload = append(payload, secret[:]...)
	payload = append(payload, compressMagic)

	return base58check.FromBytes(payload)
}

// DecodeWIF parses a WIF private key. Both the compressed and the
// uncompressed form are accepted.
func DecodeWIF(s string) (*WIF, error) {
	payload, err := base58check.Decode(s)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	defer zero(payload)

	var compress bool
	switch len(payload) {
	case 1 + secp256k1.PrivKeyBytesLen:

	case 1 + secp256k1.PrivKeyBytesLen + 1:
		if payload[len(payload)-1] != compressMagic {
			return nil, fmt.Errorf("%w: bad compression flag %#x",
				ErrInvalidWIF, payload[len(payload)-1])
		}
		compress = true

	default:
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrInvalidWIF,
			len(payload))
	}

	priv, err := privateKeyFromBytes(payload[1 : 1+secp256k1.PrivKeyBytesLen])
	if err != nil {
		return nil, err
	}

	return &WIF{
		NetID:          payload[0],
		PrivateKey:     priv,
		CompressPubKey: compress,
	}, nil
}

// IsForNet reports whether w was encoded for the given network.
func (w *WIF) IsForNet(params *chaincfg.Params) bool {
	return w.NetID == params.PrivateKeyID
}
