package key

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg"
	"hdkeytree/base58check"
)

// SerializedKeyLen is the size of a serialized extended key before the
// Base58Check checksum is added.
const SerializedKeyLen = 78

// Versions holds the 4 byte tags that open a serialized private and public
// extended key on one network.
type Versions struct {
	Private [4]byte
	Public  [4]byte
}

// MainNet holds the xprv/xpub tags.
var MainNet = Versions{
	Private: [4]byte{0x04, 0x88, 0xad, 0xe4},
	Public:  [4]byte{0x04, 0x88, 0xb2, 0x1e},
}

// VersionsFromParams returns the tags of a btcd network.
func VersionsFromParams(params *chaincfg.Params) Versions {
	return Versions{
		Private: params.HDPrivateKeyID,
		Public:  params.HDPublicKeyID,
	}
}

// rawKey is the field view of the 78 byte layout:
//
//	[0:4) version | [4] depth | [5:9) parent fingerprint |
//	[9:13) child number | [13:45) chain code | [45:78) key data
//
// Private key data is 0x00 followed by the 32 byte scalar; public key data is
// the 33 byte compressed point.
type rawKey struct {
	version     [4]byte
	depth       uint8
	parentFP    Fingerprint
	childNumber uint32
	chainCode   ChainCode
	keyData     [33]byte
}

func (r *rawKey) marshal() []byte {
	b := make([]byte, SerializedKeyLen)
	copy(b[0:4], r.version[:])
	b[4] = r.depth
	copy(b[5:9], r.parentFP[:])
	binary.BigEndian.PutUint32(b[9:13], r.childNumber)
	copy(b[13:45], r.chainCode[:])
	copy(b[45:78], r.keyData[:])
	return b
}

func unmarshalRawKey(b []byte) (*rawKey, error) {
	if len(b) != SerializedKeyLen {
		return nil, &LengthError{Length: len(b)}
	}

	r := &rawKey{
		depth:       b[4],
		childNumber: binary.BigEndian.Uint32(b[9:13]),
	}
	copy(r.version[:], b[0:4])
	copy(r.parentFP[:], b[5:9])
	copy(r.chainCode[:], b[13:45])
	copy(r.keyData[:], b[45:78])
	return r, nil
}

func (r *rawKey) zero() {
	zero(r.chainCode[:])
	zero(r.keyData[:])
}

// decode turns Base58Check text into a rawKey carrying the given version.
func decode(s string, version [4]byte) (*rawKey, error) {
	data, err := base58check.Decode(s)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	defer zero(data)

	r, err := unmarshalRawKey(data)
	if err != nil {
		return nil, err
	}
	if r.version != version {
		r.zero()
		return nil, &InvalidVersionError{Version: r.version}
	}
	return r, nil
}

// ParsePrivate parses a serialized extended private key carrying v.Private.
func (v Versions) ParsePrivate(s string) (*ExtendedPrivateKey, error) {
	r, err := decode(s, v.Private)
	if err != nil {
		return nil, err
	}
	defer r.zero()

	if r.keyData[0] != 0x00 {
		return nil, ErrInvalidPadding
	}

	priv, err := privateKeyFromBytes(r.keyData[1:])
	if err != nil {
		return nil, err
	}

	return &ExtendedPrivateKey{
		Depth:             r.depth,
		ParentFingerprint: r.parentFP,
		ChildNumber:       ChildNumberFromUint32(r.childNumber),
		PrivateKey:        priv,
		ChainCode:         r.chainCode,
	}, nil
}

// ParsePublic parses a serialized extended public key carrying v.Public.
func (v Versions) ParsePublic(s string) (*ExtendedPublicKey, error) {
	r, err := decode(s, v.Public)
	if err != nil {
		return nil, err
	}

	pub, err := publicKeyFromBytes(r.keyData[:])
	if err != nil {
		return nil, err
	}

	return &ExtendedPublicKey{
		Depth:             r.depth,
		ParentFingerprint: r.parentFP,
		ChildNumber:       ChildNumberFromUint32(r.childNumber),
		PublicKey:         pub,
		ChainCode:         r.chainCode,
	}, nil
}

// SerializePrivate encodes k with v.Private.
func (v Versions) SerializePrivate(k *ExtendedPrivateKey) base58check.String {
	r := rawKey{
		version:     v.Private,
		depth:       k.Depth,
		parentFP:    k.ParentFingerprint,
		childNumber: k.ChildNumber.Uint32(),
		chainCode:   k.ChainCode,
	}
	defer r.zero()

	secret := k.PrivateKey.Key.Bytes()
	copy(r.keyData[1:], secret[:])
	zero(secret[:])

	b := r.marshal()
	defer zero(b)

	return base58check.FromBytes(b)
}

// SerializePublic encodes k with v.Public.
func (v Versions) SerializePublic(k *ExtendedPublicKey) base58check.String {
	r := rawKey{
		version:     v.Public,
		depth:       k.Depth,
		parentFP:    k.ParentFingerprint,
		childNumber: k.ChildNumber.Uint32(),
		chainCode:   k.ChainCode,
	}
	copy(r.keyData[:], k.PublicKey.SerializeCompressed())

	return base58check.FromBytes(r.marshal())
}

// ParseExtendedPrivateKey parses an xprv string.
func ParseExtendedPrivateKey(s string) (*ExtendedPrivateKey, error) {
	return MainNet.ParsePrivate(s)
}

// ParseExtendedPublicKey parses an xpub string.
func ParseExtendedPublicKey(s string) (*ExtendedPublicKey, error) {
	return MainNet.ParsePublic(s)
}

// Base58Check returns k serialized as an xprv string.
func (k *ExtendedPrivateKey) Base58Check() base58check.String {
	return MainNet.SerializePrivate(k)
}

// Base58Check returns k serialized as an xpub string.
func (k *ExtendedPublicKey) Base58Check() base58check.String {
	return MainNet.SerializePublic(k)
}

// String returns k serialized as an xpub string.
func (k *ExtendedPublicKey) String() string {
	return k.Base58Check().String()
}
