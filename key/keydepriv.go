// Package key implements hierarchical deterministic extended keys: their
// 78 byte serialization and the derivation of private and public children.
package key

import (
	"encoding/binary"
	"math"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"hdkeytree/digest"
)

const (
	// MinSeedBytes is the minimum seed length accepted by NewMaster.
	MinSeedBytes = 16

	// MaxSeedBytes is the maximum seed length accepted by NewMaster.
	MaxSeedBytes = 64

	// hmacMessageLen is the size of the child derivation HMAC input:
	// 33 bytes of key material followed by the packed child number.
	hmacMessageLen = 37
)

// masterHMACKey keys the HMAC that turns a seed into the master key.
var masterHMACKey = []byte("Bitcoin seed")

// Fingerprint identifies a key by the first four bytes of the Hash160 of its
// compressed public key.
type Fingerprint [4]byte

// ChainCode is the extra entropy mixed into every derivation step.
type ChainCode [32]byte

// ExtendedPrivateKey is a private key together with the data needed to
// derive its children.
type ExtendedPrivateKey struct {
	Depth             uint8
	ParentFingerprint Fingerprint
	ChildNumber       ChildNumber
	PrivateKey        *secp256k1.PrivateKey
	ChainCode         ChainCode
}

// ExtendedPublicKey is a public key together with the data needed to derive
// its normal children.
type ExtendedPublicKey struct {
	Depth             uint8
	ParentFingerprint Fingerprint
	ChildNumber       ChildNumber
	PublicKey         *secp256k1.PublicKey
	ChainCode         ChainCode
}

// NewMaster derives the root private key of a tree from seed.
func NewMaster(seed []byte) (*ExtendedPrivateKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, ErrInvalidSeedLength
	}

	i := digest.HMACSHA512(seed, masterHMACKey)
	defer zero(i)

	priv, err := privateKeyFromBytes(i[:32])
	if err != nil {
		return nil, err
	}

	master := &ExtendedPrivateKey{PrivateKey: priv}
	copy(master.ChainCode[:], i[32:])
	return master, nil
}

// Derive returns the child of k at child. Both normal and hardened children
// are supported. k is left untouched.
func (k *ExtendedPrivateKey) Derive(child ChildNumber) (*ExtendedPrivateKey,
	error) {

	if k.Depth == math.MaxUint8 {
		return nil, ErrDepthOverflow
	}

	parentPub := k.PrivateKey.PubKey().SerializeCompressed()

	var data [hmacMessageLen]byte
	defer zero(data[:])

	if child.IsHardened() {
		// 0x00 || ser256(k) so the child cannot be computed from the
		// public key.
		secret := k.PrivateKey.Key.Bytes()
		copy(data[1:33], secret[:])
		zero(secret[:])
	} else {
		copy(data[:33], parentPub)
	}
	binary.BigEndian.PutUint32(data[33:], child.Uint32())

	i := digest.HMACSHA512(data[:], k.ChainCode[:])
	defer zero(i)

	priv, err := addPrivateKeys(k.PrivateKey, i[:32])
	if err != nil {
		log.Debugf("Unusable private child %v at depth %d", child,
			k.Depth+1)
		return nil, err
	}

	xprv := &ExtendedPrivateKey{
		Depth:             k.Depth + 1,
		ParentFingerprint: fingerprint(parentPub),
		ChildNumber:       child,
		PrivateKey:        priv,
	}
	copy(xprv.ChainCode[:], i[32:])

	log.Tracef("Derived private child %v at depth %d, parent %x", child,
		xprv.Depth, xprv.ParentFingerprint[:])

	return xprv, nil
}

// Public returns the extended public key of k. Depth, parent fingerprint,
// child number and chain code are copied unchanged.
func (k *ExtendedPrivateKey) Public() *ExtendedPublicKey {
	return &ExtendedPublicKey{
		Depth:             k.Depth,
		ParentFingerprint: k.ParentFingerprint,
		ChildNumber:       k.ChildNumber,
		PublicKey:         k.PrivateKey.PubKey(),
		ChainCode:         k.ChainCode,
	}
}

// Identifier returns the Hash160 of the compressed public key.
func (k *ExtendedPrivateKey) Identifier() []byte {
	return digest.Hash160(k.PrivateKey.PubKey().SerializeCompressed())
}

// Fingerprint returns the fingerprint children of k record as their parent.
func (k *ExtendedPrivateKey) Fingerprint() Fingerprint {
	return fingerprint(k.PrivateKey.PubKey().SerializeCompressed())
}

// Equal reports whether k and other hold the same key material and metadata.
func (k *ExtendedPrivateKey) Equal(other *ExtendedPrivateKey) bool {
	return k.Depth == other.Depth &&
		k.ParentFingerprint == other.ParentFingerprint &&
		k.ChildNumber == other.ChildNumber &&
		k.ChainCode == other.ChainCode &&
		k.PrivateKey.Key.Equals(&other.PrivateKey.Key)
}

// Zero erases the private scalar and chain code. k must not be used
// afterwards.
func (k *ExtendedPrivateKey) Zero() {
	if k.PrivateKey != nil {
		k.PrivateKey.Zero()
	}
	zero(k.ChainCode[:])
}

// Derive returns the normal child of k at child. Hardened children need the
// private key and fail with ErrImpossibleDerivation. k is left untouched.
func (k *ExtendedPublicKey) Derive(child ChildNumber) (*ExtendedPublicKey,
	error) {

	if child.IsHardened() {
		return nil, ErrImpossibleDerivation
	}
	if k.Depth == math.MaxUint8 {
		return nil, ErrDepthOverflow
	}

	parentPub := k.PublicKey.SerializeCompressed()

	var data [hmacMessageLen]byte
	copy(data[:33], parentPub)
	binary.BigEndian.PutUint32(data[33:], child.Uint32())

	i := digest.HMACSHA512(data[:], k.ChainCode[:])
	defer zero(i)

	pub, err := addPublicKeys(k.PublicKey, i[:32])
	if err != nil {
		log.Debugf("Unusable public child %v at depth %d", child,
			k.Depth+1)
		return nil, err
	}

	xpub := &ExtendedPublicKey{
		Depth:             k.Depth + 1,
		ParentFingerprint: fingerprint(parentPub),
		ChildNumber:       child,
		PublicKey:         pub,
	}
	copy(xpub.ChainCode[:], i[32:])

	log.Tracef("Derived public child %v at depth %d, parent %x", child,
		xpub.Depth, xpub.ParentFingerprint[:])

	return xpub, nil
}

// Identifier returns the Hash160 of the compressed public key.
func (k *ExtendedPublicKey) Identifier() []byte {
	return digest.Hash160(k.PublicKey.SerializeCompressed())
}

// Fingerprint returns the fingerprint children of k record as their parent.
func (k *ExtendedPublicKey) Fingerprint() Fingerprint {
	return fingerprint(k.PublicKey.SerializeCompressed())
}

// Equal reports whether k and other hold the same key material and metadata.
func (k *ExtendedPublicKey) Equal(other *ExtendedPublicKey) bool {
	return k.Depth == other.Depth &&
		k.ParentFingerprint == other.ParentFingerprint &&
		k.ChildNumber == other.ChildNumber &&
		k.ChainCode == other.ChainCode &&
		k.PublicKey.IsEqual(other.PublicKey)
}
