package key

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"hdkeytree/digest"
)

// addPrivateKeys returns parent + tweak mod n. The tweak must be below the
// curve order and the sum must not be zero.
func addPrivateKeys(parent *secp256k1.PrivateKey,
	tweak []byte) (*secp256k1.PrivateKey, error) {

	var il, child secp256k1.ModNScalar
	defer il.Zero()
	defer child.Zero()

	if overflow := il.SetByteSlice(tweak); overflow {
		return nil, ErrInvalidChild
	}

	child.Set(&parent.Key).Add(&il)
	if child.IsZero() {
		return nil, ErrInvalidChild
	}

	return secp256k1.NewPrivateKey(&child), nil
}

// addPublicKeys returns parent + tweak*G. The tweak must be below the curve
// order and the sum must not be the point at infinity.
func addPublicKeys(parent *secp256k1.PublicKey,
	tweak []byte) (*secp256k1.PublicKey, error) {

	var il secp256k1.ModNScalar
	if overflow := il.SetByteSlice(tweak); overflow {
		return nil, ErrInvalidChild
	}

	var tweakPoint, parentPoint, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&il, &tweakPoint)
	parent.AsJacobian(&parentPoint)
	secp256k1.AddNonConst(&parentPoint, &tweakPoint, &sum)

	sum.ToAffine()
	if sum.X.IsZero() && sum.Y.IsZero() {
		return nil, ErrInvalidChild
	}

	return secp256k1.NewPublicKey(&sum.X, &sum.Y), nil
}

// fingerprint returns the first four bytes of Hash160 of a compressed public
// key.
func fingerprint(compressed []byte) Fingerprint {
	var fp Fingerprint
	copy(fp[:], digest.Hash160(compressed))
	return fp
}

// zero overwrites b with zeros.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
