package key

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func TestAddKeys(t *testing.T) {
	t.Parallel()

	parent := mustParsePrivate(t, testXprv).PrivateKey

	var negated secp256k1.ModNScalar
	negated.NegateVal(&parent.Key)
	negatedBytes := negated.Bytes()

	var one secp256k1.ModNScalar
	one.SetInt(1)
	oneBytes := one.Bytes()

	tests := []struct {
		name  string
		tweak []byte
		err   error
	}{
		{
			name:  "tweak equal to order",
			tweak: secp256k1.Params().N.Bytes(),
			err:   ErrInvalidChild,
		},
		{
			name:  "tweak above order",
			tweak: secp256k1.Params().P.Bytes(),
			err:   ErrInvalidChild,
		},
		{
			// Sums to the zero scalar and the point at infinity.
			name:  "tweak cancels parent",
			tweak: negatedBytes[:],
			err:   ErrInvalidChild,
		},
		{
			name:  "valid tweak",
			tweak: oneBytes[:],
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			priv, err := addPrivateKeys(parent, test.tweak)
			pub, pubErr := addPublicKeys(parent.PubKey(), test.tweak)

			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				require.Nil(t, priv)
				require.ErrorIs(t, pubErr, test.err)
				require.Nil(t, pub)
				return
			}

			require.NoError(t, err)
			require.NoError(t, pubErr)
			require.True(t, priv.PubKey().IsEqual(pub))

			var want secp256k1.ModNScalar
			want.Set(&parent.Key).Add(&one)
			require.True(t, want.Equals(&priv.Key))
		})
	}
}

func TestAddKeysLeavesParent(t *testing.T) {
	t.Parallel()

	parent := mustParsePrivate(t, testXprv).PrivateKey
	before := parent.Key.Bytes()
	pubBefore := parent.PubKey().SerializeCompressed()

	tweak := make([]byte, 32)
	tweak[31] = 7

	_, err := addPrivateKeys(parent, tweak)
	require.NoError(t, err)
	_, err = addPublicKeys(parent.PubKey(), tweak)
	require.NoError(t, err)

	require.Equal(t, before, parent.Key.Bytes())
	require.Equal(t, pubBefore, parent.PubKey().SerializeCompressed())
}
