package address

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
	"hdkeytree/digest"
	"hdkeytree/key"
	"pgregory.net/rapid"
)

const testXpub = "xpub6FFQ9VG4C9qhWBgoa6nURfEkYAbkE6pyScvERKKniwfxGqFabPG" +
	"Uo7uaiHfBb2vpKqdiFkKW1Wab9T2EJahdWXmHXXLV6F53xtaae4uaqR1"

func childKey(t require.TestingT, index uint32) *secp256k1.PublicKey {
	xpub, err := key.ParseExtendedPublicKey(testXpub)
	require.NoError(t, err)

	path := key.Path{key.Normal(0), key.Normal(index)}
	child, err := xpub.DerivePath(path)
	require.NoError(t, err)
	return child.PublicKey
}

func TestFormatVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index  uint32
		kind   Kind
		params *chaincfg.Params
		want   string
	}{
		{0, KindP2SHP2WPKH, &chaincfg.MainNetParams, "37Na1FXrtox1priZXUEqmb1Y6x9JZzKZ6V"},
		{1, KindP2SHP2WPKH, &chaincfg.MainNetParams, "3CZ6ep19SyY6Jy3tpNJ1cqkVt7VDCAMaer"},
		{2, KindP2SHP2WPKH, &chaincfg.MainNetParams, "3Ka8Zs61tKafn2wFw3oHFrp4oVYTT1YW41"},
		{0, KindP2PKH, &chaincfg.MainNetParams, "13mGkwDLkwwzL2f6322Nu4NNvPFzdGCaE1"},
		{1, KindP2PKH, &chaincfg.MainNetParams, "1CN4QynX3XoUPVtLtq66gUEtPnuTn7fS2Y"},
		{2, KindP2PKH, &chaincfg.MainNetParams, "1ABV3US2hMMfJwosWxkgEjVxtAPHMWuM73"},
		{0, KindP2WPKH, &chaincfg.MainNetParams, "bc1qre8m2fqqdkqnrsmr6sq24rx3zx0ynuujpsu4cy"},
		{1, KindP2WPKH, &chaincfg.MainNetParams, "bc1q0jj00hyypurewvw0ye077apjl2vn94ccyfxgsk"},
		{2, KindP2WPKH, &chaincfg.MainNetParams, "bc1qvj6tx5ckd24sycphwtxnrkk2umzp7n566ypru5"},
		{0, KindP2SHP2WPKH, &chaincfg.TestNet3Params, "2Mxvn4zTtWGTN2eM7CbriPXzoKJMUMAQ2BP"},
		{0, KindP2PKH, &chaincfg.TestNet3Params, "miHE3zJKZyPF798hkazkiyahnNrhb1kVV9"},
		{0, KindP2WPKH, &chaincfg.TestNet3Params, "tb1qre8m2fqqdkqnrsmr6sq24rx3zx0ynuujtk8xrh"},
	}

	for _, test := range tests {
		test := test
		name := test.kind.String() + "/" + test.params.Name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(test.kind, childKey(t, test.index),
				test.params)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestChildPublicKey(t *testing.T) {
	t.Parallel()

	pub := childKey(t, 0)
	require.Equal(t, "03d04024c1099b84c4d162ab2bf1cdcd23e6ef102ea83103be9f"+
		"5662a7e01a908e", hex.EncodeToString(pub.SerializeCompressed()))
}

func TestMasterAddresses(t *testing.T) {
	t.Parallel()

	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := key.NewMaster(seed)
	require.NoError(t, err)
	pub := master.Public().PublicKey

	tests := map[Kind]string{
		KindP2PKH:      "15mKKb2eos1hWa6tisdPwwDC1a5J1y9nma",
		KindP2SHP2WPKH: "3PpgpssV7mcAGpZRWiCWhodUTnjpoSZg7a",
		KindP2WPKH:     "bc1qx3ppj0smkuy3d6g525sh9n2w9k7fm7q3x30rtg",
	}
	for kind, want := range tests {
		got, err := Format(kind, pub, &chaincfg.MainNetParams)
		require.NoError(t, err)
		require.Equal(t, want, got, kind.String())
	}
}

// TestMatchesBtcutil checks the Base58Check encodings against btcutil's
// address types.
func TestMatchesBtcutil(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		pub := childKey(t, rapid.Uint32Range(0, 1000).Draw(t, "index"))
		hash := digest.Hash160(pub.SerializeCompressed())

		pkh, err := btcutil.NewAddressPubKeyHash(
			hash, &chaincfg.MainNetParams,
		)
		require.NoError(t, err)
		require.Equal(t, pkh.EncodeAddress(),
			P2PKH(pub, &chaincfg.MainNetParams))

		script, err := witnessProgram(pub)
		require.NoError(t, err)
		sh, err := btcutil.NewAddressScriptHash(
			script, &chaincfg.MainNetParams,
		)
		require.NoError(t, err)

		got, err := P2SHP2WPKH(pub, &chaincfg.MainNetParams)
		require.NoError(t, err)
		require.Equal(t, sh.EncodeAddress(), got)
	})
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindP2PKH, KindP2SHP2WPKH, KindP2WPKH} {
		got, err := ParseKind(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, got)
	}

	got, err := ParseKind("P2SH-P2WPKH")
	require.NoError(t, err)
	require.Equal(t, KindP2SHP2WPKH, got)

	_, err = ParseKind("p2tr")
	require.Error(t, err)

	_, err = Format(Kind(9), childKey(t, 0), &chaincfg.MainNetParams)
	require.Error(t, err)
	require.Equal(t, "Kind(9)", Kind(9).String())
}
