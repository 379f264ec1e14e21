// Package address formats the public keys of a derived key tree as Bitcoin
// addresses.
package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"hdkeytree/base58check"
	"hdkeytree/digest"
)

// Kind selects an address format.
type Kind uint8

const (
	// KindP2PKH is a legacy pay-to-pubkey-hash address.
	KindP2PKH Kind = iota

	// KindP2SHP2WPKH is a pay-to-witness-pubkey-hash program nested in a
	// pay-to-script-hash address.
	KindP2SHP2WPKH

	// KindP2WPKH is a native segwit v0 bech32 address.
	KindP2WPKH
)

var kindNames = map[Kind]string{
	KindP2PKH:      "p2pkh",
	KindP2SHP2WPKH: "p2sh-p2wpkh",
	KindP2WPKH:     "p2wpkh",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind named by s, ignoring case.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown address type %q", s)
}

// P2PKH returns the pay-to-pubkey-hash address of pub.
func P2PKH(pub *secp256k1.PublicKey, params *chaincfg.Params) string {
	hash := digest.Hash160(pub.SerializeCompressed())
	return encode(params.PubKeyHashAddrID, hash)
}

// P2SHP2WPKH returns the nested segwit address of pub: the P2SH hash of the
// redeem script OP_0 <hash160(pub)>.
func P2SHP2WPKH(pub *secp256k1.PublicKey,
	params *chaincfg.Params) (string, error) {

	script, err := witnessProgram(pub)
	if err != nil {
		return "", err
	}
	return encode(params.ScriptHashAddrID, digest.Hash160(script)), nil
}

// P2WPKH returns the bech32 native segwit address of pub.
func P2WPKH(pub *secp256k1.PublicKey, params *chaincfg.Params) (string, error) {
	hash := digest.Hash160(pub.SerializeCompressed())
	addr, err := btcutil.NewAddressWitnessPubKeyHash(hash, params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// Format returns the address of pub in the given format.
func Format(kind Kind, pub *secp256k1.PublicKey,
	params *chaincfg.Params) (string, error) {

	switch kind {
	case KindP2PKH:
		return P2PKH(pub, params), nil

	case KindP2SHP2WPKH:
		return P2SHP2WPKH(pub, params)

	case KindP2WPKH:
		return P2WPKH(pub, params)

	default:
		return "", fmt.Errorf("unknown address type %v", kind)
	}
}

func witnessProgram(pub *secp256k1.PublicKey) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddData(digest.Hash160(pub.SerializeCompressed())).
		Script()
}

func encode(netID byte, hash []byte) string {
	payload := make([]byte, 0, 1+len(hash))
	payload = append(payload, netID)
	payload = append(payload, hash...)
	return base58check.FromBytes(payload).String()
}
