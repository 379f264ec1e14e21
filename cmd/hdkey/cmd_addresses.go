package main

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/jessevdk/go-flags"
	"hdkeytree/address"
	"hdkeytree/fileoperator"
	"hdkeytree/key"
)

const (
	defaultAddressPath  = "m/0"
	defaultAddressCount = 10
	defaultAddressType  = "p2sh-p2wpkh"
)

type addressesCommand struct {
	Key   string `long:"key" description:"The extended private or public key to derive from" required:"true"`
	Path  string `long:"path" description:"The derivation path of the address chain below the key"`
	Start uint32 `long:"start" description:"The first address index"`
	Count uint32 `long:"count" description:"The number of addresses to derive"`
	Type  string `long:"type" description:"The address type" choice:"p2pkh" choice:"p2sh-p2wpkh" choice:"p2wpkh"`
	Xlsx  string `long:"xlsx" description:"Also append the addresses to this .xlsx file"`

	opts *globalOptions
}

func newAddressesCommand(opts *globalOptions) *addressesCommand {
	return &addressesCommand{
		Path:  defaultAddressPath,
		Count: defaultAddressCount,
		Type:  defaultAddressType,
		opts:  opts,
	}
}

func (x *addressesCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"addresses",
		"List the addresses of an address chain",
		"Derive --count normal children starting at --start below "+
			"--key/--path and print one address per line",
		x,
	)
	return err
}

func (x *addressesCommand) Execute(_ []string) error {
	kind, err := address.ParseKind(x.Type)
	if err != nil {
		return err
	}
	path, err := key.ParsePath(x.Path)
	if err != nil {
		return err
	}
	if uint64(x.Start)+uint64(x.Count) > uint64(key.HardenedKeyStart) {
		return fmt.Errorf("address indexes must stay below %d",
			key.HardenedKeyStart)
	}

	chain, err := x.chainKey(path)
	if err != nil {
		return err
	}

	params := x.opts.params()
	rows := make([]fileoperator.AddressRow, 0, x.Count)
	for i := x.Start; i < x.Start+x.Count; i++ {
		child, err := chain.Derive(key.Normal(i))
		if err != nil {
			hdkyLog.Warnf("Skipping index %d: %v", i, err)
			continue
		}

		addr, err := address.Format(kind, child.PublicKey, params)
		if err != nil {
			return err
		}
		fmt.Println(addr)

		rows = append(rows, newRow(path, i, kind, addr, child.PublicKey))
	}

	if x.Xlsx == "" {
		return nil
	}
	return fileoperator.SaveAddresses(rows, x.Xlsx)
}

// chainKey returns the public key of the address chain.
func (x *addressesCommand) chainKey(path key.Path) (*key.ExtendedPublicKey,
	error) {

	priv, pub, err := parseAnyKey(x.opts, x.Key)
	if err != nil {
		return nil, err
	}

	if pub != nil {
		return pub.DerivePath(path)
	}

	defer priv.Zero()
	chain, err := priv.DerivePath(path)
	if err != nil {
		return nil, err
	}
	defer chain.Zero()

	return chain.Public(), nil
}

func newRow(path key.Path, index uint32, kind address.Kind, addr string,
	pub *secp256k1.PublicKey) fileoperator.AddressRow {

	full := append(path[:len(path):len(path)], key.Normal(index))

	return fileoperator.AddressRow{
		Path:      full.String(),
		Index:     index,
		Type:      kind.String(),
		Address:   addr,
		PublicKey: hex.EncodeToString(pub.SerializeCompressed()),
	}
}
