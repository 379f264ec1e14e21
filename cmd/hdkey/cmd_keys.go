package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"hdkeytree/key"
)

// parseAnyKey parses a serialized extended key of either kind for the
// network selected by opts. Exactly one of the returned keys is non-nil.
func parseAnyKey(opts *globalOptions, s string) (*key.ExtendedPrivateKey,
	*key.ExtendedPublicKey, error) {

	versions := opts.versions()

	priv, err := versions.ParsePrivate(s)
	if err == nil {
		return priv, nil, nil
	}

	var versionErr *key.InvalidVersionError
	if !errors.As(err, &versionErr) ||
		versionErr.Version != versions.Public {

		return nil, nil, err
	}

	pub, err := versions.ParsePublic(s)
	if err != nil {
		return nil, nil, err
	}
	return nil, pub, nil
}

func parsePrivateKey(opts *globalOptions, s string) (*key.ExtendedPrivateKey,
	error) {

	priv, pub, err := parseAnyKey(opts, s)
	if err != nil {
		return nil, err
	}
	if pub != nil {
		return nil, fmt.Errorf("an extended private key is required")
	}
	return priv, nil
}

type masterCommand struct {
	Seed string `long:"seed" description:"The hex encoded seed, 16 to 64 bytes" required:"true"`

	opts *globalOptions
}

func newMasterCommand(opts *globalOptions) *masterCommand {
	return &masterCommand{opts: opts}
}

func (x *masterCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"master",
		"Create a master key from a seed",
		"Derive the master extended private key from --seed and print "+
			"it followed by its extended public key",
		x,
	)
	return err
}

func (x *masterCommand) Execute(_ []string) error {
	seed, err := hex.DecodeString(x.Seed)
	if err != nil {
		return fmt.Errorf("invalid hex seed: %w", err)
	}

	master, err := key.NewMaster(seed)
	if err != nil {
		return err
	}
	defer master.Zero()

	versions := x.opts.versions()
	fmt.Println(versions.SerializePrivate(master))
	fmt.Println(versions.SerializePublic(master.Public()))
	return nil
}

type deriveCommand struct {
	Key  string `long:"key" description:"The extended private or public key to derive from" required:"true"`
	Path string `long:"path" description:"The derivation path below the key, e.g. m/44'/0'/0'" required:"true"`

	opts *globalOptions
}

func newDeriveCommand(opts *globalOptions) *deriveCommand {
	return &deriveCommand{opts: opts}
}

func (x *deriveCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"derive",
		"Derive a child extended key",
		"Walk --path down from --key and print the resulting extended "+
			"key; hardened elements need an extended private key",
		x,
	)
	return err
}

func (x *deriveCommand) Execute(_ []string) error {
	path, err := key.ParsePath(x.Path)
	if err != nil {
		return err
	}

	priv, pub, err := parseAnyKey(x.opts, x.Key)
	if err != nil {
		return err
	}

	versions := x.opts.versions()
	if priv != nil {
		defer priv.Zero()

		child, err := priv.DerivePath(path)
		if err != nil {
			return err
		}
		defer child.Zero()

		fmt.Println(versions.SerializePrivate(child))
		return nil
	}

	child, err := pub.DerivePath(path)
	if err != nil {
		return err
	}
	fmt.Println(versions.SerializePublic(child))
	return nil
}

type neuterCommand struct {
	Key string `long:"key" description:"The extended private key" required:"true"`

	opts *globalOptions
}

func newNeuterCommand(opts *globalOptions) *neuterCommand {
	return &neuterCommand{opts: opts}
}

func (x *neuterCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"neuter",
		"Print the extended public key of an extended private key",
		"Print the extended public key matching --key, keeping its "+
			"depth, parent fingerprint, child number and chain code",
		x,
	)
	return err
}

func (x *neuterCommand) Execute(_ []string) error {
	priv, err := parsePrivateKey(x.opts, x.Key)
	if err != nil {
		return err
	}
	defer priv.Zero()

	fmt.Println(x.opts.versions().SerializePublic(priv.Public()))
	return nil
}

type wifCommand struct {
	Key string `long:"key" description:"The extended private key" required:"true"`

	opts *globalOptions
}

func newWIFCommand(opts *globalOptions) *wifCommand {
	return &wifCommand{opts: opts}
}

func (x *wifCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"wif",
		"Export the private key in wallet import format",
		"Print the private key of --key as a compressed WIF string "+
			"for the selected network",
		x,
	)
	return err
}

func (x *wifCommand) Execute(_ []string) error {
	priv, err := parsePrivateKey(x.opts, x.Key)
	if err != nil {
		return err
	}
	defer priv.Zero()

	fmt.Println(priv.WIF(x.opts.params()))
	return nil
}
