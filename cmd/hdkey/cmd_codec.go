package main

import (
	"encoding/hex"
	"fmt"

	"github.com/jessevdk/go-flags"
	"hdkeytree/base58check"
)

type encodeCommand struct{}

func newEncodeCommand() *encodeCommand {
	return &encodeCommand{}
}

func (x *encodeCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"encode",
		"Encode hex data as Base58Check",
		"Append the 4 byte double SHA-256 checksum to the hex encoded "+
			"payload given as the only argument and print it in "+
			"base 58",
		x,
	)
	return err
}

func (x *encodeCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one hex payload is required")
	}

	payload, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex payload: %w", err)
	}

	fmt.Println(base58check.Encode(payload))
	return nil
}

type decodeCommand struct{}

func newDecodeCommand() *decodeCommand {
	return &decodeCommand{}
}

func (x *decodeCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"decode",
		"Decode Base58Check text to hex",
		"Verify the checksum of the Base58Check string given as the "+
			"only argument and print its payload as hex",
		x,
	)
	return err
}

func (x *decodeCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one Base58Check string is required")
	}

	payload, err := base58check.Decode(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(payload))
	return nil
}
