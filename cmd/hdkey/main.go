// Command hdkey encodes Base58Check data and derives BIP32 extended keys and
// their addresses.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type subCommand interface {
	Register(parser *flags.Parser) error
}

func main() {
	opts := newGlobalOptions()
	parser := flags.NewParser(opts, flags.Default)

	commands := []subCommand{
		newEncodeCommand(),
		newDecodeCommand(),
		newMasterCommand(opts),
		newDeriveCommand(opts),
		newNeuterCommand(opts),
		newAddressesCommand(opts),
		newWIFCommand(opts),
	}
	for _, command := range commands {
		if err := command.Register(parser); err != nil {
			fmt.Fprintf(os.Stderr, "failed to register command: %v\n",
				err)
			os.Exit(1)
		}
	}

	// Logging options are only known once the parser has run, so they
	// are applied right before the selected command executes.
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := opts.setupLogging(); err != nil {
			return err
		}
		defer closeLogRotator()

		hdkyLog.Debugf("Running on %s", opts.params().Name)
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		flagErr, isFlagErr := err.(*flags.Error)
		if isFlagErr && flagErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}
