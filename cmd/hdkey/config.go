package main

import (
	"path/filepath"

	"github.com/btcsuite/btcd/chaincfg"
	"hdkeytree/key"
)

const (
	defaultNetwork    = "mainnet"
	defaultDebugLevel = "warn"
)

// globalOptions are accepted before any command.
type globalOptions struct {
	Network    string `long:"network" short:"n" description:"The network extended keys and addresses are encoded for" choice:"mainnet" choice:"testnet3" choice:"regtest" choice:"simnet" choice:"signet"`
	DebugLevel string `long:"debuglevel" short:"d" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off}"`
	LogDir     string `long:"logdir" description:"Also write a rotated log file to this directory"`
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{
		Network:    defaultNetwork,
		DebugLevel: defaultDebugLevel,
	}
}

// params returns the btcd parameters of the selected network.
func (o *globalOptions) params() *chaincfg.Params {
	switch o.Network {
	case "testnet3":
		return &chaincfg.TestNet3Params

	case "regtest":
		return &chaincfg.RegressionNetParams

	case "simnet":
		return &chaincfg.SimNetParams

	case "signet":
		return &chaincfg.SigNetParams

	default:
		return &chaincfg.MainNetParams
	}
}

// versions returns the extended key tags of the selected network.
func (o *globalOptions) versions() key.Versions {
	return key.VersionsFromParams(o.params())
}

// setupLogging applies the logging options. It runs before the command.
func (o *globalOptions) setupLogging() error {
	if err := setLogLevels(o.DebugLevel); err != nil {
		return err
	}
	if o.LogDir == "" {
		return nil
	}
	return initLogRotator(filepath.Join(o.LogDir, logFilename))
}
