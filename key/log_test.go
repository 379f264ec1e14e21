package key

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestUseLogger swaps the package logger, so it must not run in parallel
// with the derivation tests.
func TestUseLogger(t *testing.T) {
	require.Equal(t, btclog.Disabled, log)

	var buf bytes.Buffer
	logger := btclog.NewBackend(&buf).Logger("KEYS")
	logger.SetLevel(btclog.LevelTrace)
	UseLogger(logger)
	defer DisableLog()

	xprv := mustParsePrivate(t, testXprv)
	_, err := xprv.Derive(Normal(1))
	require.NoError(t, err)

	secret := xprv.PrivateKey.Key.Bytes()
	require.Contains(t, buf.String(), "Derived private child 1 at depth 4")
	require.NotContains(t, buf.String(), hex.EncodeToString(secret[:]))
}
