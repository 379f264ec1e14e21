package fileoperator

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestUseLogger swaps the package logger, so it must not run in parallel
// with the other tests.
func TestUseLogger(t *testing.T) {
	require.Equal(t, btclog.Disabled, log)

	var buf bytes.Buffer
	logger := btclog.NewBackend(&buf).Logger("FOPR")
	logger.SetLevel(btclog.LevelDebug)
	UseLogger(logger)
	defer DisableLog()

	path := filepath.Join(t.TempDir(), "log.xlsx")
	require.NoError(t, SaveAddresses(nil, path))

	require.Contains(t, buf.String(), "Creating workbook "+path)
	require.Contains(t, buf.String(), "Appended 0 address rows")
}
